package commands

import (
	"context"
	"log/slog"

	"cargotracker/internal/core/domain/model/signal"
	"cargotracker/internal/core/domain/services"

	"go.opentelemetry.io/otel/attribute"
)

// RegisterHandlingEventCommandHandler records a handling event and inspects the
// handled cargo in the same unit of work.
//
// The cargo row stays locked from the moment the event is resolved until commit,
// so concurrent reports for one cargo are applied one after another.
type RegisterHandlingEventCommandHandler struct {
	uowFactory HandlingUoWFactory
	logger     *slog.Logger
}

func NewRegisterHandlingEventCommandHandler(uowFactory HandlingUoWFactory, logger *slog.Logger) RegisterHandlingEventCommandHandler {
	return RegisterHandlingEventCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "register-handling-event"),
	}
}

// Handle fails with *handling.UnknownCargoError, *handling.UnknownVoyageError or
// *handling.UnknownLocationError when the report refers to something unknown. Nothing
// is stored in that case.
func (h RegisterHandlingEventCommandHandler) Handle(ctx context.Context, cmd RegisterHandlingEventCommand) (err error) {
	ctx, span := tracer.Start(ctx, "RegisterHandlingEvent")
	defer func() {
		_ = recordError(span, err)
		span.End()
	}()

	if err = cmd.Validate(); err != nil {
		return err
	}

	attempt := cmd.Attempt()
	span.SetAttributes(
		attribute.String("cargo.tracking_id", attempt.TrackingID.String()),
		attribute.String("handling.type", attempt.EventType.String()),
		attribute.String("handling.location", attempt.UnLocode.String()),
	)

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cargos := &lockingCargoFinder{repo: uow.CargoRepository()}
	factory := services.NewHandlingEventFactory(cargos, uow.VoyageRepository(), uow.LocationRepository())

	event, err := factory.CreateHandlingEvent(ctx, attempt)
	if err != nil {
		return err
	}

	if err = uow.HandlingEventRepository().Add(ctx, event); err != nil {
		return err
	}

	if err = raise(ctx, uow.OutboxRepository(), signal.CargoHandled, event.TrackingID(), event.RegistrationTime()); err != nil {
		return err
	}

	if err = inspectCargo(ctx, uow, cargos.locked, h.logger); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "handling event registered",
		"trackingId", event.TrackingID().String(),
		"type", event.Type().String(),
		"location", event.Location().String(),
		"voyage", event.Voyage().String())
	return nil
}
