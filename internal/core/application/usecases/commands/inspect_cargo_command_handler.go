package commands

import (
	"context"
	"errors"
	"log/slog"

	"cargotracker/internal/pkg/errs"
)

// InspectCargoCommandHandler re-derives and stores the delivery of one cargo.
// Inspecting an unknown cargo is logged and otherwise ignored.
type InspectCargoCommandHandler struct {
	uowFactory InspectionUoWFactory
	logger     *slog.Logger
}

func NewInspectCargoCommandHandler(uowFactory InspectionUoWFactory, logger *slog.Logger) InspectCargoCommandHandler {
	return InspectCargoCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "cargo-inspection"),
	}
}

func (h InspectCargoCommandHandler) Handle(ctx context.Context, cmd InspectCargoCommand) (err error) {
	ctx, span := tracer.Start(ctx, "InspectCargo")
	defer func() {
		_ = recordError(span, err)
		span.End()
	}()

	if err = cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.CargoRepository().GetForUpdate(ctx, cmd.TrackingID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.WarnContext(ctx, "cannot inspect unknown cargo", "trackingId", cmd.TrackingID().String())
		return nil
	}
	if err != nil {
		return err
	}

	if err = inspectCargo(ctx, uow, c, h.logger); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
