package commands

import (
	"context"
	"errors"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/ports"
	"cargotracker/internal/pkg/errs"

	"go.opentelemetry.io/otel/attribute"
)

// BookNewCargoCommandHandler books cargo. Both locations must be known.
type BookNewCargoCommandHandler struct {
	uowFactory BookingUoWFactory
}

func NewBookNewCargoCommandHandler(uowFactory BookingUoWFactory) BookNewCargoCommandHandler {
	return BookNewCargoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the tracking id issued to the new cargo. An unknown origin or
// destination fails with an error matching errs.ErrValueIsInvalid.
func (h BookNewCargoCommandHandler) Handle(ctx context.Context, cmd BookNewCargoCommand) (trackingID kernel.TrackingID, err error) {
	ctx, span := tracer.Start(ctx, "BookNewCargo")
	defer func() {
		_ = recordError(span, err)
		span.End()
	}()

	if err = cmd.Validate(); err != nil {
		return kernel.TrackingID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.TrackingID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = ensureLocationExists(ctx, uow.LocationRepository(), "origin", cmd.Origin()); err != nil {
		return kernel.TrackingID{}, err
	}
	if err = ensureLocationExists(ctx, uow.LocationRepository(), "destination", cmd.Destination()); err != nil {
		return kernel.TrackingID{}, err
	}

	spec, err := cargo.NewRouteSpecification(cmd.Origin(), cmd.Destination(), cmd.Deadline())
	if err != nil {
		return kernel.TrackingID{}, err
	}

	trackingID = kernel.NextTrackingID()
	span.SetAttributes(attribute.String("cargo.tracking_id", trackingID.String()))

	c, err := cargo.NewCargo(trackingID, spec)
	if err != nil {
		return kernel.TrackingID{}, err
	}

	if err = uow.CargoRepository().Add(ctx, c); err != nil {
		return kernel.TrackingID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.TrackingID{}, err
	}

	return trackingID, nil
}

func ensureLocationExists(ctx context.Context, repo ports.LocationRepository, param string, unLocode kernel.UnLocode) error {
	_, err := repo.Get(ctx, unLocode)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return err
}
