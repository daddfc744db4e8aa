package commands

import (
	"context"
	"log/slog"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"

	"go.opentelemetry.io/otel/attribute"
)

// reroute locks the cargo, applies change and inspects the result in one unit of work.
func reroute(
	ctx context.Context,
	uowFactory RoutingUoWFactory,
	logger *slog.Logger,
	trackingID kernel.TrackingID,
	change func(uow RoutingUoW, c *cargo.Cargo) error,
) (err error) {
	ctx, span := tracer.Start(ctx, "Reroute")
	span.SetAttributes(attribute.String("cargo.tracking_id", trackingID.String()))
	defer func() {
		_ = recordError(span, err)
		span.End()
	}()

	uow := uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.CargoRepository().GetForUpdate(ctx, trackingID)
	if err != nil {
		return err
	}

	if err = change(uow, c); err != nil {
		return err
	}

	if err = inspectCargo(ctx, uow, c, logger); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	logger.InfoContext(ctx, "cargo rerouted",
		"trackingId", trackingID.String(),
		"routingStatus", c.Delivery().RoutingStatus().String())
	return nil
}
