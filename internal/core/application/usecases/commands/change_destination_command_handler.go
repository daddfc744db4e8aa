package commands

import (
	"context"
	"log/slog"

	"cargotracker/internal/core/domain/model/cargo"
)

// ChangeDestinationCommandHandler replaces the destination of a cargo's route
// specification. The new destination must be a known location other than the origin.
type ChangeDestinationCommandHandler struct {
	uowFactory RoutingUoWFactory
	logger     *slog.Logger
}

func NewChangeDestinationCommandHandler(uowFactory RoutingUoWFactory, logger *slog.Logger) ChangeDestinationCommandHandler {
	return ChangeDestinationCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "change-destination"),
	}
}

func (h ChangeDestinationCommandHandler) Handle(ctx context.Context, cmd ChangeDestinationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return reroute(ctx, h.uowFactory, h.logger, cmd.TrackingID(), func(uow RoutingUoW, c *cargo.Cargo) error {
		if c.Origin().IsEqual(cmd.Destination()) {
			return errOriginIsDestination()
		}
		if err := ensureLocationExists(ctx, uow.LocationRepository(), "destination", cmd.Destination()); err != nil {
			return err
		}
		spec, err := c.RouteSpecification().WithDestination(cmd.Destination())
		if err != nil {
			return err
		}
		return c.SpecifyNewRoute(spec)
	})
}
