package commands

import (
	"context"
	"log/slog"

	"cargotracker/internal/core/domain/model/cargo"
)

// AssignCargoToRouteCommandHandler replaces a cargo's itinerary and inspects the cargo
// against its full handling history. An itinerary leaving from the port a misdirected
// cargo waits in also moves the route specification's origin there.
type AssignCargoToRouteCommandHandler struct {
	uowFactory RoutingUoWFactory
	logger     *slog.Logger
}

func NewAssignCargoToRouteCommandHandler(uowFactory RoutingUoWFactory, logger *slog.Logger) AssignCargoToRouteCommandHandler {
	return AssignCargoToRouteCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "assign-cargo-to-route"),
	}
}

func (h AssignCargoToRouteCommandHandler) Handle(ctx context.Context, cmd AssignCargoToRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return reroute(ctx, h.uowFactory, h.logger, cmd.TrackingID(), func(_ RoutingUoW, c *cargo.Cargo) error {
		// a misdirected cargo is rerouted from the port it is waiting in
		if rs := c.RoutingSpecification(); !rs.IsEqual(c.RouteSpecification()) && rs.IsSatisfiedBy(cmd.Itinerary()) {
			if err := c.SpecifyNewRoute(rs); err != nil {
				return err
			}
		}
		return c.AssignToRoute(cmd.Itinerary())
	})
}
