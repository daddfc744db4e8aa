package commands

import (
	"context"
	"log/slog"

	"cargotracker/internal/core/domain/model/cargo"
)

// ChangeDeadlineCommandHandler replaces the arrival deadline of a cargo's route specification.
type ChangeDeadlineCommandHandler struct {
	uowFactory RoutingUoWFactory
	logger     *slog.Logger
}

func NewChangeDeadlineCommandHandler(uowFactory RoutingUoWFactory, logger *slog.Logger) ChangeDeadlineCommandHandler {
	return ChangeDeadlineCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "change-deadline"),
	}
}

func (h ChangeDeadlineCommandHandler) Handle(ctx context.Context, cmd ChangeDeadlineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return reroute(ctx, h.uowFactory, h.logger, cmd.TrackingID(), func(_ RoutingUoW, c *cargo.Cargo) error {
		spec, err := c.RouteSpecification().WithArrivalDeadline(cmd.Deadline())
		if err != nil {
			return err
		}
		return c.SpecifyNewRoute(spec)
	})
}
