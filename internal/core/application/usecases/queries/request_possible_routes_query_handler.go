package queries

import (
	"context"
	"log/slog"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/ports"
)

// RequestPossibleRoutesQueryHandler proposes routes for the cargo's routing
// specification. A misdirected cargo waiting in port gets routes starting there.
type RequestPossibleRoutesQueryHandler struct {
	cargos  ports.CargoRepository
	routing ports.RoutingService
	logger  *slog.Logger
}

func NewRequestPossibleRoutesQueryHandler(
	cargos ports.CargoRepository,
	routing ports.RoutingService,
	logger *slog.Logger,
) RequestPossibleRoutesQueryHandler {
	return RequestPossibleRoutesQueryHandler{
		cargos:  cargos,
		routing: routing,
		logger:  logger.With("component", "request-possible-routes"),
	}
}

// Handle returns an empty slice, never nil, when no route fits.
func (h RequestPossibleRoutesQueryHandler) Handle(
	ctx context.Context,
	query RequestPossibleRoutesQuery,
) ([]cargo.Itinerary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	c, err := h.cargos.Get(ctx, query.TrackingID())
	if err != nil {
		return nil, err
	}

	spec := c.RoutingSpecification()
	routes, err := h.routing.FetchRoutesForSpecification(ctx, spec)
	if err != nil {
		return nil, err
	}

	h.logger.DebugContext(ctx, "routes requested",
		"cargo.tracking_id", c.TrackingID().String(),
		"route.origin", spec.Origin().String(),
		"route.destination", spec.Destination().String(),
		"routes", len(routes),
	)

	if routes == nil {
		routes = []cargo.Itinerary{}
	}
	return routes, nil
}
