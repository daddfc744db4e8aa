package routing

import (
	"context"
	"fmt"
	"log/slog"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/services"
)

// ExternalRoutingService implements ports.RoutingService on top of a PathFinder.
type ExternalRoutingService struct {
	finder PathFinder
	logger *slog.Logger
}

func NewExternalRoutingService(finder PathFinder, logger *slog.Logger) *ExternalRoutingService {
	return &ExternalRoutingService{
		finder: finder,
		logger: logger.With("component", "routing-service"),
	}
}

// FetchRoutesForSpecification translates every transit path into an itinerary and
// keeps those that satisfy spec. Paths that cannot be translated are dropped.
func (s *ExternalRoutingService) FetchRoutesForSpecification(
	ctx context.Context,
	spec cargo.RouteSpecification,
) ([]cargo.Itinerary, error) {
	paths, err := s.finder.FindShortestPath(ctx,
		spec.Origin().String(), spec.Destination().String(), spec.ArrivalDeadline())
	if err != nil {
		return nil, err
	}

	candidates := make([]cargo.Itinerary, 0, len(paths))
	for i, path := range paths {
		itinerary, err := toItinerary(path)
		if err != nil {
			s.logger.WarnContext(ctx, "dropping untranslatable transit path",
				"path.index", i,
				"error", err,
			)
			continue
		}
		candidates = append(candidates, itinerary)
	}

	accepted, rejected := services.FilterItineraries(spec, candidates)
	for _, itinerary := range rejected {
		s.logger.DebugContext(ctx, "itinerary does not satisfy the route specification",
			"itinerary.from", itinerary.InitialDepartureLocation().String(),
			"itinerary.to", itinerary.FinalArrivalLocation().String(),
			"itinerary.arrival", itinerary.FinalArrivalDate(),
		)
	}

	if accepted == nil {
		accepted = []cargo.Itinerary{}
	}
	return accepted, nil
}

func toItinerary(path TransitPath) (cargo.Itinerary, error) {
	legs := make([]cargo.Leg, 0, len(path.TransitEdges))
	for i, edge := range path.TransitEdges {
		leg, err := toLeg(edge)
		if err != nil {
			return cargo.Itinerary{}, fmt.Errorf("edge %d: %w", i, err)
		}
		legs = append(legs, leg)
	}
	return cargo.NewItinerary(legs)
}

func toLeg(edge TransitEdge) (cargo.Leg, error) {
	voyage, err := kernel.NewVoyageNumber(edge.VoyageNumber)
	if err != nil {
		return cargo.Leg{}, err
	}
	from, err := kernel.NewUnLocode(edge.FromUnLocode)
	if err != nil {
		return cargo.Leg{}, err
	}
	to, err := kernel.NewUnLocode(edge.ToUnLocode)
	if err != nil {
		return cargo.Leg{}, err
	}
	return cargo.NewLeg(voyage, from, to, edge.FromDate, edge.ToDate)
}
