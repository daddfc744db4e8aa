package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
)

// RoutingService proposes itineraries for a route specification. Every itinerary
// returned satisfies the specification; the slice is empty when no route fits.
type RoutingService interface {
	FetchRoutesForSpecification(ctx context.Context, spec cargo.RouteSpecification) ([]cargo.Itinerary, error)
}
