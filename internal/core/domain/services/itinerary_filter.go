package services

import "cargotracker/internal/core/domain/model/cargo"

// FilterItineraries splits candidate routes into those that satisfy spec and those that
// do not. Order is preserved and candidates are neither copied nor deduplicated.
func FilterItineraries(spec cargo.RouteSpecification, candidates []cargo.Itinerary) (accepted, rejected []cargo.Itinerary) {
	for _, candidate := range candidates {
		if spec.IsSatisfiedBy(candidate) {
			accepted = append(accepted, candidate)
		} else {
			rejected = append(rejected, candidate)
		}
	}
	return accepted, rejected
}
