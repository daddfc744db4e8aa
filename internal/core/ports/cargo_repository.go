// Package ports defines the contracts between the tracking core and infrastructure:
// repositories, the unit of work, the external routing service and outbound publishers.
package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
)

// CargoRepository defines the persistence contract for cargo aggregates, including
// their itinerary legs and the derived delivery.
type CargoRepository interface {
	// Add persists a newly booked cargo.
	Add(ctx context.Context, aggregate *cargo.Cargo) error

	// Update replaces the stored route specification, itinerary and delivery.
	Update(ctx context.Context, aggregate *cargo.Cargo) error

	// Get returns the cargo booked under trackingID. A missing cargo is reported
	// with an error matching errs.ErrObjectNotFound.
	Get(ctx context.Context, trackingID kernel.TrackingID) (*cargo.Cargo, error)

	// GetForUpdate is Get with the cargo row locked until the surrounding transaction
	// ends. Handling registrations for one cargo are serialized through this lock.
	GetForUpdate(ctx context.Context, trackingID kernel.TrackingID) (*cargo.Cargo, error)
}
