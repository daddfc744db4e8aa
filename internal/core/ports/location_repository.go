package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
)

// LocationRepository gives access to location reference data.
type LocationRepository interface {
	// Get reports a missing location with an error matching errs.ErrObjectNotFound.
	Get(ctx context.Context, unLocode kernel.UnLocode) (location.Location, error)

	// GetAll returns every location ordered by UN/LOCODE.
	GetAll(ctx context.Context) ([]location.Location, error)

	// Upsert inserts the location or renames an existing one.
	Upsert(ctx context.Context, loc location.Location) error
}
