package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
)

// VoyageRepository gives access to voyage reference data and their schedules.
type VoyageRepository interface {
	// Get reports a missing voyage with an error matching errs.ErrObjectNotFound.
	Get(ctx context.Context, number kernel.VoyageNumber) (*voyage.Voyage, error)

	// Upsert stores the voyage, replacing any schedule stored before.
	Upsert(ctx context.Context, v *voyage.Voyage) error
}
