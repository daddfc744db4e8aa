package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
)

// HandlingEventRepository stores handling events. Events are append-only.
type HandlingEventRepository interface {
	Add(ctx context.Context, event handling.Event) error

	// LookupHandlingHistoryOfCargo returns every event recorded for the cargo.
	// An unknown cargo has an empty history.
	LookupHandlingHistoryOfCargo(ctx context.Context, trackingID kernel.TrackingID) (handling.History, error)
}
