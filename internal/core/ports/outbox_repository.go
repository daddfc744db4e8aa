package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/signal"
)

// OutboxRepository keeps raised signals until they have been published.
// Add runs inside the transaction that raised the signal.
type OutboxRepository interface {
	Add(ctx context.Context, s signal.Signal) error

	// GetPending returns at most limit unpublished signals, oldest first.
	GetPending(ctx context.Context, limit int) ([]signal.Signal, error)

	MarkAsSent(ctx context.Context, id kernel.UUID) error
}
