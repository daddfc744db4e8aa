package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/signal"
)

// SignalPublisher delivers a signal to subscribers outside the service.
type SignalPublisher interface {
	Publish(ctx context.Context, s signal.Signal) error
}

// RegistrationAttemptPublisher queues a handling report for asynchronous registration.
type RegistrationAttemptPublisher interface {
	Publish(ctx context.Context, attempt handling.RegistrationAttempt) error
}
