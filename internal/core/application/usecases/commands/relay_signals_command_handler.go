package commands

import (
	"context"
	"log/slog"

	"cargotracker/internal/core/ports"
)

// RelaySignalsCommandHandler moves pending outbox signals to the signal publisher.
// A signal that fails to publish stays pending and is retried on the next run, so
// subscribers may see a signal more than once.
type RelaySignalsCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.SignalPublisher
	logger     *slog.Logger
}

func NewRelaySignalsCommandHandler(uowFactory OutboxUoWFactory, publisher ports.SignalPublisher, logger *slog.Logger) RelaySignalsCommandHandler {
	return RelaySignalsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "signal-relay"),
	}
}

// Handle returns the number of signals published.
func (h RelaySignalsCommandHandler) Handle(ctx context.Context, cmd RelaySignalsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OutboxRepository()
	pending, err := outbox.GetPending(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, s := range pending {
		if err = h.publisher.Publish(ctx, s); err != nil {
			h.logger.ErrorContext(ctx, "failed to publish signal",
				"signalId", s.ID().String(),
				"kind", string(s.Kind()),
				"error", err)
			continue
		}
		if err = outbox.MarkAsSent(ctx, s.ID()); err != nil {
			return sent, err
		}
		sent++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return sent, nil
}
