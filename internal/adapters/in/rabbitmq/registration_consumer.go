// Package rabbitmq consumes queued handling registration attempts.
package rabbitmq

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cargotracker/internal/adapters/out/rabbitmq"
	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

const defaultHandleTimeout = 10 * time.Second

// RegistrationHandler registers one handling event.
type RegistrationHandler interface {
	Handle(ctx context.Context, cmd commands.RegisterHandlingEventCommand) error
}

// RegistrationConsumer turns deliveries into RegisterHandlingEvent commands.
//
// Rejected attempts (unknown references, invalid values, malformed bodies) are
// acknowledged and logged, since redelivery cannot make them succeed. Any other
// failure is negatively acknowledged with requeue.
type RegistrationConsumer struct {
	handler RegistrationHandler
	timeout time.Duration
	logger  *slog.Logger
}

func NewRegistrationConsumer(handler RegistrationHandler, logger *slog.Logger) *RegistrationConsumer {
	return &RegistrationConsumer{
		handler: handler,
		timeout: defaultHandleTimeout,
		logger:  logger.With("component", "registration-consumer"),
	}
}

// Run processes deliveries until ctx is done or the channel is closed.
func (c *RegistrationConsumer) Run(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	c.logger.InfoContext(ctx, "registration consumer started")

	for {
		select {
		case <-ctx.Done():
			c.logger.InfoContext(ctx, "registration consumer stopped")
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("registration delivery channel closed")
			}
			c.process(ctx, d)
		}
	}
}

func (c *RegistrationConsumer) process(ctx context.Context, d amqp.Delivery) {
	logger := c.logger.With("delivery.tag", d.DeliveryTag, "delivery.redelivered", d.Redelivered)

	attempt, err := rabbitmq.DecodeAttempt(d.Body)
	if err == nil {
		var cmd commands.RegisterHandlingEventCommand
		if cmd, err = commands.NewRegisterHandlingEventCommandFromAttempt(attempt); err == nil {
			handleCtx, cancel := context.WithTimeout(ctx, c.timeout)
			err = c.handler.Handle(handleCtx, cmd)
			cancel()
		}
		logger = logger.With(
			"cargo.tracking_id", attempt.TrackingID.String(),
			"handling.type", attempt.EventType.String(),
		)
	}

	switch {
	case err == nil:
		if ackErr := d.Ack(false); ackErr != nil {
			logger.ErrorContext(ctx, "ack failed", "error", ackErr)
		}
	case isRejection(err):
		logger.WarnContext(ctx, "registration attempt rejected", "error", err)
		if ackErr := d.Ack(false); ackErr != nil {
			logger.ErrorContext(ctx, "ack failed", "error", ackErr)
		}
	default:
		logger.ErrorContext(ctx, "registration failed, requeueing", "error", err)
		if nackErr := d.Nack(false, true); nackErr != nil {
			logger.ErrorContext(ctx, "nack failed", "error", nackErr)
		}
	}
}

func isRejection(err error) bool {
	return errors.Is(err, rabbitmq.ErrMalformedAttempt) ||
		errors.Is(err, handling.ErrCannotCreateHandlingEvent) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}
