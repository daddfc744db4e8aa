package rabbitmq

import (
	"context"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/handling"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the publishing side of an AMQP channel.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AttemptPublisher implements ports.RegistrationAttemptPublisher. Attempts are sent
// persistent to the default exchange, routed straight to queue.
type AttemptPublisher struct {
	channel Channel
	queue   string
}

func NewAttemptPublisher(channel Channel, queue string) *AttemptPublisher {
	return &AttemptPublisher{channel: channel, queue: queue}
}

func (p *AttemptPublisher) Publish(ctx context.Context, attempt handling.RegistrationAttempt) error {
	body, err := EncodeAttempt(attempt)
	if err != nil {
		return fmt.Errorf("encode registration attempt: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		"",
		p.queue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Type:         attempt.EventType.String(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish registration attempt to %s: %w", p.queue, err)
	}
	return nil
}
