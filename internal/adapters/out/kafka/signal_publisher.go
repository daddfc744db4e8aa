// Package kafka publishes cargo signals to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"cargotracker/internal/core/domain/model/signal"

	skafka "github.com/segmentio/kafka-go"
)

// Writer is the part of kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// SignalMessage is the JSON body of a published signal.
type SignalMessage struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	TrackingID string    `json:"trackingId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// SignalPublisher writes one message per signal, keyed by tracking id so that the
// signals of a cargo stay ordered within a partition.
type SignalPublisher struct {
	writer Writer
	logger *slog.Logger
}

func NewSignalPublisher(brokers []string, topic string, logger *slog.Logger) *SignalPublisher {
	w := &skafka.Writer{
		Addr:                   skafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &skafka.Hash{},
		RequiredAcks:           skafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return NewSignalPublisherWithWriter(w, logger)
}

func NewSignalPublisherWithWriter(w Writer, logger *slog.Logger) *SignalPublisher {
	return &SignalPublisher{
		writer: w,
		logger: logger.With("component", "kafka-signal-publisher"),
	}
}

func (p *SignalPublisher) Publish(ctx context.Context, s signal.Signal) error {
	if err := s.Validate(); err != nil {
		return err
	}

	body, err := json.Marshal(SignalMessage{
		ID:         s.ID().String(),
		Type:       string(s.Kind()),
		TrackingID: s.TrackingID().String(),
		OccurredAt: s.OccurredAt(),
	})
	if err != nil {
		return fmt.Errorf("encode signal: %w", err)
	}

	msg := skafka.Message{
		Key:   []byte(s.TrackingID().String()),
		Value: body,
		Headers: []skafka.Header{
			{Key: "signal-type", Value: []byte(s.Kind())},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write signal %s: %w", s.ID(), err)
	}

	p.logger.DebugContext(ctx, "signal published",
		"signal.id", s.ID().String(),
		"signal.type", string(s.Kind()),
		"cargo.tracking_id", s.TrackingID().String(),
	)
	return nil
}

func (p *SignalPublisher) Close() error {
	return p.writer.Close()
}
