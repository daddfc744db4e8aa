package outboxrepo

import (
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/signal"

	"github.com/google/uuid"
)

// OutboxMessageDTO is a raised signal. SentAt stays NULL until the relay has published it.
type OutboxMessageDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Kind       string     `gorm:"type:varchar(32);not null"`
	TrackingID string     `gorm:"type:varchar(32);not null"`
	OccurredAt time.Time  `gorm:"not null;index:idx_outbox_pending"`
	SentAt     *time.Time `gorm:"index:idx_outbox_pending"`
}

func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

func fromDomain(s signal.Signal) OutboxMessageDTO {
	return OutboxMessageDTO{
		ID:         s.ID().Bytes(),
		Kind:       string(s.Kind()),
		TrackingID: s.TrackingID().String(),
		OccurredAt: s.OccurredAt(),
	}
}

func toDomain(dto OutboxMessageDTO) (signal.Signal, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return signal.Signal{}, err
	}
	kind, err := signal.ParseKind(dto.Kind)
	if err != nil {
		return signal.Signal{}, err
	}
	trackingID, err := kernel.NewTrackingID(dto.TrackingID)
	if err != nil {
		return signal.Signal{}, err
	}
	return signal.RestoreSignal(id, kind, trackingID, dto.OccurredAt)
}
