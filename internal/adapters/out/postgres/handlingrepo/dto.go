package handlingrepo

import (
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type HandlingEventDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingID       string    `gorm:"type:varchar(32);not null;index:idx_handling_events_cargo"`
	EventType        string    `gorm:"type:varchar(16);not null"`
	Location         string    `gorm:"type:char(5);not null"`
	VoyageNumber     string    `gorm:"type:varchar(32)"`
	CompletionTime   time.Time `gorm:"not null;index:idx_handling_events_cargo"`
	RegistrationTime time.Time `gorm:"not null"`
}

func (HandlingEventDTO) TableName() string {
	return "handling_events"
}

func fromDomain(e handling.Event) HandlingEventDTO {
	return HandlingEventDTO{
		ID:               e.ID().Bytes(),
		TrackingID:       e.TrackingID().String(),
		EventType:        e.Type().String(),
		Location:         e.Location().String(),
		VoyageNumber:     e.Voyage().String(),
		CompletionTime:   e.CompletionTime(),
		RegistrationTime: e.RegistrationTime(),
	}
}

func toDomain(dto HandlingEventDTO) (handling.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return handling.Event{}, err
	}
	trackingID, err := kernel.NewTrackingID(dto.TrackingID)
	if err != nil {
		return handling.Event{}, err
	}
	eventType, err := handling.ParseEventType(dto.EventType)
	if err != nil {
		return handling.Event{}, err
	}
	loc, err := kernel.NewUnLocode(dto.Location)
	if err != nil {
		return handling.Event{}, err
	}

	return handling.RestoreEvent(
		id,
		trackingID,
		eventType,
		dto.CompletionTime,
		dto.RegistrationTime,
		loc,
		kernel.VoyageNumberFromString(dto.VoyageNumber),
	)
}
