// Package handlingrepo stores the append-only handling history of cargo.
package handlingrepo

import (
	"context"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type GormHandlingEventRepository struct {
	db *gorm.DB
}

func NewGormHandlingEventRepository(db *gorm.DB) *GormHandlingEventRepository {
	return &GormHandlingEventRepository{db: db}
}

func (r *GormHandlingEventRepository) Add(ctx context.Context, event handling.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormHandlingEventRepository) LookupHandlingHistoryOfCargo(
	ctx context.Context,
	trackingID kernel.TrackingID,
) (handling.History, error) {
	if err := trackingID.Validate(); err != nil {
		return handling.History{}, err
	}

	var dtos []HandlingEventDTO
	if err := r.db.WithContext(ctx).
		Where("tracking_id = ?", trackingID.String()).
		Order("completion_time, registration_time").
		Find(&dtos).Error; err != nil {
		return handling.History{}, err
	}

	events := make([]handling.Event, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return handling.History{}, err
		}
		events = append(events, e)
	}

	return handling.NewHistory(events), nil
}
