// Package outboxrepo is the transactional outbox for signals raised by the tracking core.
package outboxrepo

import (
	"context"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/signal"
	"cargotracker/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

func (r *GormOutboxRepository) Add(ctx context.Context, s signal.Signal) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetPending locks the returned rows and skips rows locked by another relay.
func (r *GormOutboxRepository) GetPending(ctx context.Context, limit int) ([]signal.Signal, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var dtos []OutboxMessageDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("sent_at IS NULL").
		Order("occurred_at").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	signals := make([]signal.Signal, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		signals = append(signals, s)
	}

	return signals, nil
}

func (r *GormOutboxRepository) MarkAsSent(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OutboxMessageDTO{}).
		Where("id = ? AND sent_at IS NULL", id.Bytes()).
		Update("sent_at", time.Now().UTC())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("outbox message", id.String())
	}

	return nil
}
