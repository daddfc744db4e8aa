// Package cargorepo stores cargo aggregates: the route specification and delivery in the
// cargos table and the itinerary in cargo_legs, ordered by position.
package cargorepo

import (
	"context"
	"errors"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormCargoRepository struct {
	db *gorm.DB
}

func NewGormCargoRepository(db *gorm.DB) *GormCargoRepository {
	return &GormCargoRepository{db: db}
}

func (r *GormCargoRepository) Add(ctx context.Context, aggregate *cargo.Cargo) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update rewrites the cargo row and replaces its legs.
func (r *GormCargoRepository) Update(ctx context.Context, aggregate *cargo.Cargo) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&CargoDTO{TrackingID: dto.TrackingID}).Select("*").Omit("Legs").Updates(&dto)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("cargo", dto.TrackingID)
		}

		if err := tx.Where("tracking_id = ?", dto.TrackingID).Delete(&LegDTO{}).Error; err != nil {
			return err
		}
		if len(dto.Legs) == 0 {
			return nil
		}
		return tx.Create(&dto.Legs).Error
	})
}

func (r *GormCargoRepository) Get(ctx context.Context, trackingID kernel.TrackingID) (*cargo.Cargo, error) {
	return r.load(ctx, r.db, trackingID)
}

func (r *GormCargoRepository) GetForUpdate(ctx context.Context, trackingID kernel.TrackingID) (*cargo.Cargo, error) {
	return r.load(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), trackingID)
}

func (r *GormCargoRepository) load(ctx context.Context, db *gorm.DB, trackingID kernel.TrackingID) (*cargo.Cargo, error) {
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}

	var dto CargoDTO
	if err := db.WithContext(ctx).First(&dto, "tracking_id = ?", trackingID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cargo", trackingID.String())
		}
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Where("tracking_id = ?", dto.TrackingID).
		Order("position").
		Find(&dto.Legs).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}
