// Package voyagerepo stores voyages with their carrier movement schedules.
package voyagerepo

import (
	"context"
	"errors"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormVoyageRepository struct {
	db *gorm.DB
}

func NewGormVoyageRepository(db *gorm.DB) *GormVoyageRepository {
	return &GormVoyageRepository{db: db}
}

func (r *GormVoyageRepository) Get(ctx context.Context, number kernel.VoyageNumber) (*voyage.Voyage, error) {
	if number.IsNone() {
		return nil, errs.NewValueIsRequiredError("voyageNumber")
	}

	var dto VoyageDTO
	err := r.db.WithContext(ctx).
		Preload("Movements", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "voyage_number = ?", number.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("voyage", number.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Upsert replaces the whole schedule of the voyage.
func (r *GormVoyageRepository) Upsert(ctx context.Context, v *voyage.Voyage) error {
	if err := v.Validate(); err != nil {
		return err
	}

	dto := fromDomain(v)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Movements").
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&VoyageDTO{VoyageNumber: dto.VoyageNumber}).Error; err != nil {
			return err
		}

		if err := tx.Where("voyage_number = ?", dto.VoyageNumber).Delete(&CarrierMovementDTO{}).Error; err != nil {
			return err
		}

		return tx.Create(&dto.Movements).Error
	})
}
