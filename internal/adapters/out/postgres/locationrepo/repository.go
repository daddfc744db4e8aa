// Package locationrepo stores location reference data.
package locationrepo

import (
	"context"
	"errors"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormLocationRepository struct {
	db *gorm.DB
}

func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

func (r *GormLocationRepository) Get(ctx context.Context, unLocode kernel.UnLocode) (location.Location, error) {
	if err := unLocode.Validate(); err != nil {
		return location.Location{}, err
	}

	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "un_locode = ?", unLocode.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return location.Location{}, errs.NewObjectNotFoundError("location", unLocode.String())
		}
		return location.Location{}, err
	}

	return toDomain(dto)
}

func (r *GormLocationRepository) GetAll(ctx context.Context) ([]location.Location, error) {
	var dtos []LocationDTO
	if err := r.db.WithContext(ctx).Order("un_locode").Find(&dtos).Error; err != nil {
		return nil, err
	}

	locations := make([]location.Location, 0, len(dtos))
	for _, dto := range dtos {
		loc, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}

	return locations, nil
}

func (r *GormLocationRepository) Upsert(ctx context.Context, loc location.Location) error {
	if err := loc.Validate(); err != nil {
		return err
	}

	dto := fromDomain(loc)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "un_locode"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		}).
		Create(&dto).Error
}
