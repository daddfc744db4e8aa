package postgres

import (
	"context"
	"fmt"

	"cargotracker/internal/adapters/out/postgres/cargorepo"
	"cargotracker/internal/adapters/out/postgres/handlingrepo"
	"cargotracker/internal/adapters/out/postgres/locationrepo"
	"cargotracker/internal/adapters/out/postgres/outboxrepo"
	"cargotracker/internal/adapters/out/postgres/voyagerepo"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"

	"gorm.io/gorm"
)

// Models lists every table of the tracking schema.
func Models() []any {
	return []any{
		&locationrepo.LocationDTO{},
		&voyagerepo.VoyageDTO{},
		&voyagerepo.CarrierMovementDTO{},
		&cargorepo.CargoDTO{},
		&cargorepo.LegDTO{},
		&handlingrepo.HandlingEventDTO{},
		&outboxrepo.OutboxMessageDTO{},
	}
}

func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// SeedSampleData upserts the sample locations and voyages. Running it twice changes nothing.
func SeedSampleData(ctx context.Context, factory *GormUnitOfWorkFactory) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	for _, loc := range location.Samples() {
		if err := uow.LocationRepository().Upsert(ctx, loc); err != nil {
			return fmt.Errorf("seed location %s: %w", loc.UnLocode(), err)
		}
	}

	for _, v := range voyage.Samples() {
		if err := uow.VoyageRepository().Upsert(ctx, v); err != nil {
			return fmt.Errorf("seed voyage %s: %w", v.Number(), err)
		}
	}

	return uow.Commit(ctx)
}
