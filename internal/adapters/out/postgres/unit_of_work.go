// Package postgres provides the GORM-based unit of work over the tracking repositories.
//
// Every repository handed out by a unit of work runs inside its transaction once Begin
// has been called, and on the plain connection before that.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.HandlingEventRepository().Add(ctx, event); err != nil {
//	    return err
//	}
//	if err := uow.CargoRepository().Update(ctx, c); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"cargotracker/internal/adapters/out/postgres/cargorepo"
	"cargotracker/internal/adapters/out/postgres/handlingrepo"
	"cargotracker/internal/adapters/out/postgres/locationrepo"
	"cargotracker/internal/adapters/out/postgres/outboxrepo"
	"cargotracker/internal/adapters/out/postgres/voyagerepo"
	"cargotracker/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory hands out a fresh unit of work per business operation.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork wraps one GORM transaction. It is not safe for concurrent use.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin is a no-op when a transaction is already active.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction after Commit, which deferred rollbacks ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) CargoRepository() ports.CargoRepository {
	return cargorepo.NewGormCargoRepository(uow.conn())
}

func (uow *GormUnitOfWork) HandlingEventRepository() ports.HandlingEventRepository {
	return handlingrepo.NewGormHandlingEventRepository(uow.conn())
}

func (uow *GormUnitOfWork) LocationRepository() ports.LocationRepository {
	return locationrepo.NewGormLocationRepository(uow.conn())
}

func (uow *GormUnitOfWork) VoyageRepository() ports.VoyageRepository {
	return voyagerepo.NewGormVoyageRepository(uow.conn())
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
