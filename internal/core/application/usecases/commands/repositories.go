// Package commands contains the operations that change tracking state.
// Every command is validated, then executed in its own unit of work: one database
// transaction that commits all of its writes, outbox signals included, or none.
package commands

import (
	"context"

	"cargotracker/internal/core/ports"
)

// Unit of work interfaces, composed per command from the repositories it needs.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CargoRepoFactory interface {
		CargoRepository() ports.CargoRepository
	}

	HandlingEventRepoFactory interface {
		HandlingEventRepository() ports.HandlingEventRepository
	}

	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	VoyageRepoFactory interface {
		VoyageRepository() ports.VoyageRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// BookingUoW is used to book new cargo.
	BookingUoW interface {
		TxManager
		CargoRepoFactory
		LocationRepoFactory
	}

	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// InspectionUoW re-derives a cargo's delivery from its history and raises signals.
	InspectionUoW interface {
		TxManager
		CargoRepoFactory
		HandlingEventRepoFactory
		OutboxRepoFactory
	}

	InspectionUoWFactory interface {
		Create() InspectionUoW
	}

	// RoutingUoW changes a cargo's itinerary or route specification and inspects it.
	RoutingUoW interface {
		InspectionUoW
		LocationRepoFactory
	}

	RoutingUoWFactory interface {
		Create() RoutingUoW
	}

	// HandlingUoW registers handling events.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   events := uow.HandlingEventRepository()
	//   outbox := uow.OutboxRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	HandlingUoW interface {
		InspectionUoW
		VoyageRepoFactory
		LocationRepoFactory
	}

	HandlingUoWFactory interface {
		Create() HandlingUoW
	}

	// OutboxUoW relays pending signals.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
