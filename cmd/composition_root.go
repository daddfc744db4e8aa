package cmd

import (
	"log/slog"

	"cargotracker/internal/adapters/out/postgres"
	"cargotracker/internal/adapters/out/postgres/cargorepo"
	"cargotracker/internal/adapters/out/postgres/handlingrepo"
	"cargotracker/internal/adapters/out/postgres/locationrepo"
	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/application/usecases/queries"
	"cargotracker/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot builds use case handlers on top of the database and the
// outbound adapters created in main.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	routing    ports.RoutingService
	signals    ports.SignalPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(
	gormDB *gorm.DB,
	routing ports.RoutingService,
	signals ports.SignalPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		routing:    routing,
		signals:    signals,
		logger:     logger,
	}
}

func (c *CompositionRoot) UnitOfWorkFactory() *postgres.GormUnitOfWorkFactory {
	return c.uowFactory
}

func (c *CompositionRoot) CreateBookNewCargoCommandHandler() commands.BookNewCargoCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBookNewCargoCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCargoToRouteCommandHandler() commands.AssignCargoToRouteCommandHandler {
	return commands.NewAssignCargoToRouteCommandHandler(c.routingUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateChangeDestinationCommandHandler() commands.ChangeDestinationCommandHandler {
	return commands.NewChangeDestinationCommandHandler(c.routingUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateChangeDeadlineCommandHandler() commands.ChangeDeadlineCommandHandler {
	return commands.NewChangeDeadlineCommandHandler(c.routingUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateInspectCargoCommandHandler() commands.InspectCargoCommandHandler {
	var f commands.InspectionUoWFactory = FuncInspectionUoWFactory(func() commands.InspectionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewInspectCargoCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateRegisterHandlingEventCommandHandler() commands.RegisterHandlingEventCommandHandler {
	var f commands.HandlingUoWFactory = FuncHandlingUoWFactory(func() commands.HandlingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterHandlingEventCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateRelaySignalsCommandHandler() commands.RelaySignalsCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelaySignalsCommandHandler(f, c.signals, c.logger)
}

func (c *CompositionRoot) CreateListShippingLocationsQueryHandler() queries.ListShippingLocationsQueryHandler {
	return queries.NewListShippingLocationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCargosQueryHandler() queries.ListCargosQueryHandler {
	return queries.NewListCargosQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCargoTrackingQueryHandler() queries.GetCargoTrackingQueryHandler {
	return queries.NewGetCargoTrackingQueryHandler(
		cargorepo.NewGormCargoRepository(c.gormDB),
		handlingrepo.NewGormHandlingEventRepository(c.gormDB),
		locationrepo.NewGormLocationRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateRequestPossibleRoutesQueryHandler() queries.RequestPossibleRoutesQueryHandler {
	return queries.NewRequestPossibleRoutesQueryHandler(
		cargorepo.NewGormCargoRepository(c.gormDB),
		c.routing,
		c.logger,
	)
}

func (c *CompositionRoot) routingUoWFactory() commands.RoutingUoWFactory {
	return FuncRoutingUoWFactory(func() commands.RoutingUoW {
		return c.uowFactory.Create()
	})
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncInspectionUoWFactory func() commands.InspectionUoW

func (f FuncInspectionUoWFactory) Create() commands.InspectionUoW {
	return f()
}

type FuncRoutingUoWFactory func() commands.RoutingUoW

func (f FuncRoutingUoWFactory) Create() commands.RoutingUoW {
	return f()
}

type FuncHandlingUoWFactory func() commands.HandlingUoW

func (f FuncHandlingUoWFactory) Create() commands.HandlingUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
