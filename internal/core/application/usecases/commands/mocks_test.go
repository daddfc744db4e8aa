package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/signal"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCargoRepository struct{ mock.Mock }

func (m *MockCargoRepository) Add(ctx context.Context, c *cargo.Cargo) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCargoRepository) Update(ctx context.Context, c *cargo.Cargo) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCargoRepository) Get(ctx context.Context, id kernel.TrackingID) (*cargo.Cargo, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*cargo.Cargo)
	return c, args.Error(1)
}

func (m *MockCargoRepository) GetForUpdate(ctx context.Context, id kernel.TrackingID) (*cargo.Cargo, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*cargo.Cargo)
	return c, args.Error(1)
}

type MockHandlingEventRepository struct{ mock.Mock }

func (m *MockHandlingEventRepository) Add(ctx context.Context, e handling.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockHandlingEventRepository) LookupHandlingHistoryOfCargo(ctx context.Context, id kernel.TrackingID) (handling.History, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(handling.History), args.Error(1)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Get(ctx context.Context, code kernel.UnLocode) (location.Location, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(location.Location), args.Error(1)
}

func (m *MockLocationRepository) GetAll(ctx context.Context) ([]location.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).([]location.Location), args.Error(1)
}

func (m *MockLocationRepository) Upsert(ctx context.Context, loc location.Location) error {
	args := m.Called(ctx, loc)
	return args.Error(0)
}

type MockVoyageRepository struct{ mock.Mock }

func (m *MockVoyageRepository) Get(ctx context.Context, number kernel.VoyageNumber) (*voyage.Voyage, error) {
	args := m.Called(ctx, number)
	v, _ := args.Get(0).(*voyage.Voyage)
	return v, args.Error(1)
}

func (m *MockVoyageRepository) Upsert(ctx context.Context, v *voyage.Voyage) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, s signal.Signal) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockOutboxRepository) GetPending(ctx context.Context, limit int) ([]signal.Signal, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]signal.Signal), args.Error(1)
}

func (m *MockOutboxRepository) MarkAsSent(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CargoRepository() ports.CargoRepository {
	args := m.Called()
	return args.Get(0).(ports.CargoRepository)
}

func (m *MockUoW) HandlingEventRepository() ports.HandlingEventRepository {
	args := m.Called()
	return args.Get(0).(ports.HandlingEventRepository)
}

func (m *MockUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

func (m *MockUoW) VoyageRepository() ports.VoyageRepository {
	args := m.Called()
	return args.Get(0).(ports.VoyageRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockBookingUoWFactory struct{ mock.Mock }

func (m *MockBookingUoWFactory) Create() commands.BookingUoW {
	args := m.Called()
	return args.Get(0).(commands.BookingUoW)
}

type MockInspectionUoWFactory struct{ mock.Mock }

func (m *MockInspectionUoWFactory) Create() commands.InspectionUoW {
	args := m.Called()
	return args.Get(0).(commands.InspectionUoW)
}

type MockRoutingUoWFactory struct{ mock.Mock }

func (m *MockRoutingUoWFactory) Create() commands.RoutingUoW {
	args := m.Called()
	return args.Get(0).(commands.RoutingUoW)
}

type MockHandlingUoWFactory struct{ mock.Mock }

func (m *MockHandlingUoWFactory) Create() commands.HandlingUoW {
	args := m.Called()
	return args.Get(0).(commands.HandlingUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}

type MockSignalPublisher struct{ mock.Mock }

func (m *MockSignalPublisher) Publish(ctx context.Context, s signal.Signal) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// repos bundles the mocked repositories behind one MockUoW.
type repos struct {
	uow       *MockUoW
	cargos    *MockCargoRepository
	events    *MockHandlingEventRepository
	locations *MockLocationRepository
	voyages   *MockVoyageRepository
	outbox    *MockOutboxRepository
}

func newRepos() repos {
	r := repos{
		uow:       new(MockUoW),
		cargos:    new(MockCargoRepository),
		events:    new(MockHandlingEventRepository),
		locations: new(MockLocationRepository),
		voyages:   new(MockVoyageRepository),
		outbox:    new(MockOutboxRepository),
	}
	r.uow.On("CargoRepository").Return(r.cargos).Maybe()
	r.uow.On("HandlingEventRepository").Return(r.events).Maybe()
	r.uow.On("LocationRepository").Return(r.locations).Maybe()
	r.uow.On("VoyageRepository").Return(r.voyages).Maybe()
	r.uow.On("OutboxRepository").Return(r.outbox).Maybe()
	return r
}

func (r repos) assertExpectations(t *testing.T) {
	t.Helper()
	r.uow.AssertExpectations(t)
	r.cargos.AssertExpectations(t)
	r.events.AssertExpectations(t)
	r.locations.AssertExpectations(t)
	r.voyages.AssertExpectations(t)
	r.outbox.AssertExpectations(t)
}

var (
	hongKong  = kernel.MustUnLocode("CNHKG")
	tokyo     = kernel.MustUnLocode("JNTKO")
	hamburg   = kernel.MustUnLocode("DEHAM")
	stockholm = kernel.MustUnLocode("SESTO")
	melbourne = kernel.MustUnLocode("AUMEL")

	v100 = kernel.VoyageNumberFromString("0100S")
	v300 = kernel.VoyageNumberFromString("0300A")
	v400 = kernel.VoyageNumberFromString("0400S")

	testTrackingID, _ = kernel.NewTrackingID("ABC123")
	deadline          = time.Date(2009, time.March, 20, 0, 0, 0, 0, time.UTC)
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func at(day, hour int) time.Time {
	return time.Date(2009, time.March, day, hour, 0, 0, 0, time.UTC)
}

// bookedCargo is ABC123 from Hong Kong to Stockholm, not routed yet.
func bookedCargo(t *testing.T) *cargo.Cargo {
	t.Helper()
	spec, err := cargo.NewRouteSpecification(hongKong, stockholm, deadline)
	require.NoError(t, err)
	c, err := cargo.NewCargo(testTrackingID, spec)
	require.NoError(t, err)
	return c
}

// hongKongToStockholm goes through Tokyo and Hamburg on the sample voyages.
func hongKongToStockholm(t *testing.T) cargo.Itinerary {
	t.Helper()
	legs := make([]cargo.Leg, 0, 3)
	for _, l := range []struct {
		voyage       kernel.VoyageNumber
		from, to     kernel.UnLocode
		load, unload time.Time
	}{
		{v100, hongKong, tokyo, at(3, 0), at(5, 0)},
		{v300, tokyo, hamburg, at(8, 0), at(12, 0)},
		{v400, hamburg, stockholm, at(14, 0), at(15, 0)},
	} {
		leg, err := cargo.NewLeg(l.voyage, l.from, l.to, l.load, l.unload)
		require.NoError(t, err)
		legs = append(legs, leg)
	}
	it, err := cargo.NewItinerary(legs)
	require.NoError(t, err)
	return it
}

func routedCargo(t *testing.T) *cargo.Cargo {
	t.Helper()
	c := bookedCargo(t)
	require.NoError(t, c.AssignToRoute(hongKongToStockholm(t)))
	return c
}

func historyOf(t *testing.T, attempts ...handling.RegistrationAttempt) handling.History {
	t.Helper()
	events := make([]handling.Event, 0, len(attempts))
	for _, a := range attempts {
		e, err := handling.NewEvent(a.TrackingID, a.EventType, a.CompletionTime, a.RegistrationTime, a.UnLocode, a.VoyageNumber)
		require.NoError(t, err)
		events = append(events, e)
	}
	return handling.NewHistory(events)
}

func signalOfKind(kind signal.Kind) any {
	return mock.MatchedBy(func(s signal.Signal) bool { return s.Kind() == kind })
}
