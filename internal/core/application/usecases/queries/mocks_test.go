package queries_test

import (
	"context"
	"testing"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCargoRepository struct{ mock.Mock }

func (m *MockCargoRepository) Add(ctx context.Context, c *cargo.Cargo) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCargoRepository) Update(ctx context.Context, c *cargo.Cargo) error {
	return m.Called(ctx, c).Error(0)
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
	return m.Called(ctx, e).Error(0)
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
	locations, _ := args.Get(0).([]location.Location)
	return locations, args.Error(1)
}

func (m *MockLocationRepository) Upsert(ctx context.Context, loc location.Location) error {
	return m.Called(ctx, loc).Error(0)
}

type MockRoutingService struct{ mock.Mock }

func (m *MockRoutingService) FetchRoutesForSpecification(ctx context.Context, spec cargo.RouteSpecification) ([]cargo.Itinerary, error) {
	args := m.Called(ctx, spec)
	routes, _ := args.Get(0).([]cargo.Itinerary)
	return routes, args.Error(1)
}

var (
	hongKong  = location.HongKong.UnLocode()
	tokyo     = location.Tokyo.UnLocode()
	hamburg   = location.Hamburg.UnLocode()
	stockholm = location.Stockholm.UnLocode()

	v100 = kernel.VoyageNumberFromString("0100S")
	v300 = kernel.VoyageNumberFromString("0300A")
	v400 = kernel.VoyageNumberFromString("0400S")
)

func at(day int) time.Time {
	return time.Date(2009, time.March, day, 12, 0, 0, 0, time.UTC)
}

func bookedCargo(t *testing.T) *cargo.Cargo {
	t.Helper()
	trackingID, err := kernel.NewTrackingID("ABC123")
	require.NoError(t, err)
	spec, err := cargo.NewRouteSpecification(hongKong, stockholm, at(20))
	require.NoError(t, err)
	c, err := cargo.NewCargo(trackingID, spec)
	require.NoError(t, err)
	return c
}

func hongKongToStockholm(t *testing.T) cargo.Itinerary {
	t.Helper()
	leg := func(v kernel.VoyageNumber, from, to kernel.UnLocode, load, unload int) cargo.Leg {
		l, err := cargo.NewLeg(v, from, to, at(load), at(unload))
		require.NoError(t, err)
		return l
	}
	it, err := cargo.NewItinerary([]cargo.Leg{
		leg(v100, hongKong, tokyo, 3, 5),
		leg(v300, tokyo, hamburg, 8, 12),
		leg(v400, hamburg, stockholm, 14, 15),
	})
	require.NoError(t, err)
	return it
}

func routedCargo(t *testing.T) *cargo.Cargo {
	t.Helper()
	c := bookedCargo(t)
	require.NoError(t, c.AssignToRoute(hongKongToStockholm(t)))
	return c
}

func event(t *testing.T, c *cargo.Cargo, eventType handling.EventType, day int, loc kernel.UnLocode, v kernel.VoyageNumber) handling.Event {
	t.Helper()
	e, err := handling.NewEvent(c.TrackingID(), eventType, at(day), at(day), loc, v)
	require.NoError(t, err)
	return e
}

// handled derives c from events and returns the history it was derived from.
func handled(c *cargo.Cargo, events ...handling.Event) handling.History {
	history := handling.NewHistory(events)
	c.DeriveDeliveryProgress(history)
	return history
}
