package cargo_test

import (
	"testing"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

var (
	dallas    = kernel.MustUnLocode("USDAL")
	helsinki  = kernel.MustUnLocode("FIHEL")
	hongKong  = kernel.MustUnLocode("CNHKG")
	stockholm = kernel.MustUnLocode("SESTO")
	tokyo     = kernel.MustUnLocode("JNTKO")
	newYork   = kernel.MustUnLocode("USNYC")
	chicago   = kernel.MustUnLocode("USCHI")
	hamburg   = kernel.MustUnLocode("DEHAM")

	v1 = kernel.VoyageNumberFromString("V1")
	v2 = kernel.VoyageNumberFromString("V2")
	v9 = kernel.VoyageNumberFromString("V9")

	testTrackingID, _ = kernel.NewTrackingID("TEST01")
)

func at(day, hour int) time.Time {
	return time.Date(2009, time.March, day, hour, 0, 0, 0, time.UTC)
}

func mustLeg(t *testing.T, voyage kernel.VoyageNumber, from, to kernel.UnLocode, load, unload time.Time) cargo.Leg {
	t.Helper()
	leg, err := cargo.NewLeg(voyage, from, to, load, unload)
	require.NoError(t, err)
	return leg
}

func mustItinerary(t *testing.T, legs ...cargo.Leg) cargo.Itinerary {
	t.Helper()
	it, err := cargo.NewItinerary(legs)
	require.NoError(t, err)
	return it
}

func mustRouteSpec(t *testing.T, origin, destination kernel.UnLocode, deadline time.Time) cargo.RouteSpecification {
	t.Helper()
	rs, err := cargo.NewRouteSpecification(origin, destination, deadline)
	require.NoError(t, err)
	return rs
}

func mustEvent(t *testing.T, eventType handling.EventType, completion time.Time, loc kernel.UnLocode, voyage kernel.VoyageNumber) handling.Event {
	t.Helper()
	e, err := handling.NewEvent(testTrackingID, eventType, completion, completion, loc, voyage)
	require.NoError(t, err)
	return e
}

// dallasToHongKong is DALLAS -> HELSINKI on V1, then HELSINKI -> HONGKONG on V2.
func dallasToHongKong(t *testing.T) cargo.Itinerary {
	t.Helper()
	return mustItinerary(t,
		mustLeg(t, v1, dallas, helsinki, at(2, 0), at(4, 0)),
		mustLeg(t, v2, helsinki, hongKong, at(5, 0), at(8, 0)),
	)
}
