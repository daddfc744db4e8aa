package services_test

import (
	"testing"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterItineraries(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2009, 3, d, 0, 0, 0, 0, time.UTC) }
	itinerary := func(legs ...cargo.Leg) cargo.Itinerary {
		it, err := cargo.NewItinerary(legs)
		require.NoError(t, err)
		return it
	}
	leg := func(v *voyage.Voyage, from, to location.Location, load, unload time.Time) cargo.Leg {
		l, err := cargo.NewLeg(v.Number(), from.UnLocode(), to.UnLocode(), load, unload)
		require.NoError(t, err)
		return l
	}

	spec, err := cargo.NewRouteSpecification(location.Tokyo.UnLocode(), location.Stockholm.UnLocode(), day(18))
	require.NoError(t, err)

	viaHamburg := itinerary(
		leg(voyage.V300, location.Tokyo, location.Hamburg, day(8), day(12)),
		leg(voyage.V400, location.Hamburg, location.Stockholm, day(14), day(15)),
	)
	tooLate := itinerary(
		leg(voyage.V300, location.Tokyo, location.Hamburg, day(8), day(12)),
		leg(voyage.V400, location.Hamburg, location.Stockholm, day(14), day(19)),
	)
	wrongOrigin := itinerary(leg(voyage.V400, location.Hamburg, location.Stockholm, day(14), day(15)))

	accepted, rejected := services.FilterItineraries(spec, []cargo.Itinerary{tooLate, viaHamburg, wrongOrigin, viaHamburg})

	require.Len(t, accepted, 2)
	assert.True(t, accepted[0].IsEqual(viaHamburg))
	assert.True(t, accepted[1].IsEqual(viaHamburg))
	require.Len(t, rejected, 2)
	assert.True(t, rejected[0].IsEqual(tooLate))
	assert.True(t, rejected[1].IsEqual(wrongOrigin))

	none, _ := services.FilterItineraries(spec, nil)
	assert.Empty(t, none)
}
