package cargo

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
)

// ErrItineraryNotContiguous indicates a leg that does not load where the previous leg unloaded.
var ErrItineraryNotContiguous = errors.New("itinerary is not contiguous")

// EmptyItinerary is the itinerary of a cargo that has not been routed yet.
var EmptyItinerary = Itinerary{}

// Itinerary is the ordered plan of legs a cargo travels. The zero value is EmptyItinerary.
type Itinerary struct {
	legs []Leg
}

// NewItinerary requires at least one leg, every leg constructed, and each leg loading
// where the previous one unloaded.
func NewItinerary(legs []Leg) (Itinerary, error) {
	if len(legs) == 0 {
		return Itinerary{}, errs.NewValueIsRequiredError("legs")
	}
	for i, leg := range legs {
		if err := leg.Validate(); err != nil {
			return Itinerary{}, fmt.Errorf("leg %d: %w", i, err)
		}
		if i > 0 && !legs[i-1].unloadLocation.IsEqual(leg.loadLocation) {
			return Itinerary{}, fmt.Errorf("%w: leg %d unloads at %s but leg %d loads at %s",
				ErrItineraryNotContiguous, i-1, legs[i-1].unloadLocation, i, leg.loadLocation)
		}
	}
	return Itinerary{legs: slices.Clone(legs)}, nil
}

// Legs returns a copy of the legs in travel order.
func (i Itinerary) Legs() []Leg {
	return slices.Clone(i.legs)
}

func (i Itinerary) IsEmpty() bool {
	return len(i.legs) == 0
}

// InitialDepartureLocation is kernel.UnknownUnLocode for an empty itinerary.
func (i Itinerary) InitialDepartureLocation() kernel.UnLocode {
	if i.IsEmpty() {
		return kernel.UnknownUnLocode
	}
	return i.legs[0].loadLocation
}

// FinalArrivalLocation is kernel.UnknownUnLocode for an empty itinerary.
func (i Itinerary) FinalArrivalLocation() kernel.UnLocode {
	if i.IsEmpty() {
		return kernel.UnknownUnLocode
	}
	return i.legs[len(i.legs)-1].unloadLocation
}

// FinalArrivalDate is the zero time for an empty itinerary.
func (i Itinerary) FinalArrivalDate() time.Time {
	if i.IsEmpty() {
		return time.Time{}
	}
	return i.legs[len(i.legs)-1].unloadTime
}

// IsExpected reports whether event is consistent with the plan. Every event is expected
// on an empty itinerary. It panics on an event type it does not know.
func (i Itinerary) IsExpected(event handling.Event) bool {
	if i.IsEmpty() {
		return true
	}

	switch event.Type() {
	case handling.Receive:
		return i.legs[0].loadLocation.IsEqual(event.Location())
	case handling.Load:
		return slices.ContainsFunc(i.legs, func(leg Leg) bool {
			return leg.loadLocation.IsEqual(event.Location()) && leg.voyage.IsEqual(event.Voyage())
		})
	case handling.Unload:
		return slices.ContainsFunc(i.legs, func(leg Leg) bool {
			return leg.unloadLocation.IsEqual(event.Location()) && leg.voyage.IsEqual(event.Voyage())
		})
	case handling.Claim:
		return i.FinalArrivalLocation().IsEqual(event.Location())
	case handling.Customs:
		return true
	default:
		panic(fmt.Sprintf("itinerary: unhandled handling event type %s", event.Type()))
	}
}

func (i Itinerary) IsEqual(other Itinerary) bool {
	return slices.EqualFunc(i.legs, other.legs, Leg.IsEqual)
}
