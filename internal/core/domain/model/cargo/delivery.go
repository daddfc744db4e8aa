package cargo

import (
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
)

// Delivery is the derived logistics state of a cargo. It is never patched: every change
// to the itinerary, the route specification or the handling history produces a new one.
type Delivery struct {
	transportStatus       TransportStatus
	lastKnownLocation     kernel.UnLocode
	currentVoyage         kernel.VoyageNumber
	misdirected           bool
	eta                   time.Time
	nextExpectedActivity  HandlingActivity
	routingStatus         RoutingStatus
	unloadedAtDestination bool
	lastEvent             *handling.Event
	calculatedAt          time.Time
}

// DeliverySnapshot carries the persisted fields of a Delivery.
type DeliverySnapshot struct {
	TransportStatus       TransportStatus
	LastKnownLocation     kernel.UnLocode
	CurrentVoyage         kernel.VoyageNumber
	Misdirected           bool
	ETA                   time.Time
	NextExpectedActivity  HandlingActivity
	RoutingStatus         RoutingStatus
	UnloadedAtDestination bool
	LastEvent             *handling.Event
	CalculatedAt          time.Time
}

// RestoreDelivery rebuilds a stored Delivery without re-deriving it.
func RestoreDelivery(s DeliverySnapshot) Delivery {
	d := Delivery{
		transportStatus:       s.TransportStatus,
		lastKnownLocation:     s.LastKnownLocation,
		currentVoyage:         s.CurrentVoyage,
		misdirected:           s.Misdirected,
		eta:                   s.ETA,
		nextExpectedActivity:  s.NextExpectedActivity,
		routingStatus:         s.RoutingStatus,
		unloadedAtDestination: s.UnloadedAtDestination,
		calculatedAt:          s.CalculatedAt,
	}
	if s.LastEvent != nil {
		ev := *s.LastEvent
		d.lastEvent = &ev
	}
	return d
}

// deriveDelivery computes the delivery from the most recent event of history.
func deriveDelivery(routeSpec RouteSpecification, itinerary Itinerary, history handling.History, now time.Time) Delivery {
	d := Delivery{
		transportStatus:   NotReceived,
		lastKnownLocation: kernel.UnknownUnLocode,
		currentVoyage:     kernel.NoVoyage,
		routingStatus:     calculateRoutingStatus(routeSpec, itinerary),
		calculatedAt:      now.UTC(),
	}

	last, ok := history.MostRecentlyCompletedEvent()
	if !ok {
		return d
	}

	d.lastEvent = &last
	d.transportStatus = calculateTransportStatus(last)
	d.lastKnownLocation = last.Location()
	if d.transportStatus == OnboardCarrier {
		d.currentVoyage = last.Voyage()
	}
	d.misdirected = calculateMisdirected(itinerary, last)
	if !d.misdirected && !itinerary.IsEmpty() {
		d.eta = itinerary.FinalArrivalDate()
	}
	d.unloadedAtDestination = last.Type() == handling.Unload &&
		!itinerary.IsEmpty() &&
		last.Location().IsEqual(itinerary.FinalArrivalLocation())
	if !d.misdirected {
		d.nextExpectedActivity = calculateNextExpectedActivity(itinerary, last)
	}

	return d
}

func calculateRoutingStatus(routeSpec RouteSpecification, itinerary Itinerary) RoutingStatus {
	switch {
	case itinerary.IsEmpty():
		return NotRouted
	case routeSpec.IsSatisfiedBy(itinerary):
		return Routed
	default:
		return Misrouted
	}
}

func calculateTransportStatus(last handling.Event) TransportStatus {
	switch last.Type() {
	case handling.Load:
		return OnboardCarrier
	case handling.Claim:
		return Claimed
	case handling.Receive, handling.Unload, handling.Customs:
		return InPort
	default:
		panic(fmt.Sprintf("delivery: unhandled handling event type %s", last.Type()))
	}
}

// calculateMisdirected treats a cargo sitting in port at the first load location of its
// itinerary as on plan. That is where a rerouted cargo waits for its new first leg.
//
// The rule does not know whether a reroute happened. An unexpected RECEIVE, UNLOAD or
// CUSTOMS at the initial departure location, e.g. unloaded there from a foreign voyage,
// is also on plan, and the next expected activity is the LOAD onto the first leg.
// Distinguishing the two would need the routing history, which the cargo does not keep.
func calculateMisdirected(itinerary Itinerary, last handling.Event) bool {
	if itinerary.IsExpected(last) {
		return false
	}
	return !isWaitingAtInitialDeparture(itinerary, last)
}

func isWaitingAtInitialDeparture(itinerary Itinerary, last handling.Event) bool {
	switch last.Type() {
	case handling.Receive, handling.Unload, handling.Customs:
		return last.Location().IsEqual(itinerary.InitialDepartureLocation())
	default:
		return false
	}
}

func calculateNextExpectedActivity(itinerary Itinerary, last handling.Event) HandlingActivity {
	if itinerary.IsEmpty() {
		return NoActivity
	}

	legs := itinerary.legs
	loadFirstLeg := HandlingActivity{Type: handling.Load, Location: legs[0].loadLocation, Voyage: legs[0].voyage}

	switch last.Type() {
	case handling.Receive:
		return loadFirstLeg

	case handling.Load:
		for _, leg := range legs {
			if leg.loadLocation.IsEqual(last.Location()) && leg.voyage.IsEqual(last.Voyage()) {
				return HandlingActivity{Type: handling.Unload, Location: leg.unloadLocation, Voyage: leg.voyage}
			}
		}
		return NoActivity

	case handling.Unload:
		for i, leg := range legs {
			if !leg.unloadLocation.IsEqual(last.Location()) || !leg.voyage.IsEqual(last.Voyage()) {
				continue
			}
			if i+1 < len(legs) {
				next := legs[i+1]
				return HandlingActivity{Type: handling.Load, Location: next.loadLocation, Voyage: next.voyage}
			}
			return HandlingActivity{Type: handling.Claim, Location: leg.unloadLocation}
		}
		if isWaitingAtInitialDeparture(itinerary, last) {
			return loadFirstLeg
		}
		return NoActivity

	case handling.Customs, handling.Claim:
		return NoActivity

	default:
		panic(fmt.Sprintf("delivery: unhandled handling event type %s", last.Type()))
	}
}

func (d Delivery) TransportStatus() TransportStatus {
	return d.transportStatus
}

// LastKnownLocation is kernel.UnknownUnLocode until the cargo has been handled.
func (d Delivery) LastKnownLocation() kernel.UnLocode {
	return d.lastKnownLocation
}

// CurrentVoyage is kernel.NoVoyage unless the cargo is on board a carrier.
func (d Delivery) CurrentVoyage() kernel.VoyageNumber {
	return d.currentVoyage
}

func (d Delivery) IsMisdirected() bool {
	return d.misdirected
}

// ETA returns false when the arrival time is unknown.
func (d Delivery) ETA() (time.Time, bool) {
	return d.eta, !d.eta.IsZero()
}

func (d Delivery) NextExpectedActivity() HandlingActivity {
	return d.nextExpectedActivity
}

func (d Delivery) RoutingStatus() RoutingStatus {
	return d.routingStatus
}

func (d Delivery) IsUnloadedAtDestination() bool {
	return d.unloadedAtDestination
}

func (d Delivery) LastEvent() (handling.Event, bool) {
	if d.lastEvent == nil {
		return handling.Event{}, false
	}
	return *d.lastEvent, true
}

func (d Delivery) CalculatedAt() time.Time {
	return d.calculatedAt
}

// IsOnTrack reports a routed cargo that has not been misdirected.
func (d Delivery) IsOnTrack() bool {
	return d.routingStatus == Routed && !d.misdirected
}

// IsEqual compares every derived field. The calculation time is not part of the comparison.
func (d Delivery) IsEqual(other Delivery) bool {
	if (d.lastEvent == nil) != (other.lastEvent == nil) {
		return false
	}
	if d.lastEvent != nil && !d.lastEvent.ID().IsEqual(other.lastEvent.ID()) {
		return false
	}
	return d.transportStatus == other.transportStatus &&
		d.lastKnownLocation.IsEqual(other.lastKnownLocation) &&
		d.currentVoyage.IsEqual(other.currentVoyage) &&
		d.misdirected == other.misdirected &&
		d.eta.Equal(other.eta) &&
		d.nextExpectedActivity == other.nextExpectedActivity &&
		d.routingStatus == other.routingStatus &&
		d.unloadedAtDestination == other.unloadedAtDestination
}
