package cargo

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
)

// ErrCargoIsNotConstructed is returned by Validate when a Cargo was not built by NewCargo or RestoreCargo.
var ErrCargoIsNotConstructed = errors.New("Cargo must be created via NewCargo constructor")

// Cargo is the aggregate root of the tracking domain. It owns the route specification,
// the assigned itinerary and the delivery derived from them and from the handling history.
//
// Invariants:
//   - the tracking id never changes
//   - Delivery is only ever replaced by a derivation, never patched field by field
//   - every change to the route specification or itinerary re-derives the delivery
//
// Example:
//
//	c, err := cargo.NewCargo(kernel.NextTrackingID(), routeSpec)
//	if err != nil {
//	    return err
//	}
//	err = c.AssignToRoute(itinerary)
//	c.DeriveDeliveryProgress(history)
type Cargo struct {
	trackingID         kernel.TrackingID
	routeSpecification RouteSpecification
	itinerary          Itinerary
	delivery           Delivery
	isConstructed      bool
}

// NewCargo books a cargo with an empty itinerary. Its delivery starts as NOT_RECEIVED and NOT_ROUTED.
func NewCargo(trackingID kernel.TrackingID, routeSpecification RouteSpecification) (*Cargo, error) {
	c := &Cargo{
		itinerary:     EmptyItinerary,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setTrackingID(trackingID),
		c.setRouteSpecification(routeSpecification),
	); err != nil {
		return nil, err
	}

	c.delivery = deriveDelivery(c.routeSpecification, c.itinerary, handling.EmptyHistory, time.Now())
	return c, nil
}

// RestoreCargo rebuilds a persisted cargo, keeping the stored delivery as it is.
func RestoreCargo(
	trackingID kernel.TrackingID,
	routeSpecification RouteSpecification,
	itinerary Itinerary,
	delivery Delivery,
) (*Cargo, error) {
	c := &Cargo{
		itinerary:     itinerary,
		delivery:      delivery,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setTrackingID(trackingID),
		c.setRouteSpecification(routeSpecification),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Cargo) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCargoIsNotConstructed
	}
	return nil
}

func (c *Cargo) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Origin is the origin of the current route specification.
func (c *Cargo) Origin() kernel.UnLocode {
	return c.routeSpecification.Origin()
}

func (c *Cargo) RouteSpecification() RouteSpecification {
	return c.routeSpecification
}

func (c *Cargo) Itinerary() Itinerary {
	return c.itinerary
}

func (c *Cargo) Delivery() Delivery {
	return c.delivery
}

// IsEqual compares cargo by tracking id.
func (c *Cargo) IsEqual(other *Cargo) bool {
	return other != nil && c.trackingID.IsEqual(other.trackingID)
}

// SpecifyNewRoute replaces the route specification and re-derives the delivery from the
// last known handling event.
func (c *Cargo) SpecifyNewRoute(routeSpecification RouteSpecification) error {
	if err := c.setRouteSpecification(routeSpecification); err != nil {
		return err
	}
	c.rederive()
	return nil
}

// AssignToRoute replaces the itinerary and re-derives the delivery from the last known
// handling event. The empty itinerary is rejected; a cargo cannot be unrouted.
func (c *Cargo) AssignToRoute(itinerary Itinerary) error {
	if itinerary.IsEmpty() {
		return errs.NewValueIsRequiredError("itinerary")
	}
	c.itinerary = itinerary
	c.rederive()
	return nil
}

// RoutingSpecification is the specification new routes should satisfy. For a misdirected
// cargo waiting in a known port it starts from that port instead of the booked origin.
func (c *Cargo) RoutingSpecification() RouteSpecification {
	d := c.delivery
	if !d.IsMisdirected() || d.TransportStatus() != InPort || d.LastKnownLocation().IsUnknown() {
		return c.routeSpecification
	}
	if d.LastKnownLocation().IsEqual(c.routeSpecification.Destination()) {
		return c.routeSpecification
	}
	rs, err := NewRouteSpecification(d.LastKnownLocation(), c.routeSpecification.Destination(), c.routeSpecification.ArrivalDeadline())
	if err != nil {
		return c.routeSpecification
	}
	return rs
}

// DeriveDeliveryProgress replaces the delivery with one derived from history.
func (c *Cargo) DeriveDeliveryProgress(history handling.History) {
	c.delivery = deriveDelivery(c.routeSpecification, c.itinerary, history, time.Now())
}

func (c *Cargo) rederive() {
	history := handling.EmptyHistory
	if last, ok := c.delivery.LastEvent(); ok {
		history = handling.NewHistory([]handling.Event{last})
	}
	c.DeriveDeliveryProgress(history)
}

func (c *Cargo) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

func (c *Cargo) setRouteSpecification(routeSpecification RouteSpecification) error {
	if err := routeSpecification.Validate(); err != nil {
		return err
	}
	c.routeSpecification = routeSpecification
	return nil
}
