package cargo

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
	"cargotracker/internal/pkg/specification"
)

// ErrRouteSpecificationIsNotConstructed is returned by Validate on a zero-value RouteSpecification.
var ErrRouteSpecificationIsNotConstructed = errors.New("RouteSpecification must be created via NewRouteSpecification")

// RouteSpecification states where a cargo must go and by when. The deadline is a date;
// an arrival any time on that day is on time.
type RouteSpecification struct {
	origin          kernel.UnLocode
	destination     kernel.UnLocode
	arrivalDeadline time.Time
	guard           guard.ConstructorGuard
}

// NewRouteSpecification keeps only the calendar date of arrivalDeadline, as seen in its
// own location. Origin and destination are not required to differ here; booking checks that.
func NewRouteSpecification(origin, destination kernel.UnLocode, arrivalDeadline time.Time) (RouteSpecification, error) {
	rs := RouteSpecification{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rs.setOrigin(origin),
		rs.setDestination(destination),
		rs.setArrivalDeadline(arrivalDeadline),
	); err != nil {
		return RouteSpecification{}, err
	}

	return rs, nil
}

func (rs RouteSpecification) Origin() kernel.UnLocode {
	return rs.origin
}

func (rs RouteSpecification) Destination() kernel.UnLocode {
	return rs.destination
}

// ArrivalDeadline is midnight UTC of the deadline date.
func (rs RouteSpecification) ArrivalDeadline() time.Time {
	return rs.arrivalDeadline
}

// WithDestination keeps origin and deadline.
func (rs RouteSpecification) WithDestination(destination kernel.UnLocode) (RouteSpecification, error) {
	return NewRouteSpecification(rs.origin, destination, rs.arrivalDeadline)
}

// WithArrivalDeadline keeps origin and destination.
func (rs RouteSpecification) WithArrivalDeadline(deadline time.Time) (RouteSpecification, error) {
	return NewRouteSpecification(rs.origin, rs.destination, deadline)
}

// IsSatisfiedBy reports whether itinerary departs from the origin, ends at the destination
// and unloads there no later than the end of the deadline day. An empty itinerary never
// satisfies a route specification.
func (rs RouteSpecification) IsSatisfiedBy(itinerary Itinerary) bool {
	return specification.And(
		rs.departsFromOrigin(),
		rs.arrivesAtDestination(),
		rs.arrivesByDeadline(),
	).IsSatisfiedBy(itinerary)
}

func (rs RouteSpecification) IsEqual(other RouteSpecification) bool {
	return rs.origin.IsEqual(other.origin) &&
		rs.destination.IsEqual(other.destination) &&
		rs.arrivalDeadline.Equal(other.arrivalDeadline)
}

func (rs RouteSpecification) Validate() error {
	return rs.guard.Validate(ErrRouteSpecificationIsNotConstructed)
}

func (rs RouteSpecification) departsFromOrigin() specification.Specification[Itinerary] {
	return specification.Func[Itinerary](func(it Itinerary) bool {
		return !it.IsEmpty() && it.InitialDepartureLocation().IsEqual(rs.origin)
	})
}

func (rs RouteSpecification) arrivesAtDestination() specification.Specification[Itinerary] {
	return specification.Func[Itinerary](func(it Itinerary) bool {
		return !it.IsEmpty() && it.FinalArrivalLocation().IsEqual(rs.destination)
	})
}

func (rs RouteSpecification) arrivesByDeadline() specification.Specification[Itinerary] {
	endOfDeadline := rs.arrivalDeadline.AddDate(0, 0, 1)
	return specification.Func[Itinerary](func(it Itinerary) bool {
		return !it.IsEmpty() && it.FinalArrivalDate().Before(endOfDeadline)
	})
}

func (rs *RouteSpecification) setOrigin(origin kernel.UnLocode) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	rs.origin = origin
	return nil
}

func (rs *RouteSpecification) setDestination(destination kernel.UnLocode) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	rs.destination = destination
	return nil
}

func (rs *RouteSpecification) setArrivalDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return errs.NewValueIsRequiredError("arrivalDeadline")
	}
	y, m, d := deadline.Date()
	rs.arrivalDeadline = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return nil
}
