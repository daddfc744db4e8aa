package voyage

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrCarrierMovementIsNotConstructed is returned by Validate on a zero-value CarrierMovement.
var ErrCarrierMovementIsNotConstructed = errors.New("CarrierMovement must be created via NewCarrierMovement")

// CarrierMovement is one hop of a vessel between two locations.
type CarrierMovement struct {
	departureLocation kernel.UnLocode
	arrivalLocation   kernel.UnLocode
	departureTime     time.Time
	arrivalTime       time.Time
	guard             guard.ConstructorGuard
}

// NewCarrierMovement requires two distinct locations and an arrival strictly after the departure.
// Times are stored in UTC with second precision.
func NewCarrierMovement(
	departureLocation, arrivalLocation kernel.UnLocode,
	departureTime, arrivalTime time.Time,
) (CarrierMovement, error) {
	m := CarrierMovement{
		departureTime: departureTime.UTC().Truncate(time.Second),
		arrivalTime:   arrivalTime.UTC().Truncate(time.Second),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setLocations(departureLocation, arrivalLocation),
		m.checkTimes(),
	); err != nil {
		return CarrierMovement{}, err
	}

	return m, nil
}

func (m CarrierMovement) DepartureLocation() kernel.UnLocode {
	return m.departureLocation
}

func (m CarrierMovement) ArrivalLocation() kernel.UnLocode {
	return m.arrivalLocation
}

func (m CarrierMovement) DepartureTime() time.Time {
	return m.departureTime
}

func (m CarrierMovement) ArrivalTime() time.Time {
	return m.arrivalTime
}

func (m CarrierMovement) IsEqual(other CarrierMovement) bool {
	return m.departureLocation.IsEqual(other.departureLocation) &&
		m.arrivalLocation.IsEqual(other.arrivalLocation) &&
		m.departureTime.Equal(other.departureTime) &&
		m.arrivalTime.Equal(other.arrivalTime)
}

func (m CarrierMovement) Validate() error {
	return m.guard.Validate(ErrCarrierMovementIsNotConstructed)
}

func (m *CarrierMovement) setLocations(departure, arrival kernel.UnLocode) error {
	if err := errors.Join(departure.Validate(), arrival.Validate()); err != nil {
		return err
	}
	if departure.IsEqual(arrival) {
		return errs.NewValueIsInvalidErrorWithCause("carrier movement",
			fmt.Errorf("departure and arrival are both %s", departure))
	}
	m.departureLocation = departure
	m.arrivalLocation = arrival
	return nil
}

func (m *CarrierMovement) checkTimes() error {
	if !m.arrivalTime.After(m.departureTime) {
		return errs.NewValueIsInvalidErrorWithCause("carrier movement",
			fmt.Errorf("arrival %s is not after departure %s",
				m.arrivalTime.Format(time.RFC3339), m.departureTime.Format(time.RFC3339)))
	}
	return nil
}
