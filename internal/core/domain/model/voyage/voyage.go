package voyage

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	// ErrVoyageIsNotConstructed is returned by Validate on a zero-value Voyage.
	ErrVoyageIsNotConstructed = errors.New("Voyage must be created via NewVoyage")

	// ErrScheduleIsNotContiguous indicates a movement that does not depart from where
	// the previous one arrived.
	ErrScheduleIsNotContiguous = errors.New("schedule is not contiguous")
)

// Voyage is a vessel trip identified by its VoyageNumber and described by an ordered,
// non-empty schedule of carrier movements. Voyages are reference data.
type Voyage struct {
	number    kernel.VoyageNumber
	movements []CarrierMovement
	guard     guard.ConstructorGuard
}

// NewVoyage validates that the schedule is non-empty and contiguous: every movement
// departs from the location the previous one arrived at, no earlier than that arrival.
func NewVoyage(number kernel.VoyageNumber, movements []CarrierMovement) (*Voyage, error) {
	v := &Voyage{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(v.setNumber(number), v.setMovements(movements)); err != nil {
		return nil, err
	}

	return v, nil
}

func (v *Voyage) Number() kernel.VoyageNumber {
	return v.number
}

// Schedule returns a copy of the carrier movements in travel order.
func (v *Voyage) Schedule() []CarrierMovement {
	return append([]CarrierMovement(nil), v.movements...)
}

func (v *Voyage) DepartureLocation() kernel.UnLocode {
	return v.movements[0].departureLocation
}

func (v *Voyage) ArrivalLocation() kernel.UnLocode {
	return v.movements[len(v.movements)-1].arrivalLocation
}

// Calls reports whether the voyage departs from or arrives at unLocode.
func (v *Voyage) Calls(unLocode kernel.UnLocode) bool {
	for _, m := range v.movements {
		if m.departureLocation.IsEqual(unLocode) || m.arrivalLocation.IsEqual(unLocode) {
			return true
		}
	}
	return false
}

// IsEqual compares voyages by number.
func (v *Voyage) IsEqual(other *Voyage) bool {
	return other != nil && v.number.IsEqual(other.number)
}

func (v *Voyage) Validate() error {
	if v == nil {
		return ErrVoyageIsNotConstructed
	}
	return v.guard.Validate(ErrVoyageIsNotConstructed)
}

func (v *Voyage) setNumber(number kernel.VoyageNumber) error {
	if number.IsNone() {
		return errs.NewValueIsRequiredError("voyageNumber")
	}
	v.number = number
	return nil
}

func (v *Voyage) setMovements(movements []CarrierMovement) error {
	if len(movements) == 0 {
		return errs.NewValueIsRequiredError("schedule")
	}
	for i, m := range movements {
		if err := m.Validate(); err != nil {
			return err
		}
		if i == 0 {
			continue
		}
		prev := movements[i-1]
		if !prev.arrivalLocation.IsEqual(m.departureLocation) || m.departureTime.Before(prev.arrivalTime) {
			return fmt.Errorf("%w: movement %d departs %s at %s after arriving at %s at %s",
				ErrScheduleIsNotContiguous, i,
				m.departureLocation, m.departureTime.Format(time.RFC3339),
				prev.arrivalLocation, prev.arrivalTime.Format(time.RFC3339))
		}
	}
	v.movements = append([]CarrierMovement(nil), movements...)
	return nil
}
