package cargo

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrLegIsNotConstructed is returned by Validate on a zero-value Leg.
var ErrLegIsNotConstructed = errors.New("Leg must be created via NewLeg")

// Leg is one voyage segment of an itinerary: the cargo is loaded onto voyage at
// loadLocation and unloaded at unloadLocation.
type Leg struct {
	voyage         kernel.VoyageNumber
	loadLocation   kernel.UnLocode
	unloadLocation kernel.UnLocode
	loadTime       time.Time
	unloadTime     time.Time
	guard          guard.ConstructorGuard
}

// NewLeg requires every field. Times are stored in UTC, truncated to whole seconds,
// and the unload may not happen before the load.
func NewLeg(
	voyage kernel.VoyageNumber,
	loadLocation, unloadLocation kernel.UnLocode,
	loadTime, unloadTime time.Time,
) (Leg, error) {
	leg := Leg{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		leg.setVoyage(voyage),
		leg.setLocations(loadLocation, unloadLocation),
		leg.setTimes(loadTime, unloadTime),
	); err != nil {
		return Leg{}, err
	}

	return leg, nil
}

func (l Leg) Voyage() kernel.VoyageNumber {
	return l.voyage
}

func (l Leg) LoadLocation() kernel.UnLocode {
	return l.loadLocation
}

func (l Leg) UnloadLocation() kernel.UnLocode {
	return l.unloadLocation
}

func (l Leg) LoadTime() time.Time {
	return l.loadTime
}

func (l Leg) UnloadTime() time.Time {
	return l.unloadTime
}

// IsEqual reports whether all five fields match.
func (l Leg) IsEqual(other Leg) bool {
	return l.voyage.IsEqual(other.voyage) &&
		l.loadLocation.IsEqual(other.loadLocation) &&
		l.unloadLocation.IsEqual(other.unloadLocation) &&
		l.loadTime.Equal(other.loadTime) &&
		l.unloadTime.Equal(other.unloadTime)
}

func (l Leg) Validate() error {
	return l.guard.Validate(ErrLegIsNotConstructed)
}

func (l Leg) String() string {
	return fmt.Sprintf("%s %s -> %s", l.voyage, l.loadLocation, l.unloadLocation)
}

func (l *Leg) setVoyage(voyage kernel.VoyageNumber) error {
	if voyage.IsNone() {
		return errs.NewValueIsRequiredError("leg voyage")
	}
	l.voyage = voyage
	return nil
}

func (l *Leg) setLocations(load, unload kernel.UnLocode) error {
	if err := errors.Join(load.Validate(), unload.Validate()); err != nil {
		return err
	}
	l.loadLocation = load
	l.unloadLocation = unload
	return nil
}

func (l *Leg) setTimes(load, unload time.Time) error {
	var err error
	if load.IsZero() {
		err = errors.Join(err, errs.NewValueIsRequiredError("leg loadTime"))
	}
	if unload.IsZero() {
		err = errors.Join(err, errs.NewValueIsRequiredError("leg unloadTime"))
	}
	if err != nil {
		return err
	}

	load = load.UTC().Truncate(time.Second)
	unload = unload.UTC().Truncate(time.Second)
	if unload.Before(load) {
		return errs.NewValueIsInvalidErrorWithCause("leg", fmt.Errorf("unload at %s is before load at %s",
			unload.Format(time.RFC3339), load.Format(time.RFC3339)))
	}
	l.loadTime = load
	l.unloadTime = unload
	return nil
}
