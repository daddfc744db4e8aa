package location

import (
	"errors"
	"strings"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned by Validate on a zero-value Location.
var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation")

// Unknown is the location of a cargo nobody has handled yet.
var Unknown = Location{
	unLocode: kernel.UnknownUnLocode,
	name:     "Unknown location",
	guard:    guard.NewConstructorGuard(),
}

// Location is a port, terminal or city a cargo can be handled at. It is reference data:
// the tracking core never creates locations on the fly, it resolves them by UnLocode.
//
// Two locations are the same location when their UnLocodes are equal; the name is
// presentation only.
type Location struct {
	unLocode kernel.UnLocode
	name     string
	guard    guard.ConstructorGuard
}

// NewLocation builds a Location from a validated code and a human-readable name.
//
// Example:
//
//	stockholm, err := location.NewLocation(kernel.MustUnLocode("SESTO"), "Stockholm")
func NewLocation(unLocode kernel.UnLocode, name string) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setUnLocode(unLocode), loc.setName(name)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

func (l Location) UnLocode() kernel.UnLocode {
	return l.unLocode
}

func (l Location) Name() string {
	return l.name
}

// IsEqual compares locations by UnLocode.
func (l Location) IsEqual(other Location) bool {
	return l.unLocode.IsEqual(other.unLocode)
}

func (l Location) IsUnknown() bool {
	return l.unLocode.IsUnknown()
}

// String renders "Stockholm [SESTO]".
func (l Location) String() string {
	return l.name + " [" + l.unLocode.String() + "]"
}

func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l *Location) setUnLocode(unLocode kernel.UnLocode) error {
	if err := unLocode.Validate(); err != nil {
		return err
	}
	l.unLocode = unLocode
	return nil
}

func (l *Location) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("location name")
	}
	l.name = name
	return nil
}
