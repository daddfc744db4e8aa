package kernel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrUnLocodeIsNotConstructed is returned by Validate on a zero-value UnLocode.
var ErrUnLocodeIsNotConstructed = errors.New("UnLocode must be created via NewUnLocode")

// unLocodePattern is a two-letter country code followed by a three-character location code.
var unLocodePattern = regexp.MustCompile(`^[a-zA-Z]{2}[a-zA-Z2-9]{3}$`)

// UnknownUnLocode stands in for "no known location", e.g. a cargo that has not been received yet.
var UnknownUnLocode = UnLocode{code: "XXXXX", guard: guard.NewConstructorGuard()}

// UnLocode is a United Nations location code such as "SESTO" (Stockholm).
// Codes are normalised to upper case so that "sesto" and "SESTO" are equal.
type UnLocode struct {
	code  string
	guard guard.ConstructorGuard
}

// NewUnLocode validates code against the UN/LOCODE format.
func NewUnLocode(code string) (UnLocode, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return UnLocode{}, errs.NewValueIsRequiredError("unLocode")
	}
	if !unLocodePattern.MatchString(code) {
		return UnLocode{}, errs.NewValueIsInvalidErrorWithCause(
			"unLocode", fmt.Errorf("%q is not a valid UN/LOCODE", code))
	}
	return UnLocode{code: strings.ToUpper(code), guard: guard.NewConstructorGuard()}, nil
}

// MustUnLocode is NewUnLocode for codes known at compile time. It panics on an invalid code.
func MustUnLocode(code string) UnLocode {
	u, err := NewUnLocode(code)
	if err != nil {
		panic(err)
	}
	return u
}

func (u UnLocode) String() string {
	return u.code
}

func (u UnLocode) IsEqual(other UnLocode) bool {
	return u.code == other.code
}

// IsUnknown reports whether u is UnknownUnLocode.
func (u UnLocode) IsUnknown() bool {
	return u.code == UnknownUnLocode.code
}

func (u UnLocode) Validate() error {
	return u.guard.Validate(ErrUnLocodeIsNotConstructed)
}
