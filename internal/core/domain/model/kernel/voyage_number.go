package kernel

import (
	"strings"
	"unicode/utf8"

	"cargotracker/internal/pkg/errs"
)

// NoVoyage is the VoyageNumber of a handling event that did not involve a vessel,
// and of a cargo that is not on board any carrier.
var NoVoyage = VoyageNumber{}

// MaxVoyageNumberLength matches the width of the persisted voyage number columns.
const MaxVoyageNumberLength = 32

// VoyageNumber identifies a voyage. The zero value is NoVoyage.
type VoyageNumber struct {
	number string
}

// NewVoyageNumber rejects an empty or overlong number; use NoVoyage to express absence.
func NewVoyageNumber(number string) (VoyageNumber, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return VoyageNumber{}, errs.NewValueIsRequiredError("voyageNumber")
	}
	if n := utf8.RuneCountInString(number); n > MaxVoyageNumberLength {
		return VoyageNumber{}, errs.NewValueIsOutOfRangeError("voyageNumber length", n, 1, MaxVoyageNumberLength)
	}
	return VoyageNumber{number: number}, nil
}

// VoyageNumberFromString returns NoVoyage for an empty string. It is meant for optional
// inputs such as handling reports and persisted nullable columns.
func VoyageNumberFromString(number string) VoyageNumber {
	return VoyageNumber{number: strings.TrimSpace(number)}
}

func (v VoyageNumber) String() string {
	return v.number
}

func (v VoyageNumber) IsNone() bool {
	return v.number == ""
}

func (v VoyageNumber) IsEqual(other VoyageNumber) bool {
	return v.number == other.number
}
