package kernel

import (
	"errors"
	"strings"

	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"

	"github.com/google/uuid"
)

// ErrTrackingIDIsNotConstructed is returned by Validate on a zero-value TrackingID.
var ErrTrackingIDIsNotConstructed = errors.New("TrackingID must be created via NewTrackingID or NextTrackingID")

// TrackingID is the opaque, immutable identity of a cargo.
type TrackingID struct {
	id    string
	guard guard.ConstructorGuard
}

// NewTrackingID wraps an existing identifier. Surrounding whitespace is ignored;
// an empty identifier is rejected.
func NewTrackingID(id string) (TrackingID, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return TrackingID{}, errs.NewValueIsRequiredError("trackingId")
	}
	return TrackingID{id: id, guard: guard.NewConstructorGuard()}, nil
}

// NextTrackingID issues a fresh identifier for a newly booked cargo, e.g. "F4C2A1B9".
func NextTrackingID() TrackingID {
	random := uuid.NewString()
	return TrackingID{
		id:    strings.ToUpper(random[:strings.IndexByte(random, '-')]),
		guard: guard.NewConstructorGuard(),
	}
}

func (t TrackingID) String() string {
	return t.id
}

func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.id == other.id
}

func (t TrackingID) Validate() error {
	return t.guard.Validate(ErrTrackingIDIsNotConstructed)
}
