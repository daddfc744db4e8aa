package queries

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrGetCargoTrackingQueryIsNotConstructed = errors.New(
		"GetCargoTrackingQuery must be created via NewGetCargoTrackingQuery constructor",
	)
)

// GetCargoTrackingQuery asks for the public tracking view of one cargo.
type GetCargoTrackingQuery struct {
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

func NewGetCargoTrackingQuery(trackingID string) (GetCargoTrackingQuery, error) {
	id, err := kernel.NewTrackingID(trackingID)
	if err != nil {
		return GetCargoTrackingQuery{}, err
	}

	return GetCargoTrackingQuery{
		trackingID: id,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetCargoTrackingQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}

func (q GetCargoTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetCargoTrackingQueryIsNotConstructed)
}

// Status codes of the tracking view. Transport statuses are reported by name
// when none of these apply.
const (
	StatusCodeNotRouted     = "NOT_ROUTED"
	StatusCodeAtDestination = "AT_DESTINATION"
	StatusCodeMisdirected   = "MISDIRECTED"
)

// GetCargoTrackingQueryResponse is what a customer sees when tracking a cargo.
// ETA is nil while the cargo is not routed.
type GetCargoTrackingQueryResponse struct {
	TrackingID           kernel.TrackingID
	Origin               TrackedLocation
	Destination          TrackedLocation
	LastKnownLocation    TrackedLocation
	StatusCode           string
	StatusText           string
	Misdirected          bool
	ETA                  *time.Time
	NextExpectedActivity string
	Events               []TrackedEvent
}

type TrackedLocation struct {
	UnLocode kernel.UnLocode
	Name     string
}

// TrackedEvent is one handling of the cargo. Expected is false for handlings
// that deviate from the itinerary.
type TrackedEvent struct {
	CompletionTime time.Time
	Description    string
	Expected       bool
}
