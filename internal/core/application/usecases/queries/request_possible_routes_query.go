package queries

import (
	"errors"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrRequestPossibleRoutesQueryIsNotConstructed = errors.New(
		"RequestPossibleRoutesQuery must be created via NewRequestPossibleRoutesQuery constructor",
	)
)

// RequestPossibleRoutesQuery asks the routing service for itineraries a cargo could be
// assigned to.
type RequestPossibleRoutesQuery struct {
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

func NewRequestPossibleRoutesQuery(trackingID string) (RequestPossibleRoutesQuery, error) {
	id, err := kernel.NewTrackingID(trackingID)
	if err != nil {
		return RequestPossibleRoutesQuery{}, err
	}

	return RequestPossibleRoutesQuery{
		trackingID: id,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q RequestPossibleRoutesQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}

func (q RequestPossibleRoutesQuery) Validate() error {
	return q.guard.Validate(ErrRequestPossibleRoutesQueryIsNotConstructed)
}
