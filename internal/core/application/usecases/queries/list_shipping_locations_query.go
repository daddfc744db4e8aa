// Package queries contains the read side of the tracker: booking lists, the cargo
// monitoring view, public tracking and route proposals.
package queries

import (
	"errors"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrListShippingLocationsQueryIsNotConstructed = errors.New(
		"ListShippingLocationsQuery must be created via NewListShippingLocationsQuery constructor",
	)
)

// ListShippingLocationsQuery lists the locations cargo can be booked between.
type ListShippingLocationsQuery struct {
	guard guard.ConstructorGuard
}

func NewListShippingLocationsQuery() ListShippingLocationsQuery {
	return ListShippingLocationsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListShippingLocationsQuery) Validate() error {
	return q.guard.Validate(ErrListShippingLocationsQueryIsNotConstructed)
}

type ListShippingLocationsQueryResponse struct {
	UnLocode kernel.UnLocode
	Name     string
}
