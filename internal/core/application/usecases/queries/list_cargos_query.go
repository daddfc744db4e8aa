package queries

import (
	"errors"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrListCargosQueryIsNotConstructed = errors.New(
		"ListCargosQuery must be created via NewListCargosQuery constructor",
	)
)

// ListCargosQuery backs the monitoring view: one summary row per booked cargo.
//
// Example:
//
//	handler := NewListCargosQueryHandler(db)
//	cargos, err := handler.Handle(ctx, NewListCargosQuery())
//	if err != nil {
//	    return err
//	}
//	for _, c := range cargos {
//	    fmt.Printf("%s %s last seen in %s\n", c.TrackingID, c.TransportStatus, c.LastKnownLocation)
//	}
type ListCargosQuery struct {
	guard guard.ConstructorGuard
}

func NewListCargosQuery() ListCargosQuery {
	return ListCargosQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCargosQuery) Validate() error {
	return q.guard.Validate(ErrListCargosQueryIsNotConstructed)
}

// ListCargosQueryResponse summarises the stored delivery of one cargo.
// LastKnownLocation is "Unknown" until the cargo has been handled.
type ListCargosQueryResponse struct {
	TrackingID        kernel.TrackingID
	RoutingStatus     cargo.RoutingStatus
	Misdirected       bool
	TransportStatus   cargo.TransportStatus
	AtDestination     bool
	Origin            kernel.UnLocode
	Destination       kernel.UnLocode
	LastKnownLocation string
}
