package commands

import (
	"errors"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var ErrAssignCargoToRouteCommandIsNotConstructed = errors.New(
	"AssignCargoToRouteCommand must be created via NewAssignCargoToRouteCommand constructor",
)

// AssignCargoToRouteCommand routes a cargo along a chosen itinerary, typically one
// returned by RequestPossibleRoutes.
type AssignCargoToRouteCommand struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID
	itinerary  cargo.Itinerary

	guard guard.ConstructorGuard
}

func NewAssignCargoToRouteCommand(trackingID kernel.TrackingID, itinerary cargo.Itinerary) (AssignCargoToRouteCommand, error) {
	cmd := AssignCargoToRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingID(trackingID),
		cmd.setItinerary(itinerary),
	); err != nil {
		return AssignCargoToRouteCommand{}, err
	}

	return cmd, nil
}

func (c AssignCargoToRouteCommand) Validate() error {
	return c.guard.Validate(ErrAssignCargoToRouteCommandIsNotConstructed)
}

func (c AssignCargoToRouteCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

func (c AssignCargoToRouteCommand) Itinerary() cargo.Itinerary {
	return c.itinerary
}

func (c *AssignCargoToRouteCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

func (c *AssignCargoToRouteCommand) setItinerary(itinerary cargo.Itinerary) error {
	if itinerary.IsEmpty() {
		return errs.NewValueIsRequiredError("itinerary")
	}
	c.itinerary = itinerary
	return nil
}
