package commands

import (
	"errors"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var ErrChangeDestinationCommandIsNotConstructed = errors.New(
	"ChangeDestinationCommand must be created via NewChangeDestinationCommand constructor",
)

// ChangeDestinationCommand sends a cargo somewhere else, keeping origin and deadline.
type ChangeDestinationCommand struct { //nolint:recvcheck //using for validation
	trackingID  kernel.TrackingID
	destination kernel.UnLocode

	guard guard.ConstructorGuard
}

func NewChangeDestinationCommand(trackingID kernel.TrackingID, destination kernel.UnLocode) (ChangeDestinationCommand, error) {
	if err := errors.Join(trackingID.Validate(), destination.Validate()); err != nil {
		return ChangeDestinationCommand{}, err
	}

	return ChangeDestinationCommand{
		trackingID:  trackingID,
		destination: destination,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeDestinationCommand) Validate() error {
	return c.guard.Validate(ErrChangeDestinationCommandIsNotConstructed)
}

func (c ChangeDestinationCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

func (c ChangeDestinationCommand) Destination() kernel.UnLocode {
	return c.destination
}
