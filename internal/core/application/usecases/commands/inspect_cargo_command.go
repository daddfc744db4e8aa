package commands

import (
	"errors"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var ErrInspectCargoCommandIsNotConstructed = errors.New(
	"InspectCargoCommand must be created via NewInspectCargoCommand constructor",
)

type InspectCargoCommand struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

func NewInspectCargoCommand(trackingID kernel.TrackingID) (InspectCargoCommand, error) {
	if err := trackingID.Validate(); err != nil {
		return InspectCargoCommand{}, err
	}

	return InspectCargoCommand{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c InspectCargoCommand) Validate() error {
	return c.guard.Validate(ErrInspectCargoCommandIsNotConstructed)
}

func (c InspectCargoCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}
