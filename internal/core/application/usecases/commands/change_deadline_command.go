package commands

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var ErrChangeDeadlineCommandIsNotConstructed = errors.New(
	"ChangeDeadlineCommand must be created via NewChangeDeadlineCommand constructor",
)

// ChangeDeadlineCommand moves a cargo's arrival deadline, keeping origin and destination.
type ChangeDeadlineCommand struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID
	deadline   time.Time

	guard guard.ConstructorGuard
}

func NewChangeDeadlineCommand(trackingID kernel.TrackingID, deadline time.Time) (ChangeDeadlineCommand, error) {
	var deadlineErr error
	if deadline.IsZero() {
		deadlineErr = errs.NewValueIsRequiredError("arrivalDeadline")
	}
	if err := errors.Join(trackingID.Validate(), deadlineErr); err != nil {
		return ChangeDeadlineCommand{}, err
	}

	return ChangeDeadlineCommand{
		trackingID: trackingID,
		deadline:   deadline,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeDeadlineCommand) Validate() error {
	return c.guard.Validate(ErrChangeDeadlineCommandIsNotConstructed)
}

func (c ChangeDeadlineCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

func (c ChangeDeadlineCommand) Deadline() time.Time {
	return c.deadline
}
