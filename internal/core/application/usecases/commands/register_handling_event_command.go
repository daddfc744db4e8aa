package commands

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var ErrRegisterHandlingEventCommandIsNotConstructed = errors.New(
	"RegisterHandlingEventCommand must be created via NewRegisterHandlingEventCommand constructor",
)

// RegisterHandlingEventCommand carries one handling report. Its references are
// resolved when the command is handled, not when it is built.
type RegisterHandlingEventCommand struct { //nolint:recvcheck //using for validation
	attempt handling.RegistrationAttempt

	guard guard.ConstructorGuard
}

func NewRegisterHandlingEventCommand(
	registrationTime, completionTime time.Time,
	trackingID kernel.TrackingID,
	voyageNumber kernel.VoyageNumber,
	eventType handling.EventType,
	unLocode kernel.UnLocode,
) (RegisterHandlingEventCommand, error) {
	var timeErr, typeErr error
	if completionTime.IsZero() {
		timeErr = errs.NewValueIsRequiredError("completionTime")
	}
	if !eventType.IsValid() {
		typeErr = errs.NewValueIsInvalidError("eventType")
	}

	if err := errors.Join(timeErr, typeErr, trackingID.Validate(), unLocode.Validate()); err != nil {
		return RegisterHandlingEventCommand{}, err
	}

	if registrationTime.IsZero() {
		registrationTime = time.Now()
	}

	return RegisterHandlingEventCommand{
		attempt: handling.RegistrationAttempt{
			RegistrationTime: registrationTime,
			CompletionTime:   completionTime,
			TrackingID:       trackingID,
			VoyageNumber:     voyageNumber,
			EventType:        eventType,
			UnLocode:         unLocode,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewRegisterHandlingEventCommandFromAttempt wraps an attempt taken off the registration queue.
func NewRegisterHandlingEventCommandFromAttempt(attempt handling.RegistrationAttempt) (RegisterHandlingEventCommand, error) {
	return NewRegisterHandlingEventCommand(
		attempt.RegistrationTime,
		attempt.CompletionTime,
		attempt.TrackingID,
		attempt.VoyageNumber,
		attempt.EventType,
		attempt.UnLocode,
	)
}

func (c RegisterHandlingEventCommand) Validate() error {
	return c.guard.Validate(ErrRegisterHandlingEventCommandIsNotConstructed)
}

func (c RegisterHandlingEventCommand) Attempt() handling.RegistrationAttempt {
	return c.attempt
}
