package commands

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrBookNewCargoCommandIsNotConstructed = errors.New(
		"BookNewCargoCommand must be created via NewBookNewCargoCommand constructor",
	)
	ErrOriginEqualsDestination = errors.New("origin and destination must differ")
)

// BookNewCargoCommand asks to book a cargo from origin to destination, due by deadline.
//
// Example:
//
//	cmd, err := NewBookNewCargoCommand(kernel.MustUnLocode("CNHKG"), kernel.MustUnLocode("SESTO"), deadline)
//	if err != nil {
//	    return fmt.Errorf("invalid booking: %w", err)
//	}
//	trackingID, err := handler.Handle(ctx, cmd)
type BookNewCargoCommand struct { //nolint:recvcheck //using for validation
	origin      kernel.UnLocode
	destination kernel.UnLocode
	deadline    time.Time

	guard guard.ConstructorGuard
}

func NewBookNewCargoCommand(origin, destination kernel.UnLocode, deadline time.Time) (BookNewCargoCommand, error) {
	cmd := BookNewCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRoute(origin, destination),
		cmd.setDeadline(deadline),
	); err != nil {
		return BookNewCargoCommand{}, err
	}

	return cmd, nil
}

func (c BookNewCargoCommand) Validate() error {
	return c.guard.Validate(ErrBookNewCargoCommandIsNotConstructed)
}

func (c BookNewCargoCommand) Origin() kernel.UnLocode {
	return c.origin
}

func (c BookNewCargoCommand) Destination() kernel.UnLocode {
	return c.destination
}

func (c BookNewCargoCommand) Deadline() time.Time {
	return c.deadline
}

func (c *BookNewCargoCommand) setRoute(origin, destination kernel.UnLocode) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return err
	}
	if origin.IsEqual(destination) {
		return errOriginIsDestination()
	}
	c.origin = origin
	c.destination = destination
	return nil
}

func (c *BookNewCargoCommand) setDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return errs.NewValueIsRequiredError("arrivalDeadline")
	}
	c.deadline = deadline
	return nil
}

// errOriginIsDestination matches both errs.ErrValueIsInvalid and ErrOriginEqualsDestination.
func errOriginIsDestination() error {
	return fmt.Errorf("%w: %w", errs.NewValueIsInvalidError("destination"), ErrOriginEqualsDestination)
}
