package commands

import (
	"errors"

	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

const DefaultRelayBatchSize = 100

var ErrRelaySignalsCommandIsNotConstructed = errors.New(
	"RelaySignalsCommand must be created via NewRelaySignalsCommand constructor",
)

// RelaySignalsCommand publishes up to BatchSize pending signals from the outbox.
type RelaySignalsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewRelaySignalsCommand(batchSize int) (RelaySignalsCommand, error) {
	if batchSize <= 0 {
		return RelaySignalsCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, "unbounded")
	}

	return RelaySignalsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RelaySignalsCommand) Validate() error {
	return c.guard.Validate(ErrRelaySignalsCommandIsNotConstructed)
}

func (c RelaySignalsCommand) BatchSize() int {
	return c.batchSize
}
