package signal

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrSignalIsNotConstructed is returned by Validate on a zero-value Signal.
var ErrSignalIsNotConstructed = errors.New("Signal must be created via NewSignal")

// Kind names what happened to a cargo.
type Kind string

const (
	CargoHandled     Kind = "CARGO_HANDLED"
	CargoMisdirected Kind = "CARGO_MISDIRECTED"
	CargoArrived     Kind = "CARGO_ARRIVED"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case CargoHandled, CargoMisdirected, CargoArrived:
		return k, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("signal kind", fmt.Errorf("unknown signal kind %q", s))
	}
}

// Signal is a notification for systems outside the tracking core. Signals are raised
// inside the transaction that caused them and published afterwards.
type Signal struct {
	id         kernel.UUID
	kind       Kind
	trackingID kernel.TrackingID
	occurredAt time.Time
	guard      guard.ConstructorGuard
}

func NewSignal(kind Kind, trackingID kernel.TrackingID, occurredAt time.Time) (Signal, error) {
	return RestoreSignal(kernel.NewUUID(), kind, trackingID, occurredAt)
}

func RestoreSignal(id kernel.UUID, kind Kind, trackingID kernel.TrackingID, occurredAt time.Time) (Signal, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return Signal{}, err
	}
	if occurredAt.IsZero() {
		return Signal{}, errs.NewValueIsRequiredError("occurredAt")
	}
	if err := errors.Join(id.Validate(), trackingID.Validate()); err != nil {
		return Signal{}, err
	}
	return Signal{
		id:         id,
		kind:       kind,
		trackingID: trackingID,
		occurredAt: occurredAt.UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (s Signal) ID() kernel.UUID {
	return s.id
}

func (s Signal) Kind() Kind {
	return s.kind
}

func (s Signal) TrackingID() kernel.TrackingID {
	return s.trackingID
}

func (s Signal) OccurredAt() time.Time {
	return s.occurredAt
}

func (s Signal) Validate() error {
	return s.guard.Validate(ErrSignalIsNotConstructed)
}
