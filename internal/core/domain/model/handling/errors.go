package handling

import (
	"errors"
	"fmt"
)

var (
	// ErrCannotCreateHandlingEvent is matched by every failure to register a handling event.
	ErrCannotCreateHandlingEvent = errors.New("cannot create handling event")

	ErrUnknownCargo    = errors.New("unknown cargo")
	ErrUnknownVoyage   = errors.New("unknown voyage")
	ErrUnknownLocation = errors.New("unknown location")

	// ErrEventIsNotConstructed is returned by Validate on a zero-value Event.
	ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent")
)

// UnknownCargoError reports a registration attempt for a tracking id no cargo is booked under.
type UnknownCargoError struct {
	TrackingID string
	Cause      error
}

func (e *UnknownCargoError) Error() string {
	return describe(ErrUnknownCargo, e.TrackingID, e.Cause)
}

func (e *UnknownCargoError) Unwrap() []error {
	return unwrap(ErrUnknownCargo, e.Cause)
}

// UnknownVoyageError reports a voyage number that does not resolve to a voyage.
type UnknownVoyageError struct {
	VoyageNumber string
	Cause        error
}

func (e *UnknownVoyageError) Error() string {
	return describe(ErrUnknownVoyage, e.VoyageNumber, e.Cause)
}

func (e *UnknownVoyageError) Unwrap() []error {
	return unwrap(ErrUnknownVoyage, e.Cause)
}

// UnknownLocationError reports an UN/LOCODE that does not resolve to a location.
type UnknownLocationError struct {
	UnLocode string
	Cause    error
}

func (e *UnknownLocationError) Error() string {
	return describe(ErrUnknownLocation, e.UnLocode, e.Cause)
}

func (e *UnknownLocationError) Unwrap() []error {
	return unwrap(ErrUnknownLocation, e.Cause)
}

func describe(kind error, ref string, cause error) string {
	msg := fmt.Sprintf("%s: %s: %s", ErrCannotCreateHandlingEvent, kind, ref)
	if cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", cause)
	}
	return msg
}

func unwrap(kind, cause error) []error {
	if cause == nil {
		return []error{kind, ErrCannotCreateHandlingEvent}
	}
	return []error{kind, ErrCannotCreateHandlingEvent, cause}
}
