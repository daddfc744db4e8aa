package handling

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// Event is a single handling of a cargo: received, loaded, unloaded, cleared by customs
// or claimed. Events are immutable; every check happens in NewEvent.
type Event struct {
	id               kernel.UUID
	trackingID       kernel.TrackingID
	eventType        EventType
	completionTime   time.Time
	registrationTime time.Time
	location         kernel.UnLocode
	voyage           kernel.VoyageNumber
	guard            guard.ConstructorGuard
}

// NewEvent records a new handling event with a fresh identifier.
//
// LOAD and UNLOAD events must name a voyage and all other types must not; a mismatch
// fails with an error matching ErrCannotCreateHandlingEvent. Times are normalised to
// UTC and truncated to whole seconds.
func NewEvent(
	trackingID kernel.TrackingID,
	eventType EventType,
	completionTime, registrationTime time.Time,
	location kernel.UnLocode,
	voyage kernel.VoyageNumber,
) (Event, error) {
	return RestoreEvent(kernel.NewUUID(), trackingID, eventType, completionTime, registrationTime, location, voyage)
}

// RestoreEvent rebuilds a persisted event, keeping its identifier.
func RestoreEvent(
	id kernel.UUID,
	trackingID kernel.TrackingID,
	eventType EventType,
	completionTime, registrationTime time.Time,
	location kernel.UnLocode,
	voyage kernel.VoyageNumber,
) (Event, error) {
	e := Event{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setTrackingID(trackingID),
		e.setLocation(location),
		e.setTimes(completionTime, registrationTime),
		e.setTypeAndVoyage(eventType, voyage),
	); err != nil {
		return Event{}, err
	}

	return e, nil
}

func (e Event) ID() kernel.UUID {
	return e.id
}

func (e Event) TrackingID() kernel.TrackingID {
	return e.trackingID
}

func (e Event) Type() EventType {
	return e.eventType
}

// CompletionTime is when the handling actually happened.
func (e Event) CompletionTime() time.Time {
	return e.completionTime
}

// RegistrationTime is when the handling was reported to the system.
func (e Event) RegistrationTime() time.Time {
	return e.registrationTime
}

func (e Event) Location() kernel.UnLocode {
	return e.location
}

// Voyage is kernel.NoVoyage for every type except LOAD and UNLOAD.
func (e Event) Voyage() kernel.VoyageNumber {
	return e.voyage
}

// IsEqual compares the recorded facts and ignores the identifier.
func (e Event) IsEqual(other Event) bool {
	return e.trackingID.IsEqual(other.trackingID) &&
		e.eventType == other.eventType &&
		e.completionTime.Equal(other.completionTime) &&
		e.location.IsEqual(other.location) &&
		e.voyage.IsEqual(other.voyage)
}

func (e Event) Validate() error {
	return e.guard.Validate(ErrEventIsNotConstructed)
}

func (e Event) String() string {
	s := fmt.Sprintf("%s %s at %s on %s", e.trackingID, e.eventType, e.location, e.completionTime.Format(time.RFC3339))
	if !e.voyage.IsNone() {
		s += " voyage " + e.voyage.String()
	}
	return s
}

func (e *Event) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Event) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	e.trackingID = trackingID
	return nil
}

func (e *Event) setLocation(location kernel.UnLocode) error {
	if err := location.Validate(); err != nil {
		return err
	}
	e.location = location
	return nil
}

func (e *Event) setTimes(completionTime, registrationTime time.Time) error {
	var err error
	if completionTime.IsZero() {
		err = errors.Join(err, errs.NewValueIsRequiredError("completionTime"))
	}
	if registrationTime.IsZero() {
		err = errors.Join(err, errs.NewValueIsRequiredError("registrationTime"))
	}
	if err != nil {
		return err
	}
	e.completionTime = completionTime.UTC().Truncate(time.Second)
	e.registrationTime = registrationTime.UTC().Truncate(time.Second)
	return nil
}

func (e *Event) setTypeAndVoyage(eventType EventType, voyage kernel.VoyageNumber) error {
	if !eventType.IsValid() {
		return fmt.Errorf("%w: %w", ErrCannotCreateHandlingEvent,
			errs.NewValueIsInvalidErrorWithCause("eventType", fmt.Errorf("%s is not a handling event type", eventType)))
	}
	if eventType.RequiresVoyage() && voyage.IsNone() {
		return fmt.Errorf("%w: voyage is required for event type %s", ErrCannotCreateHandlingEvent, eventType)
	}
	if !eventType.RequiresVoyage() && !voyage.IsNone() {
		return fmt.Errorf("%w: voyage %s is not allowed with event type %s", ErrCannotCreateHandlingEvent, voyage, eventType)
	}
	e.eventType = eventType
	e.voyage = voyage
	return nil
}
