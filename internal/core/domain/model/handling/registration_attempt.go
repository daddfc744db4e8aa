package handling

import (
	"time"

	"cargotracker/internal/core/domain/model/kernel"
)

// RegistrationAttempt is an unverified handling report queued for registration.
// The references it carries have not been resolved yet.
type RegistrationAttempt struct {
	RegistrationTime time.Time
	CompletionTime   time.Time
	TrackingID       kernel.TrackingID
	VoyageNumber     kernel.VoyageNumber
	EventType        EventType
	UnLocode         kernel.UnLocode
}
