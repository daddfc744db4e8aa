package rabbitmq

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
)

// ErrMalformedAttempt is matched by DecodeAttempt errors for bodies that are not JSON.
var ErrMalformedAttempt = errors.New("malformed registration attempt")

// AttemptMessage is the queued form of a registration attempt. VoyageNumber is
// empty for handlings without a vessel.
type AttemptMessage struct {
	RegistrationTime time.Time `json:"registrationTime"`
	CompletionTime   time.Time `json:"completionTime"`
	TrackingID       string    `json:"trackingId"`
	VoyageNumber     string    `json:"voyageNumber,omitempty"`
	EventType        string    `json:"eventType"`
	UnLocode         string    `json:"unLocode"`
}

func EncodeAttempt(attempt handling.RegistrationAttempt) ([]byte, error) {
	return json.Marshal(AttemptMessage{
		RegistrationTime: attempt.RegistrationTime.UTC(),
		CompletionTime:   attempt.CompletionTime.UTC(),
		TrackingID:       attempt.TrackingID.String(),
		VoyageNumber:     attempt.VoyageNumber.String(),
		EventType:        attempt.EventType.String(),
		UnLocode:         attempt.UnLocode.String(),
	})
}

// DecodeAttempt parses a queued attempt. Malformed bodies and invalid values are
// reported together.
func DecodeAttempt(body []byte) (handling.RegistrationAttempt, error) {
	var msg AttemptMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return handling.RegistrationAttempt{}, fmt.Errorf("%w: %w", ErrMalformedAttempt, err)
	}

	trackingID, idErr := kernel.NewTrackingID(msg.TrackingID)
	eventType, typeErr := handling.ParseEventType(msg.EventType)
	unLocode, codeErr := kernel.NewUnLocode(msg.UnLocode)
	if err := errors.Join(idErr, typeErr, codeErr); err != nil {
		return handling.RegistrationAttempt{}, err
	}

	return handling.RegistrationAttempt{
		RegistrationTime: msg.RegistrationTime,
		CompletionTime:   msg.CompletionTime,
		TrackingID:       trackingID,
		VoyageNumber:     kernel.VoyageNumberFromString(msg.VoyageNumber),
		EventType:        eventType,
		UnLocode:         unLocode,
	}, nil
}
