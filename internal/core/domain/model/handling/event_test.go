package handling_test

import (
	"errors"
	"testing"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	trackingID, _ = kernel.NewTrackingID("ABC123")
	stockholm     = kernel.MustUnLocode("SESTO")
	helsinki      = kernel.MustUnLocode("FIHEL")
	v1            = kernel.VoyageNumberFromString("V1")
	t0            = time.Date(2009, time.March, 1, 12, 0, 0, 0, time.UTC)
)

func TestNewEvent(t *testing.T) {
	t.Run("create_load_event_with_voyage", func(t *testing.T) {
		e, err := handling.NewEvent(trackingID, handling.Load, t0, t0.Add(time.Hour), stockholm, v1)

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.NoError(t, e.ID().Validate())
		assert.Equal(t, handling.Load, e.Type())
		assert.True(t, e.TrackingID().IsEqual(trackingID))
		assert.True(t, e.Location().IsEqual(stockholm))
		assert.True(t, e.Voyage().IsEqual(v1))
		assert.Equal(t, t0, e.CompletionTime())
		assert.Equal(t, t0.Add(time.Hour), e.RegistrationTime())
	})

	t.Run("create_receive_event_without_voyage", func(t *testing.T) {
		e, err := handling.NewEvent(trackingID, handling.Receive, t0, t0, stockholm, kernel.NoVoyage)

		require.NoError(t, err)
		assert.True(t, e.Voyage().IsNone())
	})

	t.Run("normalise_times", func(t *testing.T) {
		local := t0.Add(700 * time.Millisecond).In(time.FixedZone("EET", 2*3600))

		e, err := handling.NewEvent(trackingID, handling.Customs, local, local, stockholm, kernel.NoVoyage)

		require.NoError(t, err)
		assert.Equal(t, t0, e.CompletionTime())
		assert.Equal(t, time.UTC, e.CompletionTime().Location())
	})

	for _, eventType := range []handling.EventType{handling.Load, handling.Unload} {
		t.Run("require_voyage_for"+eventType.String(), func(t *testing.T) {
			_, err := handling.NewEvent(trackingID, eventType, t0, t0, stockholm, kernel.NoVoyage)

			require.ErrorIs(t, err, handling.ErrCannotCreateHandlingEvent)
			assert.Contains(t, err.Error(), "voyage is required")
		})
	}

	for _, eventType := range []handling.EventType{handling.Receive, handling.Customs, handling.Claim} {
		t.Run("forbid_voyage_for"+eventType.String(), func(t *testing.T) {
			_, err := handling.NewEvent(trackingID, eventType, t0, t0, stockholm, v1)

			require.ErrorIs(t, err, handling.ErrCannotCreateHandlingEvent)
			assert.Contains(t, err.Error(), "is not allowed")
		})
	}

	t.Run("reject_unknown_event_type", func(t *testing.T) {
		_, err := handling.NewEvent(trackingID, handling.EventType(42), t0, t0, stockholm, kernel.NoVoyage)

		require.ErrorIs(t, err, handling.ErrCannotCreateHandlingEvent)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("join_every_invalid_field", func(t *testing.T) {
		_, err := handling.NewEvent(kernel.TrackingID{}, handling.Receive, time.Time{}, time.Time{}, kernel.UnLocode{}, kernel.NoVoyage)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrTrackingIDIsNotConstructed)
		assert.ErrorIs(t, err, kernel.ErrUnLocodeIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "completionTime")
		assert.Contains(t, err.Error(), "registrationTime")
	})
}

func TestRestoreEvent(t *testing.T) {
	id := kernel.NewUUID()

	e, err := handling.RestoreEvent(id, trackingID, handling.Unload, t0, t0, helsinki, v1)

	require.NoError(t, err)
	assert.True(t, e.ID().IsEqual(id))
}

func TestEvent_IsEqual(t *testing.T) {
	a, _ := handling.NewEvent(trackingID, handling.Unload, t0, t0, helsinki, v1)
	b, _ := handling.NewEvent(trackingID, handling.Unload, t0, t0.Add(time.Minute), helsinki, v1)
	c, _ := handling.NewEvent(trackingID, handling.Unload, t0.Add(time.Second), t0, helsinki, v1)

	assert.True(t, a.IsEqual(b), "registration time and id are not part of the recorded facts")
	assert.False(t, a.IsEqual(c))
}

func TestEvent_Validate(t *testing.T) {
	var zero handling.Event

	assert.ErrorIs(t, zero.Validate(), handling.ErrEventIsNotConstructed)
}

func TestEventType(t *testing.T) {
	t.Run("parse_every_name", func(t *testing.T) {
		for _, eventType := range handling.EventTypes() {
			parsed, err := handling.ParseEventType(eventType.String())

			require.NoError(t, err)
			assert.Equal(t, eventType, parsed)
		}
	})

	t.Run("parse_lower_case", func(t *testing.T) {
		parsed, err := handling.ParseEventType(" unload ")

		require.NoError(t, err)
		assert.Equal(t, handling.Unload, parsed)
	})

	t.Run("reject_unknown_name", func(t *testing.T) {
		_, err := handling.ParseEventType("SHIP")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("format_unknown_value", func(t *testing.T) {
		assert.Equal(t, "EventType(9)", handling.EventType(9).String())
	})
}

func TestReferenceErrors(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{"unknown_cargo", &handling.UnknownCargoError{TrackingID: "ABC123"}, handling.ErrUnknownCargo, "unknown cargo: ABC123"},
		{"unknown_voyage", &handling.UnknownVoyageError{VoyageNumber: "V9"}, handling.ErrUnknownVoyage, "unknown voyage: V9"},
		{"unknown_location", &handling.UnknownLocationError{UnLocode: "XXABC"}, handling.ErrUnknownLocation, "unknown location: XXABC"},
		{"with_cause", &handling.UnknownCargoError{TrackingID: "ABC123", Cause: cause}, handling.ErrUnknownCargo, "(cause: connection reset)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
			assert.ErrorIs(t, tt.err, handling.ErrCannotCreateHandlingEvent)
			assert.Contains(t, tt.err.Error(), tt.message)
		})
	}

	t.Run("cause_is_reachable", func(t *testing.T) {
		err := &handling.UnknownLocationError{UnLocode: "XXABC", Cause: cause}

		assert.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, handling.ErrUnknownCargo)
	})
}
