package signal_test

import (
	"testing"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/signal"
	"cargotracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSignal(t *testing.T) {
	trackingID, _ := kernel.NewTrackingID("ABC123")
	now := time.Date(2009, time.March, 5, 10, 0, 0, 0, time.FixedZone("JST", 9*3600))

	t.Run("create_signal", func(t *testing.T) {
		s, err := signal.NewSignal(signal.CargoMisdirected, trackingID, now)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.NoError(t, s.ID().Validate())
		assert.Equal(t, signal.CargoMisdirected, s.Kind())
		assert.True(t, s.TrackingID().IsEqual(trackingID))
		assert.True(t, s.OccurredAt().Equal(now))
		assert.Equal(t, time.UTC, s.OccurredAt().Location())
	})

	t.Run("reject_unknown_kind", func(t *testing.T) {
		_, err := signal.NewSignal(signal.Kind("CARGO_LOST"), trackingID, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("reject_missing_time", func(t *testing.T) {
		_, err := signal.NewSignal(signal.CargoArrived, trackingID, time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("reject_unconstructed_tracking_id", func(t *testing.T) {
		_, err := signal.NewSignal(signal.CargoHandled, kernel.TrackingID{}, now)

		require.ErrorIs(t, err, kernel.ErrTrackingIDIsNotConstructed)
	})
}

func TestParseKind(t *testing.T) {
	for _, k := range []signal.Kind{signal.CargoHandled, signal.CargoMisdirected, signal.CargoArrived} {
		parsed, err := signal.ParseKind(string(k))

		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
}
