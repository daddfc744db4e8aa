package guard_test

import (
	"testing"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/signal"
	"cargotracker/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatable interface {
	Validate() error
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(kernel.ErrUnLocodeIsNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(cargo.ErrLegIsNotConstructed)

		// Then
		assert.Same(t, cargo.ErrLegIsNotConstructed, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Same(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})
}

func TestConstructorGuard_DomainZeroValues(t *testing.T) {
	testCases := []struct {
		name     string
		value    validatable
		expected error
	}{
		{name: "unlocode", value: kernel.UnLocode{}, expected: kernel.ErrUnLocodeIsNotConstructed},
		{name: "tracking_id", value: kernel.TrackingID{}, expected: kernel.ErrTrackingIDIsNotConstructed},
		{name: "location", value: location.Location{}, expected: location.ErrLocationIsNotConstructed},
		{name: "leg", value: cargo.Leg{}, expected: cargo.ErrLegIsNotConstructed},
		{name: "route_specification", value: cargo.RouteSpecification{}, expected: cargo.ErrRouteSpecificationIsNotConstructed},
		{name: "handling_event", value: handling.Event{}, expected: handling.ErrEventIsNotConstructed},
		{name: "signal", value: signal.Signal{}, expected: signal.ErrSignalIsNotConstructed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.value.Validate(), tc.expected)
		})
	}
}

func TestConstructorGuard_DomainConstructors(t *testing.T) {
	// Given
	stockholm, err := kernel.NewUnLocode("SESTO")
	require.NoError(t, err)
	trackingID, err := kernel.NewTrackingID("ABC123")
	require.NoError(t, err)

	// When
	loc, err := location.NewLocation(stockholm, "Stockholm")
	require.NoError(t, err)
	sig, err := signal.NewSignal(signal.CargoArrived, trackingID, time.Date(2009, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// Then
	for name, v := range map[string]validatable{
		"unlocode":    stockholm,
		"tracking_id": trackingID,
		"location":    loc,
		"signal":      sig,
	} {
		assert.NoError(t, v.Validate(), name)
	}
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()

	done := make(chan struct{})
	for range 50 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 200 {
				assert.NoError(t, g.Validate(kernel.ErrUnLocodeIsNotConstructed))
			}
		}()
	}
	for range 50 {
		<-done
	}
}
