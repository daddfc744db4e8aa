package kernel_test

import (
	"testing"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnLocode(t *testing.T) {
	valid := []string{"SESTO", "CNHKG", "USNYC", "JNTKO", "sesto", "AB234"}
	for _, code := range valid {
		t.Run("valid_"+code, func(t *testing.T) {
			u, err := kernel.NewUnLocode(code)

			require.NoError(t, err)
			assert.NoError(t, u.Validate())
		})
	}

	invalid := []string{"SEST", "SESTOO", "SE1TO", "12345", "SE-TO", "AB0CD"}
	for _, code := range invalid {
		t.Run("invalid_"+code, func(t *testing.T) {
			_, err := kernel.NewUnLocode(code)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), code)
		})
	}

	t.Run("empty_code", func(t *testing.T) {
		_, err := kernel.NewUnLocode("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUnLocode_IsCaseInsensitive(t *testing.T) {
	lower, err := kernel.NewUnLocode("sesto")
	require.NoError(t, err)

	assert.Equal(t, "SESTO", lower.String())
	assert.True(t, lower.IsEqual(kernel.MustUnLocode("SESTO")))
}

func TestUnknownUnLocode(t *testing.T) {
	assert.True(t, kernel.UnknownUnLocode.IsUnknown())
	assert.NoError(t, kernel.UnknownUnLocode.Validate())
	assert.Equal(t, "XXXXX", kernel.UnknownUnLocode.String())
	assert.False(t, kernel.MustUnLocode("SESTO").IsUnknown())
}

func TestMustUnLocode_PanicsOnInvalidCode(t *testing.T) {
	assert.Panics(t, func() { kernel.MustUnLocode("bad") })
}

func TestUnLocode_Validate(t *testing.T) {
	var zero kernel.UnLocode

	assert.ErrorIs(t, zero.Validate(), kernel.ErrUnLocodeIsNotConstructed)
}
