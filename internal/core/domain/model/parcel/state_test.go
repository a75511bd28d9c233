package parcel_test

import (
	"testing"

	"depot/internal/core/domain/model/parcel"
	"depot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_String(t *testing.T) {
	assert.Equal(t, "IN_DEPOT", parcel.InDepot.String())
	assert.Equal(t, "IN_DISTRIBUTION", parcel.InDistribution.String())
	assert.Equal(t, "UNKNOWN", parcel.StateUnknown.String())
	assert.Equal(t, "UNKNOWN", parcel.State(99).String())
}

func TestStateFromString(t *testing.T) {
	t.Run("parses valid wire tokens", func(t *testing.T) {
		s, err := parcel.StateFromString("IN_DEPOT")
		require.NoError(t, err)
		assert.Equal(t, parcel.InDepot, s)

		s, err = parcel.StateFromString("IN_DISTRIBUTION")
		require.NoError(t, err)
		assert.Equal(t, parcel.InDistribution, s)
	})

	t.Run("rejects unknown tokens", func(t *testing.T) {
		_, err := parcel.StateFromString("en_deposito")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = parcel.StateFromString("")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestState_Validate(t *testing.T) {
	require.NoError(t, parcel.InDepot.Validate())
	require.NoError(t, parcel.InDistribution.Validate())
	require.Error(t, parcel.StateUnknown.Validate())
	require.Error(t, parcel.State(42).Validate())
}

func TestState_StartDistribution(t *testing.T) {
	t.Run("in depot transitions to in distribution", func(t *testing.T) {
		next, err := parcel.InDepot.StartDistribution()

		require.NoError(t, err)
		assert.Equal(t, parcel.InDistribution, next)
	})

	t.Run("in distribution cannot transition again", func(t *testing.T) {
		_, err := parcel.InDistribution.StartDistribution()

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("unknown state cannot transition", func(t *testing.T) {
		_, err := parcel.StateUnknown.StartDistribution()

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestSizeFromString(t *testing.T) {
	t.Run("parses valid wire tokens", func(t *testing.T) {
		for token, want := range map[string]parcel.Size{
			"SMALL":  parcel.Small,
			"MEDIUM": parcel.Medium,
			"LARGE":  parcel.Large,
		} {
			s, err := parcel.SizeFromString(token)
			require.NoError(t, err)
			assert.Equal(t, want, s)
		}
	})

	t.Run("rejects unknown tokens", func(t *testing.T) {
		_, err := parcel.SizeFromString("EXTRA_LARGE")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestSize_String(t *testing.T) {
	assert.Equal(t, "SMALL", parcel.Small.String())
	assert.Equal(t, "MEDIUM", parcel.Medium.String())
	assert.Equal(t, "LARGE", parcel.Large.String())
	assert.Equal(t, "UNKNOWN", parcel.SizeUnknown.String())
}
