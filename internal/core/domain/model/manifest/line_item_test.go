package manifest_test

import (
	"testing"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/manifest"
	"depot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreLineItem(t *testing.T) {
	t.Run("restores item without failure reason", func(t *testing.T) {
		id := kernel.NewUUID()
		parcelID := kernel.NewUUID()

		li, err := manifest.RestoreLineItem(id, parcelID, 3, 750, nil)

		require.NoError(t, err)
		require.NoError(t, li.Validate())
		assert.True(t, li.ID().IsEqual(id))
		assert.True(t, li.ParcelID().IsEqual(parcelID))
		assert.Equal(t, 3, li.Position())
		assert.InDelta(t, 750.0, li.ParcelWeightGrams(), 0)
		assert.Nil(t, li.FailureReasonID())
	})

	t.Run("restores item with failure reason", func(t *testing.T) {
		reasonID := kernel.NewUUID()

		li, err := manifest.RestoreLineItem(kernel.NewUUID(), kernel.NewUUID(), 1, 500, &reasonID)

		require.NoError(t, err)
		require.NotNil(t, li.FailureReasonID())
		assert.True(t, li.FailureReasonID().IsEqual(reasonID))
	})

	t.Run("should fail with non-positive position", func(t *testing.T) {
		li, err := manifest.RestoreLineItem(kernel.NewUUID(), kernel.NewUUID(), 0, 500, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, li)
	})

	t.Run("should fail with invalid parcel id", func(t *testing.T) {
		li, err := manifest.RestoreLineItem(kernel.NewUUID(), kernel.UUID{}, 1, 500, nil)

		require.Error(t, err)
		assert.Nil(t, li)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var li manifest.LineItem
		assert.ErrorIs(t, li.Validate(), manifest.ErrLineItemIsNotConstructed)
	})
}

func TestLineItemFailureReasonIsACopy(t *testing.T) {
	reasonID := kernel.NewUUID()
	li, err := manifest.RestoreLineItem(kernel.NewUUID(), kernel.NewUUID(), 1, 500, &reasonID)
	require.NoError(t, err)

	got := li.FailureReasonID()
	*got = kernel.NewUUID()

	assert.True(t, li.FailureReasonID().IsEqual(reasonID))
}
