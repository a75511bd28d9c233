package commands_test

import (
	"testing"
	"time"

	"depot/internal/core/domain/model/failurereason"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/manifest"
	"depot/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/require"
)

func newDepotParcel(t *testing.T, weightGrams float64) *parcel.Parcel {
	t.Helper()
	recipient, err := parcel.NewRecipient("Ana Ruiz", "555-0199", "Calle Sur 15")
	require.NoError(t, err)
	p, err := parcel.NewParcel(kernel.NewUUID(), kernel.NewUUID(), "TRK-H",
		recipient, weightGrams, 25, parcel.DefaultWeightPolicy())
	require.NoError(t, err)
	return p
}

func newEmptyManifest(t *testing.T) *manifest.Manifest {
	t.Helper()
	m, err := manifest.NewManifest(kernel.NewUUID(), "PL-H-001", time.Now())
	require.NoError(t, err)
	return m
}

func newActiveReason(t *testing.T) *failurereason.Simple {
	t.Helper()
	r, err := failurereason.NewSimple(kernel.NewUUID(), "REJECTED", "Recipient rejected",
		"Recipient refused to accept the parcel", true)
	require.NoError(t, err)
	return r
}
