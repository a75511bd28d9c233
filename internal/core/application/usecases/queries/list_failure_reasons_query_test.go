package queries_test

import (
	"testing"

	"depot/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListFailureReasonsQuery_Valid(t *testing.T) {
	query := queries.NewListFailureReasonsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestListFailureReasonsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListFailureReasonsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListFailureReasonsQueryIsNotConstructed)
}
