package queries

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var ErrListFailureReasonsQueryIsNotConstructed = errors.New(
	"ListFailureReasonsQuery must be created via NewListFailureReasonsQuery constructor",
)

// ListFailureReasonsQuery retrieves the delivery failure reason catalog,
// active and inactive entries alike. Filtering by activeness is the
// caller's concern; deactivated reasons stay attached to historical line
// items and still need to be resolvable.
type ListFailureReasonsQuery struct {
	guard guard.ConstructorGuard
}

// NewListFailureReasonsQuery creates a query for the failure reason
// catalog. This is a parameterless query.
func NewListFailureReasonsQuery() ListFailureReasonsQuery {
	return ListFailureReasonsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListFailureReasonsQuery) Validate() error {
	return q.guard.Validate(ErrListFailureReasonsQueryIsNotConstructed)
}

// ListFailureReasonsQueryResponse represents one catalog entry.
type ListFailureReasonsQueryResponse struct {
	ID          kernel.UUID
	Code        string
	Name        string
	Description string
	Active      bool
}
