package ports

import (
	"context"

	"depot/internal/core/domain/model/failurereason"
	"depot/internal/core/domain/model/kernel"
)

// FailureReasonRepository defines the persistence contract for the failure
// reason catalog.
type FailureReasonRepository interface {
	// Add persists a new failure reason to the catalog.
	Add(ctx context.Context, reason *failurereason.Simple) error

	// Update persists changes to an existing failure reason.
	Update(ctx context.Context, reason *failurereason.Simple) error

	// Get retrieves a failure reason by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*failurereason.Simple, error)

	// GetAllActive retrieves the active failure reasons, ordered by code.
	GetAllActive(ctx context.Context) ([]*failurereason.Simple, error)
}
