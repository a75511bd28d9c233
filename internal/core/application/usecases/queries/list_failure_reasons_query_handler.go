package queries

import (
	"context"

	"depot/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListFailureReasonsQueryHandler reads the failure reason catalog from the
// database, ordered by code for stable output.
type ListFailureReasonsQueryHandler struct {
	db *gorm.DB
}

// NewListFailureReasonsQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewListFailureReasonsQueryHandler(db *gorm.DB) ListFailureReasonsQueryHandler {
	return ListFailureReasonsQueryHandler{db: db}
}

// Handle executes the catalog query and returns every reason with its
// activeness flag.
func (h ListFailureReasonsQueryHandler) Handle(
	ctx context.Context,
	query ListFailureReasonsQuery,
) ([]ListFailureReasonsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	reasons := make([]ListFailureReasonsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			name,
			description,
			active
		FROM failure_reasons
		ORDER BY code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var reason ListFailureReasonsQueryResponse
		var id uuid.UUID

		err = rows.Scan(&id, &reason.Code, &reason.Name, &reason.Description, &reason.Active)
		if err != nil {
			return nil, err
		}

		if reason.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		reasons = append(reasons, reason)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reasons, nil
}
