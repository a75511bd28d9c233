package queries

import (
	"context"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDepotParcelsQueryHandler reads the depot inventory from the database,
// joining in the owning client's name.
type GetDepotParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetDepotParcelsQueryHandler creates a handler for depot inventory
// queries. Requires a GORM database connection for query execution.
func NewGetDepotParcelsQueryHandler(db *gorm.DB) GetDepotParcelsQueryHandler {
	return GetDepotParcelsQueryHandler{db: db}
}

// Handle executes the inventory query. Returns parcels still in depot
// custody sorted by tracking code.
func (h GetDepotParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetDepotParcelsQuery,
) ([]GetDepotParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetDepotParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			c.name,
			p.tracking,
			p.weight_grams,
			p.size
		FROM parcels p
		JOIN clients c ON c.id = p.client_id
		WHERE p.state = ?
		ORDER BY p.tracking
	`, parcel.InDepot.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var parcelResp GetDepotParcelsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&parcelResp.ClientName,
			&parcelResp.Tracking,
			&parcelResp.WeightGrams,
			&parcelResp.Size,
		)
		if err != nil {
			return nil, err
		}

		if parcelResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		parcels = append(parcels, parcelResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
