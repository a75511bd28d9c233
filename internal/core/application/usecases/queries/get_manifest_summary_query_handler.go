package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetManifestSummaryQueryHandler reads a manifest summary straight from the
// database. The total weight is aggregated from the parcels' current
// weights, so a weight correction after assignment is reflected here.
type GetManifestSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetManifestSummaryQueryHandler creates a handler for manifest summary
// queries. Requires a GORM database connection for query execution.
func NewGetManifestSummaryQueryHandler(db *gorm.DB) GetManifestSummaryQueryHandler {
	return GetManifestSummaryQueryHandler{db: db}
}

// Handle executes the summary query. Returns an ObjectNotFoundError when the
// manifest does not exist; an existing manifest with no line items yields an
// empty item list and a total of 0.
func (h GetManifestSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetManifestSummaryQuery,
) (GetManifestSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetManifestSummaryQueryResponse{}, err
	}

	var response GetManifestSummaryQueryResponse

	var manifestRow struct {
		ID        uuid.UUID
		Number    string
		CreatedAt time.Time
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			created_at
		FROM manifests
		WHERE id = ?
	`, query.ManifestID().String()).Row().Scan(&manifestRow.ID, &manifestRow.Number, &manifestRow.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetManifestSummaryQueryResponse{}, errs.NewObjectNotFoundError(
				"manifest", query.ManifestID().String())
		}
		return GetManifestSummaryQueryResponse{}, err
	}

	manifestID, err := kernel.UUIDFromBytes(manifestRow.ID[:])
	if err != nil {
		return GetManifestSummaryQueryResponse{}, err
	}
	response.ManifestID = manifestID
	response.Number = manifestRow.Number
	response.CreatedAt = manifestRow.CreatedAt
	response.Items = make([]LineItemSummary, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			li.id,
			li.parcel_id,
			li.position,
			p.tracking,
			p.weight_grams,
			p.state,
			COALESCE(fr.code, '')
		FROM line_items li
		JOIN parcels p ON p.id = li.parcel_id
		LEFT JOIN failure_reasons fr ON fr.id = li.failure_reason_id
		WHERE li.manifest_id = ?
		ORDER BY li.position
	`, query.ManifestID().String()).Rows()
	if err != nil {
		return GetManifestSummaryQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item LineItemSummary
		var lineItemID, parcelID uuid.UUID

		err = rows.Scan(
			&lineItemID,
			&parcelID,
			&item.Position,
			&item.Tracking,
			&item.WeightGrams,
			&item.State,
			&item.FailureReasonCode,
		)
		if err != nil {
			return GetManifestSummaryQueryResponse{}, err
		}

		if item.LineItemID, err = kernel.UUIDFromBytes(lineItemID[:]); err != nil {
			return GetManifestSummaryQueryResponse{}, err
		}
		if item.ParcelID, err = kernel.UUIDFromBytes(parcelID[:]); err != nil {
			return GetManifestSummaryQueryResponse{}, err
		}

		response.TotalWeightGrams += item.WeightGrams
		response.Items = append(response.Items, item)
	}

	if err = rows.Err(); err != nil {
		return GetManifestSummaryQueryResponse{}, err
	}

	return response, nil
}
