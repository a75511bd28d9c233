// Package manifestrepo provides data transfer objects and mapping functions
// for manifest persistence. A manifest aggregate spans two tables: the
// manifest row and its line items. Line items are append-only; positions are
// assigned by the aggregate and never renumbered here.
package manifestrepo

import (
	"time"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/manifest"

	"github.com/google/uuid"
)

// ManifestDTO represents the database structure for persisting manifest
// aggregates.
type ManifestDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number    string    `gorm:"uniqueIndex"`
	CreatedAt time.Time
}

// TableName specifies the database table name for manifest entities.
// Overrides GORM's default naming convention to use "manifests".
func (ManifestDTO) TableName() string {
	return "manifests"
}

// LineItemDTO represents one manifest line item row. The composite unique
// index on manifest and parcel backs the aggregate's uniqueness rule against
// concurrent writers.
type LineItemDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ManifestID      uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_manifest_parcel;index"`
	ParcelID        uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_manifest_parcel;index"`
	Position        int
	FailureReasonID *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for line item entities.
func (LineItemDTO) TableName() string {
	return "line_items"
}

// fromDomain converts a manifest domain aggregate to its database
// representation: the manifest row plus one row per line item.
func fromDomain(m *manifest.Manifest) (ManifestDTO, []LineItemDTO) {
	manifestDTO := ManifestDTO{
		ID:        m.ID().Bytes(),
		Number:    m.Number(),
		CreatedAt: m.CreatedAt(),
	}

	items := m.Items()
	itemDTOs := make([]LineItemDTO, 0, len(items))
	for _, li := range items {
		var reasonID *uuid.UUID
		if id := li.FailureReasonID(); id != nil {
			raw := id.Bytes()
			reasonID = &raw
		}

		itemDTOs = append(itemDTOs, LineItemDTO{
			ID:              li.ID().Bytes(),
			ManifestID:      m.ID().Bytes(),
			ParcelID:        li.ParcelID().Bytes(),
			Position:        li.Position(),
			FailureReasonID: reasonID,
		})
	}

	return manifestDTO, itemDTOs
}

// lineItemRow is a line item joined with its parcel's current weight, read
// at aggregate load time.
type lineItemRow struct {
	ID              uuid.UUID
	ParcelID        uuid.UUID
	Position        int
	WeightGrams     float64
	FailureReasonID *uuid.UUID
}

// toDomain converts manifest and line item rows to a manifest domain
// aggregate. Rows must be ordered by position.
func toDomain(dto ManifestDTO, rows []lineItemRow) (*manifest.Manifest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*manifest.LineItem, 0, len(rows))
	for _, row := range rows {
		itemID, itemErr := kernel.UUIDFromBytes(row.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		parcelID, itemErr := kernel.UUIDFromBytes(row.ParcelID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		var reasonID *kernel.UUID
		if row.FailureReasonID != nil {
			rID, reasonErr := kernel.UUIDFromBytes((*row.FailureReasonID)[:])
			if reasonErr != nil {
				return nil, reasonErr
			}
			reasonID = &rID
		}

		item, itemErr := manifest.RestoreLineItem(itemID, parcelID, row.Position, row.WeightGrams, reasonID)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return manifest.RestoreManifest(id, dto.Number, dto.CreatedAt, items)
}
