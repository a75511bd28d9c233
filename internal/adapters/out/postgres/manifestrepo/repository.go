package manifestrepo

import (
	"context"
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/manifest"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormManifestRepository implements ManifestRepository using GORM.
type GormManifestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormManifestRepository creates a new GORM manifest repository.
func NewGormManifestRepository(db *gorm.DB, tracker aggregateTracker) *GormManifestRepository {
	return &GormManifestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new manifest with its line items to the database.
func (r *GormManifestRepository) Add(ctx context.Context, aggregate *manifest.Manifest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	manifestDTO, itemDTOs := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&manifestDTO).Error; err != nil {
		return err
	}
	if len(itemDTOs) > 0 {
		if err := r.db.WithContext(ctx).Create(&itemDTOs).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing manifest to the database. New line items are
// inserted and existing ones updated in place; line items are never deleted.
func (r *GormManifestRepository) Update(ctx context.Context, aggregate *manifest.Manifest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	manifestDTO, itemDTOs := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ManifestDTO{}).
		Where("id = ?", manifestDTO.ID).
		Updates(map[string]any{"number": manifestDTO.Number, "created_at": manifestDTO.CreatedAt})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if len(itemDTOs) > 0 {
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"position", "failure_reason_id",
			}),
		}).Create(&itemDTOs).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a manifest with its line items ordered by position.
func (r *GormManifestRepository) Get(ctx context.Context, id kernel.UUID) (*manifest.Manifest, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a manifest like Get but locks its row with
// SELECT ... FOR UPDATE until the surrounding transaction ends. Concurrent
// assignment transactions on the same manifest serialize on this lock, so
// the capacity ceiling is checked against a stable total.
func (r *GormManifestRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*manifest.Manifest, error) {
	return r.get(ctx, id, true)
}

func (r *GormManifestRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*manifest.Manifest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto ManifestDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("manifest", id.String())
		}
		return nil, err
	}

	rows, err := r.loadItems(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	aggregate, err := toDomain(dto, rows)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}

// GetByLineItem retrieves the manifest that contains the given line item.
func (r *GormManifestRepository) GetByLineItem(ctx context.Context, lineItemID kernel.UUID) (*manifest.Manifest, error) {
	if err := lineItemID.Validate(); err != nil {
		return nil, err
	}

	var itemDTO LineItemDTO
	if err := r.db.WithContext(ctx).First(&itemDTO, "id = ?", lineItemID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("lineItem", lineItemID.String())
		}
		return nil, err
	}

	manifestID, err := kernel.UUIDFromBytes(itemDTO.ManifestID[:])
	if err != nil {
		return nil, err
	}

	return r.get(ctx, manifestID, false)
}

// HasActiveAssignment reports whether the parcel has a line item on any
// manifest while still in depot custody.
func (r *GormManifestRepository) HasActiveAssignment(ctx context.Context, parcelID kernel.UUID) (bool, error) {
	if err := parcelID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&LineItemDTO{}).
		Joins("JOIN parcels ON parcels.id = line_items.parcel_id").
		Where("line_items.parcel_id = ? AND parcels.state = ?", parcelID.Bytes(), parcel.InDepot.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// loadItems reads the line item rows for one manifest joined with the
// parcels' current weights, ordered by position.
func (r *GormManifestRepository) loadItems(ctx context.Context, manifestID uuid.UUID) ([]lineItemRow, error) {
	var rows []lineItemRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			li.id,
			li.parcel_id,
			li.position,
			li.failure_reason_id,
			p.weight_grams
		FROM line_items li
		JOIN parcels p ON p.id = li.parcel_id
		WHERE li.manifest_id = ?
		ORDER BY li.position
	`, manifestID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
