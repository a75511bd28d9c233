package failurereasonrepo

import (
	"context"
	"errors"

	"depot/internal/core/domain/model/failurereason"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormFailureReasonRepository implements FailureReasonRepository using GORM.
type GormFailureReasonRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormFailureReasonRepository creates a new GORM failure reason repository.
func NewGormFailureReasonRepository(db *gorm.DB, tracker aggregateTracker) *GormFailureReasonRepository {
	return &GormFailureReasonRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new failure reason to the catalog.
func (r *GormFailureReasonRepository) Add(ctx context.Context, reason *failurereason.Simple) error {
	if err := reason.Validate(); err != nil {
		return err
	}

	dto := fromDomain(reason)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(reason.ID(), reason)
	return nil
}

// Update saves an existing failure reason to the catalog.
func (r *GormFailureReasonRepository) Update(ctx context.Context, reason *failurereason.Simple) error {
	if err := reason.Validate(); err != nil {
		return err
	}

	dto := fromDomain(reason)
	result := r.db.WithContext(ctx).Model(&FailureReasonDTO{}).
		Where("id = ?", dto.ID).
		Select("Code", "Name", "Description", "Active").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(reason.ID(), reason)
	return nil
}

// Get retrieves a failure reason by ID.
func (r *GormFailureReasonRepository) Get(ctx context.Context, id kernel.UUID) (*failurereason.Simple, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FailureReasonDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("failureReason", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves the active failure reasons ordered by code.
func (r *GormFailureReasonRepository) GetAllActive(ctx context.Context) ([]*failurereason.Simple, error) {
	var dtos []FailureReasonDTO
	if err := r.db.WithContext(ctx).Order("code").Find(&dtos, "active = ?", true).Error; err != nil {
		return nil, err
	}

	reasons := make([]*failurereason.Simple, 0, len(dtos))
	for _, dto := range dtos {
		reason, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		reasons = append(reasons, reason)
	}

	return reasons, nil
}
