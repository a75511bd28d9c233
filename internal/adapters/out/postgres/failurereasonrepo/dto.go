// Package failurereasonrepo provides data transfer objects and mapping
// functions for the failure reason catalog.
package failurereasonrepo

import (
	"depot/internal/core/domain/model/failurereason"
	"depot/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// FailureReasonDTO represents the database structure for the failure reason
// catalog. Deactivated reasons keep their rows so historical line items stay
// resolvable.
type FailureReasonDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        string    `gorm:"uniqueIndex"`
	Name        string
	Description string
	Active      bool `gorm:"index"`
}

// TableName specifies the database table name for failure reason entities.
func (FailureReasonDTO) TableName() string {
	return "failure_reasons"
}

func fromDomain(reason *failurereason.Simple) FailureReasonDTO {
	return FailureReasonDTO{
		ID:          reason.ID().Bytes(),
		Code:        reason.Code(),
		Name:        reason.Name(),
		Description: reason.Description(),
		Active:      reason.IsActive(),
	}
}

func toDomain(dto FailureReasonDTO) (*failurereason.Simple, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return failurereason.NewSimple(id, dto.Code, dto.Name, dto.Description, dto.Active)
}
