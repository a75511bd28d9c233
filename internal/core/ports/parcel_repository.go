package ports

import (
	"context"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// Provides methods for storing, retrieving, and querying parcels by their
// custody state.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// The parcel must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	// The parcel must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByIDs retrieves the parcels for all given identifiers.
	// Every identifier must resolve; a missing parcel is an error.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*parcel.Parcel, error)

	// GetAllInDepot retrieves all parcels still in depot custody.
	// Used by reporting and the depot status job.
	GetAllInDepot(ctx context.Context) ([]*parcel.Parcel, error)
}
