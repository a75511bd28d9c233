package ports

import (
	"context"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/manifest"
)

// ManifestRepository defines the persistence contract for manifest aggregates
// and their line items.
type ManifestRepository interface {
	// Add persists a new manifest aggregate with its line items.
	Add(ctx context.Context, aggregate *manifest.Manifest) error

	// Update persists changes to an existing manifest aggregate.
	// New line items are inserted; existing ones are updated in place.
	Update(ctx context.Context, aggregate *manifest.Manifest) error

	// Get retrieves a manifest aggregate with its line items ordered by
	// position.
	Get(ctx context.Context, id kernel.UUID) (*manifest.Manifest, error)

	// GetForUpdate retrieves a manifest like Get but takes a row lock on it
	// for the duration of the current transaction. Assignment handlers use
	// it so concurrent capacity checks on the same manifest serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*manifest.Manifest, error)

	// GetByLineItem retrieves the manifest that contains the given line item.
	GetByLineItem(ctx context.Context, lineItemID kernel.UUID) (*manifest.Manifest, error)

	// HasActiveAssignment reports whether the parcel has a line item on any
	// manifest while still in depot custody. Such a parcel cannot join a
	// second manifest.
	HasActiveAssignment(ctx context.Context, parcelID kernel.UUID) (bool, error)
}
