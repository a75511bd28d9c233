package commands

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var (
	ErrBulkAssignParcelsCommandIsNotConstructed = errors.New(
		"BulkAssignParcelsCommand must be created via NewBulkAssignParcelsCommand constructor",
	)
	ErrParcelIDsAreRequired = errors.New("at least one parcel id is required")
)

// BulkAssignParcelsCommand represents a request to add a batch of parcels to
// a manifest in one atomic operation: either every parcel gets a line item
// or none does.
type BulkAssignParcelsCommand struct { //nolint:recvcheck //using for validation
	manifestID kernel.UUID
	parcelIDs  []kernel.UUID

	guard guard.ConstructorGuard
}

// NewBulkAssignParcelsCommand creates a command to assign a batch of parcels.
// Validates the manifest identifier and every parcel identifier, rejects an
// empty batch, and collapses repeated parcel identifiers to their first
// occurrence.
func NewBulkAssignParcelsCommand(manifestID kernel.UUID, parcelIDs []kernel.UUID) (BulkAssignParcelsCommand, error) {
	bulkCommand := BulkAssignParcelsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bulkCommand.setManifestID(manifestID),
		bulkCommand.setParcelIDs(parcelIDs),
	); err != nil {
		return BulkAssignParcelsCommand{}, err
	}

	return bulkCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c BulkAssignParcelsCommand) Validate() error {
	return c.guard.Validate(ErrBulkAssignParcelsCommandIsNotConstructed)
}

// ManifestID returns the identifier of the target manifest.
func (c BulkAssignParcelsCommand) ManifestID() kernel.UUID {
	return c.manifestID
}

// ParcelIDs returns the identifiers of the parcels to assign, deduplicated
// and in first-occurrence order. The returned slice is a copy.
func (c BulkAssignParcelsCommand) ParcelIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.parcelIDs))
	copy(ids, c.parcelIDs)
	return ids
}

func (c *BulkAssignParcelsCommand) setManifestID(manifestID kernel.UUID) error {
	if err := manifestID.Validate(); err != nil {
		return err
	}

	c.manifestID = manifestID
	return nil
}

func (c *BulkAssignParcelsCommand) setParcelIDs(parcelIDs []kernel.UUID) error {
	if len(parcelIDs) == 0 {
		return ErrParcelIDsAreRequired
	}

	seen := make(map[kernel.UUID]struct{}, len(parcelIDs))
	ids := make([]kernel.UUID, 0, len(parcelIDs))
	for _, id := range parcelIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	c.parcelIDs = ids
	return nil
}
