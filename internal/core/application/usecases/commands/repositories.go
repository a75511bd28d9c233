// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"depot/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ClientRepoFactory provides access to the client repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// ManifestRepoFactory provides access to the manifest repository within a transaction.
	ManifestRepoFactory interface {
		ManifestRepository() ports.ManifestRepository
	}

	// FailureReasonRepoFactory provides access to the failure reason repository within a transaction.
	FailureReasonRepoFactory interface {
		FailureReasonRepository() ports.FailureReasonRepository
	}

	// ClientUoW manages transactions for client-only operations.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	// ClientUoWFactory creates new client unit of work instances.
	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// ParcelUoW manages transactions for parcel registration and updates.
	// Includes the client repository because parcel registration verifies
	// the owning client exists.
	ParcelUoW interface {
		TxManager
		ClientRepoFactory
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// ManifestUoW manages transactions for manifest-only operations.
	ManifestUoW interface {
		TxManager
		ManifestRepoFactory
	}

	// ManifestUoWFactory creates new manifest unit of work instances.
	ManifestUoWFactory interface {
		Create() ManifestUoW
	}

	// AssignmentUoW manages transactions that coordinate manifests and
	// parcels. Used for assignment and distribution start, where line items
	// and parcel states change together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   manifestRepo := uow.ManifestRepository()
	//   parcelRepo := uow.ParcelRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	AssignmentUoW interface {
		TxManager
		ManifestRepoFactory
		ParcelRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// FailureReasonUoW manages transactions for the failure reason catalog.
	FailureReasonUoW interface {
		TxManager
		FailureReasonRepoFactory
	}

	// FailureReasonUoWFactory creates new failure reason unit of work instances.
	FailureReasonUoWFactory interface {
		Create() FailureReasonUoW
	}

	// DeliveryFailureUoW manages transactions that record a delivery failure
	// on a manifest line item, resolving the reason from the catalog in the
	// same transaction.
	DeliveryFailureUoW interface {
		TxManager
		ManifestRepoFactory
		FailureReasonRepoFactory
	}

	// DeliveryFailureUoWFactory creates new delivery failure unit of work instances.
	DeliveryFailureUoWFactory interface {
		Create() DeliveryFailureUoW
	}
)
