package commands

import (
	"context"
	"fmt"

	"depot/internal/core/domain/model/parcel"
	"depot/internal/pkg/errs"
)

// BulkAssignParcelsCommandHandler handles atomic batch assignment of parcels
// to a manifest. The whole batch is validated before any line item is
// created, and the manifest row stays locked until commit, so a partially
// assigned batch is never observable.
type BulkAssignParcelsCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewBulkAssignParcelsCommandHandler creates a handler for batch assignment.
// Requires an AssignmentUoWFactory for transactional operations.
func NewBulkAssignParcelsCommandHandler(uowFactory AssignmentUoWFactory) BulkAssignParcelsCommandHandler {
	return BulkAssignParcelsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch assignment within a transaction.
// Locks the manifest, resolves every parcel, rejects parcels committed to
// other manifests, and applies the all-or-nothing batch assignment.
func (h *BulkAssignParcelsCommandHandler) Handle(ctx context.Context, cmd BulkAssignParcelsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	manifestRepo := uow.ManifestRepository()
	manifestEntity, err := manifestRepo.GetForUpdate(ctx, cmd.ManifestID())
	if err != nil {
		return err
	}

	parcels, err := uow.ParcelRepository().GetByIDs(ctx, cmd.ParcelIDs())
	if err != nil {
		return err
	}

	for _, p := range parcels {
		assigned, err := manifestRepo.HasActiveAssignment(ctx, p.ID())
		if err != nil {
			return err
		}
		if assigned && !manifestEntity.Contains(p.ID()) {
			return errs.NewInvalidStateErrorWithCause("parcel", p.State().String(),
				fmt.Errorf("parcel %s is already assigned to another manifest", p.ID()))
		}
	}

	if _, err = manifestEntity.AssignBatch(parcels, parcel.DefaultCeilingGrams); err != nil {
		return err
	}

	if err = manifestRepo.Update(ctx, manifestEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
