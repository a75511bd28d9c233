package commands

import (
	"context"
	"fmt"

	"depot/internal/core/domain/model/parcel"
	"depot/internal/pkg/errs"
)

// AssignParcelCommandHandler handles adding one parcel to a manifest.
//
// The manifest row is locked for the duration of the transaction so that
// concurrent assignments to the same manifest serialize and the capacity
// ceiling cannot be breached by a race. A parcel that already sits on
// another manifest while still in depot custody is rejected.
type AssignParcelCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignParcelCommandHandler creates a handler for single-parcel
// assignment. Requires an AssignmentUoWFactory for transactional operations.
func NewAssignParcelCommandHandler(uowFactory AssignmentUoWFactory) AssignParcelCommandHandler {
	return AssignParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment within a transaction.
// Checks the parcel's depot custody first, then locks the manifest, verifies
// the parcel is not already committed to a manifest, applies the assignment
// rules, and persists the new line item.
func (h *AssignParcelCommandHandler) Handle(ctx context.Context, cmd AssignParcelCommand) error {
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

	parcelEntity, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}
	if parcelEntity.State() != parcel.InDepot {
		return errs.NewInvalidStateError("parcel", parcelEntity.State().String())
	}

	manifestRepo := uow.ManifestRepository()
	manifestEntity, err := manifestRepo.GetForUpdate(ctx, cmd.ManifestID())
	if err != nil {
		return err
	}

	assigned, err := manifestRepo.HasActiveAssignment(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}
	if assigned && !manifestEntity.Contains(cmd.ParcelID()) {
		return errs.NewInvalidStateErrorWithCause("parcel", parcelEntity.State().String(),
			fmt.Errorf("parcel %s is already assigned to another manifest", cmd.ParcelID()))
	}

	if _, err = manifestEntity.Assign(parcelEntity, parcel.DefaultCeilingGrams); err != nil {
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
