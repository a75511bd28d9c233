package commands

import (
	"context"

	"depot/internal/core/domain/model/parcel"
)

// ChangeParcelWeightCommandHandler handles weight corrections on parcels.
// Re-derives the size category from the new weight under the depot's weight
// policy.
type ChangeParcelWeightCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewChangeParcelWeightCommandHandler creates a handler for weight corrections.
// Requires a ParcelUoWFactory for transactional operations.
func NewChangeParcelWeightCommandHandler(uowFactory ParcelUoWFactory) ChangeParcelWeightCommandHandler {
	return ChangeParcelWeightCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the weight correction within a transaction.
// Retrieves the parcel, applies the new weight, and persists the changes.
// Automatically rolls back on any error to maintain data consistency.
func (h *ChangeParcelWeightCommandHandler) Handle(ctx context.Context, cmd ChangeParcelWeightCommand) error {
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

	parcelRepo := uow.ParcelRepository()
	parcelEntity, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = parcelEntity.ChangeWeight(cmd.WeightGrams(), parcel.DefaultWeightPolicy()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, parcelEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
