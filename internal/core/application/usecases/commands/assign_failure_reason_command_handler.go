package commands

import (
	"context"
)

// AssignFailureReasonCommandHandler handles recording delivery failures on
// manifest line items. The reason is resolved from the catalog inside the
// transaction so a reason deactivated moments earlier is rejected.
type AssignFailureReasonCommandHandler struct {
	uowFactory DeliveryFailureUoWFactory
}

// NewAssignFailureReasonCommandHandler creates a handler for delivery
// failure recording. Requires a DeliveryFailureUoWFactory for transactional
// operations.
func NewAssignFailureReasonCommandHandler(uowFactory DeliveryFailureUoWFactory) AssignFailureReasonCommandHandler {
	return AssignFailureReasonCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the failure recording within a transaction.
// Resolves the manifest through its line item, resolves the reason fresh
// from the catalog, and persists the updated line item.
func (h *AssignFailureReasonCommandHandler) Handle(ctx context.Context, cmd AssignFailureReasonCommand) error {
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
	manifestEntity, err := manifestRepo.GetByLineItem(ctx, cmd.LineItemID())
	if err != nil {
		return err
	}

	reason, err := uow.FailureReasonRepository().Get(ctx, cmd.ReasonID())
	if err != nil {
		return err
	}

	if err = manifestEntity.AssignFailureReason(cmd.LineItemID(), reason.ID(), reason); err != nil {
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
