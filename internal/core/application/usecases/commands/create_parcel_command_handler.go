package commands

import (
	"context"

	"depot/internal/core/domain/model/parcel"
)

// CreateParcelCommandHandler handles the business logic for parcel
// registration. The parcel enters depot custody immediately and its size
// category is derived from the declared weight.
//
// Example:
//
//	handler := NewCreateParcelCommandHandler(uowFactory)
//	cmd, _ := NewCreateParcelCommand(parcelID, clientID, "TRK-00042",
//	    "Maria Gomez", "555-0100", "Av. Libertador 742", 1250, 40)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("parcel registration failed: %w", err)
//	}
//	// Parcel is now in depot custody, classified by weight
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel registration.
// Requires a ParcelUoWFactory for transactional persistence.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel registration command.
// Verifies the owning client exists, then creates the parcel in depot
// custody with its size derived from the weight policy.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) error {
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

	owner, err := uow.ClientRepository().Get(ctx, cmd.ClientID())
	if err != nil {
		return err
	}

	recipient, err := parcel.NewRecipient(cmd.RecipientName(), cmd.RecipientPhone(), cmd.RecipientAddress())
	if err != nil {
		return err
	}

	newParcel, err := parcel.NewParcel(
		cmd.ParcelID(),
		owner.ID(),
		cmd.Tracking(),
		recipient,
		cmd.WeightGrams(),
		cmd.HeightCm(),
		parcel.DefaultWeightPolicy(),
	)
	if err != nil {
		return err
	}

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
