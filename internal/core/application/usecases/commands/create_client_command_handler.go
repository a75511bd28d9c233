package commands

import (
	"context"

	"depot/internal/core/domain/model/client"
)

// CreateClientCommandHandler handles the business logic for client
// registration.
type CreateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewCreateClientCommandHandler creates a handler for client registration.
// Requires a ClientUoWFactory for transactional persistence.
func NewCreateClientCommandHandler(uowFactory ClientUoWFactory) CreateClientCommandHandler {
	return CreateClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the client registration command.
// Uses a transaction to ensure the client is properly persisted or rolled
// back on error.
func (h *CreateClientCommandHandler) Handle(ctx context.Context, cmd CreateClientCommand) error {
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

	newClient, err := client.NewClient(cmd.ClientID(), cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Address())
	if err != nil {
		return err
	}

	if err = uow.ClientRepository().Add(ctx, newClient); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
