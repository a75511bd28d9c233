package commands

import (
	"context"

	"depot/internal/core/domain/model/failurereason"
)

// CreateFailureReasonCommandHandler handles additions to the failure reason
// catalog.
type CreateFailureReasonCommandHandler struct {
	uowFactory FailureReasonUoWFactory
}

// NewCreateFailureReasonCommandHandler creates a handler for catalog
// additions. Requires a FailureReasonUoWFactory for transactional
// persistence.
func NewCreateFailureReasonCommandHandler(uowFactory FailureReasonUoWFactory) CreateFailureReasonCommandHandler {
	return CreateFailureReasonCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the catalog addition. An active reason becomes
// immediately available for delivery failure recording; an inactive one is
// listed but not selectable.
func (h *CreateFailureReasonCommandHandler) Handle(ctx context.Context, cmd CreateFailureReasonCommand) error {
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

	reason, err := failurereason.NewSimple(cmd.ReasonID(), cmd.Code(), cmd.Name(), cmd.Description(), cmd.Active())
	if err != nil {
		return err
	}

	if err = uow.FailureReasonRepository().Add(ctx, reason); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
