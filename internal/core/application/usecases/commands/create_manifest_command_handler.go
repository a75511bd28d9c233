package commands

import (
	"context"
	"time"

	"depot/internal/core/domain/model/manifest"
)

// CreateManifestCommandHandler handles the business logic for opening a
// dispatch manifest. The creation timestamp is captured once here and never
// changes afterwards.
type CreateManifestCommandHandler struct {
	uowFactory ManifestUoWFactory
}

// NewCreateManifestCommandHandler creates a handler for manifest creation.
// Requires a ManifestUoWFactory for transactional persistence.
func NewCreateManifestCommandHandler(uowFactory ManifestUoWFactory) CreateManifestCommandHandler {
	return CreateManifestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the manifest creation command.
// Creates an empty manifest with the current timestamp and persists it.
func (h *CreateManifestCommandHandler) Handle(ctx context.Context, cmd CreateManifestCommand) error {
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

	newManifest, err := manifest.NewManifest(cmd.ManifestID(), cmd.Number(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.ManifestRepository().Add(ctx, newManifest); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
