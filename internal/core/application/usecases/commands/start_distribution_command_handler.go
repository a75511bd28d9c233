package commands

import (
	"context"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
)

// StartDistributionCommandHandler handles sending a manifest out for
// distribution. Every contained parcel still in depot custody transitions to
// distribution in one transaction; parcels already in distribution are left
// untouched, which makes the operation idempotent.
//
// Example:
//
//	handler := NewStartDistributionCommandHandler(uowFactory)
//	cmd, _ := NewStartDistributionCommand(manifestID)
//
//	changed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("distribution start failed: %w", err)
//	}
//	fmt.Printf("%d parcels left the depot", changed)
type StartDistributionCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewStartDistributionCommandHandler creates a handler for distribution
// start. Requires an AssignmentUoWFactory for transactional operations.
func NewStartDistributionCommandHandler(uowFactory AssignmentUoWFactory) StartDistributionCommandHandler {
	return StartDistributionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the distribution start within a transaction and returns
// the number of parcels that changed state. A second invocation on the same
// manifest returns 0 without error.
func (h *StartDistributionCommandHandler) Handle(ctx context.Context, cmd StartDistributionCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	manifestEntity, err := uow.ManifestRepository().GetForUpdate(ctx, cmd.ManifestID())
	if err != nil {
		return 0, err
	}

	items := manifestEntity.Items()
	parcelIDs := make([]kernel.UUID, 0, len(items))
	for _, li := range items {
		parcelIDs = append(parcelIDs, li.ParcelID())
	}

	parcelRepo := uow.ParcelRepository()

	var parcels []*parcel.Parcel
	if len(parcelIDs) > 0 {
		if parcels, err = parcelRepo.GetByIDs(ctx, parcelIDs); err != nil {
			return 0, err
		}
	}

	changed, err := manifestEntity.MarkAllInDistribution(parcels)
	if err != nil {
		return 0, err
	}

	for _, p := range parcels {
		if err = parcelRepo.Update(ctx, p); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return changed, nil
}
