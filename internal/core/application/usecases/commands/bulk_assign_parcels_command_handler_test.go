package commands_test

import (
	"testing"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBulkAssignParcelsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	m := newEmptyManifest(t)
	parcels := []*parcel.Parcel{
		newDepotParcel(t, 8000),
		newDepotParcel(t, 8000),
		newDepotParcel(t, 8000),
	}
	ids := make([]kernel.UUID, 0, len(parcels))
	for _, p := range parcels {
		ids = append(ids, p.ID())
	}
	cmd, err := commands.NewBulkAssignParcelsCommand(m.ID(), ids)
	require.NoError(t, err)

	manifestRepo := new(MockManifestRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ManifestRepository").Return(manifestRepo).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	manifestRepo.On("GetForUpdate", mock.Anything, m.ID()).Return(m, nil).Once()
	parcelRepo.On("GetByIDs", mock.Anything, ids).Return(parcels, nil).Once()
	for _, p := range parcels {
		manifestRepo.On("HasActiveAssignment", mock.Anything, p.ID()).Return(false, nil).Once()
	}
	manifestRepo.On("Update", mock.Anything, m).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBulkAssignParcelsCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 3, m.ItemCount())
	for i, li := range m.Items() {
		require.Equal(t, i+1, li.Position())
	}
	manifestRepo.AssertExpectations(t)
	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestBulkAssignParcelsCommandHandler_Handle_AllOrNothingOnCapacity(t *testing.T) {
	ctx := t.Context()
	m := newEmptyManifest(t)
	parcels := []*parcel.Parcel{
		newDepotParcel(t, 20000),
		newDepotParcel(t, 5001),
	}
	ids := []kernel.UUID{parcels[0].ID(), parcels[1].ID()}
	cmd, err := commands.NewBulkAssignParcelsCommand(m.ID(), ids)
	require.NoError(t, err)

	manifestRepo := new(MockManifestRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ManifestRepository").Return(manifestRepo).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	manifestRepo.On("GetForUpdate", mock.Anything, m.ID()).Return(m, nil).Once()
	parcelRepo.On("GetByIDs", mock.Anything, ids).Return(parcels, nil).Once()
	for _, p := range parcels {
		manifestRepo.On("HasActiveAssignment", mock.Anything, p.ID()).Return(false, nil).Once()
	}
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBulkAssignParcelsCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
	require.Equal(t, 0, m.ItemCount())
	manifestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestBulkAssignParcelsCommandHandler_Handle_MissingParcel(t *testing.T) {
	ctx := t.Context()
	m := newEmptyManifest(t)
	missingID := kernel.NewUUID()
	cmd, err := commands.NewBulkAssignParcelsCommand(m.ID(), []kernel.UUID{missingID})
	require.NoError(t, err)

	manifestRepo := new(MockManifestRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ManifestRepository").Return(manifestRepo).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	manifestRepo.On("GetForUpdate", mock.Anything, m.ID()).Return(m, nil).Once()
	parcelRepo.On("GetByIDs", mock.Anything, []kernel.UUID{missingID}).
		Return(nil, errs.NewObjectNotFoundError("parcel", missingID.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBulkAssignParcelsCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.Equal(t, 0, m.ItemCount())
	manifestRepo.AssertExpectations(t)
	parcelRepo.AssertExpectations(t)
}

func TestNewBulkAssignParcelsCommand_EmptyBatch(t *testing.T) {
	cmd, err := commands.NewBulkAssignParcelsCommand(kernel.NewUUID(), nil)

	require.ErrorIs(t, err, commands.ErrParcelIDsAreRequired)
	require.Error(t, cmd.Validate())
}

func TestNewBulkAssignParcelsCommand_DeduplicatesParcelIDs(t *testing.T) {
	first := kernel.NewUUID()
	second := kernel.NewUUID()

	cmd, err := commands.NewBulkAssignParcelsCommand(
		kernel.NewUUID(),
		[]kernel.UUID{first, second, first, second, first},
	)

	require.NoError(t, err)
	ids := cmd.ParcelIDs()
	require.Len(t, ids, 2)
	require.True(t, ids[0].IsEqual(first))
	require.True(t, ids[1].IsEqual(second))
}

func TestBulkAssignParcelsCommandHandler_Handle_RepeatedIDAssignedOnce(t *testing.T) {
	ctx := t.Context()
	m := newEmptyManifest(t)
	p := newDepotParcel(t, 8000)
	cmd, err := commands.NewBulkAssignParcelsCommand(m.ID(), []kernel.UUID{p.ID(), p.ID()})
	require.NoError(t, err)

	manifestRepo := new(MockManifestRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ManifestRepository").Return(manifestRepo).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	manifestRepo.On("GetForUpdate", mock.Anything, m.ID()).Return(m, nil).Once()
	parcelRepo.On("GetByIDs", mock.Anything, []kernel.UUID{p.ID()}).
		Return([]*parcel.Parcel{p}, nil).Once()
	manifestRepo.On("HasActiveAssignment", mock.Anything, p.ID()).Return(false, nil).Once()
	manifestRepo.On("Update", mock.Anything, m).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBulkAssignParcelsCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 1, m.ItemCount())
	manifestRepo.AssertExpectations(t)
	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
