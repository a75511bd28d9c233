package commands_test

import (
	"testing"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	m := newEmptyManifest(t)
	p := newDepotParcel(t, 500)
	cmd, err := commands.NewAssignParcelCommand(m.ID(), p.ID())
	require.NoError(t, err)

	manifestRepo := new(MockManifestRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		uow.On("ManifestRepository").Return(manifestRepo).Once(),
		manifestRepo.On("GetForUpdate", mock.Anything, m.ID()).Return(m, nil).Once(),
		manifestRepo.On("HasActiveAssignment", mock.Anything, p.ID()).Return(false, nil).Once(),
		manifestRepo.On("Update", mock.Anything, m).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignParcelCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 1, m.ItemCount())
	require.True(t, m.Contains(p.ID()))
	manifestRepo.AssertExpectations(t)
	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAssignParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignParcelCommand{} // not constructed properly
	factory := new(MockAssignmentUoWFactory)
	h := commands.NewAssignParcelCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestAssignParcelCommandHandler_Handle_ParcelOnAnotherManifest(t *testing.T) {
	ctx := t.Context()
	m := newEmptyManifest(t)
	p := newDepotParcel(t, 500)
	cmd, err := commands.NewAssignParcelCommand(m.ID(), p.ID())
	require.NoError(t, err)

	manifestRepo := new(MockManifestRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		uow.On("ManifestRepository").Return(manifestRepo).Once(),
		manifestRepo.On("GetForUpdate", mock.Anything, m.ID()).Return(m, nil).Once(),
		manifestRepo.On("HasActiveAssignment", mock.Anything, p.ID()).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignParcelCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	require.Equal(t, 0, m.ItemCount())
	manifestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignParcelCommandHandler_Handle_ParcelNotInDepot(t *testing.T) {
	ctx := t.Context()
	m := newEmptyManifest(t)
	p := newDepotParcel(t, 500)
	require.NoError(t, p.StartDistribution())
	cmd, err := commands.NewAssignParcelCommand(m.ID(), p.ID())
	require.NoError(t, err)

	// Custody is checked before the manifest is resolved, so the manifest
	// repository must not be touched.
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignParcelCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "ManifestRepository")
}

func TestAssignParcelCommandHandler_Handle_CapacityExceeded(t *testing.T) {
	ctx := t.Context()
	m := newEmptyManifest(t)
	_, err := m.Assign(newDepotParcel(t, 24500), 25000)
	require.NoError(t, err)
	p := newDepotParcel(t, 501)
	cmd, err := commands.NewAssignParcelCommand(m.ID(), p.ID())
	require.NoError(t, err)

	manifestRepo := new(MockManifestRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		uow.On("ManifestRepository").Return(manifestRepo).Once(),
		manifestRepo.On("GetForUpdate", mock.Anything, m.ID()).Return(m, nil).Once(),
		manifestRepo.On("HasActiveAssignment", mock.Anything, p.ID()).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignParcelCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
	require.Equal(t, 1, m.ItemCount())
	manifestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignParcelCommandHandler_Handle_ManifestNotFound(t *testing.T) {
	ctx := t.Context()
	m := newEmptyManifest(t)
	p := newDepotParcel(t, 500)
	cmd, err := commands.NewAssignParcelCommand(m.ID(), p.ID())
	require.NoError(t, err)

	manifestRepo := new(MockManifestRepository)
	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		uow.On("ManifestRepository").Return(manifestRepo).Once(),
		manifestRepo.On("GetForUpdate", mock.Anything, m.ID()).
			Return(nil, errs.NewObjectNotFoundError("manifest", m.ID().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignParcelCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	manifestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
