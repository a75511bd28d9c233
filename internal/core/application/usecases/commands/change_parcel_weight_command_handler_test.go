package commands_test

import (
	"testing"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeParcelWeightCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	p := newDepotParcel(t, 500)
	require.Equal(t, parcel.Small, p.Size())
	cmd, err := commands.NewChangeParcelWeightCommand(p.ID(), 4200)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		parcelRepo.On("Update", mock.Anything, p).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeParcelWeightCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.InDelta(t, 4200.0, p.WeightGrams(), 0)
	require.Equal(t, parcel.Large, p.Size())
	parcelRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeParcelWeightCommandHandler_Handle_WeightOutOfRange(t *testing.T) {
	ctx := t.Context()
	p := newDepotParcel(t, 500)
	cmd, err := commands.NewChangeParcelWeightCommand(p.ID(), 0)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, p.ID()).Return(p, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeParcelWeightCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	require.InDelta(t, 500.0, p.WeightGrams(), 0)
	parcelRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
