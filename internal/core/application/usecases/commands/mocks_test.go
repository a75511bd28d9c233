package commands_test

import (
	"context"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/domain/model/client"
	"depot/internal/core/domain/model/failurereason"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/manifest"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Update(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Get(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetAllInDepot(ctx context.Context) ([]*parcel.Parcel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

type MockManifestRepository struct{ mock.Mock }

func (m *MockManifestRepository) Add(ctx context.Context, aggregate *manifest.Manifest) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockManifestRepository) Update(ctx context.Context, aggregate *manifest.Manifest) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockManifestRepository) Get(ctx context.Context, id kernel.UUID) (*manifest.Manifest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*manifest.Manifest), args.Error(1)
}

func (m *MockManifestRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*manifest.Manifest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*manifest.Manifest), args.Error(1)
}

func (m *MockManifestRepository) GetByLineItem(ctx context.Context, lineItemID kernel.UUID) (*manifest.Manifest, error) {
	args := m.Called(ctx, lineItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*manifest.Manifest), args.Error(1)
}

func (m *MockManifestRepository) HasActiveAssignment(ctx context.Context, parcelID kernel.UUID) (bool, error) {
	args := m.Called(ctx, parcelID)
	return args.Bool(0), args.Error(1)
}

type MockFailureReasonRepository struct{ mock.Mock }

func (m *MockFailureReasonRepository) Add(ctx context.Context, reason *failurereason.Simple) error {
	args := m.Called(ctx, reason)
	return args.Error(0)
}

func (m *MockFailureReasonRepository) Update(ctx context.Context, reason *failurereason.Simple) error {
	args := m.Called(ctx, reason)
	return args.Error(0)
}

func (m *MockFailureReasonRepository) Get(ctx context.Context, id kernel.UUID) (*failurereason.Simple, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*failurereason.Simple), args.Error(1)
}

func (m *MockFailureReasonRepository) GetAllActive(ctx context.Context) ([]*failurereason.Simple, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*failurereason.Simple), args.Error(1)
}

// MockUoW satisfies every composed unit of work interface in this package so
// each handler test can use the same mock with its own factory.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) ManifestRepository() ports.ManifestRepository {
	args := m.Called()
	return args.Get(0).(ports.ManifestRepository)
}

func (m *MockUoW) FailureReasonRepository() ports.FailureReasonRepository {
	args := m.Called()
	return args.Get(0).(ports.FailureReasonRepository)
}

type MockClientUoWFactory struct{ mock.Mock }

func (m *MockClientUoWFactory) Create() commands.ClientUoW {
	args := m.Called()
	return args.Get(0).(commands.ClientUoW)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockManifestUoWFactory struct{ mock.Mock }

func (m *MockManifestUoWFactory) Create() commands.ManifestUoW {
	args := m.Called()
	return args.Get(0).(commands.ManifestUoW)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockFailureReasonUoWFactory struct{ mock.Mock }

func (m *MockFailureReasonUoWFactory) Create() commands.FailureReasonUoW {
	args := m.Called()
	return args.Get(0).(commands.FailureReasonUoW)
}

type MockDeliveryFailureUoWFactory struct{ mock.Mock }

func (m *MockDeliveryFailureUoWFactory) Create() commands.DeliveryFailureUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryFailureUoW)
}
