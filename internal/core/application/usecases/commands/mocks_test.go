package commands_test

import (
	"context"
	"testing"
	"time"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByTrackingID(ctx context.Context, trackingID string) (*shipment.Shipment, error) {
	args := m.Called(ctx, trackingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockShipmentUoW struct{ mock.Mock }

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

func testDetails() shipment.Details {
	return shipment.Details{
		PickupLocation:      "Lagos, Nigeria",
		DestinationLocation: "Accra, Ghana",
		PackageType:         "Crate",
		Weight:              "45kg",
		Dimensions:          "60x40x40cm",
		Phone:               "+2348012345678",
	}
}

func testShipment(t *testing.T, status shipment.Status) *shipment.Shipment {
	t.Helper()

	s, err := shipment.NewShipment(kernel.NewUUID(), "ST-2024-0042", kernel.NewUUID(),
		shipment.ServiceTypeRoad, testDetails(), time.Now().UTC())
	require.NoError(t, err)

	// Walk the lifecycle until the requested status is reached, preferring a
	// direct hop when the target is already a legal successor.
	for s.Status() != status {
		next := s.NextStatuses()
		require.NotEmpty(t, next, "cannot reach %s from %s", status, s.Status())

		target := next[0]
		for _, candidate := range next {
			if candidate == status {
				target = candidate
				break
			}
		}
		require.False(t, target.IsTerminal() && target != status,
			"cannot reach %s from %s", status, s.Status())

		_, err = s.ChangeStatus(target, "", "", time.Now().UTC())
		require.NoError(t, err)
	}

	return s
}
