// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/warelane/shipment-service/internal/domain/model"
)

type MockBoxRepositoryInterface struct {
	mock.Mock
}

func (m *MockBoxRepositoryInterface) ListByShipment(ctx context.Context, shipmentID primitive.ObjectID) ([]model.ShipmentBox, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShipmentBox), args.Error(1)
}

func (m *MockBoxRepositoryInterface) ListByNumbers(ctx context.Context, shipmentID primitive.ObjectID, numbers []int) ([]model.ShipmentBox, error) {
	args := m.Called(ctx, shipmentID, numbers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShipmentBox), args.Error(1)
}

func (m *MockBoxRepositoryInterface) Update(ctx context.Context, box *model.ShipmentBox) error {
	args := m.Called(ctx, box)
	return args.Error(0)
}

func (m *MockBoxRepositoryInterface) Tally(ctx context.Context, shipmentID primitive.ObjectID) (model.BoxTally, error) {
	args := m.Called(ctx, shipmentID)
	return args.Get(0).(model.BoxTally), args.Error(1)
}

func (m *MockBoxRepositoryInterface) CountInStorageAtRack(ctx context.Context, rackID primitive.ObjectID) (int, error) {
	args := m.Called(ctx, rackID)
	return args.Int(0), args.Error(1)
}
