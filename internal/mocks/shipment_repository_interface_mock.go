// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/warelane/shipment-service/internal/domain/model"
	"github.com/warelane/shipment-service/internal/repository"
)

type MockShipmentRepositoryInterface struct {
	mock.Mock
}

func (m *MockShipmentRepositoryInterface) Create(ctx context.Context, shipment *model.Shipment, boxes []model.ShipmentBox) error {
	args := m.Called(ctx, shipment, boxes)
	return args.Error(0)
}

func (m *MockShipmentRepositoryInterface) GetByID(ctx context.Context, companyID string, id primitive.ObjectID) (*model.Shipment, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Shipment), args.Error(1)
}

func (m *MockShipmentRepositoryInterface) ApplyTally(ctx context.Context, id primitive.ObjectID, update repository.ShipmentTallyUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}
