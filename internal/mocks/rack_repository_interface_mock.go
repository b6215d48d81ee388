// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/warelane/shipment-service/internal/domain/model"
)

type MockRackRepositoryInterface struct {
	mock.Mock
}

func (m *MockRackRepositoryInterface) Create(ctx context.Context, rack *model.Rack) error {
	args := m.Called(ctx, rack)
	return args.Error(0)
}

func (m *MockRackRepositoryInterface) GetByID(ctx context.Context, companyID string, id primitive.ObjectID) (*model.Rack, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Rack), args.Error(1)
}

func (m *MockRackRepositoryInterface) List(ctx context.Context, companyID string) ([]model.Rack, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Rack), args.Error(1)
}

func (m *MockRackRepositoryInterface) Reserve(ctx context.Context, companyID string, id primitive.ObjectID, count int) (*model.Rack, error) {
	args := m.Called(ctx, companyID, id, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Rack), args.Error(1)
}

func (m *MockRackRepositoryInterface) Free(ctx context.Context, id primitive.ObjectID, count int) (*model.Rack, error) {
	args := m.Called(ctx, id, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Rack), args.Error(1)
}
