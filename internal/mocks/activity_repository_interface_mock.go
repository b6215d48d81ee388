// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/warelane/shipment-service/internal/domain/model"
)

type MockActivityRepositoryInterface struct {
	mock.Mock
}

func (m *MockActivityRepositoryInterface) Append(ctx context.Context, activity *model.RackActivity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepositoryInterface) ListByRack(ctx context.Context, rackID primitive.ObjectID, limit int) ([]model.RackActivity, error) {
	args := m.Called(ctx, rackID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RackActivity), args.Error(1)
}
