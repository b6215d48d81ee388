// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/warelane/shipment-service/internal/domain/model"
)

type MockSettingsRepositoryInterface struct {
	mock.Mock
}

func (m *MockSettingsRepositoryInterface) GetByCompany(ctx context.Context, companyID string) (*model.ShipmentSettings, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShipmentSettings), args.Error(1)
}

func (m *MockSettingsRepositoryInterface) Create(ctx context.Context, settings *model.ShipmentSettings) (*model.ShipmentSettings, error) {
	args := m.Called(ctx, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShipmentSettings), args.Error(1)
}
