// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/warelane/shipment-service/internal/domain/dto"
	"github.com/warelane/shipment-service/internal/domain/model"
)

type MockShipmentService struct {
	mock.Mock
}

func (m *MockShipmentService) CreateShipment(ctx context.Context, companyID string, req dto.CreateShipmentRequest) (*dto.ShipmentResponse, error) {
	args := m.Called(ctx, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ShipmentResponse), args.Error(1)
}

func (m *MockShipmentService) GetShipment(ctx context.Context, companyID string, shipmentID primitive.ObjectID) (*dto.ShipmentResponse, error) {
	args := m.Called(ctx, companyID, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ShipmentResponse), args.Error(1)
}

type MockAllocationService struct {
	mock.Mock
}

func (m *MockAllocationService) AssignBoxes(ctx context.Context, companyID, userID string, shipmentID primitive.ObjectID, req dto.AssignBoxesRequest) (*dto.AssignBoxesResponse, error) {
	args := m.Called(ctx, companyID, userID, shipmentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AssignBoxesResponse), args.Error(1)
}

type MockReleaseService struct {
	mock.Mock
}

func (m *MockReleaseService) ReleaseBoxes(ctx context.Context, companyID, userID string, shipmentID primitive.ObjectID, req dto.ReleaseBoxesRequest) (*dto.ReleaseBoxesResponse, error) {
	args := m.Called(ctx, companyID, userID, shipmentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReleaseBoxesResponse), args.Error(1)
}

type MockChargeService struct {
	mock.Mock
}

func (m *MockChargeService) ComputeCharges(ctx context.Context, companyID string, shipmentID primitive.ObjectID, asOf time.Time) (*model.ChargeBreakdown, error) {
	args := m.Called(ctx, companyID, shipmentID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChargeBreakdown), args.Error(1)
}

type MockRackService struct {
	mock.Mock
}

func (m *MockRackService) CreateRack(ctx context.Context, companyID string, req dto.CreateRackRequest) (*dto.RackResponse, error) {
	args := m.Called(ctx, companyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RackResponse), args.Error(1)
}

func (m *MockRackService) GetRack(ctx context.Context, companyID string, rackID primitive.ObjectID) (*dto.RackResponse, error) {
	args := m.Called(ctx, companyID, rackID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RackResponse), args.Error(1)
}

func (m *MockRackService) ListRacks(ctx context.Context, companyID string) ([]dto.RackResponse, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.RackResponse), args.Error(1)
}

func (m *MockRackService) ListActivities(ctx context.Context, companyID string, rackID primitive.ObjectID, limit int) ([]model.RackActivity, error) {
	args := m.Called(ctx, companyID, rackID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RackActivity), args.Error(1)
}

type MockSettingsResolver struct {
	mock.Mock
}

func (m *MockSettingsResolver) GetOrCreate(ctx context.Context, companyID string) (*model.ShipmentSettings, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShipmentSettings), args.Error(1)
}

type MockLoggingService struct {
	mock.Mock
}

func (m *MockLoggingService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLoggingService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLoggingService) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1)
}

func (m *MockLoggingService) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
