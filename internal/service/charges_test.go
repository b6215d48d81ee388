//go:build !integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/warelane/shipment-service/internal/domain/apperr"
	"github.com/warelane/shipment-service/internal/domain/model"
	"github.com/warelane/shipment-service/internal/mocks"
	"github.com/warelane/shipment-service/internal/repository"
)

func TestComputeChargeBreakdown(t *testing.T) {
	asOf := time.Date(2025, 6, 6, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		arrival        time.Time
		boxCount       int
		settings       *model.ShipmentSettings
		wantStorage    int
		wantChargeable int
		wantTotal      string
	}{
		{
			name:     "five full days with all release fees",
			arrival:  asOf.Add(-5 * 24 * time.Hour),
			boxCount: 4,
			settings: &model.ShipmentSettings{
				MinimumChargeDays:  3,
				StorageRatePerDay:  2.5,
				ReleaseHandlingFee: 5,
				ReleasePerBoxFee:   1,
			},
			wantStorage:    5,
			wantChargeable: 5,
			// storage 12.5 + handling 5 + per-box 4
			wantTotal: "21.5",
		},
		{
			name:     "minimum charge days floor applies",
			arrival:  asOf.Add(-24 * time.Hour),
			boxCount: 2,
			settings: &model.ShipmentSettings{
				MinimumChargeDays: 3,
				StorageRatePerDay: 2,
			},
			wantStorage:    1,
			wantChargeable: 3,
			wantTotal:      "6",
		},
		{
			name:           "same instant release charges nothing",
			arrival:        asOf,
			boxCount:       3,
			settings:       &model.ShipmentSettings{StorageRatePerDay: 2.5},
			wantStorage:    0,
			wantChargeable: 0,
			wantTotal:      "0",
		},
		{
			name:     "partial day rounds up",
			arrival:  asOf.Add(-36 * time.Hour),
			boxCount: 1,
			settings: &model.ShipmentSettings{StorageRatePerDay: 3},
			wantStorage:    2,
			wantChargeable: 2,
			wantTotal:      "6",
		},
		{
			name:     "per-box storage rate only when configured",
			arrival:  asOf.Add(-2 * 24 * time.Hour),
			boxCount: 4,
			settings: &model.ShipmentSettings{
				StorageRatePerDay: 1,
				StorageRatePerBox: 0.75,
			},
			wantStorage:    2,
			wantChargeable: 2,
			// storage 2 + boxes 3
			wantTotal: "5",
		},
		{
			name:     "transport fee included in total",
			arrival:  asOf.Add(-24 * time.Hour),
			boxCount: 1,
			settings: &model.ShipmentSettings{
				StorageRatePerDay:   2,
				ReleaseTransportFee: 7.5,
			},
			wantStorage:    1,
			wantChargeable: 1,
			wantTotal:      "9.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown := ComputeChargeBreakdown(tt.arrival, asOf, tt.boxCount, tt.settings)

			assert.Equal(t, tt.wantStorage, breakdown.StorageDays)
			assert.Equal(t, tt.wantChargeable, breakdown.ChargeableDays)
			assert.Equal(t, tt.boxCount, breakdown.ReleasedBoxCount)

			wantTotal, err := decimal.NewFromString(tt.wantTotal)
			assert.NoError(t, err)
			assert.True(t, breakdown.Total.Equal(wantTotal),
				"total = %s, want %s", breakdown.Total, wantTotal)

			sum := breakdown.Storage.
				Add(breakdown.Boxes).
				Add(breakdown.Handling).
				Add(breakdown.PerBox).
				Add(breakdown.Transport)
			assert.True(t, breakdown.Total.Equal(sum), "total must equal the sum of line items")
		})
	}
}

func TestComputeChargeBreakdown_Deterministic(t *testing.T) {
	arrival := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	asOf := time.Date(2025, 6, 6, 12, 0, 0, 0, time.UTC)
	settings := &model.ShipmentSettings{
		MinimumChargeDays:  3,
		StorageRatePerDay:  2.5,
		StorageRatePerBox:  0.1,
		ReleaseHandlingFee: 5,
		ReleasePerBoxFee:   1,
	}

	first := ComputeChargeBreakdown(arrival, asOf, 4, settings)
	second := ComputeChargeBreakdown(arrival, asOf, 4, settings)

	assert.Equal(t, first.StorageDays, second.StorageDays)
	assert.Equal(t, first.ChargeableDays, second.ChargeableDays)
	assert.True(t, first.Total.Equal(second.Total))
	assert.True(t, first.Storage.Equal(second.Storage))
}

func TestComputeChargeBreakdown_ZeroBoxes(t *testing.T) {
	asOf := time.Date(2025, 6, 6, 12, 0, 0, 0, time.UTC)
	settings := &model.ShipmentSettings{
		StorageRatePerDay: 2.5,
		ReleasePerBoxFee:  1,
		StorageRatePerBox: 0.5,
	}

	breakdown := ComputeChargeBreakdown(asOf.Add(-24*time.Hour), asOf, 0, settings)

	assert.Equal(t, 0, breakdown.ReleasedBoxCount)
	assert.True(t, breakdown.PerBox.IsZero())
	assert.True(t, breakdown.Boxes.IsZero())
	assert.True(t, breakdown.Total.Equal(decimal.NewFromFloat(2.5)))
}

func TestChargeService_ComputeCharges(t *testing.T) {
	companyID := "company-1"
	shipmentID := primitive.NewObjectID()
	arrival := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	asOf := time.Date(2025, 6, 6, 9, 0, 0, 0, time.UTC)

	shipment := &model.Shipment{
		ID:          shipmentID,
		CompanyID:   companyID,
		ArrivalDate: arrival,
	}
	settings := &model.ShipmentSettings{
		StorageRatePerDay:  2.5,
		ReleaseHandlingFee: 5,
		ReleasePerBoxFee:   1,
	}

	tests := []struct {
		name      string
		setupMock func(*mocks.MockShipmentRepositoryInterface, *mocks.MockBoxRepositoryInterface, *mocks.MockSettingsResolver)
		check     func(*testing.T, *model.ChargeBreakdown, error)
	}{
		{
			name: "preview covers the currently stored boxes",
			setupMock: func(shipments *mocks.MockShipmentRepositoryInterface, boxes *mocks.MockBoxRepositoryInterface, resolver *mocks.MockSettingsResolver) {
				shipments.On("GetByID", mock.Anything, companyID, shipmentID).Return(shipment, nil)
				resolver.On("GetOrCreate", mock.Anything, companyID).Return(settings, nil)
				boxes.On("Tally", mock.Anything, shipmentID).Return(model.BoxTally{InStorage: 4, Released: 2}, nil)
			},
			check: func(t *testing.T, breakdown *model.ChargeBreakdown, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 4, breakdown.ReleasedBoxCount)
				assert.Equal(t, 5, breakdown.StorageDays)
				assert.True(t, breakdown.Total.Equal(decimal.NewFromFloat(21.5)),
					"total = %s", breakdown.Total)
			},
		},
		{
			name: "unknown shipment maps to not found",
			setupMock: func(shipments *mocks.MockShipmentRepositoryInterface, boxes *mocks.MockBoxRepositoryInterface, resolver *mocks.MockSettingsResolver) {
				shipments.On("GetByID", mock.Anything, companyID, shipmentID).Return(nil, repository.ErrShipmentNotFound)
			},
			check: func(t *testing.T, breakdown *model.ChargeBreakdown, err error) {
				assert.Nil(t, breakdown)
				appErr, ok := apperr.As(err)
				assert.True(t, ok)
				assert.Equal(t, apperr.CodeNotFound, appErr.Code)
			},
		},
		{
			name: "settings failure surfaces as internal",
			setupMock: func(shipments *mocks.MockShipmentRepositoryInterface, boxes *mocks.MockBoxRepositoryInterface, resolver *mocks.MockSettingsResolver) {
				shipments.On("GetByID", mock.Anything, companyID, shipmentID).Return(shipment, nil)
				resolver.On("GetOrCreate", mock.Anything, companyID).Return(nil, errors.New("settings unavailable"))
			},
			check: func(t *testing.T, breakdown *model.ChargeBreakdown, err error) {
				assert.Nil(t, breakdown)
				appErr, ok := apperr.As(err)
				assert.True(t, ok)
				assert.Equal(t, apperr.CodeInternal, appErr.Code)
			},
		},
		{
			name: "tally failure surfaces as internal",
			setupMock: func(shipments *mocks.MockShipmentRepositoryInterface, boxes *mocks.MockBoxRepositoryInterface, resolver *mocks.MockSettingsResolver) {
				shipments.On("GetByID", mock.Anything, companyID, shipmentID).Return(shipment, nil)
				resolver.On("GetOrCreate", mock.Anything, companyID).Return(settings, nil)
				boxes.On("Tally", mock.Anything, shipmentID).Return(model.BoxTally{}, errors.New("aggregation failed"))
			},
			check: func(t *testing.T, breakdown *model.ChargeBreakdown, err error) {
				assert.Nil(t, breakdown)
				appErr, ok := apperr.As(err)
				assert.True(t, ok)
				assert.Equal(t, apperr.CodeInternal, appErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shipments := new(mocks.MockShipmentRepositoryInterface)
			boxes := new(mocks.MockBoxRepositoryInterface)
			resolver := new(mocks.MockSettingsResolver)
			tt.setupMock(shipments, boxes, resolver)

			svc := NewChargeService(shipments, boxes, resolver)
			breakdown, err := svc.ComputeCharges(context.Background(), companyID, shipmentID, asOf)
			tt.check(t, breakdown, err)

			shipments.AssertExpectations(t)
			boxes.AssertExpectations(t)
			resolver.AssertExpectations(t)
		})
	}
}
