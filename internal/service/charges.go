package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/warelane/shipment-service/internal/domain/apperr"
	"github.com/warelane/shipment-service/internal/domain/model"
	"github.com/warelane/shipment-service/internal/repository"
)

// ComputeChargeBreakdown itemizes the storage and handling charges for
// releasing boxCount boxes at asOf. It is a pure function of its inputs:
// the same arrival date, instant, box count and rates always produce the
// same breakdown, and total always equals the sum of the line items.
func ComputeChargeBreakdown(arrival, asOf time.Time, boxCount int, settings *model.ShipmentSettings) model.ChargeBreakdown {
	storageDays := model.StorageDaysBetween(arrival, asOf)
	chargeableDays := storageDays
	if settings.MinimumChargeDays > chargeableDays {
		chargeableDays = settings.MinimumChargeDays
	}

	days := decimal.NewFromInt(int64(chargeableDays))
	count := decimal.NewFromInt(int64(boxCount))

	storage := days.Mul(decimal.NewFromFloat(settings.StorageRatePerDay))
	boxes := decimal.Zero
	if settings.StorageRatePerBox > 0 {
		boxes = count.Mul(decimal.NewFromFloat(settings.StorageRatePerBox))
	}
	handling := decimal.NewFromFloat(settings.ReleaseHandlingFee)
	perBox := count.Mul(decimal.NewFromFloat(settings.ReleasePerBoxFee))
	transport := decimal.NewFromFloat(settings.ReleaseTransportFee)

	return model.ChargeBreakdown{
		StorageDays:      storageDays,
		ChargeableDays:   chargeableDays,
		ReleasedBoxCount: boxCount,
		Storage:          storage,
		Boxes:            boxes,
		Handling:         handling,
		PerBox:           perBox,
		Transport:        transport,
		Total:            storage.Add(boxes).Add(handling).Add(perBox).Add(transport),
	}
}

// ChargeService defines the charge preview operation.
// This interface can be mocked for testing.
type ChargeService interface {
	// ComputeCharges previews the charges for releasing every currently
	// stored box of the shipment at asOf.
	ComputeCharges(ctx context.Context, companyID string, shipmentID primitive.ObjectID, asOf time.Time) (*model.ChargeBreakdown, error)
}

// ChargeServiceImpl implements the ChargeService interface.
type ChargeServiceImpl struct {
	shipments repository.ShipmentRepositoryInterface
	boxes     repository.BoxRepositoryInterface
	settings  SettingsResolver
}

// NewChargeService creates a new charge service implementation.
func NewChargeService(
	shipments repository.ShipmentRepositoryInterface,
	boxes repository.BoxRepositoryInterface,
	settings SettingsResolver,
) ChargeService {
	return &ChargeServiceImpl{
		shipments: shipments,
		boxes:     boxes,
		settings:  settings,
	}
}

// ComputeCharges previews the charges for a full release at asOf. The box
// count is the shipment's currently stored boxes, so the preview matches what
// a release_all call at asOf would bill.
func (s *ChargeServiceImpl) ComputeCharges(ctx context.Context, companyID string, shipmentID primitive.ObjectID, asOf time.Time) (*model.ChargeBreakdown, error) {
	shipment, err := s.shipments.GetByID(ctx, companyID, shipmentID)
	if err != nil {
		if err == repository.ErrShipmentNotFound {
			return nil, apperr.NotFound("shipment")
		}
		return nil, apperr.Internal(err)
	}

	settings, err := s.settings.GetOrCreate(ctx, companyID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	tally, err := s.boxes.Tally(ctx, shipmentID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	breakdown := ComputeChargeBreakdown(shipment.ArrivalDate, asOf, tally.InStorage, settings)
	return &breakdown, nil
}
