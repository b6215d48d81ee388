package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/warelane/shipment-service/internal/domain/apperr"
	"github.com/warelane/shipment-service/internal/domain/dto"
	"github.com/warelane/shipment-service/internal/domain/model"
	"github.com/warelane/shipment-service/internal/metrics"
	"github.com/warelane/shipment-service/internal/repository"
)

// ReleaseService hands stored boxes back to clients under the company's
// release policy.
// This interface can be mocked for testing.
type ReleaseService interface {
	// ReleaseBoxes releases some or all stored boxes of a shipment.
	ReleaseBoxes(ctx context.Context, companyID, userID string, shipmentID primitive.ObjectID, req dto.ReleaseBoxesRequest) (*dto.ReleaseBoxesResponse, error)
}

// ReleaseServiceImpl implements the ReleaseService interface.
type ReleaseServiceImpl struct {
	tx         repository.TxRunner
	shipments  repository.ShipmentRepositoryInterface
	boxes      repository.BoxRepositoryInterface
	racks      repository.RackRepositoryInterface
	activities repository.ActivityRepositoryInterface
	settings   SettingsResolver
	notifier   Notifier
	invoices   InvoiceDispatcher
}

// NewReleaseService creates a new release service implementation.
func NewReleaseService(
	tx repository.TxRunner,
	shipments repository.ShipmentRepositoryInterface,
	boxes repository.BoxRepositoryInterface,
	racks repository.RackRepositoryInterface,
	activities repository.ActivityRepositoryInterface,
	settings SettingsResolver,
	notifier Notifier,
	invoices InvoiceDispatcher,
) ReleaseService {
	return &ReleaseServiceImpl{
		tx:         tx,
		shipments:  shipments,
		boxes:      boxes,
		racks:      racks,
		activities: activities,
		settings:   settings,
		notifier:   notifier,
		invoices:   invoices,
	}
}

// releaseOutcome carries the transaction results needed after commit.
type releaseOutcome struct {
	shipment *model.Shipment
	response *dto.ReleaseBoxesResponse
	released int
}

// ReleaseBoxes validates the request against the company settings, then
// releases the eligible boxes inside one transaction: rack capacity is freed,
// boxes transition to RELEASED and the shipment aggregate is recomputed
// together. Charges and notifications follow only after the commit.
func (s *ReleaseServiceImpl) ReleaseBoxes(ctx context.Context, companyID, userID string, shipmentID primitive.ObjectID, req dto.ReleaseBoxesRequest) (*dto.ReleaseBoxesResponse, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		metrics.RecordRelease(time.Since(start), "invalid")
		return nil, apperr.InvalidRequest(err.Error())
	}

	settings, err := s.settings.GetOrCreate(ctx, companyID)
	if err != nil {
		metrics.RecordRelease(time.Since(start), "failed")
		return nil, apperr.Internal(err)
	}
	if err := validateReleasePolicy(settings, req); err != nil {
		metrics.RecordRelease(time.Since(start), "rejected")
		return nil, err
	}

	var outcome releaseOutcome
	txErr := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		outcome, err = s.releaseBoxesTx(ctx, companyID, userID, shipmentID, settings, req)
		return err
	})
	if txErr != nil {
		metrics.RecordRelease(time.Since(start), "failed")
		if appErr, ok := apperr.As(txErr); ok {
			return nil, appErr
		}
		return nil, apperr.Internal(txErr)
	}

	s.afterRelease(ctx, settings, outcome)

	metrics.RecordRelease(time.Since(start), "success")
	log.Info().
		Str("company_id", companyID).
		Str("shipment_id", shipmentID.Hex()).
		Int("released", outcome.response.ReleasedCount).
		Int("remaining", outcome.response.RemainingCount).
		Str("status", string(outcome.response.ShipmentStatus)).
		Msg("Boxes released")
	return outcome.response, nil
}

// validateReleasePolicy checks the settings-driven preconditions. Each
// rejection names the unmet requirement so the caller can fix the request
// without another round trip.
func validateReleasePolicy(settings *model.ShipmentSettings, req dto.ReleaseBoxesRequest) error {
	if settings.RequireIDVerification && req.CollectorID == "" {
		return apperr.ValidationFailed("collector id required", "collector_id")
	}
	if settings.RequireReleasePhotos && len(req.ReleasePhotos) == 0 {
		return apperr.ValidationFailed("release photos required", "release_photos")
	}
	if !req.ReleaseAll {
		if !settings.AllowPartialRelease {
			return apperr.PolicyViolation("partial release is not allowed for this company", nil)
		}
		if len(req.BoxNumbers) < settings.PartialReleaseMin {
			return apperr.PolicyViolation(
				fmt.Sprintf("partial release requires at least %d boxes", settings.PartialReleaseMin),
				map[string]interface{}{"minimum": settings.PartialReleaseMin},
			)
		}
	}
	return nil
}

func (s *ReleaseServiceImpl) releaseBoxesTx(ctx context.Context, companyID, userID string, shipmentID primitive.ObjectID, settings *model.ShipmentSettings, req dto.ReleaseBoxesRequest) (releaseOutcome, error) {
	shipment, err := s.shipments.GetByID(ctx, companyID, shipmentID)
	if err != nil {
		if err == repository.ErrShipmentNotFound {
			return releaseOutcome{}, apperr.NotFound("shipment")
		}
		return releaseOutcome{}, err
	}

	if settings.RequireRackAssignment {
		boxes, err := s.boxes.ListByShipment(ctx, shipmentID)
		if err != nil {
			return releaseOutcome{}, err
		}
		for _, box := range boxes {
			if box.Status == model.BoxStatusPending {
				return releaseOutcome{}, apperr.PolicyViolation(
					"all boxes must be placed on a rack before release",
					map[string]interface{}{"pending_box": box.BoxNumber},
				)
			}
		}
	}

	eligible, err := s.selectEligible(ctx, shipmentID, req)
	if err != nil {
		return releaseOutcome{}, err
	}
	if len(eligible) == 0 {
		return releaseOutcome{}, apperr.NoBoxesEligible()
	}

	now := time.Now()
	if err := s.freeRacks(ctx, userID, shipment, eligible, now); err != nil {
		return releaseOutcome{}, err
	}

	for i := range eligible {
		if err := eligible[i].Release(now); err != nil {
			return releaseOutcome{}, err
		}
		if err := s.boxes.Update(ctx, &eligible[i]); err != nil {
			return releaseOutcome{}, err
		}
	}

	tally, err := s.boxes.Tally(ctx, shipmentID)
	if err != nil {
		return releaseOutcome{}, err
	}
	status := model.DeriveShipmentStatus(tally)

	all, err := s.boxes.ListByShipment(ctx, shipmentID)
	if err != nil {
		return releaseOutcome{}, err
	}
	if err := s.shipments.ApplyTally(ctx, shipmentID, repository.ShipmentTallyUpdate{
		CurrentBoxCount: tally.Remaining(),
		Status:          status,
		RackID:          singleRackView(all),
		StampReleased:   status == model.ShipmentStatusReleased,
	}); err != nil {
		return releaseOutcome{}, err
	}

	response := &dto.ReleaseBoxesResponse{
		ReleasedCount:  len(eligible),
		RemainingCount: tally.Remaining(),
		ShipmentStatus: status,
	}
	if settings.GenerateReleaseInvoice {
		breakdown := ComputeChargeBreakdown(shipment.ArrivalDate, now, len(eligible), settings)
		response.Charges = &breakdown
		metrics.ReleaseChargesTotal.Inc()
	}

	return releaseOutcome{shipment: shipment, response: response, released: len(eligible)}, nil
}

// selectEligible picks the boxes to release. Boxes that are already released
// or were never stored are silently excluded, which keeps a repeated release
// call idempotent on already-released boxes.
func (s *ReleaseServiceImpl) selectEligible(ctx context.Context, shipmentID primitive.ObjectID, req dto.ReleaseBoxesRequest) ([]model.ShipmentBox, error) {
	var candidates []model.ShipmentBox
	var err error
	if req.ReleaseAll {
		candidates, err = s.boxes.ListByShipment(ctx, shipmentID)
	} else {
		candidates, err = s.boxes.ListByNumbers(ctx, shipmentID, req.BoxNumbers)
	}
	if err != nil {
		return nil, err
	}

	eligible := make([]model.ShipmentBox, 0, len(candidates))
	for _, box := range candidates {
		if box.Status == model.BoxStatusInStorage {
			eligible = append(eligible, box)
		}
	}
	return eligible, nil
}

// freeRacks groups the selected boxes by their current rack and returns the
// units to each, appending one audit entry per rack.
func (s *ReleaseServiceImpl) freeRacks(ctx context.Context, userID string, shipment *model.Shipment, boxes []model.ShipmentBox, now time.Time) error {
	perRack := make(map[primitive.ObjectID]int)
	for _, box := range boxes {
		if box.RackID != nil {
			perRack[*box.RackID]++
		}
	}

	for rackID, count := range perRack {
		rack, err := s.racks.Free(ctx, rackID, count)
		if err != nil {
			return err
		}
		if err := s.activities.Append(ctx, &model.RackActivity{
			RackID:        rackID,
			CompanyID:     shipment.CompanyID,
			UserID:        userID,
			Type:          model.ActivityRelease,
			ItemDetails:   fmt.Sprintf("shipment %s: %d boxes released", shipment.ReferenceID, count),
			QuantityAfter: rack.CapacityUsed,
			Timestamp:     now,
		}); err != nil {
			return err
		}
		metrics.RecordRackUtilization(rack.Code, rack.CapacityUsed, rack.CapacityTotal)
	}
	return nil
}

// afterRelease runs the post-commit collaborators. Both are fire-and-forget:
// a failing sink never unwinds a committed release.
func (s *ReleaseServiceImpl) afterRelease(ctx context.Context, settings *model.ShipmentSettings, outcome releaseOutcome) {
	if outcome.response.Charges != nil && s.invoices != nil {
		s.invoices.DispatchReleaseInvoice(ctx, ReleaseInvoiceRequest{
			CompanyID:   outcome.shipment.CompanyID,
			ShipmentRef: outcome.shipment.ReferenceID,
			ClientName:  outcome.shipment.ClientName,
			Charges:     *outcome.response.Charges,
			RequestedAt: time.Now(),
		})
	}

	if settings.NotifyClientOnRelease && outcome.shipment.ClientPhone != "" && s.notifier != nil {
		s.notifier.NotifyRelease(ctx, ReleaseNotification{
			CompanyID:      outcome.shipment.CompanyID,
			ShipmentRef:    outcome.shipment.ReferenceID,
			ClientName:     outcome.shipment.ClientName,
			ClientPhone:    outcome.shipment.ClientPhone,
			ClientEmail:    outcome.shipment.ClientEmail,
			ReleasedCount:  outcome.response.ReleasedCount,
			RemainingCount: outcome.response.RemainingCount,
			ReleasedAt:     time.Now(),
		})
	}
}
