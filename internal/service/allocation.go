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

// AllocationService places shipment boxes onto storage racks.
// This interface can be mocked for testing.
type AllocationService interface {
	// AssignBoxes moves the listed boxes of a shipment onto the given rack.
	AssignBoxes(ctx context.Context, companyID, userID string, shipmentID primitive.ObjectID, req dto.AssignBoxesRequest) (*dto.AssignBoxesResponse, error)
}

// AllocationServiceImpl implements the AllocationService interface.
type AllocationServiceImpl struct {
	tx         repository.TxRunner
	shipments  repository.ShipmentRepositoryInterface
	boxes      repository.BoxRepositoryInterface
	racks      repository.RackRepositoryInterface
	activities repository.ActivityRepositoryInterface
}

// NewAllocationService creates a new allocation service implementation.
func NewAllocationService(
	tx repository.TxRunner,
	shipments repository.ShipmentRepositoryInterface,
	boxes repository.BoxRepositoryInterface,
	racks repository.RackRepositoryInterface,
	activities repository.ActivityRepositoryInterface,
) AllocationService {
	return &AllocationServiceImpl{
		tx:         tx,
		shipments:  shipments,
		boxes:      boxes,
		racks:      racks,
		activities: activities,
	}
}

// AssignBoxes places boxes on a rack inside a single transaction. The rack's
// capacity counter, the per-box state and the shipment aggregate move
// together: on any failure nothing is applied, and the caller never observes
// a stored box whose rack counter has not been incremented to match.
func (s *AllocationServiceImpl) AssignBoxes(ctx context.Context, companyID, userID string, shipmentID primitive.ObjectID, req dto.AssignBoxesRequest) (*dto.AssignBoxesResponse, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		metrics.RecordAssignment(time.Since(start), "invalid")
		return nil, apperr.InvalidRequest(err.Error())
	}
	rackID, err := primitive.ObjectIDFromHex(req.RackID)
	if err != nil {
		metrics.RecordAssignment(time.Since(start), "invalid")
		return nil, apperr.InvalidRequest("rack_id must be a valid object id")
	}

	var response *dto.AssignBoxesResponse
	txErr := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		response, err = s.assignBoxesTx(ctx, companyID, userID, shipmentID, rackID, req.BoxNumbers)
		return err
	})
	if txErr != nil {
		metrics.RecordAssignment(time.Since(start), "failed")
		if appErr, ok := apperr.As(txErr); ok {
			return nil, appErr
		}
		return nil, apperr.Internal(txErr)
	}

	metrics.RecordAssignment(time.Since(start), "success")
	log.Info().
		Str("company_id", companyID).
		Str("shipment_id", shipmentID.Hex()).
		Str("rack_id", rackID.Hex()).
		Int("requested", response.RequestedCount).
		Int("assigned", response.AssignedCount).
		Msg("Boxes assigned to rack")
	return response, nil
}

func (s *AllocationServiceImpl) assignBoxesTx(ctx context.Context, companyID, userID string, shipmentID, rackID primitive.ObjectID, boxNumbers []int) (*dto.AssignBoxesResponse, error) {
	shipment, err := s.shipments.GetByID(ctx, companyID, shipmentID)
	if err != nil {
		if err == repository.ErrShipmentNotFound {
			return nil, apperr.NotFound("shipment")
		}
		return nil, err
	}

	matched, err := s.boxes.ListByNumbers(ctx, shipmentID, boxNumbers)
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		return nil, apperr.NotFound("boxes")
	}

	// Released boxes and boxes already sitting on the target rack are not
	// assignable; the response reports requested versus assigned counts so
	// the caller can spot the gap.
	eligible := make([]model.ShipmentBox, 0, len(matched))
	for _, box := range matched {
		if box.CanAssignTo(rackID) {
			eligible = append(eligible, box)
		}
	}
	if len(eligible) == 0 {
		return nil, apperr.InvalidRequest("none of the listed boxes can be placed on this rack")
	}

	// Re-assignment: boxes moving from another rack give their old units
	// back inside the same transaction, before the new rack is charged.
	if err := s.freeSourceRacks(ctx, userID, shipment, eligible, rackID); err != nil {
		return nil, err
	}

	rack, err := s.racks.Reserve(ctx, companyID, rackID, len(eligible))
	if err != nil {
		switch err {
		case repository.ErrRackNotFound:
			return nil, apperr.NotFound("rack")
		case repository.ErrInsufficientCapacity:
			current, getErr := s.racks.GetByID(ctx, companyID, rackID)
			if getErr != nil {
				return nil, getErr
			}
			return nil, apperr.CapacityExceeded(current.Code, len(eligible), current.Available())
		default:
			return nil, err
		}
	}

	now := time.Now()
	for i := range eligible {
		if err := eligible[i].AssignTo(rackID, now); err != nil {
			return nil, err
		}
		if err := s.boxes.Update(ctx, &eligible[i]); err != nil {
			return nil, err
		}
	}

	if err := s.activities.Append(ctx, &model.RackActivity{
		RackID:        rackID,
		CompanyID:     companyID,
		UserID:        userID,
		Type:          model.ActivityAssign,
		ItemDetails:   fmt.Sprintf("shipment %s: %d boxes", shipment.ReferenceID, len(eligible)),
		QuantityAfter: rack.CapacityUsed,
		Timestamp:     now,
	}); err != nil {
		return nil, err
	}

	status, err := s.recomputeShipment(ctx, shipment, userID)
	if err != nil {
		return nil, err
	}

	metrics.RecordRackUtilization(rack.Code, rack.CapacityUsed, rack.CapacityTotal)
	return &dto.AssignBoxesResponse{
		RequestedCount: len(boxNumbers),
		AssignedCount:  len(eligible),
		ShipmentStatus: status,
	}, nil
}

// freeSourceRacks returns capacity to the racks that boxes are moving away
// from, one ledger call and one audit entry per source rack.
func (s *AllocationServiceImpl) freeSourceRacks(ctx context.Context, userID string, shipment *model.Shipment, boxes []model.ShipmentBox, targetRackID primitive.ObjectID) error {
	moving := make(map[primitive.ObjectID]int)
	for _, box := range boxes {
		if box.Status == model.BoxStatusInStorage && box.RackID != nil && *box.RackID != targetRackID {
			moving[*box.RackID]++
		}
	}

	for sourceID, count := range moving {
		rack, err := s.racks.Free(ctx, sourceID, count)
		if err != nil {
			return err
		}
		if err := s.activities.Append(ctx, &model.RackActivity{
			RackID:        sourceID,
			CompanyID:     shipment.CompanyID,
			UserID:        userID,
			Type:          model.ActivityRelease,
			ItemDetails:   fmt.Sprintf("shipment %s: %d boxes moved to another rack", shipment.ReferenceID, count),
			QuantityAfter: rack.CapacityUsed,
			Timestamp:     time.Now(),
		}); err != nil {
			return err
		}
		metrics.RecordRackUtilization(rack.Code, rack.CapacityUsed, rack.CapacityTotal)
	}
	return nil
}

// recomputeShipment derives the aggregate from the box tally and writes it,
// together with the single-rack denormalized view and the lifecycle stamps.
func (s *AllocationServiceImpl) recomputeShipment(ctx context.Context, shipment *model.Shipment, userID string) (model.ShipmentStatus, error) {
	tally, err := s.boxes.Tally(ctx, shipment.ID)
	if err != nil {
		return "", err
	}
	status := model.DeriveShipmentStatus(tally)

	all, err := s.boxes.ListByShipment(ctx, shipment.ID)
	if err != nil {
		return "", err
	}

	update := repository.ShipmentTallyUpdate{
		CurrentBoxCount: tally.Remaining(),
		Status:          status,
		RackID:          singleRackView(all),
		StampAssigned:   status == model.ShipmentStatusInStorage && shipment.AssignedAt == nil,
		AssignedByID:    userID,
	}
	if err := s.shipments.ApplyTally(ctx, shipment.ID, update); err != nil {
		return "", err
	}
	return status, nil
}

// singleRackView returns the rack id when every stored box sits on one rack,
// nil otherwise. Per-box placement stays authoritative; this only feeds the
// shipment's legacy rack_id field.
func singleRackView(boxes []model.ShipmentBox) *primitive.ObjectID {
	var rackID *primitive.ObjectID
	for _, box := range boxes {
		if box.Status != model.BoxStatusInStorage || box.RackID == nil {
			continue
		}
		if rackID == nil {
			id := *box.RackID
			rackID = &id
			continue
		}
		if *rackID != *box.RackID {
			return nil
		}
	}
	return rackID
}
