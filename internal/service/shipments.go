package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/warelane/shipment-service/internal/domain/apperr"
	"github.com/warelane/shipment-service/internal/domain/dto"
	"github.com/warelane/shipment-service/internal/domain/model"
	"github.com/warelane/shipment-service/internal/repository"
)

// ShipmentService handles shipment intake and reads.
// This interface can be mocked for testing.
type ShipmentService interface {
	// CreateShipment registers a shipment and creates one PENDING box per
	// declared unit.
	CreateShipment(ctx context.Context, companyID string, req dto.CreateShipmentRequest) (*dto.ShipmentResponse, error)
	// GetShipment returns a shipment with its boxes.
	GetShipment(ctx context.Context, companyID string, shipmentID primitive.ObjectID) (*dto.ShipmentResponse, error)
}

// ShipmentServiceImpl implements the ShipmentService interface.
type ShipmentServiceImpl struct {
	tx        repository.TxRunner
	shipments repository.ShipmentRepositoryInterface
	boxes     repository.BoxRepositoryInterface
	settings  SettingsResolver
}

// NewShipmentService creates a new shipment service implementation.
func NewShipmentService(
	tx repository.TxRunner,
	shipments repository.ShipmentRepositoryInterface,
	boxes repository.BoxRepositoryInterface,
	settings SettingsResolver,
) ShipmentService {
	return &ShipmentServiceImpl{
		tx:        tx,
		shipments: shipments,
		boxes:     boxes,
		settings:  settings,
	}
}

// CreateShipment validates the intake against the company settings and
// inserts the shipment with its numbered boxes in one transaction.
func (s *ShipmentServiceImpl) CreateShipment(ctx context.Context, companyID string, req dto.CreateShipmentRequest) (*dto.ShipmentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperr.InvalidRequest(err.Error())
	}

	settings, err := s.settings.GetOrCreate(ctx, companyID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if settings.RequireClientEmail && req.ClientEmail == "" {
		return nil, apperr.ValidationFailed("client email required", "client_email")
	}
	if settings.RequireClientPhone && req.ClientPhone == "" {
		return nil, apperr.ValidationFailed("client phone required", "client_phone")
	}
	if settings.RequireEstimatedValue && req.EstimatedValue <= 0 {
		return nil, apperr.ValidationFailed("estimated value required", "estimated_value")
	}

	arrival := time.Now()
	if req.ArrivalDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.ArrivalDate)
		if err != nil {
			return nil, apperr.InvalidRequest("arrival_date must be RFC3339")
		}
		arrival = parsed
	}

	shipment := &model.Shipment{
		ID:               primitive.NewObjectID(),
		CompanyID:        companyID,
		ClientName:       req.ClientName,
		ClientPhone:      req.ClientPhone,
		ClientEmail:      req.ClientEmail,
		EstimatedValue:   req.EstimatedValue,
		OriginalBoxCount: req.BoxCount,
		CurrentBoxCount:  req.BoxCount,
		Status:           model.ShipmentStatusPending,
		ArrivalDate:      arrival,
	}
	shipment.ReferenceID = newReferenceID(shipment.ID, arrival)

	boxes := make([]model.ShipmentBox, req.BoxCount)
	for i := range boxes {
		boxes[i] = model.ShipmentBox{
			BoxNumber: i + 1,
			Status:    model.BoxStatusPending,
		}
	}

	txErr := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		return s.shipments.Create(ctx, shipment, boxes)
	})
	if txErr != nil {
		if txErr == repository.ErrDuplicateReference {
			return nil, apperr.InvalidRequest("shipment reference already exists")
		}
		return nil, apperr.Internal(txErr)
	}

	log.Info().
		Str("company_id", companyID).
		Str("shipment_id", shipment.ID.Hex()).
		Str("reference_id", shipment.ReferenceID).
		Int("box_count", req.BoxCount).
		Msg("Shipment registered")

	stored, err := s.boxes.ListByShipment(ctx, shipment.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &dto.ShipmentResponse{Shipment: shipment, Boxes: stored}, nil
}

// GetShipment returns the shipment and its boxes ordered by box number.
func (s *ShipmentServiceImpl) GetShipment(ctx context.Context, companyID string, shipmentID primitive.ObjectID) (*dto.ShipmentResponse, error) {
	shipment, err := s.shipments.GetByID(ctx, companyID, shipmentID)
	if err != nil {
		if err == repository.ErrShipmentNotFound {
			return nil, apperr.NotFound("shipment")
		}
		return nil, apperr.Internal(err)
	}

	boxes, err := s.boxes.ListByShipment(ctx, shipmentID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &dto.ShipmentResponse{Shipment: shipment, Boxes: boxes}, nil
}

// newReferenceID derives a human-facing reference from the arrival date and
// the tail of the object id, e.g. SHP-20250601-4F2A91.
func newReferenceID(id primitive.ObjectID, arrival time.Time) string {
	hex := id.Hex()
	return fmt.Sprintf("SHP-%s-%s", arrival.Format("20060102"), strings.ToUpper(hex[len(hex)-6:]))
}
