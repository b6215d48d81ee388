package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/warelane/shipment-service/internal/domain/apperr"
	"github.com/warelane/shipment-service/internal/domain/dto"
	"github.com/warelane/shipment-service/internal/domain/model"
	"github.com/warelane/shipment-service/internal/metrics"
	"github.com/warelane/shipment-service/internal/repository"
)

// RackService manages storage racks and their audit trail.
// This interface can be mocked for testing.
type RackService interface {
	CreateRack(ctx context.Context, companyID string, req dto.CreateRackRequest) (*dto.RackResponse, error)
	GetRack(ctx context.Context, companyID string, rackID primitive.ObjectID) (*dto.RackResponse, error)
	ListRacks(ctx context.Context, companyID string) ([]dto.RackResponse, error)
	ListActivities(ctx context.Context, companyID string, rackID primitive.ObjectID, limit int) ([]model.RackActivity, error)
}

// RackServiceImpl implements the RackService interface.
type RackServiceImpl struct {
	racks      repository.RackRepositoryInterface
	activities repository.ActivityRepositoryInterface
}

// NewRackService creates a new rack service implementation.
func NewRackService(racks repository.RackRepositoryInterface, activities repository.ActivityRepositoryInterface) RackService {
	return &RackServiceImpl{racks: racks, activities: activities}
}

// CreateRack registers an empty active rack.
func (s *RackServiceImpl) CreateRack(ctx context.Context, companyID string, req dto.CreateRackRequest) (*dto.RackResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperr.InvalidRequest(err.Error())
	}

	rack := &model.Rack{
		CompanyID:     companyID,
		Code:          strings.TrimSpace(req.Code),
		CapacityTotal: req.CapacityTotal,
		Status:        model.RackStatusActive,
	}
	if err := s.racks.Create(ctx, rack); err != nil {
		if err == repository.ErrDuplicateRackCode {
			return nil, apperr.InvalidRequest("rack code already exists")
		}
		return nil, apperr.Internal(err)
	}

	metrics.RecordRackUtilization(rack.Code, rack.CapacityUsed, rack.CapacityTotal)
	log.Info().
		Str("company_id", companyID).
		Str("rack_id", rack.ID.Hex()).
		Str("code", rack.Code).
		Int("capacity", rack.CapacityTotal).
		Msg("Rack created")
	return &dto.RackResponse{Rack: rack, Available: rack.Available()}, nil
}

// GetRack returns a rack with its remaining capacity.
func (s *RackServiceImpl) GetRack(ctx context.Context, companyID string, rackID primitive.ObjectID) (*dto.RackResponse, error) {
	rack, err := s.racks.GetByID(ctx, companyID, rackID)
	if err != nil {
		if err == repository.ErrRackNotFound {
			return nil, apperr.NotFound("rack")
		}
		return nil, apperr.Internal(err)
	}
	return &dto.RackResponse{Rack: rack, Available: rack.Available()}, nil
}

// ListRacks returns the company's racks ordered by code.
func (s *RackServiceImpl) ListRacks(ctx context.Context, companyID string) ([]dto.RackResponse, error) {
	racks, err := s.racks.List(ctx, companyID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	responses := make([]dto.RackResponse, len(racks))
	for i := range racks {
		responses[i] = dto.RackResponse{Rack: &racks[i], Available: racks[i].Available()}
	}
	return responses, nil
}

// ListActivities returns the rack's most recent audit entries, newest first.
func (s *RackServiceImpl) ListActivities(ctx context.Context, companyID string, rackID primitive.ObjectID, limit int) ([]model.RackActivity, error) {
	// Scope check first so a foreign rack id reads as missing.
	if _, err := s.racks.GetByID(ctx, companyID, rackID); err != nil {
		if err == repository.ErrRackNotFound {
			return nil, apperr.NotFound("rack")
		}
		return nil, apperr.Internal(err)
	}

	activities, err := s.activities.ListByRack(ctx, rackID, limit)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return activities, nil
}
