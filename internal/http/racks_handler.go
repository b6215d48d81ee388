package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/warelane/shipment-service/internal/domain/dto"
	"github.com/warelane/shipment-service/internal/i18n"
	"github.com/warelane/shipment-service/internal/middleware"
	"github.com/warelane/shipment-service/internal/service"
)

// defaultActivityLimit caps the activity listing when the caller gives none.
const defaultActivityLimit = 50

// RacksHandler provides HTTP handlers for rack routes.
type RacksHandler struct {
	racks service.RackService
}

// NewRacksHandler creates a new RacksHandler instance.
func NewRacksHandler(racks service.RackService) *RacksHandler {
	return &RacksHandler{racks: racks}
}

// CreateRack handles POST /api/racks requests.
//
// @Summary      Create a rack
// @Description  Registers an empty active storage rack
// @Tags         Racks
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateRackRequest true "Rack definition"
// @Success      201 {object} dto.SuccessResponse{data=dto.RackResponse} "Created rack"
// @Failure      400 {object} dto.ErrorResponse "Invalid request or duplicate code"
// @Router       /api/racks [post]
func (h *RacksHandler) CreateRack(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.CreateRackRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	resp, err := h.racks.CreateRack(c.Request.Context(), middleware.GetCompanyID(c), *req)
	if err != nil {
		builder.Failure(err)
		return
	}
	builder.SuccessCreated(resp)
}

// ListRacks handles GET /api/racks requests.
//
// @Summary      List racks
// @Description  Returns the company's racks with remaining capacity, ordered by code
// @Tags         Racks
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.RackResponse} "Racks"
// @Router       /api/racks [get]
func (h *RacksHandler) ListRacks(c *gin.Context) {
	builder := NewResponseBuilder(c)

	resp, err := h.racks.ListRacks(c.Request.Context(), middleware.GetCompanyID(c))
	if err != nil {
		builder.Failure(err)
		return
	}
	builder.SuccessOK(resp)
}

// GetRack handles GET /api/racks/:id requests.
//
// @Summary      Get a rack
// @Description  Returns a rack with its remaining capacity
// @Tags         Racks
// @Produce      json
// @Param        id path string true "Rack id (hex)"
// @Success      200 {object} dto.SuccessResponse{data=dto.RackResponse} "Rack detail"
// @Failure      404 {object} dto.ErrorResponse "Rack not found"
// @Router       /api/racks/{id} [get]
func (h *RacksHandler) GetRack(c *gin.Context) {
	builder := NewResponseBuilder(c)

	rackID, ok := h.rackID(c, builder)
	if !ok {
		return
	}

	resp, err := h.racks.GetRack(c.Request.Context(), middleware.GetCompanyID(c), rackID)
	if err != nil {
		builder.Failure(err)
		return
	}
	builder.SuccessOK(resp)
}

// ListActivities handles GET /api/racks/:id/activities requests.
//
// @Summary      List rack activities
// @Description  Returns the rack's audit trail, newest first
// @Tags         Racks
// @Produce      json
// @Param        id path string true "Rack id (hex)"
// @Param        limit query int false "Maximum entries to return" default(50)
// @Success      200 {object} dto.SuccessResponse{data=[]model.RackActivity} "Audit entries"
// @Failure      404 {object} dto.ErrorResponse "Rack not found"
// @Router       /api/racks/{id}/activities [get]
func (h *RacksHandler) ListActivities(c *gin.Context) {
	builder := NewResponseBuilder(c)

	rackID, ok := h.rackID(c, builder)
	if !ok {
		return
	}

	limit := defaultActivityLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			builder.ErrorWithMessage(http.StatusBadRequest, "limit must be a positive integer", err)
			return
		}
		limit = parsed
	}

	activities, err := h.racks.ListActivities(c.Request.Context(), middleware.GetCompanyID(c), rackID, limit)
	if err != nil {
		builder.Failure(err)
		return
	}
	builder.SuccessOK(activities)
}

func (h *RacksHandler) rackID(c *gin.Context, builder *ResponseBuilder) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, "rack id must be a valid object id", err)
		return primitive.NilObjectID, false
	}
	return id, true
}
