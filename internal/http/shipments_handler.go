// Package http provides HTTP handlers for the shipment service.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/warelane/shipment-service/internal/domain/dto"
	"github.com/warelane/shipment-service/internal/i18n"
	"github.com/warelane/shipment-service/internal/middleware"
	"github.com/warelane/shipment-service/internal/service"
)

// ShipmentsHandler provides HTTP handlers for shipment routes.
type ShipmentsHandler struct {
	shipments  service.ShipmentService
	allocation service.AllocationService
	release    service.ReleaseService
	charges    service.ChargeService
}

// NewShipmentsHandler creates a new ShipmentsHandler instance.
func NewShipmentsHandler(
	shipments service.ShipmentService,
	allocation service.AllocationService,
	release service.ReleaseService,
	charges service.ChargeService,
) *ShipmentsHandler {
	return &ShipmentsHandler{
		shipments:  shipments,
		allocation: allocation,
		release:    release,
		charges:    charges,
	}
}

// CreateShipment handles POST /api/shipments requests.
//
// @Summary      Register a shipment
// @Description  Registers a shipment at intake and creates one pending box per declared unit
// @Tags         Shipments
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateShipmentRequest true "Shipment intake"
// @Success      201 {object} dto.SuccessResponse{data=dto.ShipmentResponse} "Registered shipment"
// @Failure      400 {object} dto.ErrorResponse "Invalid request or unmet intake requirement"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/shipments [post]
func (h *ShipmentsHandler) CreateShipment(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.CreateShipmentRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	resp, err := h.shipments.CreateShipment(c.Request.Context(), middleware.GetCompanyID(c), *req)
	if err != nil {
		builder.Failure(err)
		return
	}
	builder.SuccessCreated(resp)
}

// GetShipment handles GET /api/shipments/:id requests.
//
// @Summary      Get a shipment
// @Description  Returns a shipment with its per-box placement
// @Tags         Shipments
// @Produce      json
// @Param        id path string true "Shipment id (hex)"
// @Success      200 {object} dto.SuccessResponse{data=dto.ShipmentResponse} "Shipment detail"
// @Failure      400 {object} dto.ErrorResponse "Invalid shipment id"
// @Failure      404 {object} dto.ErrorResponse "Shipment not found"
// @Router       /api/shipments/{id} [get]
func (h *ShipmentsHandler) GetShipment(c *gin.Context) {
	builder := NewResponseBuilder(c)

	shipmentID, ok := h.shipmentID(c, builder)
	if !ok {
		return
	}

	resp, err := h.shipments.GetShipment(c.Request.Context(), middleware.GetCompanyID(c), shipmentID)
	if err != nil {
		builder.Failure(err)
		return
	}
	builder.SuccessOK(resp)
}

// AssignBoxes handles POST /api/shipments/:id/boxes/assign requests.
//
// @Summary      Assign boxes to a rack
// @Description  Places the listed boxes on a rack; the whole operation succeeds or nothing is applied
// @Tags         Shipments
// @Accept       json
// @Produce      json
// @Param        id path string true "Shipment id (hex)"
// @Param        request body dto.AssignBoxesRequest true "Boxes and target rack"
// @Success      200 {object} dto.SuccessResponse{data=dto.AssignBoxesResponse} "Assignment result"
// @Failure      400 {object} dto.ErrorResponse "Invalid request"
// @Failure      404 {object} dto.ErrorResponse "Shipment, rack or boxes not found"
// @Failure      409 {object} dto.ErrorResponse "Rack capacity exceeded, details carry the available count"
// @Router       /api/shipments/{id}/boxes/assign [post]
func (h *ShipmentsHandler) AssignBoxes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	shipmentID, ok := h.shipmentID(c, builder)
	if !ok {
		return
	}
	req, err := BuildRequest[dto.AssignBoxesRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	resp, err := h.allocation.AssignBoxes(c.Request.Context(), middleware.GetCompanyID(c), middleware.GetUserID(c), shipmentID, *req)
	if err != nil {
		builder.Failure(err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "boxes_assigned", "Boxes assigned to rack", map[string]interface{}{
				"shipment_id":    shipmentID.Hex(),
				"rack_id":        req.RackID,
				"assigned_count": resp.AssignedCount,
			})
		}
	}
	builder.SuccessOK(resp)
}

// ReleaseBoxes handles POST /api/shipments/:id/boxes/release requests.
//
// @Summary      Release boxes
// @Description  Releases some or all stored boxes under the company release policy, with charges when invoicing is enabled
// @Tags         Shipments
// @Accept       json
// @Produce      json
// @Param        id path string true "Shipment id (hex)"
// @Param        request body dto.ReleaseBoxesRequest true "Release request"
// @Success      200 {object} dto.SuccessResponse{data=dto.ReleaseBoxesResponse} "Release result"
// @Failure      400 {object} dto.ErrorResponse "Validation or policy rejection, details name the unmet requirement"
// @Failure      404 {object} dto.ErrorResponse "Shipment not found"
// @Router       /api/shipments/{id}/boxes/release [post]
func (h *ShipmentsHandler) ReleaseBoxes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	shipmentID, ok := h.shipmentID(c, builder)
	if !ok {
		return
	}
	req, err := BuildRequest[dto.ReleaseBoxesRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	resp, err := h.release.ReleaseBoxes(c.Request.Context(), middleware.GetCompanyID(c), middleware.GetUserID(c), shipmentID, *req)
	if err != nil {
		builder.Failure(err)
		return
	}

	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, "boxes_released", "Boxes released from storage", map[string]interface{}{
				"shipment_id":     shipmentID.Hex(),
				"released_count":  resp.ReleasedCount,
				"shipment_status": resp.ShipmentStatus,
			})
		}
	}
	builder.SuccessOK(resp)
}

// ComputeCharges handles GET /api/shipments/:id/charges requests.
//
// @Summary      Preview release charges
// @Description  Computes the itemized charges for a full release at the given instant
// @Tags         Shipments
// @Produce      json
// @Param        id path string true "Shipment id (hex)"
// @Param        as_of query string false "RFC3339 instant, defaults to now"
// @Success      200 {object} dto.SuccessResponse{data=model.ChargeBreakdown} "Charge breakdown"
// @Failure      400 {object} dto.ErrorResponse "Invalid shipment id or as_of"
// @Failure      404 {object} dto.ErrorResponse "Shipment not found"
// @Router       /api/shipments/{id}/charges [get]
func (h *ShipmentsHandler) ComputeCharges(c *gin.Context) {
	builder := NewResponseBuilder(c)

	shipmentID, ok := h.shipmentID(c, builder)
	if !ok {
		return
	}

	asOf := time.Now()
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			builder.ErrorWithMessage(http.StatusBadRequest, "as_of must be RFC3339", err)
			return
		}
		asOf = parsed
	}

	breakdown, err := h.charges.ComputeCharges(c.Request.Context(), middleware.GetCompanyID(c), shipmentID, asOf)
	if err != nil {
		builder.Failure(err)
		return
	}
	builder.SuccessOK(breakdown)
}

func (h *ShipmentsHandler) shipmentID(c *gin.Context, builder *ResponseBuilder) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.ErrorWithMessage(http.StatusBadRequest, "shipment id must be a valid object id", err)
		return primitive.NilObjectID, false
	}
	return id, true
}
