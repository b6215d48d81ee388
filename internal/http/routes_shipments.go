package http

import (
	"github.com/gin-gonic/gin"

	"github.com/warelane/shipment-service/internal/service"
)

// ShipmentRoutes handles shipment-related route registration.
type ShipmentRoutes struct {
	handler *ShipmentsHandler
}

// NewShipmentRoutes creates a new ShipmentRoutes instance.
func NewShipmentRoutes(
	shipments service.ShipmentService,
	allocation service.AllocationService,
	release service.ReleaseService,
	charges service.ChargeService,
) *ShipmentRoutes {
	return &ShipmentRoutes{
		handler: NewShipmentsHandler(shipments, allocation, release, charges),
	}
}

// RegisterRoutes registers the shipment routes on the given group.
func (r *ShipmentRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/shipments", r.handler.CreateShipment)
	rg.GET("/shipments/:id", r.handler.GetShipment)
	rg.POST("/shipments/:id/boxes/assign", r.handler.AssignBoxes)
	rg.POST("/shipments/:id/boxes/release", r.handler.ReleaseBoxes)
	rg.GET("/shipments/:id/charges", r.handler.ComputeCharges)
}

// GetHandler returns the underlying shipments handler.
func (r *ShipmentRoutes) GetHandler() *ShipmentsHandler {
	return r.handler
}
