package http

import (
	"github.com/gin-gonic/gin"

	"github.com/warelane/shipment-service/internal/service"
)

// RackRoutes handles rack-related route registration.
type RackRoutes struct {
	handler *RacksHandler
}

// NewRackRoutes creates a new RackRoutes instance.
func NewRackRoutes(racks service.RackService) *RackRoutes {
	return &RackRoutes{handler: NewRacksHandler(racks)}
}

// RegisterRoutes registers the rack routes on the given group.
func (r *RackRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/racks", r.handler.CreateRack)
	rg.GET("/racks", r.handler.ListRacks)
	rg.GET("/racks/:id", r.handler.GetRack)
	rg.GET("/racks/:id/activities", r.handler.ListActivities)
}

// GetHandler returns the underlying racks handler.
func (r *RackRoutes) GetHandler() *RacksHandler {
	return r.handler
}
