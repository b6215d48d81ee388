package http

import (
	"github.com/gin-gonic/gin"

	"github.com/warelane/shipment-service/internal/middleware"
	"github.com/warelane/shipment-service/internal/service"
)

// SettingsHandler exposes the company's resolved shipment settings.
type SettingsHandler struct {
	settings service.SettingsResolver
}

// NewSettingsHandler creates a new SettingsHandler instance.
func NewSettingsHandler(settings service.SettingsResolver) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetSettings handles GET /api/settings requests.
//
// @Summary      Get shipment settings
// @Description  Returns the company's shipment settings, creating the defaults on first use
// @Tags         Settings
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=model.ShipmentSettings} "Resolved settings"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	builder := NewResponseBuilder(c)

	settings, err := h.settings.GetOrCreate(c.Request.Context(), middleware.GetCompanyID(c))
	if err != nil {
		builder.Failure(err)
		return
	}
	builder.SuccessOK(settings)
}

// RegisterRoutes registers the settings routes on the given group.
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings", h.GetSettings)
}
