// Package app provides router configuration.
package app

import (
	"context"

	"github.com/warelane/shipment-service/config"
	"github.com/warelane/shipment-service/internal/http"
	"github.com/warelane/shipment-service/internal/repository"
	"github.com/warelane/shipment-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// mongoHealthChecker adapts the MongoDB client to the health checker interface.
type mongoHealthChecker struct {
	db *repository.MongoDB
}

func (c *mongoHealthChecker) Check() error {
	return c.db.HealthCheck(context.Background())
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	cfg config.Config,
	dbComponents *DatabaseComponents,
	services *ServiceComponents,
) *RouterComponents {
	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("mongodb", &mongoHealthChecker{db: dbComponents.DB})

	// Register circuit breakers for health monitoring
	if dbComponents.SettingsCircuitBreaker != nil {
		healthHandler.RegisterCircuitBreaker("mongodb_settings", dbComponents.SettingsCircuitBreaker)
	}
	if dbComponents.LogsCircuitBreaker != nil {
		healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
	}

	var verifier service.TokenVerifier
	if cfg.Auth.JWTEnabled {
		verifier = service.NewHMACTokenVerifier([]byte(cfg.Auth.JWTSecretKey), cfg.Auth.JWTIssuer)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		APIKeyHashes:      cfg.Auth.APIKeyHashes,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    dbComponents.LoggingService,
		ShipmentService:   services.Shipments,
		AllocationService: services.Allocation,
		ReleaseService:    services.Release,
		ChargeService:     services.Charges,
		RackService:       services.Racks,
		SettingsResolver:  services.Settings,
		TokenVerifier:     verifier,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
