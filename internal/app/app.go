// Package app provides application initialization and dependency injection.
package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/warelane/shipment-service/config"
	"github.com/warelane/shipment-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) (*gin.Engine, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize database components (MongoDB repositories and services)
	dbComponents, err := InitializeDatabase(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database initialization: %w", err)
	}

	// Initialize business services
	serviceComponents := InitializeServices(cfg, dbComponents)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(cfg, dbComponents, serviceComponents)

	return http.NewRouter(routerComponents.HealthHandler, routerComponents.Config), nil
}
