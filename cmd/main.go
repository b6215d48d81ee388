// Package main is the entry point for the shipment-service application.
//
// @title           Shipment Service API
// @version         1.0.0
// @description     API for receiving shipments, allocating boxes to storage racks, and releasing them with prorated storage billing.
//
//	Boxes are assigned to finite-capacity racks under transactional guarantees and released according to per-company settings.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/warelane/shipment-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Shipments
// @tag.description Shipment intake, box allocation, release and charge operations
//
// @tag.name        Racks
// @tag.description Rack management and activity history
//
// @tag.name        Settings
// @tag.description Company release and billing settings
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/warelane/shipment-service/docs" // swagger docs

	"github.com/warelane/shipment-service/config"
	"github.com/warelane/shipment-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Application initialization failed")
	}

	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
