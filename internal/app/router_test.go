//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/warelane/shipment-service/config"
)

func TestInitializeRouter(t *testing.T) {
	t.Run("maps server and auth configuration", func(t *testing.T) {
		cfg := config.Config{
			Server: config.ServerConfig{
				RateLimit:   42,
				RateWindow:  30 * time.Second,
				CORSOrigins: []string{"https://example.com"},
				SwaggerUser: "admin",
				SwaggerPass: "secret",
			},
			Auth: config.AuthConfig{
				APIKeyHashes: []string{"$2a$10$abcdefghijklmnopqrstuv"},
			},
		}
		db := testDatabaseComponents()
		services := InitializeServices(cfg, db)

		components := InitializeRouter(cfg, db, services)

		assert.Equal(t, 42, components.Config.RateLimit)
		assert.Equal(t, 30*time.Second, components.Config.RateWindow)
		assert.Equal(t, []string{"https://example.com"}, components.Config.CORSOrigins)
		assert.Equal(t, "admin", components.Config.SwaggerUser)
		assert.Equal(t, "secret", components.Config.SwaggerPass)
		assert.Equal(t, cfg.Auth.APIKeyHashes, components.Config.APIKeyHashes)
		assert.True(t, components.Config.EnableIdempotency)
		assert.NotNil(t, components.HealthHandler)
		assert.Nil(t, components.Config.TokenVerifier)
	})

	t.Run("builds token verifier when JWT is enabled", func(t *testing.T) {
		cfg := config.Config{
			Auth: config.AuthConfig{
				JWTEnabled:   true,
				JWTSecretKey: "test-secret",
				JWTIssuer:    "identity-service",
			},
		}
		db := testDatabaseComponents()
		services := InitializeServices(cfg, db)

		components := InitializeRouter(cfg, db, services)

		assert.NotNil(t, components.Config.TokenVerifier)
	})

	t.Run("wires all business services", func(t *testing.T) {
		cfg := config.Config{}
		db := testDatabaseComponents()
		services := InitializeServices(cfg, db)

		components := InitializeRouter(cfg, db, services)

		assert.NotNil(t, components.Config.ShipmentService)
		assert.NotNil(t, components.Config.AllocationService)
		assert.NotNil(t, components.Config.ReleaseService)
		assert.NotNil(t, components.Config.ChargeService)
		assert.NotNil(t, components.Config.RackService)
		assert.NotNil(t, components.Config.SettingsResolver)
	})
}
