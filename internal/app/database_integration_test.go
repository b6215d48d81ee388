//go:build integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warelane/shipment-service/config"
)

func TestInitializeDatabase_Integration(t *testing.T) {
	uri := getSharedContainerURI()
	require.NotEmpty(t, uri)

	t.Run("creates all repositories and circuit breakers", func(t *testing.T) {
		cfg := config.DatabaseConfig{
			URI:                            uri,
			DatabaseName:                   sanitizeDBNameForApp(t.Name()),
			LogsTTL:                        24 * time.Hour,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		}

		components, err := InitializeDatabase(cfg)
		require.NoError(t, err)
		require.NotNil(t, components)

		assert.NotNil(t, components.DB)
		assert.NotNil(t, components.ShipmentsRepo)
		assert.NotNil(t, components.BoxesRepo)
		assert.NotNil(t, components.RacksRepo)
		assert.NotNil(t, components.ActivitiesRepo)
		assert.NotNil(t, components.SettingsRepo)
		assert.NotNil(t, components.LoggingService)
		assert.NotNil(t, components.SettingsCircuitBreaker)
		assert.NotNil(t, components.LogsCircuitBreaker)
	})

	t.Run("returns error for unreachable database", func(t *testing.T) {
		cfg := config.DatabaseConfig{
			URI:          "mongodb://localhost:1",
			DatabaseName: "unreachable",
		}

		components, err := InitializeDatabase(cfg)

		assert.Error(t, err)
		assert.Nil(t, components)
	})
}
