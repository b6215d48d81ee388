//go:build integration

package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warelane/shipment-service/config"
)

func TestInitializeApp_Integration(t *testing.T) {
	uri := getSharedContainerURI()
	require.NotEmpty(t, uri)

	t.Run("initializes full application against live database", func(t *testing.T) {
		cfg := config.Config{
			Server: config.ServerConfig{
				Port:       "8080",
				RateLimit:  100,
				RateWindow: time.Minute,
			},
			Database: config.DatabaseConfig{
				URI:          uri,
				DatabaseName: sanitizeDBNameForApp(t.Name()),
				LogsTTL:      24 * time.Hour,
			},
		}

		router, err := InitializeApp(cfg)
		require.NoError(t, err)
		require.NotNil(t, router)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("readiness reflects registered checks", func(t *testing.T) {
		cfg := config.Config{
			Server: config.ServerConfig{Port: "8080"},
			Database: config.DatabaseConfig{
				URI:          uri,
				DatabaseName: sanitizeDBNameForApp(t.Name()),
				LogsTTL:      24 * time.Hour,
			},
		}

		router, err := InitializeApp(cfg)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "mongodb")
	})
}
