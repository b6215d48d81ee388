package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
		assert.Equal(t, "shipment_service", cfg.Database.DatabaseName)
		assert.False(t, cfg.Auth.JWTEnabled)
		assert.False(t, cfg.Redis.Enabled)
		assert.Equal(t, "PT", cfg.Billing.PhoneRegion)
		assert.Zero(t, cfg.Billing.DefaultStorageRatePerDay)
		assert.Zero(t, cfg.Billing.DefaultMinimumChargeDays)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("MONGODB_URI", "mongodb://db:27017")
		_ = os.Setenv("MONGODB_DATABASE", "shipments_test")
		_ = os.Setenv("JWT_ENABLED", "true")
		_ = os.Setenv("JWT_SECRET_KEY", "secret")
		_ = os.Setenv("JWT_ISSUER", "identity-service")
		_ = os.Setenv("API_KEY_HASHES", "hash1,hash2")
		_ = os.Setenv("REDIS_ENABLED", "true")
		_ = os.Setenv("REDIS_ADDR", "redis:6379")
		_ = os.Setenv("PHONE_REGION", "NL")
		_ = os.Setenv("BILLING_DEFAULT_STORAGE_RATE_PER_DAY", "0.75")
		_ = os.Setenv("BILLING_DEFAULT_RELEASE_HANDLING_FEE", "12.50")
		_ = os.Setenv("BILLING_DEFAULT_MINIMUM_CHARGE_DAYS", "2")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, "mongodb://db:27017", cfg.Database.URI)
		assert.Equal(t, "shipments_test", cfg.Database.DatabaseName)
		assert.True(t, cfg.Auth.JWTEnabled)
		assert.Equal(t, "secret", cfg.Auth.JWTSecretKey)
		assert.Equal(t, "identity-service", cfg.Auth.JWTIssuer)
		assert.Equal(t, []string{"hash1", "hash2"}, cfg.Auth.APIKeyHashes)
		assert.True(t, cfg.Redis.Enabled)
		assert.Equal(t, "redis:6379", cfg.Redis.Addr)
		assert.Equal(t, "NL", cfg.Billing.PhoneRegion)
		assert.Equal(t, 0.75, cfg.Billing.DefaultStorageRatePerDay)
		assert.Equal(t, 12.50, cfg.Billing.DefaultReleaseHandlingFee)
		assert.Equal(t, 2, cfg.Billing.DefaultMinimumChargeDays)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("JWT_ENABLED", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Auth.JWTEnabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	})

	t.Run("parses API key hashes with whitespace", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("API_KEY_HASHES", " hash1 , hash2 , hash3 ")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, []string{"hash1", "hash2", "hash3"}, cfg.Auth.APIKeyHashes)
	})

	t.Run("returns nil for empty API key hashes", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Nil(t, cfg.Auth.APIKeyHashes)
	})

	t.Run("loads circuit breaker settings", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CIRCUIT_BREAKER_FAILURE_THRESHOLD", "10")
		_ = os.Setenv("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", "3")
		_ = os.Setenv("CIRCUIT_BREAKER_TIMEOUT", "1m")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 10, cfg.Database.CircuitBreakerFailureThreshold)
		assert.Equal(t, 3, cfg.Database.CircuitBreakerSuccessThreshold)
		assert.Equal(t, time.Minute, cfg.Database.CircuitBreakerTimeout)
	})
}
