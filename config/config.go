// Package config provides configuration management for the shipment service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Billing  BillingConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
}

// AuthConfig holds authentication configuration. Token issuance is external;
// this service only verifies tokens and API keys.
type AuthConfig struct {
	// APIKeyHashes are bcrypt hashes of the accepted API keys.
	APIKeyHashes []string
	// JWTEnabled turns bearer-token verification on.
	JWTEnabled bool
	// JWTSecretKey is the HS256 secret shared with the identity service.
	JWTSecretKey string
	// JWTIssuer, when set, restricts accepted tokens to this issuer.
	JWTIssuer string
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// RedisConfig holds the event sink broker configuration.
type RedisConfig struct {
	Enabled        bool
	Addr           string
	Password       string
	DB             int
	NotifyChannel  string
	InvoiceChannel string
}

// BillingConfig holds the billing-adjacent settings that are deployment
// rather than company scoped.
type BillingConfig struct {
	// PhoneRegion is the ISO country code used to normalize client phone
	// numbers in outbound notifications.
	PhoneRegion string
	// Default rates seeded into a company's settings document when it is
	// created on first use. The admin settings CRUD can override them per
	// company afterwards.
	DefaultStorageRatePerDay   float64
	DefaultStorageRatePerBox   float64
	DefaultReleaseHandlingFee  float64
	DefaultReleasePerBoxFee    float64
	DefaultReleaseTransportFee float64
	DefaultMinimumChargeDays   int
}

// Load creates a Config from the environment, reading a .env file first when
// one is present.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("Failed to load .env file")
	}

	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser: getEnv("SWAGGER_USER", ""),
			SwaggerPass: getEnv("SWAGGER_PASS", ""),
		},
		Auth: AuthConfig{
			APIKeyHashes: parseStringSlice(os.Getenv("API_KEY_HASHES")),
			JWTEnabled:   getEnvBool("JWT_ENABLED", false),
			JWTSecretKey: getEnv("JWT_SECRET_KEY", ""),
			JWTIssuer:    getEnv("JWT_ISSUER", ""),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "shipment_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Redis: RedisConfig{
			Enabled:        getEnvBool("REDIS_ENABLED", false),
			Addr:           getEnv("REDIS_ADDR", "localhost:6379"),
			Password:       getEnv("REDIS_PASSWORD", ""),
			DB:             getEnvInt("REDIS_DB", 0),
			NotifyChannel:  getEnv("REDIS_NOTIFY_CHANNEL", "shipment.release.notifications"),
			InvoiceChannel: getEnv("REDIS_INVOICE_CHANNEL", "shipment.release.invoices"),
		},
		Billing: BillingConfig{
			PhoneRegion:                getEnv("PHONE_REGION", "PT"),
			DefaultStorageRatePerDay:   getEnvFloat("BILLING_DEFAULT_STORAGE_RATE_PER_DAY", 0),
			DefaultStorageRatePerBox:   getEnvFloat("BILLING_DEFAULT_STORAGE_RATE_PER_BOX", 0),
			DefaultReleaseHandlingFee:  getEnvFloat("BILLING_DEFAULT_RELEASE_HANDLING_FEE", 0),
			DefaultReleasePerBoxFee:    getEnvFloat("BILLING_DEFAULT_RELEASE_PER_BOX_FEE", 0),
			DefaultReleaseTransportFee: getEnvFloat("BILLING_DEFAULT_RELEASE_TRANSPORT_FEE", 0),
			DefaultMinimumChargeDays:   getEnvInt("BILLING_DEFAULT_MINIMUM_CHARGE_DAYS", 0),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseStringSlice(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
