// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/warelane/shipment-service/config"
	"github.com/warelane/shipment-service/internal/circuitbreaker"
	"github.com/warelane/shipment-service/internal/repository"
	"github.com/warelane/shipment-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                     *repository.MongoDB
	ShipmentsRepo          repository.ShipmentRepositoryInterface
	BoxesRepo              repository.BoxRepositoryInterface
	RacksRepo              repository.RackRepositoryInterface
	ActivitiesRepo         repository.ActivityRepositoryInterface
	SettingsRepo           repository.SettingsRepositoryInterface
	LoggingService         service.LoggingService
	SettingsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker     *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and creates the repositories.
// Returns an error rather than degrading: unlike logging, the engine cannot
// run without its storage.
func InitializeDatabase(cfg config.DatabaseConfig) (*DatabaseComponents, error) {
	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		return nil, err
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	settingsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-settings",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	settingsRepo := repository.NewSettingsRepository(db)
	settingsRepoWithCB := repository.NewSettingsRepositoryWithCircuitBreaker(settingsRepo, settingsCB)

	return &DatabaseComponents{
		DB:                     db,
		ShipmentsRepo:          repository.NewShipmentsRepository(db),
		BoxesRepo:              repository.NewBoxesRepository(db),
		RacksRepo:              repository.NewRacksRepository(db),
		ActivitiesRepo:         repository.NewActivitiesRepository(db),
		SettingsRepo:           settingsRepoWithCB,
		LoggingService:         loggingService,
		SettingsCircuitBreaker: settingsCB,
		LogsCircuitBreaker:     logsCB,
	}, nil
}
