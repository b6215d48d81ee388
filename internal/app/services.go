// Package app provides service initialization.
package app

import (
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/warelane/shipment-service/config"
	"github.com/warelane/shipment-service/internal/domain/model"
	"github.com/warelane/shipment-service/internal/service"
)

// ServiceComponents holds the business services.
type ServiceComponents struct {
	Shipments  service.ShipmentService
	Allocation service.AllocationService
	Release    service.ReleaseService
	Charges    service.ChargeService
	Racks      service.RackService
	Settings   service.SettingsResolver
}

// InitializeServices wires the business services on top of the repositories.
func InitializeServices(cfg config.Config, db *DatabaseComponents) *ServiceComponents {
	settings := service.NewSettingsResolver(db.SettingsRepo, model.SettingsDefaults{
		StorageRatePerDay:   cfg.Billing.DefaultStorageRatePerDay,
		StorageRatePerBox:   cfg.Billing.DefaultStorageRatePerBox,
		ReleaseHandlingFee:  cfg.Billing.DefaultReleaseHandlingFee,
		ReleasePerBoxFee:    cfg.Billing.DefaultReleasePerBoxFee,
		ReleaseTransportFee: cfg.Billing.DefaultReleaseTransportFee,
		MinimumChargeDays:   cfg.Billing.DefaultMinimumChargeDays,
	})

	var notifier service.Notifier
	var invoices service.InvoiceDispatcher
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		sinkCfg := service.DefaultRedisEventSinkConfig()
		sinkCfg.NotifyChannel = cfg.Redis.NotifyChannel
		sinkCfg.InvoiceChannel = cfg.Redis.InvoiceChannel
		sinkCfg.DefaultRegion = cfg.Billing.PhoneRegion
		sink := service.NewRedisEventSink(client, sinkCfg)
		notifier = sink
		invoices = sink
		log.Info().Str("addr", cfg.Redis.Addr).Msg("Connected event sink to Redis")
	}

	return &ServiceComponents{
		Shipments:  service.NewShipmentService(db.DB, db.ShipmentsRepo, db.BoxesRepo, settings),
		Allocation: service.NewAllocationService(db.DB, db.ShipmentsRepo, db.BoxesRepo, db.RacksRepo, db.ActivitiesRepo),
		Release:    service.NewReleaseService(db.DB, db.ShipmentsRepo, db.BoxesRepo, db.RacksRepo, db.ActivitiesRepo, settings, notifier, invoices),
		Charges:    service.NewChargeService(db.ShipmentsRepo, db.BoxesRepo, settings),
		Racks:      service.NewRackService(db.RacksRepo, db.ActivitiesRepo),
		Settings:   settings,
	}
}
