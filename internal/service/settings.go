package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/warelane/shipment-service/internal/domain/model"
	"github.com/warelane/shipment-service/internal/repository"
)

// SettingsResolver loads a company's shipment settings, creating the default
// document on first use. There is no update path here: settings are edited by
// the external admin CRUD and read-mostly inside this service.
// This interface can be mocked for testing.
type SettingsResolver interface {
	GetOrCreate(ctx context.Context, companyID string) (*model.ShipmentSettings, error)
}

// SettingsResolverImpl implements the SettingsResolver interface.
type SettingsResolverImpl struct {
	repo     repository.SettingsRepositoryInterface
	defaults model.SettingsDefaults
}

// NewSettingsResolver creates a new settings resolver implementation. The
// defaults seed the billing rates of documents created on first use.
func NewSettingsResolver(repo repository.SettingsRepositoryInterface, defaults model.SettingsDefaults) SettingsResolver {
	return &SettingsResolverImpl{repo: repo, defaults: defaults}
}

// GetOrCreate returns the company's settings, inserting the defaults when no
// document exists yet. A concurrent first use is resolved by the repository,
// which returns the winning document.
func (s *SettingsResolverImpl) GetOrCreate(ctx context.Context, companyID string) (*model.ShipmentSettings, error) {
	settings, err := s.repo.GetByCompany(ctx, companyID)
	if err == nil {
		return settings, nil
	}
	if err != repository.ErrSettingsNotFound {
		return nil, err
	}

	created, err := s.repo.Create(ctx, model.DefaultShipmentSettings(companyID, time.Now()).WithBillingDefaults(s.defaults))
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("company_id", companyID).
		Msg("Created default shipment settings")
	return created, nil
}
