package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/warelane/shipment-service/internal/domain/model"
)

// ErrSettingsNotFound is returned when a company has no settings document yet.
var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository owns per-company shipment settings documents.
type SettingsRepository struct {
	collection *mongo.Collection
}

// NewSettingsRepository creates a new settings repository.
func NewSettingsRepository(db *MongoDB) *SettingsRepository {
	return &SettingsRepository{collection: db.Settings}
}

// GetByCompany returns the company's settings document.
func (r *SettingsRepository) GetByCompany(ctx context.Context, companyID string) (*model.ShipmentSettings, error) {
	var settings model.ShipmentSettings
	err := r.collection.FindOne(ctx, bson.M{"company_id": companyID}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Create inserts the settings document. When another writer created one for
// the same company first, the unique index wins the race and Create returns
// the existing document instead.
func (r *SettingsRepository) Create(ctx context.Context, settings *model.ShipmentSettings) (*model.ShipmentSettings, error) {
	if settings.ID.IsZero() {
		settings.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, settings)
	if mongo.IsDuplicateKeyError(err) {
		return r.GetByCompany(ctx, settings.CompanyID)
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}
