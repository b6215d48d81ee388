package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShipmentSettings holds a company's intake/release validation toggles and
// billing rates. One document per company, created lazily with defaults on
// first use and edited only by the external admin settings CRUD.
//
// Rates are stored as float64 documents; the charge calculator converts them
// to decimals before doing any arithmetic.
type ShipmentSettings struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyID string             `bson:"company_id" json:"company_id"`

	// Intake requirements.
	RequireClientEmail    bool `bson:"require_client_email" json:"require_client_email"`
	RequireClientPhone    bool `bson:"require_client_phone" json:"require_client_phone"`
	RequireEstimatedValue bool `bson:"require_estimated_value" json:"require_estimated_value"`
	RequireRackAssignment bool `bson:"require_rack_assignment" json:"require_rack_assignment"`

	// Release policy.
	AllowPartialRelease   bool `bson:"allow_partial_release" json:"allow_partial_release"`
	PartialReleaseMin     int  `bson:"partial_release_min_boxes" json:"partial_release_min_boxes"`
	RequireIDVerification bool `bson:"require_id_verification" json:"require_id_verification"`
	RequireReleasePhotos  bool `bson:"require_release_photos" json:"require_release_photos"`

	// Billing.
	GenerateReleaseInvoice bool    `bson:"generate_release_invoice" json:"generate_release_invoice"`
	StorageRatePerDay      float64 `bson:"storage_rate_per_day" json:"storage_rate_per_day"`
	StorageRatePerBox      float64 `bson:"storage_rate_per_box" json:"storage_rate_per_box"`
	ReleaseHandlingFee     float64 `bson:"release_handling_fee" json:"release_handling_fee"`
	ReleasePerBoxFee       float64 `bson:"release_per_box_fee" json:"release_per_box_fee"`
	ReleaseTransportFee    float64 `bson:"release_transport_fee" json:"release_transport_fee"`
	MinimumChargeDays      int     `bson:"minimum_charge_days" json:"minimum_charge_days"`

	// Notifications.
	NotifyClientOnRelease bool `bson:"notify_client_on_release" json:"notify_client_on_release"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// SettingsDefaults carries the deployment-scoped billing rates seeded into a
// settings document created on first use.
type SettingsDefaults struct {
	StorageRatePerDay   float64
	StorageRatePerBox   float64
	ReleaseHandlingFee  float64
	ReleasePerBoxFee    float64
	ReleaseTransportFee float64
	MinimumChargeDays   int
}

// DefaultShipmentSettings returns the settings document created when a
// company is resolved for the first time: no hard requirements, partial
// release allowed, all rates zero.
func DefaultShipmentSettings(companyID string, now time.Time) *ShipmentSettings {
	return &ShipmentSettings{
		CompanyID:           companyID,
		AllowPartialRelease: true,
		PartialReleaseMin:   1,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// WithBillingDefaults fills the billing rates of a freshly created settings
// document from deployment configuration.
func (s *ShipmentSettings) WithBillingDefaults(d SettingsDefaults) *ShipmentSettings {
	s.StorageRatePerDay = d.StorageRatePerDay
	s.StorageRatePerBox = d.StorageRatePerBox
	s.ReleaseHandlingFee = d.ReleaseHandlingFee
	s.ReleasePerBoxFee = d.ReleasePerBoxFee
	s.ReleaseTransportFee = d.ReleaseTransportFee
	s.MinimumChargeDays = d.MinimumChargeDays
	return s
}
