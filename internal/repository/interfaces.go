// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/warelane/shipment-service/internal/domain/model"
)

// TxRunner runs a function inside a storage transaction. The function's
// context must be used for every repository call made within it.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ShipmentRepositoryInterface defines shipment persistence operations.
// Reads are company-scoped: a shipment belonging to another company behaves
// exactly like a missing one.
type ShipmentRepositoryInterface interface {
	Create(ctx context.Context, shipment *model.Shipment, boxes []model.ShipmentBox) error
	GetByID(ctx context.Context, companyID string, id primitive.ObjectID) (*model.Shipment, error)
	ApplyTally(ctx context.Context, id primitive.ObjectID, update ShipmentTallyUpdate) error
}

// ShipmentTallyUpdate carries the recomputed aggregate fields written after
// every box mutation, inside the same transaction.
type ShipmentTallyUpdate struct {
	CurrentBoxCount int
	Status          model.ShipmentStatus
	// RackID is the denormalized single-rack view; nil clears it.
	RackID *primitive.ObjectID
	// StampAssigned records assigned_at/assigned_by_id when the shipment
	// first becomes fully stored.
	StampAssigned bool
	AssignedByID  string
	// StampReleased records released_at on full release.
	StampReleased bool
}

// BoxRepositoryInterface defines box persistence operations.
type BoxRepositoryInterface interface {
	ListByShipment(ctx context.Context, shipmentID primitive.ObjectID) ([]model.ShipmentBox, error)
	ListByNumbers(ctx context.Context, shipmentID primitive.ObjectID, numbers []int) ([]model.ShipmentBox, error)
	Update(ctx context.Context, box *model.ShipmentBox) error
	Tally(ctx context.Context, shipmentID primitive.ObjectID) (model.BoxTally, error)
	CountInStorageAtRack(ctx context.Context, rackID primitive.ObjectID) (int, error)
}

// RackRepositoryInterface is the capacity ledger. Reserve and Free must be
// called inside the same transaction as the matching box transitions.
type RackRepositoryInterface interface {
	Create(ctx context.Context, rack *model.Rack) error
	GetByID(ctx context.Context, companyID string, id primitive.ObjectID) (*model.Rack, error)
	List(ctx context.Context, companyID string) ([]model.Rack, error)
	// Reserve atomically claims count units on an active rack. It returns
	// ErrInsufficientCapacity when the rack cannot fit the request and
	// ErrRackNotFound when the rack does not exist for the company.
	Reserve(ctx context.Context, companyID string, id primitive.ObjectID, count int) (*model.Rack, error)
	// Free atomically returns count units, flooring the counter at zero.
	Free(ctx context.Context, id primitive.ObjectID, count int) (*model.Rack, error)
}

// ActivityRepositoryInterface is the append-only rack audit trail.
type ActivityRepositoryInterface interface {
	Append(ctx context.Context, activity *model.RackActivity) error
	ListByRack(ctx context.Context, rackID primitive.ObjectID, limit int) ([]model.RackActivity, error)
}

// SettingsRepositoryInterface defines company settings persistence.
type SettingsRepositoryInterface interface {
	GetByCompany(ctx context.Context, companyID string) (*model.ShipmentSettings, error)
	Create(ctx context.Context, settings *model.ShipmentSettings) (*model.ShipmentSettings, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
