// Package repository provides data access for storage racks.
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/warelane/shipment-service/internal/domain/model"
)

var (
	// ErrRackNotFound is returned when a rack does not exist for the company.
	ErrRackNotFound = errors.New("rack not found")
	// ErrInsufficientCapacity is returned when a reservation does not fit.
	ErrInsufficientCapacity = errors.New("insufficient rack capacity")
	// ErrDuplicateRackCode is returned when a rack code is already taken.
	ErrDuplicateRackCode = errors.New("rack code already exists")
)

// RacksRepository owns the rack documents and the capacity counter.
type RacksRepository struct {
	collection *mongo.Collection
}

// NewRacksRepository creates a new racks repository.
func NewRacksRepository(db *MongoDB) *RacksRepository {
	return &RacksRepository{collection: db.Racks}
}

// Create inserts a new rack.
func (r *RacksRepository) Create(ctx context.Context, rack *model.Rack) error {
	if rack.ID.IsZero() {
		rack.ID = primitive.NewObjectID()
	}
	now := time.Now()
	if rack.CreatedAt.IsZero() {
		rack.CreatedAt = now
	}
	rack.UpdatedAt = now
	if rack.Status == "" {
		rack.Status = model.RackStatusActive
	}

	_, err := r.collection.InsertOne(ctx, rack)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateRackCode
	}
	return err
}

// GetByID returns a company's rack by id.
func (r *RacksRepository) GetByID(ctx context.Context, companyID string, id primitive.ObjectID) (*model.Rack, error) {
	var rack model.Rack
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "company_id": companyID}).Decode(&rack)
	if err == mongo.ErrNoDocuments {
		return nil, ErrRackNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rack, nil
}

// List returns a company's racks ordered by code.
func (r *RacksRepository) List(ctx context.Context, companyID string) ([]model.Rack, error) {
	opts := options.Find().SetSort(bson.D{{Key: "code", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"company_id": companyID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var racks []model.Rack
	if err := cursor.All(ctx, &racks); err != nil {
		return nil, err
	}
	return racks, nil
}

// Reserve claims count units on an active rack. The filter carries the
// capacity check, so the check-and-increment is a single atomic document
// update: two concurrent reservations against a near-full rack serialize on
// the document and the loser matches nothing instead of overselling.
func (r *RacksRepository) Reserve(ctx context.Context, companyID string, id primitive.ObjectID, count int) (*model.Rack, error) {
	filter := bson.M{
		"_id":        id,
		"company_id": companyID,
		"status":     model.RackStatusActive,
		"$expr": bson.M{
			"$lte": bson.A{
				bson.M{"$add": bson.A{"$capacity_used", count}},
				"$capacity_total",
			},
		},
	}
	update := bson.M{
		"$inc": bson.M{"capacity_used": count},
		"$set": bson.M{"last_activity": time.Now(), "updated_at": time.Now()},
	}

	var rack model.Rack
	err := r.collection.FindOneAndUpdate(
		ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&rack)
	if err == mongo.ErrNoDocuments {
		// Distinguish a missing rack from a full one.
		if _, getErr := r.GetByID(ctx, companyID, id); getErr != nil {
			return nil, getErr
		}
		return nil, ErrInsufficientCapacity
	}
	if err != nil {
		return nil, err
	}
	return &rack, nil
}

// Free returns count units to the rack, flooring the counter at zero. The
// pipeline update keeps the floor atomic with the decrement.
func (r *RacksRepository) Free(ctx context.Context, id primitive.ObjectID, count int) (*model.Rack, error) {
	now := time.Now()
	update := bson.A{
		bson.M{"$set": bson.M{
			"capacity_used": bson.M{
				"$max": bson.A{0, bson.M{"$subtract": bson.A{"$capacity_used", count}}},
			},
			"last_activity": now,
			"updated_at":    now,
		}},
	}

	var rack model.Rack
	err := r.collection.FindOneAndUpdate(
		ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&rack)
	if err == mongo.ErrNoDocuments {
		return nil, ErrRackNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rack, nil
}
