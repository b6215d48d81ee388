package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/warelane/shipment-service/internal/domain/model"
)

// ActivitiesRepository appends and reads the rack audit trail. Entries are
// insert-only: there is no update or delete path.
type ActivitiesRepository struct {
	collection *mongo.Collection
}

// NewActivitiesRepository creates a new activities repository.
func NewActivitiesRepository(db *MongoDB) *ActivitiesRepository {
	return &ActivitiesRepository{collection: db.Activities}
}

// Append records a rack movement.
func (r *ActivitiesRepository) Append(ctx context.Context, activity *model.RackActivity) error {
	if activity.ID.IsZero() {
		activity.ID = primitive.NewObjectID()
	}
	if activity.Timestamp.IsZero() {
		activity.Timestamp = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, activity)
	return err
}

// ListByRack returns the rack's most recent entries, newest first.
func (r *ActivitiesRepository) ListByRack(ctx context.Context, rackID primitive.ObjectID, limit int) ([]model.RackActivity, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := r.collection.Find(ctx, bson.M{"rack_id": rackID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var activities []model.RackActivity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}
