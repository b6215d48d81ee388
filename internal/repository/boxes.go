package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/warelane/shipment-service/internal/domain/model"
)

// ErrBoxNotFound is returned when an update targets a box that does not exist.
var ErrBoxNotFound = errors.New("box not found")

// BoxesRepository owns per-box placement documents.
type BoxesRepository struct {
	collection *mongo.Collection
}

// NewBoxesRepository creates a new boxes repository.
func NewBoxesRepository(db *MongoDB) *BoxesRepository {
	return &BoxesRepository{collection: db.Boxes}
}

// ListByShipment returns every box of a shipment ordered by box number.
func (r *BoxesRepository) ListByShipment(ctx context.Context, shipmentID primitive.ObjectID) ([]model.ShipmentBox, error) {
	return r.list(ctx, bson.M{"shipment_id": shipmentID})
}

// ListByNumbers returns the shipment's boxes with the given numbers, ordered
// by box number. Numbers with no matching box are simply absent from the
// result; the caller decides how to report them.
func (r *BoxesRepository) ListByNumbers(ctx context.Context, shipmentID primitive.ObjectID, numbers []int) ([]model.ShipmentBox, error) {
	if len(numbers) == 0 {
		return nil, nil
	}
	return r.list(ctx, bson.M{
		"shipment_id": shipmentID,
		"box_number":  bson.M{"$in": numbers},
	})
}

func (r *BoxesRepository) list(ctx context.Context, filter bson.M) ([]model.ShipmentBox, error) {
	opts := options.Find().SetSort(bson.D{{Key: "box_number", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var boxes []model.ShipmentBox
	if err := cursor.All(ctx, &boxes); err != nil {
		return nil, err
	}
	return boxes, nil
}

// Update replaces the box document. Replacement rather than a field update
// so that a cleared rack reference actually disappears from the document.
func (r *BoxesRepository) Update(ctx context.Context, box *model.ShipmentBox) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": box.ID}, box)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrBoxNotFound
	}
	return nil
}

// Tally counts the shipment's boxes by status.
func (r *BoxesRepository) Tally(ctx context.Context, shipmentID primitive.ObjectID) (model.BoxTally, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"shipment_id": shipmentID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return model.BoxTally{}, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var rows []struct {
		Status model.BoxStatus `bson:"_id"`
		Count  int             `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return model.BoxTally{}, err
	}

	var tally model.BoxTally
	for _, row := range rows {
		switch row.Status {
		case model.BoxStatusPending:
			tally.Pending = row.Count
		case model.BoxStatusInStorage:
			tally.InStorage = row.Count
		case model.BoxStatusReleased:
			tally.Released = row.Count
		}
	}
	return tally, nil
}

// CountInStorageAtRack counts the boxes currently stored on a rack.
func (r *BoxesRepository) CountInStorageAtRack(ctx context.Context, rackID primitive.ObjectID) (int, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"rack_id": rackID,
		"status":  model.BoxStatusInStorage,
	})
	return int(count), err
}
