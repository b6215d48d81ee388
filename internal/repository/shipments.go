package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/warelane/shipment-service/internal/domain/model"
)

var (
	// ErrShipmentNotFound is returned when a shipment does not exist for the company.
	ErrShipmentNotFound = errors.New("shipment not found")
	// ErrDuplicateReference is returned when a reference id is already taken.
	ErrDuplicateReference = errors.New("shipment reference already exists")
)

// ShipmentsRepository owns shipment documents. Box documents are inserted
// alongside the shipment at intake and mutated by the boxes repository after
// that.
type ShipmentsRepository struct {
	shipments *mongo.Collection
	boxes     *mongo.Collection
}

// NewShipmentsRepository creates a new shipments repository.
func NewShipmentsRepository(db *MongoDB) *ShipmentsRepository {
	return &ShipmentsRepository{shipments: db.Shipments, boxes: db.Boxes}
}

// Create inserts the shipment together with its numbered boxes. Callers run
// it inside a transaction so a failed box insert does not leave a boxless
// shipment behind.
func (r *ShipmentsRepository) Create(ctx context.Context, shipment *model.Shipment, boxes []model.ShipmentBox) error {
	if shipment.ID.IsZero() {
		shipment.ID = primitive.NewObjectID()
	}
	now := time.Now()
	if shipment.CreatedAt.IsZero() {
		shipment.CreatedAt = now
	}
	shipment.UpdatedAt = now

	if _, err := r.shipments.InsertOne(ctx, shipment); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateReference
		}
		return err
	}

	if len(boxes) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(boxes))
	for i := range boxes {
		if boxes[i].ID.IsZero() {
			boxes[i].ID = primitive.NewObjectID()
		}
		boxes[i].ShipmentID = shipment.ID
		boxes[i].CompanyID = shipment.CompanyID
		docs = append(docs, boxes[i])
	}
	_, err := r.boxes.InsertMany(ctx, docs)
	return err
}

// GetByID returns a company's shipment by id.
func (r *ShipmentsRepository) GetByID(ctx context.Context, companyID string, id primitive.ObjectID) (*model.Shipment, error) {
	var shipment model.Shipment
	err := r.shipments.FindOne(ctx, bson.M{"_id": id, "company_id": companyID}).Decode(&shipment)
	if err == mongo.ErrNoDocuments {
		return nil, ErrShipmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

// ApplyTally writes the recomputed aggregate fields. The rack_id view and the
// lifecycle stamps are set or cleared in the same write as the counts, so a
// reader never sees a shipment whose status disagrees with its box counts
// after the enclosing transaction commits.
func (r *ShipmentsRepository) ApplyTally(ctx context.Context, id primitive.ObjectID, update ShipmentTallyUpdate) error {
	now := time.Now()
	set := bson.M{
		"current_box_count": update.CurrentBoxCount,
		"status":            update.Status,
		"updated_at":        now,
	}
	unset := bson.M{}
	if update.RackID != nil {
		set["rack_id"] = *update.RackID
	} else {
		unset["rack_id"] = ""
	}
	if update.StampAssigned {
		set["assigned_at"] = now
		if update.AssignedByID != "" {
			set["assigned_by_id"] = update.AssignedByID
		}
	}
	if update.StampReleased {
		set["released_at"] = now
	}

	doc := bson.M{"$set": set}
	if len(unset) > 0 {
		doc["$unset"] = unset
	}

	result, err := r.shipments.UpdateOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrShipmentNotFound
	}
	return nil
}
