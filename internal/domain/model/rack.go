package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RackStatus marks whether a rack may receive new boxes.
type RackStatus string

const (
	// RackStatusActive means the rack accepts assignments.
	RackStatusActive RackStatus = "ACTIVE"
	// RackStatusInactive means the rack is closed to new assignments.
	RackStatusInactive RackStatus = "INACTIVE"
)

// Rack is a fixed-capacity physical storage location.
//
// Invariant: 0 <= CapacityUsed <= CapacityTotal, and CapacityUsed equals the
// number of boxes currently IN_STORAGE on this rack. The counter only moves
// through the capacity ledger, inside the same transaction as the matching
// box transition.
type Rack struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyID     string             `bson:"company_id" json:"company_id"`
	Code          string             `bson:"code" json:"code"`
	CapacityTotal int                `bson:"capacity_total" json:"capacity_total"`
	CapacityUsed  int                `bson:"capacity_used" json:"capacity_used"`
	Status        RackStatus         `bson:"status" json:"status"`
	LastActivity  *time.Time         `bson:"last_activity,omitempty" json:"last_activity,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// Available returns the number of boxes the rack can still take.
func (r *Rack) Available() int {
	if n := r.CapacityTotal - r.CapacityUsed; n > 0 {
		return n
	}
	return 0
}

// ActivityType classifies a rack audit entry.
type ActivityType string

const (
	// ActivityAssign records boxes entering the rack.
	ActivityAssign ActivityType = "ASSIGN"
	// ActivityRelease records boxes leaving the rack.
	ActivityRelease ActivityType = "RELEASE"
)

// RackActivity is an append-only audit entry: the system of record for what
// happened to a rack and when. Entries are never updated or deleted.
type RackActivity struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RackID        primitive.ObjectID `bson:"rack_id" json:"rack_id"`
	CompanyID     string             `bson:"company_id" json:"company_id"`
	UserID        string             `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Type          ActivityType       `bson:"activity_type" json:"activity_type"`
	ItemDetails   string             `bson:"item_details,omitempty" json:"item_details,omitempty"`
	QuantityAfter int                `bson:"quantity_after" json:"quantity_after"`
	Timestamp     time.Time          `bson:"timestamp" json:"timestamp"`
}
