package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShipmentStatus is the coarse state of a shipment, always derived from the
// states of its boxes and never tracked independently.
type ShipmentStatus string

const (
	// ShipmentStatusPending means at least one box has not been placed yet.
	ShipmentStatusPending ShipmentStatus = "PENDING"
	// ShipmentStatusInStorage means every box is on a rack and none has left.
	ShipmentStatusInStorage ShipmentStatus = "IN_STORAGE"
	// ShipmentStatusPartial means some boxes have been released and some remain.
	ShipmentStatusPartial ShipmentStatus = "PARTIAL"
	// ShipmentStatusReleased means every box has been released. Terminal.
	ShipmentStatusReleased ShipmentStatus = "RELEASED"
)

// Shipment is a logical intake unit: a client delivery broken into
// individually numbered boxes.
//
// RackID is a denormalized legacy view of placement: it is set when every
// stored box of the shipment sits on a single rack and cleared otherwise.
// Per-box placement is authoritative.
type Shipment struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	ReferenceID      string              `bson:"reference_id" json:"reference_id"`
	CompanyID        string              `bson:"company_id" json:"company_id"`
	ClientName       string              `bson:"client_name" json:"client_name"`
	ClientPhone      string              `bson:"client_phone,omitempty" json:"client_phone,omitempty"`
	ClientEmail      string              `bson:"client_email,omitempty" json:"client_email,omitempty"`
	EstimatedValue   float64             `bson:"estimated_value,omitempty" json:"estimated_value,omitempty"`
	OriginalBoxCount int                 `bson:"original_box_count" json:"original_box_count"`
	CurrentBoxCount  int                 `bson:"current_box_count" json:"current_box_count"`
	Status           ShipmentStatus      `bson:"status" json:"status"`
	ArrivalDate      time.Time           `bson:"arrival_date" json:"arrival_date"`
	RackID           *primitive.ObjectID `bson:"rack_id,omitempty" json:"rack_id,omitempty"`
	AssignedAt       *time.Time          `bson:"assigned_at,omitempty" json:"assigned_at,omitempty"`
	AssignedByID     string              `bson:"assigned_by_id,omitempty" json:"assigned_by_id,omitempty"`
	ReleasedAt       *time.Time          `bson:"released_at,omitempty" json:"released_at,omitempty"`
	CreatedAt        time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time           `bson:"updated_at" json:"updated_at"`
}

// BoxTally counts a shipment's boxes by lifecycle state.
type BoxTally struct {
	Pending   int `bson:"pending" json:"pending"`
	InStorage int `bson:"in_storage" json:"in_storage"`
	Released  int `bson:"released" json:"released"`
}

// Total returns the number of boxes counted.
func (t BoxTally) Total() int {
	return t.Pending + t.InStorage + t.Released
}

// Remaining returns the boxes not yet released.
func (t BoxTally) Remaining() int {
	return t.Pending + t.InStorage
}

// DeriveShipmentStatus computes the aggregate status from a box tally.
func DeriveShipmentStatus(t BoxTally) ShipmentStatus {
	switch {
	case t.Total() == 0:
		return ShipmentStatusPending
	case t.Released == t.Total():
		return ShipmentStatusReleased
	case t.Pending > 0 && t.Released == 0:
		return ShipmentStatusPending
	case t.Released > 0:
		return ShipmentStatusPartial
	default:
		return ShipmentStatusInStorage
	}
}
