// Package model defines the core domain entities for the shipment service.
package model

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BoxStatus is the lifecycle state of a single shipment box.
type BoxStatus string

const (
	// BoxStatusPending means the box has been declared at intake but not placed on a rack.
	BoxStatusPending BoxStatus = "PENDING"
	// BoxStatusInStorage means the box is physically stored on a rack.
	BoxStatusInStorage BoxStatus = "IN_STORAGE"
	// BoxStatusReleased means the box left storage. Terminal: released boxes are never re-admitted.
	BoxStatusReleased BoxStatus = "RELEASED"
)

// ShipmentBox is the unit of physical storage. Boxes are created at shipment
// intake, one per declared box, numbered from 1, and only the allocation and
// release services mutate them afterwards.
//
// Invariant: RackID is non-nil exactly when Status is BoxStatusInStorage.
type ShipmentBox struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	ShipmentID primitive.ObjectID  `bson:"shipment_id" json:"shipment_id"`
	CompanyID  string              `bson:"company_id" json:"company_id"`
	BoxNumber  int                 `bson:"box_number" json:"box_number"`
	Status     BoxStatus           `bson:"status" json:"status"`
	RackID     *primitive.ObjectID `bson:"rack_id,omitempty" json:"rack_id,omitempty"`
	AssignedAt *time.Time          `bson:"assigned_at,omitempty" json:"assigned_at,omitempty"`
	ReleasedAt *time.Time          `bson:"released_at,omitempty" json:"released_at,omitempty"`
}

// InvalidTransitionError reports a box state transition that the lifecycle
// does not permit.
type InvalidTransitionError struct {
	BoxNumber int
	From      BoxStatus
	To        BoxStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("box %d: cannot transition from %s to %s", e.BoxNumber, e.From, e.To)
}

// CanAssignTo reports whether the box may be placed on the given rack.
// Pending boxes can be assigned anywhere; stored boxes can only be moved to a
// different rack (re-assignment). Released boxes are terminal.
func (b *ShipmentBox) CanAssignTo(rackID primitive.ObjectID) bool {
	switch b.Status {
	case BoxStatusPending:
		return true
	case BoxStatusInStorage:
		return b.RackID == nil || *b.RackID != rackID
	default:
		return false
	}
}

// AssignTo transitions the box to IN_STORAGE on the given rack.
func (b *ShipmentBox) AssignTo(rackID primitive.ObjectID, at time.Time) error {
	if !b.CanAssignTo(rackID) {
		return &InvalidTransitionError{BoxNumber: b.BoxNumber, From: b.Status, To: BoxStatusInStorage}
	}
	b.Status = BoxStatusInStorage
	b.RackID = &rackID
	b.AssignedAt = &at
	return nil
}

// Release transitions the box to RELEASED and clears its rack reference.
func (b *ShipmentBox) Release(at time.Time) error {
	if b.Status != BoxStatusInStorage {
		return &InvalidTransitionError{BoxNumber: b.BoxNumber, From: b.Status, To: BoxStatusReleased}
	}
	b.Status = BoxStatusReleased
	b.RackID = nil
	b.ReleasedAt = &at
	return nil
}
