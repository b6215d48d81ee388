// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing validation
// and serialization for API communication.
package dto

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// CreateShipmentRequest is the intake request: a declared shipment plus the
// number of boxes to create alongside it.
//
// @Description Request to register a new shipment at intake
type CreateShipmentRequest struct {
	// ClientName identifies the client the shipment belongs to.
	ClientName string `json:"client_name" binding:"required" example:"Acme Imports"`
	// ClientPhone is the client contact number, required when company settings demand it.
	ClientPhone string `json:"client_phone,omitempty" example:"+351912345678"`
	// ClientEmail is the client contact email.
	ClientEmail string `json:"client_email,omitempty" example:"ops@acme.example"`
	// EstimatedValue is the declared value of the goods, required when the
	// company settings demand it.
	EstimatedValue float64 `json:"estimated_value,omitempty" example:"1500"`
	// BoxCount is the declared number of boxes; one box record is created per unit.
	BoxCount int `json:"box_count" binding:"required,gt=0" example:"6" minimum:"1"`
	// ArrivalDate is an optional RFC3339 arrival timestamp; defaults to now.
	ArrivalDate string `json:"arrival_date,omitempty" example:"2025-06-01T09:00:00Z"`
} // @name CreateShipmentRequest

// Validate performs custom validation on the request.
func (r *CreateShipmentRequest) Validate() error {
	if r.ClientName == "" {
		return &ValidationError{Field: "client_name", Message: "must not be empty"}
	}
	if r.BoxCount <= 0 {
		return &ValidationError{Field: "box_count", Message: "must be a positive integer"}
	}
	return nil
}

// AssignBoxesRequest asks for a set of a shipment's boxes to be placed on a rack.
//
// @Description Request to assign shipment boxes to a storage rack
type AssignBoxesRequest struct {
	// RackID is the hex id of the target rack.
	RackID string `json:"rack_id" binding:"required" example:"665f1c0a2ab79c7d1e8b4567"`
	// BoxNumbers lists the 1-based box numbers to place.
	BoxNumbers []int `json:"box_numbers" binding:"required,min=1" example:"1,2,3"`
} // @name AssignBoxesRequest

// Validate performs custom validation on the request.
func (r *AssignBoxesRequest) Validate() error {
	if r.RackID == "" {
		return &ValidationError{Field: "rack_id", Message: "must not be empty"}
	}
	if len(r.BoxNumbers) == 0 {
		return &ValidationError{Field: "box_numbers", Message: "must list at least one box"}
	}
	for _, n := range r.BoxNumbers {
		if n <= 0 {
			return &ValidationError{Field: "box_numbers", Message: "box numbers are 1-based positive integers"}
		}
	}
	return nil
}

// ReleaseBoxesRequest asks for some or all of a shipment's stored boxes to be
// released back to the client.
//
// @Description Request to release stored boxes, fully or partially
type ReleaseBoxesRequest struct {
	// ReleaseAll releases every stored box of the shipment.
	ReleaseAll bool `json:"release_all" example:"false"`
	// BoxNumbers lists the boxes to release when ReleaseAll is false.
	BoxNumbers []int `json:"box_numbers,omitempty" example:"1,2,3"`
	// CollectorID identifies the person collecting, required when the company
	// settings demand ID verification.
	CollectorID string `json:"collector_id,omitempty" example:"ID-998877"`
	// ReleasePhotos holds references to handover photos, required when the
	// company settings demand them. Photo storage itself is external.
	ReleasePhotos []string `json:"release_photos,omitempty"`
} // @name ReleaseBoxesRequest

// Validate performs custom validation on the request.
func (r *ReleaseBoxesRequest) Validate() error {
	if !r.ReleaseAll && len(r.BoxNumbers) == 0 {
		return &ValidationError{Field: "box_numbers", Message: "must list boxes unless release_all is set"}
	}
	for _, n := range r.BoxNumbers {
		if n <= 0 {
			return &ValidationError{Field: "box_numbers", Message: "box numbers are 1-based positive integers"}
		}
	}
	return nil
}

// CreateRackRequest registers a new storage rack.
//
// @Description Request to create a storage rack
type CreateRackRequest struct {
	// Code is the human-facing rack code, unique per company.
	Code string `json:"code" binding:"required" example:"A-01"`
	// CapacityTotal is the number of boxes the rack can hold.
	CapacityTotal int `json:"capacity_total" binding:"required,gt=0" example:"40" minimum:"1"`
} // @name CreateRackRequest

// Validate performs custom validation on the request.
func (r *CreateRackRequest) Validate() error {
	if r.Code == "" {
		return &ValidationError{Field: "code", Message: "must not be empty"}
	}
	if r.CapacityTotal <= 0 {
		return &ValidationError{Field: "capacity_total", Message: "must be a positive integer"}
	}
	return nil
}
