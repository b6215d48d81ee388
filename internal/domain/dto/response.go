package dto

import (
	"net/http"
	"time"

	"github.com/warelane/shipment-service/internal/domain/apperr"
	"github.com/warelane/shipment-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-06-01T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"capacity_exceeded"`
	Message string `json:"message,omitempty" example:"The rack does not have enough free capacity"`
	// Details contains structured context the caller can act on,
	// e.g. {"available": 2} for capacity rejections.
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time              `json:"timestamp" example:"2025-06-01T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewErrorFromApp builds an ErrorResponse from a typed operation error,
// carrying its code and structured details through to the caller.
func NewErrorFromApp(appErr *apperr.Error) ErrorResponse {
	return ErrorResponse{
		Error:     string(appErr.Code),
		Message:   appErr.Message,
		Details:   appErr.Details,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// AssignBoxesResponse reports the outcome of a box assignment.
// @Description Result of assigning boxes to a rack
type AssignBoxesResponse struct {
	// RequestedCount is how many box numbers the caller listed.
	RequestedCount int `json:"requested_count" example:"3"`
	// AssignedCount is how many boxes were actually placed.
	AssignedCount int `json:"assigned_count" example:"3"`
	// ShipmentStatus is the aggregate status after the assignment.
	ShipmentStatus model.ShipmentStatus `json:"shipment_status" example:"IN_STORAGE"`
} // @name AssignBoxesResponse

// ReleaseBoxesResponse reports the outcome of a release.
// @Description Result of releasing boxes, with charges when invoicing is enabled
type ReleaseBoxesResponse struct {
	// ReleasedCount is how many boxes left storage in this call.
	ReleasedCount int `json:"released_count" example:"3"`
	// RemainingCount is how many boxes the shipment still holds.
	RemainingCount int `json:"remaining_count" example:"3"`
	// ShipmentStatus is the aggregate status after the release.
	ShipmentStatus model.ShipmentStatus `json:"shipment_status" example:"PARTIAL"`
	// Charges is the itemized breakdown, present when the company settings
	// enable release invoicing.
	Charges *model.ChargeBreakdown `json:"charges,omitempty"`
} // @name ReleaseBoxesResponse

// ShipmentResponse is a shipment with its boxes.
// @Description Shipment detail including per-box placement
type ShipmentResponse struct {
	Shipment *model.Shipment     `json:"shipment"`
	Boxes    []model.ShipmentBox `json:"boxes"`
} // @name ShipmentResponse

// RackResponse is a rack with its derived utilization.
// @Description Rack detail with utilization
type RackResponse struct {
	Rack *model.Rack `json:"rack"`
	// Available is the remaining capacity in boxes.
	Available int `json:"available" example:"34"`
} // @name RackResponse
