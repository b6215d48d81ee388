// Package apperr defines the typed errors the core operations return.
//
// Every rejection carries enough structured context (available capacity,
// required minimum, missing requirement) for the caller to self-correct
// without a second round trip. The HTTP layer maps these onto response codes;
// services never return transport-specific errors.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies an error category in API responses.
type Code string

const (
	CodeInvalidRequest   Code = "invalid_request"
	CodeNotFound         Code = "not_found"
	CodeCapacityExceeded Code = "capacity_exceeded"
	CodeValidationFailed Code = "validation_failed"
	CodePolicyViolation  Code = "policy_violation"
	CodeNoBoxesEligible  Code = "no_boxes_eligible"
	CodeInternal         Code = "internal_error"
)

// Error is a typed operation error with structured context.
type Error struct {
	Code    Code
	Message string
	// Details holds machine-readable context, e.g. {"available": 3}.
	Details map[string]interface{}
	// Err is the wrapped cause, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the transport status for the error code.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeInvalidRequest, CodeValidationFailed, CodePolicyViolation, CodeNoBoxesEligible:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeCapacityExceeded:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// As extracts an *Error from err, if present.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// InvalidRequest reports malformed caller input, rejected before any storage
// interaction.
func InvalidRequest(message string) *Error {
	return &Error{Code: CodeInvalidRequest, Message: message}
}

// NotFound reports a referenced resource that does not exist or belongs to
// another company.
func NotFound(resource string) *Error {
	return &Error{Code: CodeNotFound, Message: resource + " not found"}
}

// CapacityExceeded reports a rack that cannot fit the requested box count.
// Available tells the caller how many boxes the rack can still take.
func CapacityExceeded(rackCode string, requested, available int) *Error {
	return &Error{
		Code:    CodeCapacityExceeded,
		Message: fmt.Sprintf("rack %s cannot fit %d boxes", rackCode, requested),
		Details: map[string]interface{}{
			"rack":      rackCode,
			"requested": requested,
			"available": available,
		},
	}
}

// ValidationFailed reports a settings-driven requirement that the request
// does not satisfy. The missing requirement is named in the details.
func ValidationFailed(message, requirement string) *Error {
	return &Error{
		Code:    CodeValidationFailed,
		Message: message,
		Details: map[string]interface{}{"requirement": requirement},
	}
}

// PolicyViolation reports a request that conflicts with the company's
// release policy.
func PolicyViolation(message string, details map[string]interface{}) *Error {
	return &Error{Code: CodePolicyViolation, Message: message, Details: details}
}

// NoBoxesEligible reports a well-formed release request with nothing to act
// on: every referenced box is already released or was never stored.
func NoBoxesEligible() *Error {
	return &Error{Code: CodeNoBoxesEligible, Message: "no boxes eligible for release"}
}

// Internal wraps a storage or transaction failure. Callers may retry; the
// operation was never partially applied.
func Internal(err error) *Error {
	return &Error{Code: CodeInternal, Message: "internal error", Err: err}
}
