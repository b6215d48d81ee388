// Package i18n provides internationalization support for the shipment service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyCapacityExceeded indicates a rack without room for the request.
	ErrKeyCapacityExceeded = "error.capacity_exceeded"
	// ErrKeyValidationFailed indicates a settings-driven requirement the
	// request does not satisfy; the details name the requirement.
	ErrKeyValidationFailed = "error.validation_failed"
	// ErrKeyPolicyViolation indicates a request that conflicts with release policy.
	ErrKeyPolicyViolation = "error.policy_violation"
	// ErrKeyNoBoxesEligible indicates a release request with nothing to act on.
	ErrKeyNoBoxesEligible = "error.no_boxes_eligible"
	// ErrKeyCompanyRequired indicates a request without company context.
	ErrKeyCompanyRequired = "error.company_required"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyBoxesAssigned indicates a completed box assignment.
	SuccessKeyBoxesAssigned = "success.boxes_assigned"
	// SuccessKeyBoxesReleased indicates a completed box release.
	SuccessKeyBoxesReleased = "success.boxes_released"
)
