// Package i18n provides internationalization support for the kit service.
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
	// ErrKeySessionNotFound indicates an unknown or expired session.
	ErrKeySessionNotFound = "error.session_not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyUploadTooLarge indicates an upload over the byte limit.
	ErrKeyUploadTooLarge = "error.upload_too_large"
	// ErrKeyUploadTooBig indicates an upload over the pixel limit.
	ErrKeyUploadTooBig = "error.upload_dimensions_exceeded"
	// ErrKeyUploadUndecodable indicates an upload that is not an image.
	ErrKeyUploadUndecodable = "error.upload_undecodable"
	// ErrKeyEmptyOrder indicates an order with no items.
	ErrKeyEmptyOrder = "error.empty_order"
	// ErrKeyKitNotOrderable indicates a kit type that cannot be ordered yet.
	ErrKeyKitNotOrderable = "error.kit_not_orderable"
	// ErrKeyTeamNotFound indicates an unknown team.
	ErrKeyTeamNotFound = "error.team_not_found"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyOrderPlaced indicates a successfully placed order.
	SuccessKeyOrderPlaced = "success.order_placed"
	// SuccessKeyTeamCreated indicates a successfully created team.
	SuccessKeyTeamCreated = "success.team_created"
)
