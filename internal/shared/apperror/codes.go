package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput     = "INVALID_INPUT"
	CodeValidation       = "VALIDATION_ERROR"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeInvalidState     = "INVALID_STATE"
	CodeEmptySelection   = "EMPTY_SELECTION"
	CodeNamingExhausted  = "NAMING_EXHAUSTED"
	CodeTooManyRequests  = "TOO_MANY_REQUESTS"
	CodeRequestInFlight  = "PROCESSING"
	CodeDomainNotAllowed = "DOMAIN_NOT_ALLOWED"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeEncodingFailed     = "ENCODING_FAILED"

	// Mixed outcome: some artifacts were produced, some were not.
	CodePartialFailure = "PARTIAL_FAILURE"
)
