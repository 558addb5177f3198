package apperrors

// ErrorCode classifies an application error.
type ErrorCode string

const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"

	// Resources
	CodeNotFound ErrorCode = "NOT_FOUND"

	// Business logic
	CodeAlreadyExists   ErrorCode = "ALREADY_EXISTS"
	CodeUserNotVerified ErrorCode = "USER_NOT_VERIFIED"

	// System errors
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
