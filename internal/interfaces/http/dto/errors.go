package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeValidationRequired is used when a required field is missing
	ErrCodeValidationRequired = "ERR_VALIDATION_REQUIRED"
	// ErrCodeValidationFormat is used when a field has invalid format
	ErrCodeValidationFormat = "ERR_VALIDATION_FORMAT"
	// ErrCodeValidationRange is used when a value is out of range
	ErrCodeValidationRange = "ERR_VALIDATION_RANGE"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeForbidden is used when the user lacks permission
	ErrCodeForbidden = "ERR_FORBIDDEN"
	// ErrCodeTokenExpired is used when the auth token has expired
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	// ErrCodeTokenInvalid is used when the auth token is invalid
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
	// ErrCodeAccountLocked is used when the account is temporarily locked
	ErrCodeAccountLocked = "ERR_ACCOUNT_LOCKED"
	// ErrCodeAccountInactive is used when the account has been deactivated
	ErrCodeAccountInactive = "ERR_ACCOUNT_INACTIVE"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
	// ErrCodeConcurrencyConflict is used when optimistic locking fails
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeBusinessRule is used for generic business rule violations
	ErrCodeBusinessRule = "ERR_BUSINESS_RULE"
	// ErrCodeExportFailed is used when report export cannot be produced
	ErrCodeExportFailed = "ERR_EXPORT_FAILED"
	// ErrCodeExportDisabled is used when PDF rendering is not configured
	ErrCodeExportDisabled = "ERR_EXPORT_DISABLED"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
)

// Rate limiting error codes
const (
	// ErrCodeRateLimited is used when rate limit is exceeded
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Validation errors -> 400 Bad Request
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeValidationRequired: http.StatusBadRequest,
	ErrCodeValidationFormat:   http.StatusBadRequest,
	ErrCodeValidationRange:    http.StatusBadRequest,

	// Auth errors
	ErrCodeUnauthorized:    http.StatusUnauthorized,
	ErrCodeForbidden:       http.StatusForbidden,
	ErrCodeTokenExpired:    http.StatusUnauthorized,
	ErrCodeTokenInvalid:    http.StatusUnauthorized,
	ErrCodeAccountLocked:   http.StatusUnauthorized,
	ErrCodeAccountInactive: http.StatusUnauthorized,

	// Resource errors
	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	ErrCodeInvalidState:   http.StatusUnprocessableEntity,
	ErrCodeBusinessRule:   http.StatusUnprocessableEntity,
	ErrCodeExportFailed:   http.StatusUnprocessableEntity,
	ErrCodeExportDisabled: http.StatusServiceUnavailable,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,

	// Rate limiting -> 429 Too Many Requests
	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to standardized codes.
// Domain layers raise codes describing WHAT went wrong; the HTTP layer
// decides how that surfaces on the wire.
var DomainErrorCodeMapping = map[string]string{
	// Shared sentinels
	"NOT_FOUND":            ErrCodeNotFound,
	"ALREADY_EXISTS":       ErrCodeAlreadyExists,
	"INVALID_INPUT":        ErrCodeInvalidInput,
	"INVALID_STATE":        ErrCodeInvalidState,
	"UNAUTHORIZED":         ErrCodeUnauthorized,
	"FORBIDDEN":            ErrCodeForbidden,
	"CONCURRENCY_CONFLICT": ErrCodeConcurrencyConflict,
	"VALIDATION_ERROR":     ErrCodeValidation,
	"BAD_REQUEST":          ErrCodeBadRequest,
	"INTERNAL_ERROR":       ErrCodeInternal,

	// Authentication
	"INVALID_CREDENTIALS": ErrCodeUnauthorized,
	"ACCOUNT_LOCKED":      ErrCodeAccountLocked,
	"ACCOUNT_DEACTIVATED": ErrCodeAccountInactive,
	"ACCOUNT_INACTIVE":    ErrCodeAccountInactive,
	"TOKEN_EXPIRED":       ErrCodeTokenExpired,
	"TOKEN_INVALID":       ErrCodeTokenInvalid,
	"TOKEN_MAX_REFRESH":   ErrCodeTokenInvalid,
	"TOKEN_ERROR":         ErrCodeTokenInvalid,

	// Identity
	"INVALID_EMAIL":          ErrCodeInvalidInput,
	"INVALID_PASSWORD":       ErrCodeInvalidInput,
	"INVALID_ROLE":           ErrCodeInvalidInput,
	"INVALID_DISPLAY_NAME":   ErrCodeInvalidInput,
	"INVALID_ORG_NAME":       ErrCodeInvalidInput,
	"INVALID_CONTACT_NAME":   ErrCodeInvalidInput,
	"INVALID_PHONE":          ErrCodeInvalidInput,
	"INVALID_ADDRESS":        ErrCodeInvalidInput,
	"PASSWORD_HASH_ERROR":    ErrCodeInternal,
	"SELF_DEACTIVATION":      ErrCodeInvalidState,
	"NOT_LOCKED":             ErrCodeInvalidState,
	"ALREADY_ACTIVE":         ErrCodeInvalidState,
	"ALREADY_DEACTIVATED":    ErrCodeInvalidState,
	"ORGANIZATION_NOT_FOUND": ErrCodeNotFound,
	"ORGANIZATION_INACTIVE":  ErrCodeInvalidState,
	"USER_NOT_FOUND":         ErrCodeNotFound,

	// Fleet
	"INVALID_IMO":         ErrCodeInvalidInput,
	"INVALID_VESSEL_NAME": ErrCodeInvalidInput,
	"INVALID_VESSEL_TYPE": ErrCodeInvalidInput,
	"INVALID_FLAG_STATE":  ErrCodeInvalidInput,
	"INVALID_TONNAGE":     ErrCodeInvalidInput,
	"INVALID_YEAR_BUILT":  ErrCodeInvalidInput,
	"INVALID_CAPTAIN_ID":  ErrCodeInvalidInput,
	"INVALID_VESSEL_ID":   ErrCodeInvalidInput,
	"VESSEL_NOT_FOUND":    ErrCodeNotFound,
	"VESSEL_INACTIVE":     ErrCodeInvalidState,
	"CAPTAIN_NOT_FOUND":   ErrCodeNotFound,
	"CAPTAIN_INACTIVE":    ErrCodeInvalidState,
	"NOT_A_CAPTAIN":       ErrCodeInvalidState,

	// Inspection
	"INVALID_TITLE":             ErrCodeInvalidInput,
	"INVALID_PORT":              ErrCodeInvalidInput,
	"INVALID_CATEGORY":          ErrCodeInvalidInput,
	"INVALID_CONDITION":         ErrCodeInvalidInput,
	"INVALID_ITEM":              ErrCodeInvalidInput,
	"INVALID_UNIT":              ErrCodeInvalidInput,
	"INVALID_REPORT_ID":         ErrCodeInvalidInput,
	"INVALID_INSPECTOR_ID":      ErrCodeInvalidInput,
	"INVALID_REVIEWER_ID":       ErrCodeInvalidInput,
	"REPORT_NOT_EDITABLE":       ErrCodeInvalidState,
	"EMPTY_REPORT":              ErrCodeInvalidState,
	"INVALID_STATUS_TRANSITION": ErrCodeInvalidState,
	"ALREADY_DELETED":           ErrCodeInvalidState,
	"UNSUPPORTED_CONTENT_TYPE":  ErrCodeInvalidInput,
	"INVALID_PHOTO_KEY":         ErrCodeInvalidInput,
	"PHOTO_NOT_UPLOADED":        ErrCodeInvalidState,
	"STORAGE_DISABLED":          ErrCodeInvalidState,
	"EXPORT_FAILED":             ErrCodeExportFailed,
	"EXPORT_DISABLED":           ErrCodeExportDisabled,

	// Audit
	"INVALID_ACTION":      ErrCodeInvalidInput,
	"INVALID_ENTITY_TYPE": ErrCodeInvalidInput,
	"INVALID_ENTITY_ID":   ErrCodeInvalidInput,
}

// NormalizeErrorCode converts a domain error code to the standardized format
// If the code is already in the new format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if newCode, ok := DomainErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
