package dto

import "net/http"

// Error code constants returned by the API.

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeInvalidCredentials is used when login credentials do not match
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	// ErrCodeTokenExpired is used when the auth token has expired
	ErrCodeTokenExpired = "TOKEN_EXPIRED"
	// ErrCodeTokenInvalid is used when the auth token is invalid
	ErrCodeTokenInvalid = "TOKEN_INVALID"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeDuplicateUsername is used when a username is already taken
	ErrCodeDuplicateUsername = "DUPLICATE_USERNAME"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "INVALID_JSON"
	// ErrCodeDisallowedFileType is used when an uploaded file has a forbidden extension
	ErrCodeDisallowedFileType = "DISALLOWED_FILE_TYPE"
)

// Rate limiting error codes
const (
	// ErrCodeRateLimited is used when rate limit is exceeded
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Auth errors -> 401 Unauthorized
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeInvalidCredentials: http.StatusUnauthorized,
	ErrCodeTokenExpired:       http.StatusUnauthorized,
	ErrCodeTokenInvalid:       http.StatusUnauthorized,

	// Resource errors
	ErrCodeNotFound:          http.StatusNotFound,
	ErrCodeDuplicateUsername: http.StatusConflict,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeInvalidInput:       http.StatusBadRequest,
	ErrCodeInvalidJSON:        http.StatusBadRequest,
	ErrCodeDisallowedFileType: http.StatusBadRequest,

	// Account and profile validation -> 400 Bad Request
	"INVALID_USERNAME":        http.StatusBadRequest,
	"INVALID_PASSWORD":        http.StatusBadRequest,
	"INVALID_NAME":            http.StatusBadRequest,
	"INVALID_AGE":             http.StatusBadRequest,
	"INVALID_HEALTH_GOALS":    http.StatusBadRequest,
	"INVALID_PROFILE_PICTURE": http.StatusBadRequest,

	// Journal entry validation -> 400 Bad Request
	"INVALID_DATE":         http.StatusBadRequest,
	"INVALID_SLEEP_HOURS":  http.StatusBadRequest,
	"INVALID_WATER_INTAKE": http.StatusBadRequest,
	"INVALID_SYMPTOMS":     http.StatusBadRequest,
	"INVALID_MOOD":         http.StatusBadRequest,
	"INVALID_NOTES":        http.StatusBadRequest,

	// CSV import -> 400 Bad Request
	"IMPORT_INVALID_FILE":   http.StatusBadRequest,
	"IMPORT_FILE_TOO_LARGE": http.StatusRequestEntityTooLarge,

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
