package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Wire-level response messages. The texts are part of the API contract
// existing clients match on, so changing them breaks those clients.
const (
	msgNoToken             = "No token provided."
	msgAuthFailed          = "Failed to authenticate token."
	msgRequiresAdmin       = "Requires admin role"
	msgInvalidCredentials  = "Invalid credentials"
	msgInvalidJSON         = "Invalid JSON was passed"
	msgUsernameExists      = "Username already exists"
	msgUserCreated         = "User created successfully"
	msgUserNotFound        = "User not found"
	msgPasswordUpdated     = "Password updated successfully"
	msgAlreadyMarked       = "Attendance already marked for today"
	msgAttendanceMarked    = "Attendance marked successfully"
	msgInternalServerError = "Internal server error"
)
