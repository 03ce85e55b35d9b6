package domain

import "errors"

// Domain errors returned by the auth guard, policy, and repositories.

var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrTaskNotFound indicates the specified task does not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidID indicates the provided ID format is invalid.
	ErrInvalidID = errors.New("invalid ID format")

	// ErrInvalidRole indicates a role name that is not USER or ADMIN.
	ErrInvalidRole = errors.New("invalid user role")
)

// Authentication errors. The guard maps token codec failures onto these
// sentinels so the HTTP layer can pick the right status code for each.

var (
	// ErrMissingToken indicates the Authorization header was absent.
	ErrMissingToken = errors.New("authorization token required")

	// ErrTokenSignatureInvalid indicates the token signature check failed
	// or the token was structurally malformed.
	ErrTokenSignatureInvalid = errors.New("invalid token signature")

	// ErrTokenExpired indicates the token is past its validity window.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenUnsupported indicates the token format or algorithm is not
	// recognized by the codec.
	ErrTokenUnsupported = errors.New("unsupported token")

	// ErrTokenClaimsInvalid indicates a required claim is missing,
	// unparseable, or carries an unknown role name.
	ErrTokenClaimsInvalid = errors.New("invalid token claims")

	// ErrAuthInternal indicates an unexpected failure while decoding a token.
	ErrAuthInternal = errors.New("internal authentication failure")

	// ErrAccessDenied indicates an authenticated principal lacks the role
	// required for the requested path.
	ErrAccessDenied = errors.New("access denied")
)
