package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rezkam/taskhub/internal/domain"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []ErrorField `json:"details,omitempty"`
}

// ErrorField describes a field-specific error.
type ErrorField struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// BadRequest sends a 400 Bad Request error.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, "INVALID_REQUEST", message, http.StatusBadRequest)
}

// ValidationError sends a 400 validation error with field details.
func ValidationError(w http.ResponseWriter, field, issue string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: ErrorDetail{
			Code:    "VALIDATION_ERROR",
			Message: "validation failed",
			Details: []ErrorField{
				{Field: field, Issue: issue},
			},
		},
	})
}

// NotFound sends a 404 Not Found error.
func NotFound(w http.ResponseWriter, resource string) {
	Error(w, "NOT_FOUND", resource+" not found", http.StatusNotFound)
}

// Unauthorized sends a 401 Unauthorized error.
func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, "UNAUTHORIZED", message, http.StatusUnauthorized)
}

// Forbidden sends a 403 Forbidden error.
func Forbidden(w http.ResponseWriter, message string) {
	Error(w, "FORBIDDEN", message, http.StatusForbidden)
}

// InternalError sends a 500 Internal Server Error.
// Logs the error server-side with request context but returns a generic
// message to the client to prevent information disclosure.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		slog.ErrorContext(r.Context(), "Internal server error", "error", err)
	}

	Error(w, "INTERNAL_ERROR", "an internal error occurred", http.StatusInternalServerError)
}

// Error sends a generic error response.
func Error(w http.ResponseWriter, code, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// FromDomainError maps domain errors to HTTP responses. Every token
// failure kind keeps its own status so clients can tell a missing header
// (400) from a bad signature or expired token (401) and from a role
// rejection (403).
func FromDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	// Authentication errors: client mistakes (400)
	case errors.Is(err, domain.ErrMissingToken):
		BadRequest(w, "authorization token required")
	case errors.Is(err, domain.ErrTokenUnsupported):
		BadRequest(w, "unsupported token")
	case errors.Is(err, domain.ErrTokenClaimsInvalid):
		BadRequest(w, "invalid token claims")

	// Authentication errors: credential failures (401)
	case errors.Is(err, domain.ErrTokenSignatureInvalid):
		Unauthorized(w, "invalid token signature")
	case errors.Is(err, domain.ErrTokenExpired):
		Unauthorized(w, "token expired")

	// Authorization errors (403)
	case errors.Is(err, domain.ErrAccessDenied):
		Forbidden(w, "access denied")

	// Validation errors (400)
	case errors.Is(err, domain.ErrInvalidID):
		ValidationError(w, "id", "invalid ID format")
	case errors.Is(err, domain.ErrInvalidRole):
		ValidationError(w, "userRole", "invalid user role")

	// Not found errors (404)
	case errors.Is(err, domain.ErrTaskNotFound):
		NotFound(w, "task")
	case errors.Is(err, domain.ErrNotFound):
		NotFound(w, "resource")

	// Unknown errors (500) - log server-side, return generic message
	default:
		InternalError(w, r, err)
	}
}
