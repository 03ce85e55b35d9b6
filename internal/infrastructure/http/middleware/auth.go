package middleware

import (
	"log/slog"
	"net/http"

	"github.com/rezkam/taskhub/internal/application/auth"
	"github.com/rezkam/taskhub/internal/infrastructure/http/response"
)

// Auth is HTTP middleware for bearer token authentication and path-based
// authorization.
type Auth struct {
	guard  *auth.Guard
	policy *auth.Policy
}

// NewAuth creates a new auth middleware.
func NewAuth(guard *auth.Guard, policy *auth.Policy) *Auth {
	return &Auth{
		guard:  guard,
		policy: policy,
	}
}

// Handle is a Chi middleware that authenticates the request from its
// Authorization header and enforces the path policy.
//
// Public paths pass through without a token. On protected paths the guard
// decodes the token once, the resulting principal is attached to the
// request context, and the policy decides admission. Failures are terminal
// for the request and logged by kind, never with the raw token.
func (a *Auth) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, authErr := a.guard.Authenticate(r.Header.Get("Authorization"))

		// The policy sees a nil principal when authentication failed; it
		// allows public paths regardless and rejects the rest.
		if err := a.policy.Authorize(r.URL.Path, principal); err != nil {
			// Prefer the guard's failure kind: a bad token on a protected
			// path should report why the token was rejected, not just that
			// a token is required.
			if authErr != nil {
				slog.WarnContext(r.Context(), "authentication failed",
					"path", r.URL.Path,
					"method", r.Method,
					"reason", authErr)
				response.FromDomainError(w, r, authErr)
				return
			}

			slog.WarnContext(r.Context(), "authorization denied",
				"path", r.URL.Path,
				"method", r.Method,
				"user_id", principal.UserID,
				"role", principal.Role)
			response.FromDomainError(w, r, err)
			return
		}

		if principal != nil {
			slog.DebugContext(r.Context(), "authentication successful",
				"path", r.URL.Path,
				"method", r.Method,
				"user_id", principal.UserID)
			r = r.WithContext(auth.WithPrincipal(r.Context(), principal))
		}

		next.ServeHTTP(w, r)
	})
}
