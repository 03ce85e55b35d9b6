package auth

import (
	"context"

	"github.com/rezkam/taskhub/internal/domain"
)

type principalContextKey struct{}

// WithPrincipal attaches the authenticated principal to ctx. The HTTP
// middleware calls this once per request after the guard succeeds, so
// downstream authorization and handlers can read the identity without
// re-parsing the token.
func WithPrincipal(ctx context.Context, p *domain.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// PrincipalFromContext returns the principal attached to ctx, or nil when
// the request was not authenticated.
func PrincipalFromContext(ctx context.Context) *domain.Principal {
	if ctx == nil {
		return nil
	}
	p, _ := ctx.Value(principalContextKey{}).(*domain.Principal)
	return p
}
