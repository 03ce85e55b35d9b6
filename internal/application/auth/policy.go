package auth

import (
	"strings"

	"github.com/rezkam/taskhub/internal/domain"
)

// access is the requirement a policy rule places on a request.
type access int

const (
	// accessPublic allows the request without a principal.
	accessPublic access = iota
	// accessAuthenticated requires any principal.
	accessAuthenticated
	// accessAdmin requires a principal with the ADMIN role.
	accessAdmin
)

// rule maps a path prefix to a required access level.
type rule struct {
	prefix string
	access access
}

// Policy decides whether a principal may reach a request path.
// It is a pure function of path and principal: no I/O, no state beyond
// the ordered rule table fixed at construction.
type Policy struct {
	rules []rule
	// fallback applies when no prefix rule matches.
	fallback access
}

// NewPolicy builds the canonical rule table: /auth is public, /admin is
// admin-only, and everything else requires an authenticated principal.
// Rules are evaluated in order, first match wins.
func NewPolicy() *Policy {
	return &Policy{
		rules: []rule{
			{prefix: "/auth", access: accessPublic},
			{prefix: "/admin", access: accessAdmin},
		},
		fallback: accessAuthenticated,
	}
}

// Authorize checks the principal against the rule matching the path.
//
// A nil principal on a protected path fails with domain.ErrMissingToken so
// the caller can distinguish "not authenticated" from "authenticated but
// not allowed", which fails with domain.ErrAccessDenied.
func (p *Policy) Authorize(path string, principal *domain.Principal) error {
	required := p.fallback
	for _, r := range p.rules {
		if strings.HasPrefix(path, r.prefix) {
			required = r.access
			break
		}
	}

	switch required {
	case accessPublic:
		return nil
	case accessAuthenticated:
		if principal == nil {
			return domain.ErrMissingToken
		}
		return nil
	case accessAdmin:
		if principal == nil {
			return domain.ErrMissingToken
		}
		if !principal.IsAdmin() {
			return domain.ErrAccessDenied
		}
		return nil
	}
	return domain.ErrAccessDenied
}
