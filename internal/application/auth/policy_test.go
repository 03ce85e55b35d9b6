package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rezkam/taskhub/internal/domain"
)

func TestPolicyAuthorize(t *testing.T) {
	user := &domain.Principal{UserID: 1, Role: domain.RoleUser, Email: "u@example.com", Nickname: "u"}
	admin := &domain.Principal{UserID: 2, Role: domain.RoleAdmin, Email: "a@example.com", Nickname: "a"}

	tests := []struct {
		name      string
		path      string
		principal *domain.Principal
		wantErr   error
	}{
		{name: "auth routes are public", path: "/auth/login", principal: nil},
		{name: "auth routes with principal", path: "/auth/login", principal: user},
		{name: "admin route rejects USER", path: "/admin/x", principal: user, wantErr: domain.ErrAccessDenied},
		{name: "admin route allows ADMIN", path: "/admin/x", principal: admin},
		{name: "admin route without principal", path: "/admin/x", principal: nil, wantErr: domain.ErrMissingToken},
		{name: "default requires principal", path: "/tasks", principal: nil, wantErr: domain.ErrMissingToken},
		{name: "default allows USER", path: "/tasks", principal: user},
		{name: "default allows ADMIN", path: "/tasks", principal: admin},
		{name: "root path requires principal", path: "/", principal: nil, wantErr: domain.ErrMissingToken},
	}

	policy := NewPolicy()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Authorize(tt.path, tt.principal)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPolicyRuleOrder(t *testing.T) {
	// First matching prefix wins: /auth wins over the authenticated
	// fallback even for nested paths.
	policy := NewPolicy()
	assert.NoError(t, policy.Authorize("/auth/signin/refresh", nil))
}

func TestPrincipalContextRoundTrip(t *testing.T) {
	p := &domain.Principal{UserID: 7, Role: domain.RoleUser, Email: "x@example.com", Nickname: "x"}

	ctx := WithPrincipal(t.Context(), p)
	assert.Same(t, p, PrincipalFromContext(ctx))

	// Absent principal reads as nil, not a zero value.
	assert.Nil(t, PrincipalFromContext(t.Context()))
}
