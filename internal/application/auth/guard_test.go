package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezkam/taskhub/internal/domain"
)

// mockCodec is a configurable codec for guard tests.
type mockCodec struct {
	decodedTokens []string
	claims        *Claims
	err           error
}

func (m *mockCodec) Decode(raw string) (*Claims, error) {
	m.decodedTokens = append(m.decodedTokens, raw)
	if m.err != nil {
		return nil, m.err
	}
	return m.claims, nil
}

func validClaims() *Claims {
	return &Claims{
		Subject:  "42",
		Email:    "kim@example.com",
		Role:     "USER",
		Nickname: "kim",
	}
}

func TestGuardAuthenticateSuccess(t *testing.T) {
	codec := &mockCodec{claims: validClaims()}
	guard := NewGuard(codec)

	principal, err := guard.Authenticate("Bearer some.jwt.token")
	require.NoError(t, err)

	assert.Equal(t, &domain.Principal{
		UserID:   42,
		Email:    "kim@example.com",
		Role:     domain.RoleUser,
		Nickname: "kim",
	}, principal)

	// Prefix stripped before handing to the codec.
	require.Len(t, codec.decodedTokens, 1)
	assert.Equal(t, "some.jwt.token", codec.decodedTokens[0])
}

func TestGuardAuthenticateMissingHeader(t *testing.T) {
	guard := NewGuard(&mockCodec{claims: validClaims()})

	principal, err := guard.Authenticate("")
	assert.Nil(t, principal)
	assert.ErrorIs(t, err, domain.ErrMissingToken)
}

func TestGuardAuthenticateMissingPrefix(t *testing.T) {
	// Without the Bearer prefix the raw value goes to the codec unchanged
	// and is rejected there; the guard must not panic or invent a status.
	codec := &mockCodec{err: domain.ErrTokenSignatureInvalid}
	guard := NewGuard(codec)

	_, err := guard.Authenticate("not-a-bearer-header")
	assert.ErrorIs(t, err, domain.ErrTokenSignatureInvalid)
	require.Len(t, codec.decodedTokens, 1)
	assert.Equal(t, "not-a-bearer-header", codec.decodedTokens[0])
}

func TestGuardAuthenticateCodecFailuresPassThrough(t *testing.T) {
	// Each codec failure kind must survive the guard untouched so the HTTP
	// layer can choose the correct rejection status.
	for _, sentinel := range []error{
		domain.ErrTokenSignatureInvalid,
		domain.ErrTokenExpired,
		domain.ErrTokenUnsupported,
		domain.ErrTokenClaimsInvalid,
		domain.ErrAuthInternal,
	} {
		guard := NewGuard(&mockCodec{err: sentinel})
		_, err := guard.Authenticate("Bearer whatever")
		assert.ErrorIs(t, err, sentinel)
	}
}

func TestGuardAuthenticateInvalidClaims(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Claims)
	}{
		{name: "non-integer subject", mutate: func(c *Claims) { c.Subject = "abc" }},
		{name: "empty subject", mutate: func(c *Claims) { c.Subject = "" }},
		{name: "unknown role", mutate: func(c *Claims) { c.Role = "OWNER" }},
		{name: "lowercase role", mutate: func(c *Claims) { c.Role = "admin" }},
		{name: "empty email", mutate: func(c *Claims) { c.Email = "" }},
		{name: "empty nickname", mutate: func(c *Claims) { c.Nickname = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := validClaims()
			tt.mutate(claims)

			guard := NewGuard(&mockCodec{claims: claims})
			principal, err := guard.Authenticate("Bearer token")
			assert.Nil(t, principal)
			assert.ErrorIs(t, err, domain.ErrTokenClaimsInvalid)
		})
	}
}
