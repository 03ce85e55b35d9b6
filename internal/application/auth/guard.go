package auth

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rezkam/taskhub/internal/domain"
)

// bearerPrefix is the literal scheme prefix expected in the
// Authorization header. Matching is case-sensitive.
const bearerPrefix = "Bearer "

// Claims is the set of attributes recovered from a decoded token.
// All values are raw claim strings; the guard is responsible for parsing
// and validating them into a Principal.
type Claims struct {
	Subject  string // user ID, must parse as an integer
	Email    string
	Role     string // must name a known role, case-sensitive
	Nickname string
}

// TokenCodec decodes a raw bearer token into its claim set.
// Implementations must surface failures as the domain token error
// sentinels so callers can map them to distinct outcomes.
type TokenCodec interface {
	Decode(raw string) (*Claims, error)
}

// Guard authenticates requests from their bearer token. It is stateless:
// every request gets a single decode attempt and a freshly built Principal.
type Guard struct {
	codec TokenCodec
}

// NewGuard creates a guard around the given token codec.
func NewGuard(codec TokenCodec) *Guard {
	return &Guard{codec: codec}
}

// Authenticate derives a Principal from the raw Authorization header value.
//
// An empty header fails with domain.ErrMissingToken. A header without the
// Bearer prefix is handed to the codec as-is and fails there as a malformed
// token. Codec failures pass through unchanged; claim parsing failures
// (non-integer subject, unknown role, empty required claim) fail with
// domain.ErrTokenClaimsInvalid.
func (g *Guard) Authenticate(rawHeader string) (*domain.Principal, error) {
	if rawHeader == "" {
		return nil, domain.ErrMissingToken
	}

	token, found := strings.CutPrefix(rawHeader, bearerPrefix)
	if !found {
		// No Bearer prefix: let the codec reject it as malformed rather
		// than inventing a separate failure mode.
		token = rawHeader
	}

	claims, err := g.codec.Decode(token)
	if err != nil {
		return nil, err
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: subject %q is not an integer", domain.ErrTokenClaimsInvalid, claims.Subject)
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTokenClaimsInvalid, err)
	}

	if claims.Email == "" || claims.Nickname == "" {
		return nil, fmt.Errorf("%w: email and nickname are required", domain.ErrTokenClaimsInvalid)
	}

	return &domain.Principal{
		UserID:   userID,
		Email:    claims.Email,
		Role:     role,
		Nickname: claims.Nickname,
	}, nil
}
