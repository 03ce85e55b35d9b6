// Package token implements the bearer token codec on HMAC-signed JWTs.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rezkam/taskhub/internal/application/auth"
	"github.com/rezkam/taskhub/internal/domain"
)

// DefaultTTL is the access token lifetime used when none is configured.
const DefaultTTL = time.Hour

// Config holds the codec's signing configuration.
type Config struct {
	// Secret is the HMAC-SHA256 signing key. Required.
	Secret []byte
	// Issuer is stamped into minted tokens and, when set, verified on decode.
	Issuer string
	// TTL is the validity window for minted tokens.
	TTL time.Duration
}

// Codec signs and verifies bearer tokens carrying the user claims the
// auth guard needs. It is immutable after construction and safe for
// concurrent use.
type Codec struct {
	config Config
}

// accessClaims is the wire shape of a token payload.
type accessClaims struct {
	Email    string `json:"email"`
	UserRole string `json:"userRole"`
	Nickname string `json:"nickname"`
	jwt.RegisteredClaims
}

// NewCodec creates a codec from the given configuration.
func NewCodec(cfg Config) (*Codec, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("token secret is required")
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return &Codec{config: cfg}, nil
}

// Issue mints a signed token for the given user. The subject is the user
// ID; email, role, and nickname travel as named claims so the guard can
// rebuild the principal without a store lookup.
func (c *Codec) Issue(userID int64, email string, role domain.Role, nickname string) (string, error) {
	now := time.Now().UTC()

	claims := accessClaims{
		Email:    email,
		UserRole: string(role),
		Nickname: nickname,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    c.config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.config.TTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.config.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies a raw token and returns its claim set. Failures are
// mapped onto the domain token error sentinels so each decode outcome
// stays distinguishable for the caller:
//
//	malformed or bad signature -> domain.ErrTokenSignatureInvalid
//	past expiry                -> domain.ErrTokenExpired
//	unknown algorithm          -> domain.ErrTokenUnsupported
//	claim validation failure   -> domain.ErrTokenClaimsInvalid
//	anything else              -> domain.ErrAuthInternal
func (c *Codec) Decode(raw string) (*auth.Claims, error) {
	var options []jwt.ParserOption
	if c.config.Issuer != "" {
		options = append(options, jwt.WithIssuer(c.config.Issuer))
	}

	parser := jwt.NewParser(options...)
	var claims accessClaims
	token, err := parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		// Rejecting the algorithm in the keyfunc surfaces unknown methods
		// as an unsupported-token failure rather than a bad signature.
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing algorithm: %s", t.Method.Alg())
		}
		return c.config.Secret, nil
	})
	if err != nil {
		return nil, mapParseError(err)
	}
	if !token.Valid {
		return nil, domain.ErrTokenClaimsInvalid
	}

	return &auth.Claims{
		Subject:  claims.Subject,
		Email:    claims.Email,
		Role:     claims.UserRole,
		Nickname: claims.Nickname,
	}, nil
}

// mapParseError translates golang-jwt parse failures into domain sentinels.
// Expiry is checked before the generic claims class because the library
// reports it as a claims validation error.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", domain.ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenMalformed), errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %w", domain.ErrTokenSignatureInvalid, err)
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %w", domain.ErrTokenUnsupported, err)
	case errors.Is(err, jwt.ErrTokenInvalidClaims):
		return fmt.Errorf("%w: %w", domain.ErrTokenClaimsInvalid, err)
	default:
		return fmt.Errorf("%w: %w", domain.ErrAuthInternal, err)
	}
}
