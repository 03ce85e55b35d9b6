package config

import (
	"errors"
	"time"
)

// ErrTokenSecretRequired is returned when the signing secret is not configured.
var ErrTokenSecretRequired = errors.New("TASKHUB_TOKEN_SECRET is required")

// TokenConfig holds bearer token codec configuration.
type TokenConfig struct {
	// Secret is the HMAC signing key shared with the token issuer.
	Secret string `env:"TASKHUB_TOKEN_SECRET"`

	// Issuer is verified against the token's iss claim when set.
	Issuer string `env:"TASKHUB_TOKEN_ISSUER" default:"taskhub"`

	// TTL is the validity window for minted tokens.
	TTL time.Duration `env:"TASKHUB_TOKEN_TTL" default:"1h"`
}

// Validate validates the token configuration.
func (c *TokenConfig) Validate() error {
	if c.Secret == "" {
		return ErrTokenSecretRequired
	}
	return nil
}
