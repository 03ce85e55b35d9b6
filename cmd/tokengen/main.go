package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/rezkam/taskhub/internal/domain"
	"github.com/rezkam/taskhub/internal/env"
	"github.com/rezkam/taskhub/internal/infrastructure/token"
)

// tokenConfig mirrors the server's token settings so minted tokens verify
// against the same secret and issuer.
type tokenConfig struct {
	Secret string        `env:"TASKHUB_TOKEN_SECRET"`
	Issuer string        `env:"TASKHUB_TOKEN_ISSUER" default:"taskhub"`
	TTL    time.Duration `env:"TASKHUB_TOKEN_TTL" default:"1h"`
}

// Command-line tool to mint a bearer token for a given user.
// THIS is not a production-grade tool, just a simple utility for development/testing purposes.
func main() {
	userID := flag.Int64("user", 0, "Numeric user ID for the token subject (required)")
	email := flag.String("email", "", "User email claim (required)")
	role := flag.String("role", string(domain.RoleUser), "User role claim (USER or ADMIN)")
	nickname := flag.String("nickname", "", "User nickname claim (required)")
	ttl := flag.Duration("ttl", 0, "Token validity window (0 = use TASKHUB_TOKEN_TTL)")

	flag.Parse()

	if *userID <= 0 || *email == "" || *nickname == "" {
		flag.Usage()
		log.Fatal("user, email and nickname are required")
	}

	parsedRole, err := domain.ParseRole(*role)
	if err != nil {
		log.Fatalf("Invalid role: %v", err)
	}

	var cfg tokenConfig
	if err := env.Load(&cfg); err != nil {
		log.Fatalf("Failed to load token config: %v", err)
	}
	if cfg.Secret == "" {
		log.Fatal("TASKHUB_TOKEN_SECRET is required")
	}
	if *ttl > 0 {
		cfg.TTL = *ttl
	}

	codec, err := token.NewCodec(token.Config{
		Secret: []byte(cfg.Secret),
		Issuer: cfg.Issuer,
		TTL:    cfg.TTL,
	})
	if err != nil {
		log.Fatalf("Failed to create token codec: %v", err)
	}

	bearer, err := codec.Issue(*userID, *email, parsedRole, *nickname)
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}

	fmt.Println("\n Token created successfully!")
	fmt.Println("----------------------------------------")
	fmt.Printf("Subject: %d\n", *userID)
	fmt.Printf("Email: %s\n", *email)
	fmt.Printf("Role: %s\n", parsedRole)
	fmt.Printf("Nickname: %s\n", *nickname)
	fmt.Printf("Expires: %s (in %s)\n", time.Now().UTC().Add(cfg.TTL).Format(time.RFC3339), cfg.TTL)
	fmt.Println("----------------------------------------")
	fmt.Printf("\nToken: %s\n\n", bearer)
	fmt.Println("Usage example:")
	fmt.Printf("  curl -H \"Authorization: Bearer %s\" http://localhost:8080/tasks/search\n", bearer)
}
