// Command devtoken mints a session token for local development, signed with
// the same JWT_SECRET the server verifies.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/nekogravitycat/court-booking-web/internal/auth"
	"github.com/nekogravitycat/court-booking-web/internal/config"
)

func main() {
	userID := flag.String("user", "", "user id (required)")
	name := flag.String("name", "", "display name")
	email := flag.String("email", "", "email address")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to JWT_ACCESS_TOKEN_TTL)")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})

	if *userID == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *ttl <= 0 {
		*ttl = cfg.JWTAccessTokenTTL
	}

	token, err := auth.NewJWTManager(cfg.JWTSecret, *ttl).GenerateAccessToken(auth.Session{
		UserID: *userID,
		Name:   *name,
		Email:  *email,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to sign token")
	}

	fmt.Println(token)
}
