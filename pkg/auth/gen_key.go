package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nearbyfyi/ner/config"
)

var ErrSecretNotSet = errors.New(
	"auth secret not set. Ensure NER_AUTH_SECRET is set in your environment",
)

const Issuer = "ner"

// GenerateToken signs a token accepted by the API when auth is required.
func GenerateToken(cfg *config.Config) (string, error) {
	secret := []byte(cfg.Auth.Secret)
	if len(secret) == 0 {
		return "", ErrSecretNotSet
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:   Issuer,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	})

	return token.SignedString(secret)
}
