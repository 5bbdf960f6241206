package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nearbyfyi/ner/config"
)

func TestGenerateToken(t *testing.T) {
	// Set up test config with a sample secret
	cfg := &config.Config{
		Auth: config.AuthConfig{
			Secret: "test-secret",
		},
	}

	token, err := GenerateToken(cfg)
	require.NoError(t, err)

	// Validate the generated token
	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.Auth.Secret), nil
	})

	if assert.NoError(t, err) {
		assert.True(t, parsedToken.Valid)
		assert.Equal(t, Issuer, claims["iss"])
	}
}

func TestGenerateTokenWithoutSecret(t *testing.T) {
	_, err := GenerateToken(&config.Config{})
	assert.ErrorIs(t, err, ErrSecretNotSet)
}
