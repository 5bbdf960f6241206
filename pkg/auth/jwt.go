package auth

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/nearbyfyi/ner/config"
)

const JwtAlg = "HS256"

// JWTVerifier returns middleware that reads a bearer token from the request
// and verifies it against the configured secret. Pair it with
// jwtauth.Authenticator to reject requests without a valid token.
func JWTVerifier(cfg *config.Config) (func(http.Handler) http.Handler, error) {
	secret := []byte(cfg.Auth.Secret)
	if len(secret) == 0 {
		return nil, ErrSecretNotSet
	}
	tokenAuth := jwtauth.New(JwtAlg, secret, nil)
	return jwtauth.Verifier(tokenAuth), nil
}
