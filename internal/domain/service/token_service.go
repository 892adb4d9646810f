package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by the bearer token.
type Claims struct {
	AccountID uuid.UUID
	Roles     []string
	jwt.RegisteredClaims
}

// TokenService is the session-issuance boundary: given a verified account it
// returns an opaque stateless bearer credential encoding the subject and
// role claims. Token lifetime is owned by this provider.
type TokenService interface {
	// Generate creates a signed bearer token for the given account and roles.
	Generate(accountID uuid.UUID, roles []string) (string, error)

	// Validate checks a token string and returns its claims.
	Validate(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured token lifetime.
	AccessTokenDuration() time.Duration
}
