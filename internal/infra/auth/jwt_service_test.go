package auth

import (
	"testing"
	"time"

	"accountd/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret-key"
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: ttl}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := testTokenService(t, time.Hour)

	accountID := uuid.New()
	roles := []string{"user", "admin"}

	token, err := svc.Generate(accountID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, roles, claims.Roles)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_Validate_RejectsExpiredToken(t *testing.T) {
	svc := testTokenService(t, time.Hour)
	svc.accessTTL = -time.Minute

	token, err := svc.Generate(uuid.New(), []string{"user"})
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_Validate_RejectsWrongSecret(t *testing.T) {
	svc := testTokenService(t, time.Hour)
	other := testTokenService(t, time.Hour)
	other.accessSecret = "a-different-secret"

	token, err := svc.Generate(uuid.New(), []string{"user"})
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_Validate_RejectsWrongSigningMethod(t *testing.T) {
	svc := testTokenService(t, time.Hour)

	// A token signed with "none" must never validate.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_Validate_RejectsGarbageSubject(t *testing.T) {
	svc := testTokenService(t, time.Hour)

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "not-a-uuid",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(svc.accessSecret))
	require.NoError(t, err)

	_, err = svc.Validate(signed)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidSubject)
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	svc := testTokenService(t, 42*time.Minute)
	assert.Equal(t, 42*time.Minute, svc.AccessTokenDuration())

	// Zero TTL falls back to the default.
	fallback := testTokenService(t, 0)
	assert.Equal(t, defaultAccessTTL, fallback.AccessTokenDuration())
}
