package google

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"accountd/config"
	"accountd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAuthService(t *testing.T) *AuthServiceImpl {
	t.Helper()

	cfg := &config.Config{}
	cfg.GoogleOAuth = &config.GoogleOAuthConfig{ClientID: "test_client_id"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthService(cfg, logger).(*AuthServiceImpl)
}

// buildIDToken assembles an unsigned JWT carrying the given claims. Only the
// payload matters here since verification inspects claims, not the signature.
func buildIDToken(t *testing.T, claims IDTokenClaims) string {
	t.Helper()

	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))

	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".invalid_signature"
}

func validClaims() IDTokenClaims {
	now := time.Now()

	return IDTokenClaims{
		Iss:           "https://accounts.google.com",
		Sub:           "google-subject-123",
		Aud:           "test_client_id",
		Exp:           now.Add(time.Hour).Unix(),
		Iat:           now.Unix(),
		Email:         "student@iiitl.ac.in",
		EmailVerified: true,
		Name:          "Test Student",
		Picture:       "https://lh3.example.com/photo.jpg",
	}
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	authService := createTestAuthService(t)
	ctx := context.Background()

	token := buildIDToken(t, validClaims())

	oauthUser, err := authService.VerifyIDToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "google-subject-123", oauthUser.ID)
	assert.Equal(t, "student@iiitl.ac.in", oauthUser.Email)
	assert.Equal(t, "Test Student", oauthUser.Name)
	assert.Equal(t, entity.ProviderTypeGoogle, oauthUser.Provider)
	assert.True(t, oauthUser.EmailVerified)
}

func TestAuthService_VerifyIDToken_RejectsWrongAudience(t *testing.T) {
	authService := createTestAuthService(t)

	claims := validClaims()
	claims.Aud = "someone_elses_client_id"

	oauthUser, err := authService.VerifyIDToken(context.Background(), buildIDToken(t, claims))
	assert.Error(t, err)
	assert.Nil(t, oauthUser)
	assert.Contains(t, err.Error(), "token verification failed")
}

func TestAuthService_VerifyIDToken_RejectsWrongIssuer(t *testing.T) {
	authService := createTestAuthService(t)

	claims := validClaims()
	claims.Iss = "https://evil.example.com"

	oauthUser, err := authService.VerifyIDToken(context.Background(), buildIDToken(t, claims))
	assert.Error(t, err)
	assert.Nil(t, oauthUser)
}

func TestAuthService_VerifyIDToken_RejectsExpiredToken(t *testing.T) {
	authService := createTestAuthService(t)

	claims := validClaims()
	claims.Exp = time.Now().Add(-time.Hour).Unix()

	oauthUser, err := authService.VerifyIDToken(context.Background(), buildIDToken(t, claims))
	assert.Error(t, err)
	assert.Nil(t, oauthUser)
}

func TestAuthService_VerifyIDToken_RejectsUnverifiedEmail(t *testing.T) {
	authService := createTestAuthService(t)

	claims := validClaims()
	claims.EmailVerified = false

	oauthUser, err := authService.VerifyIDToken(context.Background(), buildIDToken(t, claims))
	assert.Error(t, err)
	assert.Nil(t, oauthUser)
}

func TestAuthService_VerifyIDToken_InvalidFormat(t *testing.T) {
	authService := createTestAuthService(t)

	oauthUser, err := authService.VerifyIDToken(context.Background(), "invalid_token_format")
	assert.Error(t, err)
	assert.Nil(t, oauthUser)
	assert.Contains(t, err.Error(), "invalid JWT format")
}

func TestAuthService_ParseIDToken(t *testing.T) {
	authService := createTestAuthService(t)

	claims, err := authService.parseIDToken(buildIDToken(t, validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "google-subject-123", claims.Sub)
	assert.Equal(t, "test_client_id", claims.Aud)
	assert.Equal(t, "https://accounts.google.com", claims.Iss)
	assert.True(t, claims.EmailVerified)
}

func TestAuthService_GetProvider(t *testing.T) {
	authService := createTestAuthService(t)

	assert.Equal(t, entity.ProviderTypeGoogle, authService.GetProvider())
}
