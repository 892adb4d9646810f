package service

import (
	"context"

	"accountd/internal/domain/entity"
)

// OAuthUser represents user information from a federated identity provider.
type OAuthUser struct {
	ID            string              // Provider-specific user ID (e.g., Google's 'sub' claim).
	Email         string              // User's email address.
	Name          string              // User's display name.
	Provider      entity.ProviderType // The identity provider.
	AvatarURL     string              // URL to the user's profile picture.
	EmailVerified bool                // Whether the provider vouches for the email.
}

// OAuthAuthService defines the interface for federated sign-in verification.
// This is specifically for ID token verification (like Google ID tokens).
type OAuthAuthService interface {
	// VerifyIDToken verifies an OAuth ID token and returns user information.
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)

	// GetProvider returns the identity provider type.
	GetProvider() entity.ProviderType
}
