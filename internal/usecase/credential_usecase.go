package usecase

import (
	"context"

	"accountd/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginInput defines the data required for a password sign-in.
type LoginInput struct {
	Email    string
	Password string
}

// GoogleSignInInput carries the Google ID token from the client.
type GoogleSignInInput struct {
	IDToken string
}

// LoginOutput returns the issued bearer token after a successful sign-in.
type LoginOutput struct {
	AccessToken string
	Account     *entity.Account
}

// SetInitialPasswordInput establishes the first password on an account
// created through federated sign-in. The account comes from the bearer
// token, never from the request body.
type SetInitialPasswordInput struct {
	AccountID uuid.UUID
	Password  string
}

// ChangePasswordInput rotates an existing password. CurrentPassword is
// ignored when the account has no password yet.
type ChangePasswordInput struct {
	AccountID       uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// CredentialUsecase manages the dual-provider credential surface: password
// sign-in, Google sign-in (creating the account on first contact), and
// password set/change.
type CredentialUsecase interface {
	Authenticate(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GoogleSignIn(ctx context.Context, input *GoogleSignInInput) (*LoginOutput, error)
	SetInitialPassword(ctx context.Context, input *SetInitialPasswordInput) error
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error

	// Profile returns the account behind an authenticated session.
	Profile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
}
