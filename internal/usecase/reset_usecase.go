package usecase

import "context"

// RequestResetInput asks for a reset link to be mailed.
type RequestResetInput struct {
	Email       string
	RequesterIP string
}

// ResolveResetInput completes a reset with the raw token from the link.
type ResolveResetInput struct {
	Token       string
	NewPassword string
}

// PasswordResetUsecase owns the reset-token lifecycle, independent of the
// OTP flow. RequestReset is deliberately uniform towards the caller: it
// reports success whether or not the email exists.
type PasswordResetUsecase interface {
	RequestReset(ctx context.Context, input *RequestResetInput) error

	// ValidateToken is a non-consuming "is this link still valid" pre-check.
	ValidateToken(ctx context.Context, token string) (bool, error)

	ResolveReset(ctx context.Context, input *ResolveResetInput) error
}
