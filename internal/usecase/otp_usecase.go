// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"accountd/internal/domain/entity"
)

// IssueOtpInput defines the data required to issue a verification code.
type IssueOtpInput struct {
	Email       string
	RequesterIP string
	UserAgent   string
}

// VerifyOtpInput defines the data required to check a verification code.
type VerifyOtpInput struct {
	Email string
	Code  string
}

// OtpUsecase issues and verifies email-verification challenges. Verified
// challenges are consumed later by the registration flow, not here.
type OtpUsecase interface {
	// Issue invalidates any active challenge for the email, persists a
	// fresh one and dispatches the code by mail (best-effort).
	Issue(ctx context.Context, input *IssueOtpInput) (*entity.OtpChallenge, error)

	// Verify checks a code and marks the challenge verified without
	// deleting it.
	Verify(ctx context.Context, input *VerifyOtpInput) (*entity.OtpChallenge, error)
}
