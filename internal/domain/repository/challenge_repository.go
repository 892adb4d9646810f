package repository

import (
	"context"
	"errors"
	"time"

	"accountd/internal/domain/entity"
)

// Domain-specific sentinel errors for challenge persistence.
var (
	// ErrChallengeNotFound is returned when no challenge matches the query.
	ErrChallengeNotFound = errors.New("challenge not found")
)

// OtpChallengeRepository owns the email-verification challenge records.
type OtpChallengeRepository interface {
	// FindByEmailAndCode retrieves the challenge matching both fields.
	FindByEmailAndCode(ctx context.Context, email, code string) (*entity.OtpChallenge, error)

	// FindLatestByEmail retrieves the most recently issued challenge for an
	// email regardless of state, for generation accounting.
	FindLatestByEmail(ctx context.Context, email string) (*entity.OtpChallenge, error)

	// CountIssuedSince counts challenges issued for an email at or after the given instant.
	CountIssuedSince(ctx context.Context, email string, since time.Time) (int, error)

	// Create persists a new challenge.
	Create(ctx context.Context, challenge *entity.OtpChallenge) error

	// Update modifies an existing challenge (verification state, attempt counters).
	Update(ctx context.Context, challenge *entity.OtpChallenge) error

	// DeleteByEmail removes every challenge for an email, consumed or not.
	DeleteByEmail(ctx context.Context, email string) error

	// DeleteExpired prunes challenges whose expiry is in the past.
	DeleteExpired(ctx context.Context) error
}

// ResetChallengeRepository owns the password-reset challenge records.
type ResetChallengeRepository interface {
	// FindByTokenHash retrieves the challenge matching a token hash.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.PasswordResetChallenge, error)

	// Create persists a new challenge.
	Create(ctx context.Context, challenge *entity.PasswordResetChallenge) error

	// Update modifies an existing challenge.
	Update(ctx context.Context, challenge *entity.PasswordResetChallenge) error

	// DeleteByEmail removes every reset challenge for an email.
	DeleteByEmail(ctx context.Context, email string) error

	// DeleteExpired prunes challenges whose expiry is in the past.
	DeleteExpired(ctx context.Context) error
}

// AuditLogRepository records role mutations. Append-only.
type AuditLogRepository interface {
	// Create persists one audit record.
	Create(ctx context.Context, record *entity.AuditRecord) error
}
