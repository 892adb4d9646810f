package entity

import (
	"time"

	"github.com/google/uuid"
)

// OtpChallenge is the short-lived email verification record backing
// registration. At most one active (unexpired, unconsumed) challenge exists
// per email; issuing a new one removes its predecessors.
type OtpChallenge struct {
	ID            uuid.UUID
	Email         string    // Target email address, lowercase.
	Code          string    // Zero-padded 6-digit decimal code.
	ExpiresAt     time.Time // Hard expiry; the record is unusable afterwards.
	Verified      bool      // Set by a successful code check; consumed later by registration.
	Attempts      int       // Failed verification attempts so far; capped.
	Generation    int       // How many codes were issued for this email today; capped.
	RequesterIP   string    // Abuse tracking.
	UserAgent     string    // Abuse tracking.
	LastAttemptAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Expired reports whether the challenge is past its expiry at the given instant.
func (c *OtpChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// PasswordResetChallenge is the reset-token analogue of OtpChallenge. The
// raw token never touches storage; only its SHA-256 hash is kept.
type PasswordResetChallenge struct {
	ID        uuid.UUID
	Email     string
	TokenHash string    // Hex-encoded SHA-256 of the raw token; unique.
	ExpiresAt time.Time
	Used      bool
	Attempts  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Resolvable reports whether the challenge can still complete a reset.
func (c *PasswordResetChallenge) Resolvable(now time.Time) bool {
	return !c.Used && now.Before(c.ExpiresAt)
}

// AuditRecord captures one successful role mutation for accountability.
type AuditRecord struct {
	ID        uuid.UUID
	ActorID   uuid.UUID // Admin who performed the mutation.
	TargetID  uuid.UUID // Account whose roles changed.
	Action    string    // "promote" or "demote".
	CreatedAt time.Time
}
