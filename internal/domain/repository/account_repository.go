// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"accountd/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific sentinel errors for account persistence.
var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrEmailTaken is returned when an insert collides with the unique email index.
	ErrEmailTaken = errors.New("email already registered")
	// ErrTransientConflict is returned when the store detects a write-write
	// conflict that is safe to retry as a whole transaction.
	ErrTransientConflict = errors.New("transient store conflict")
)

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, never on the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its lowercase email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByGoogleID retrieves the account linked to a Google subject ID.
	FindByGoogleID(ctx context.Context, googleID string) (*entity.Account, error)

	// Create persists a new account.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// List returns one page of accounts ordered by creation time, plus the total count.
	List(ctx context.Context, offset, limit int) ([]*entity.Account, int64, error)
}
