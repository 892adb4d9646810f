// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core identity record of the portal. An account either
// carries a local password credential (PasswordSet true, PasswordHash
// non-nil) or was created through a federated sign-in and has not set one
// yet (PasswordSet false, PasswordHash nil). The two fields always move
// together.
type Account struct {
	ID           uuid.UUID // Global unique identifier for the account.
	Email        string    // Lowercase institutional email, the login identifier.
	Name         string    // Display name.
	PasswordHash *string   // bcrypt hash; nil until a password is set.
	PasswordSet  bool      // Whether a local password credential exists.
	GoogleID     *string   // Google 'sub' claim when the account is linked to Google Sign-In.
	Roles        Roles     // Role set; always contains RoleUser.
	CreatedAt    time.Time // Timestamp of account creation.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// IsAdmin reports whether the account currently holds the admin role.
func (a *Account) IsAdmin() bool {
	return a.Roles.Contains(RoleAdmin)
}
