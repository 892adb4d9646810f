// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"accountd/internal/domain/entity"
)

// accountView is the wire representation of an account. Credential material
// never leaves the service.
type accountView struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Roles        []string  `json:"roles"`
	PasswordSet  bool      `json:"password_set"`
	GoogleLinked bool      `json:"google_linked"`
	CreatedAt    time.Time `json:"created_at"`
}

func toAccountView(account *entity.Account) *accountView {
	if account == nil {
		return nil
	}

	return &accountView{
		ID:           account.ID.String(),
		Email:        account.Email,
		Name:         account.Name,
		Roles:        account.Roles.ToStrings(),
		PasswordSet:  account.PasswordSet,
		GoogleLinked: account.GoogleID != nil,
		CreatedAt:    account.CreatedAt,
	}
}
