package usecase

import (
	"context"

	"accountd/internal/domain/entity"
)

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Code     string
}

// RegisterOutput returns the newly created account.
type RegisterOutput struct {
	Account *entity.Account
}

// RegistrationUsecase turns a verified challenge into a new account inside
// one atomic transaction spanning the account and challenge stores.
type RegistrationUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
}
