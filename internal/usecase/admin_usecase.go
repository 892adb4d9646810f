package usecase

import (
	"context"

	"accountd/internal/domain/entity"

	"github.com/google/uuid"
)

// RoleAction is a role mutation direction.
type RoleAction string

const (
	// RoleActionPromote grants the admin role.
	RoleActionPromote RoleAction = "promote"
	// RoleActionDemote revokes the admin role.
	RoleActionDemote RoleAction = "demote"
)

// IsValid checks if the RoleAction is a known value.
func (a RoleAction) IsValid() bool {
	return a == RoleActionPromote || a == RoleActionDemote
}

// SetAdminRoleInput mutates the admin role on a target account.
type SetAdminRoleInput struct {
	ActorID  uuid.UUID
	TargetID uuid.UUID
	Action   RoleAction
}

// Pagination describes one page of a listing.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ListAccountsOutput returns one page of accounts for the admin surface.
type ListAccountsOutput struct {
	Accounts   []*entity.Account
	Pagination Pagination
}

// AdminUsecase is the administrative surface: account listing and the
// role-mutation guard with its self-protection invariant.
type AdminUsecase interface {
	ListAccounts(ctx context.Context, page, limit int) (*ListAccountsOutput, error)
	SetAdminRole(ctx context.Context, input *SetAdminRoleInput) (*entity.Account, error)
}
