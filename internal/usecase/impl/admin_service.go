package impl

import (
	"context"
	"log/slog"

	deliverycontext "accountd/internal/delivery/context"
	"accountd/internal/domain/entity"
	domainerrors "accountd/internal/domain/errors"
	"accountd/internal/domain/repository"
	"accountd/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAccounts returns one page of accounts ordered by creation time.
// Out-of-range paging inputs are clamped rather than rejected.
func (srv *adminService) ListAccounts(ctx context.Context, page, limit int) (*usecase.ListAccountsOutput, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	accounts, total, err := srv.accountRepo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list accounts", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list accounts")
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &usecase.ListAccountsOutput{
		Accounts: accounts,
		Pagination: usecase.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// SetAdminRole grants or revokes the admin role on a target account and
// writes an audit record in the same transaction. An admin can never demote
// themselves; that check runs before anything is loaded, so the invariant
// holds no matter what state the target is in.
func (srv *adminService) SetAdminRole(ctx context.Context, input *usecase.SetAdminRoleInput) (*entity.Account, error) {
	if !input.Action.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role action")
	}

	if input.Action == usecase.RoleActionDemote && input.ActorID == input.TargetID {
		srv.log(ctx).Warn("Self-demotion blocked", slog.Any("actorID", input.ActorID))

		return nil, domainerrors.ErrSelfDemotionForbidden.WrapMessage("actor and target are the same account")
	}

	var updated *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		target, err := accountRepo.FindByID(ctx, input.TargetID)
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound.WrapMessage("target account not found")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load target account")
		}

		newRoles := srv.applyAction(target.Roles, input.Action)
		if rolesEqual(target.Roles, newRoles) {
			// Idempotent: granting a role the target already holds (or
			// revoking one it lacks) succeeds without an audit entry.
			updated = target

			return nil
		}

		target.Roles = newRoles
		if err := accountRepo.Update(ctx, target); err != nil {
			return errors.Wrap(err, "failed to update target roles")
		}

		record := &entity.AuditRecord{
			ID:       uuid.New(),
			ActorID:  input.ActorID,
			TargetID: input.TargetID,
			Action:   string(input.Action),
		}
		if err := repoFactory.AuditLogRepo().Create(ctx, record); err != nil {
			return errors.Wrap(err, "failed to write audit record")
		}

		updated = target

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute role mutation transaction",
			slog.Any("actorID", input.ActorID), slog.Any("targetID", input.TargetID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute role mutation transaction")
	}

	srv.log(ctx).Info("Role mutation applied",
		slog.Any("actorID", input.ActorID), slog.Any("targetID", input.TargetID), slog.String("action", string(input.Action)))

	return updated, nil
}

func (srv *adminService) applyAction(roles entity.Roles, action usecase.RoleAction) entity.Roles {
	switch action {
	case usecase.RoleActionPromote:
		return roles.With(entity.RoleAdmin).Normalized()
	case usecase.RoleActionDemote:
		return roles.Without(entity.RoleAdmin).Normalized()
	default:
		return roles.Normalized()
	}
}

func rolesEqual(a, b entity.Roles) bool {
	if len(a) != len(b) {
		return false
	}
	for _, r := range a {
		if !b.Contains(r) {
			return false
		}
	}

	return true
}
