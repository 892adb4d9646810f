package impl

import (
	"context"
	"testing"

	"accountd/internal/domain/entity"
	domainerrors "accountd/internal/domain/errors"
	"accountd/internal/domain/repository"
	mockRepo "accountd/internal/mocks/repository"
	"accountd/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service     usecase.AdminUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	auditRepo   *mockRepo.MockAuditLogRepository
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	auditRepo := mockRepo.NewMockAuditLogRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(accountRepo).Maybe()
	factory.EXPECT().AuditLogRepo().Return(auditRepo).Maybe()
	stubTx(txManager, factory)

	svc := NewAdminService(AdminServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		Logger:      testLogger(),
	})

	return adminServiceFixtures{
		service:     svc,
		txManager:   txManager,
		accountRepo: accountRepo,
		auditRepo:   auditRepo,
	}
}

func TestAdminService_ListAccounts_ClampsPaging(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	accounts := []*entity.Account{testAccount(t, "a@iiitl.ac.in"), testAccount(t, "b@iiitl.ac.in")}

	tests := []struct {
		name       string
		page       int
		limit      int
		wantOffset int
		wantLimit  int
		wantPage   int
	}{
		{name: "defaults", page: 0, limit: 0, wantOffset: 0, wantLimit: defaultPageSize, wantPage: 1},
		{name: "negative page", page: -3, limit: 10, wantOffset: 0, wantLimit: 10, wantPage: 1},
		{name: "oversized limit", page: 2, limit: 5000, wantOffset: maxPageSize, wantLimit: maxPageSize, wantPage: 2},
		{name: "plain", page: 3, limit: 25, wantOffset: 50, wantLimit: 25, wantPage: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx.accountRepo.EXPECT().
				List(mock.Anything, tt.wantOffset, tt.wantLimit).
				Return(accounts, int64(42), nil).
				Once()

			output, err := fx.service.ListAccounts(ctx, tt.page, tt.limit)

			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, output.Pagination.Page)
			assert.Equal(t, tt.wantLimit, output.Pagination.Limit)
			assert.Equal(t, int64(42), output.Pagination.Total)
			assert.Equal(t, (42+tt.wantLimit-1)/tt.wantLimit, output.Pagination.TotalPages)
			assert.Len(t, output.Accounts, 2)
		})
	}
}

func TestAdminService_SetAdminRole_PromoteWritesAudit(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	actorID := uuid.New()
	target := testAccount(t, "student@iiitl.ac.in")

	fx.accountRepo.EXPECT().FindByID(mock.Anything, target.ID).Return(target, nil)
	fx.accountRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, updated *entity.Account) {
			assert.True(t, updated.Roles.Contains(entity.RoleAdmin))
			assert.True(t, updated.Roles.Contains(entity.RoleUser))
		}).
		Return(nil)
	fx.auditRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.AuditRecord")).
		Run(func(_ context.Context, record *entity.AuditRecord) {
			assert.Equal(t, actorID, record.ActorID)
			assert.Equal(t, target.ID, record.TargetID)
			assert.Equal(t, "promote", record.Action)
		}).
		Return(nil)

	updated, err := fx.service.SetAdminRole(ctx, &usecase.SetAdminRoleInput{
		ActorID:  actorID,
		TargetID: target.ID,
		Action:   usecase.RoleActionPromote,
	})

	require.NoError(t, err)
	assert.True(t, updated.IsAdmin())
}

func TestAdminService_SetAdminRole_PromoteIsIdempotent(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	target := testAccount(t, "admin@iiitl.ac.in")
	target.Roles = entity.Roles{entity.RoleUser, entity.RoleAdmin}

	fx.accountRepo.EXPECT().FindByID(mock.Anything, target.ID).Return(target, nil)

	// No Update and no audit record: the mocks would flag either call.
	updated, err := fx.service.SetAdminRole(ctx, &usecase.SetAdminRoleInput{
		ActorID:  uuid.New(),
		TargetID: target.ID,
		Action:   usecase.RoleActionPromote,
	})

	require.NoError(t, err)
	assert.True(t, updated.IsAdmin())
}

func TestAdminService_SetAdminRole_Demote(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	actorID := uuid.New()
	target := testAccount(t, "admin@iiitl.ac.in")
	target.Roles = entity.Roles{entity.RoleUser, entity.RoleAdmin}

	fx.accountRepo.EXPECT().FindByID(mock.Anything, target.ID).Return(target, nil)
	fx.accountRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, updated *entity.Account) {
			assert.False(t, updated.Roles.Contains(entity.RoleAdmin))
			assert.True(t, updated.Roles.Contains(entity.RoleUser), "the base role survives every demotion")
		}).
		Return(nil)
	fx.auditRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.AuditRecord")).
		Return(nil)

	updated, err := fx.service.SetAdminRole(ctx, &usecase.SetAdminRoleInput{
		ActorID:  actorID,
		TargetID: target.ID,
		Action:   usecase.RoleActionDemote,
	})

	require.NoError(t, err)
	assert.False(t, updated.IsAdmin())
}

func TestAdminService_SetAdminRole_SelfDemotionAlwaysBlocked(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	actorID := uuid.New()

	// Blocked before any load: no repository expectations are set, so a
	// lookup would fail the test.
	updated, err := fx.service.SetAdminRole(ctx, &usecase.SetAdminRoleInput{
		ActorID:  actorID,
		TargetID: actorID,
		Action:   usecase.RoleActionDemote,
	})

	require.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrSelfDemotionForbidden))
}

func TestAdminService_SetAdminRole_SelfPromotionAllowed(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	target := testAccount(t, "admin@iiitl.ac.in")

	fx.accountRepo.EXPECT().FindByID(mock.Anything, target.ID).Return(target, nil)
	fx.accountRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.Account")).
		Return(nil)
	fx.auditRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.AuditRecord")).
		Return(nil)

	// Promoting yourself is a no-op risk-wise and stays permitted.
	updated, err := fx.service.SetAdminRole(ctx, &usecase.SetAdminRoleInput{
		ActorID:  target.ID,
		TargetID: target.ID,
		Action:   usecase.RoleActionPromote,
	})

	require.NoError(t, err)
	assert.True(t, updated.IsAdmin())
}

func TestAdminService_SetAdminRole_UnknownAction(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	_, err := fx.service.SetAdminRole(ctx, &usecase.SetAdminRoleInput{
		ActorID:  uuid.New(),
		TargetID: uuid.New(),
		Action:   usecase.RoleAction("escalate"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAdminService_SetAdminRole_TargetMissing(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	targetID := uuid.New()

	fx.accountRepo.EXPECT().
		FindByID(mock.Anything, targetID).
		Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.SetAdminRole(ctx, &usecase.SetAdminRoleInput{
		ActorID:  uuid.New(),
		TargetID: targetID,
		Action:   usecase.RoleActionPromote,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}
