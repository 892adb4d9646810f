package impl

import (
	"context"
	"testing"

	"accountd/config"
	"accountd/internal/domain/entity"
	domainerrors "accountd/internal/domain/errors"
	"accountd/internal/domain/repository"
	"accountd/internal/domain/service"
	mockRepo "accountd/internal/mocks/repository"
	mockSvc "accountd/internal/mocks/service"
	"accountd/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// credentialServiceFixtures holds all test dependencies for credential service tests.
type credentialServiceFixtures struct {
	service           usecase.CredentialUsecase
	txManager         *mockRepo.MockTransactionManager
	accountRepo       *mockRepo.MockAccountRepository
	hasher            *mockSvc.MockPasswordHasher
	tokenService      *mockSvc.MockTokenService
	googleAuthService *mockSvc.MockOAuthAuthService
}

func createTestCredentialService(t *testing.T) credentialServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	googleAuthService := mockSvc.NewMockOAuthAuthService(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().AccountRepo().Return(accountRepo).Maybe()
	stubTx(txManager, factory)

	cfg := &config.Config{Auth: &config.AuthConfig{AllowedEmailDomains: []string{"iiitl.ac.in"}}}

	svc := NewCredentialService(CredentialServiceParams{
		TxManager:         txManager,
		AccountRepo:       accountRepo,
		Hasher:            hasher,
		TokenService:      tokenService,
		GoogleAuthService: googleAuthService,
		Config:            cfg,
		Logger:            testLogger(),
	})

	return credentialServiceFixtures{
		service:           svc,
		txManager:         txManager,
		accountRepo:       accountRepo,
		hasher:            hasher,
		tokenService:      tokenService,
		googleAuthService: googleAuthService,
	}
}

func TestCredentialService_Authenticate_Success(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()
	account := testAccount(t, "student@iiitl.ac.in")

	fx.accountRepo.EXPECT().FindByEmail(mock.Anything, account.Email).Return(account, nil)
	fx.hasher.EXPECT().Check("StrongPass123!", *account.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Generate(account.ID, []string{"user"}).Return("signed.jwt.token", nil)

	output, err := fx.service.Authenticate(ctx, &usecase.LoginInput{
		Email:    "Student@IIITL.ac.in",
		Password: "StrongPass123!",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.Equal(t, account.ID, output.Account.ID)
}

func TestCredentialService_Authenticate_UniformErrorForUnknownAndWrong(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()
	account := testAccount(t, "student@iiitl.ac.in")

	fx.accountRepo.EXPECT().
		FindByEmail(mock.Anything, "nobody@iiitl.ac.in").
		Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindByEmail(mock.Anything, account.Email).Return(account, nil)
	fx.hasher.EXPECT().Check("WrongPass456!", *account.PasswordHash).Return(false)

	_, unknownErr := fx.service.Authenticate(ctx, &usecase.LoginInput{
		Email:    "nobody@iiitl.ac.in",
		Password: "StrongPass123!",
	})
	_, wrongErr := fx.service.Authenticate(ctx, &usecase.LoginInput{
		Email:    account.Email,
		Password: "WrongPass456!",
	})

	// Unknown email and wrong password must be indistinguishable to the caller.
	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongErr, domainerrors.ErrInvalidCredentials))
}

func TestCredentialService_Authenticate_FederatedAccountWithoutPassword(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()

	googleID := "google-sub-123"
	account := &entity.Account{
		ID:       uuid.New(),
		Email:    "student@iiitl.ac.in",
		GoogleID: &googleID,
		Roles:    entity.Roles{entity.RoleUser},
	}

	fx.accountRepo.EXPECT().FindByEmail(mock.Anything, account.Email).Return(account, nil)

	_, err := fx.service.Authenticate(ctx, &usecase.LoginInput{
		Email:    account.Email,
		Password: "StrongPass123!",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordNotSet))
}

func TestCredentialService_GoogleSignIn_ExistingSubject(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()
	account := testAccount(t, "student@iiitl.ac.in")

	fx.googleAuthService.EXPECT().
		VerifyIDToken(mock.Anything, "id-token").
		Return(&service.OAuthUser{
			ID:            "google-sub-123",
			Email:         account.Email,
			Name:          account.Name,
			EmailVerified: true,
		}, nil)
	fx.accountRepo.EXPECT().FindByGoogleID(mock.Anything, "google-sub-123").Return(account, nil)
	fx.tokenService.EXPECT().Generate(account.ID, []string{"user"}).Return("signed.jwt.token", nil)

	output, err := fx.service.GoogleSignIn(ctx, &usecase.GoogleSignInInput{IDToken: "id-token"})

	require.NoError(t, err)
	assert.Equal(t, account.ID, output.Account.ID)
}

func TestCredentialService_GoogleSignIn_LinksExistingPasswordAccount(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()
	account := testAccount(t, "student@iiitl.ac.in")

	fx.googleAuthService.EXPECT().
		VerifyIDToken(mock.Anything, "id-token").
		Return(&service.OAuthUser{
			ID:            "google-sub-123",
			Email:         account.Email,
			EmailVerified: true,
		}, nil)
	fx.accountRepo.EXPECT().
		FindByGoogleID(mock.Anything, "google-sub-123").
		Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindByEmail(mock.Anything, account.Email).Return(account, nil)
	fx.accountRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, updated *entity.Account) {
			require.NotNil(t, updated.GoogleID)
			assert.Equal(t, "google-sub-123", *updated.GoogleID)
			assert.True(t, updated.PasswordSet, "linking must not disturb the local credential")
		}).
		Return(nil)
	fx.tokenService.EXPECT().Generate(account.ID, []string{"user"}).Return("signed.jwt.token", nil)

	output, err := fx.service.GoogleSignIn(ctx, &usecase.GoogleSignInInput{IDToken: "id-token"})

	require.NoError(t, err)
	require.NotNil(t, output.Account.GoogleID)
}

func TestCredentialService_GoogleSignIn_FirstContactCreatesFederatedAccount(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()
	email := "fresher@iiitl.ac.in"

	fx.googleAuthService.EXPECT().
		VerifyIDToken(mock.Anything, "id-token").
		Return(&service.OAuthUser{
			ID:            "google-sub-456",
			Email:         email,
			Name:          "Fresher",
			EmailVerified: true,
		}, nil)
	fx.accountRepo.EXPECT().
		FindByGoogleID(mock.Anything, "google-sub-456").
		Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().
		FindByEmail(mock.Anything, email).
		Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) {
			assert.Equal(t, email, account.Email)
			assert.False(t, account.PasswordSet)
			assert.Nil(t, account.PasswordHash)
			require.NotNil(t, account.GoogleID)
			assert.Equal(t, "google-sub-456", *account.GoogleID)
		}).
		Return(nil)
	fx.tokenService.EXPECT().
		Generate(mock.AnythingOfType("uuid.UUID"), []string{"user"}).
		Return("signed.jwt.token", nil)

	output, err := fx.service.GoogleSignIn(ctx, &usecase.GoogleSignInInput{IDToken: "id-token"})

	require.NoError(t, err)
	assert.False(t, output.Account.PasswordSet)
}

func TestCredentialService_GoogleSignIn_RejectsUnverifiedEmail(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()

	fx.googleAuthService.EXPECT().
		VerifyIDToken(mock.Anything, "id-token").
		Return(&service.OAuthUser{
			ID:            "google-sub-789",
			Email:         "student@iiitl.ac.in",
			EmailVerified: false,
		}, nil)

	_, err := fx.service.GoogleSignIn(ctx, &usecase.GoogleSignInInput{IDToken: "id-token"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestCredentialService_GoogleSignIn_RejectsForeignDomain(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()

	fx.googleAuthService.EXPECT().
		VerifyIDToken(mock.Anything, "id-token").
		Return(&service.OAuthUser{
			ID:            "google-sub-789",
			Email:         "someone@gmail.com",
			EmailVerified: true,
		}, nil)

	_, err := fx.service.GoogleSignIn(ctx, &usecase.GoogleSignInInput{IDToken: "id-token"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailDomainNotAllowed))
}

func TestCredentialService_GoogleSignIn_InvalidToken(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()

	fx.googleAuthService.EXPECT().
		VerifyIDToken(mock.Anything, "garbage").
		Return(nil, errors.New("token is malformed"))

	_, err := fx.service.GoogleSignIn(ctx, &usecase.GoogleSignInInput{IDToken: "garbage"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestCredentialService_SetInitialPassword_Success(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()

	googleID := "google-sub-123"
	account := &entity.Account{
		ID:       uuid.New(),
		Email:    "student@iiitl.ac.in",
		GoogleID: &googleID,
		Roles:    entity.Roles{entity.RoleUser},
	}

	fx.hasher.EXPECT().ValidatePasswordStrength("StrongPass123!").Return(nil)
	fx.hasher.EXPECT().Hash("StrongPass123!").Return("hashed_password", nil)
	fx.accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, updated *entity.Account) {
			assert.True(t, updated.PasswordSet)
			require.NotNil(t, updated.PasswordHash)
			assert.Equal(t, "hashed_password", *updated.PasswordHash)
		}).
		Return(nil)

	err := fx.service.SetInitialPassword(ctx, &usecase.SetInitialPasswordInput{
		AccountID: account.ID,
		Password:  "StrongPass123!",
	})

	require.NoError(t, err)
}

func TestCredentialService_SetInitialPassword_RefusesWhenAlreadySet(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()
	account := testAccount(t, "student@iiitl.ac.in")

	fx.hasher.EXPECT().ValidatePasswordStrength("StrongPass123!").Return(nil)
	fx.hasher.EXPECT().Hash("StrongPass123!").Return("hashed_password", nil)
	fx.accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)

	err := fx.service.SetInitialPassword(ctx, &usecase.SetInitialPasswordInput{
		AccountID: account.ID,
		Password:  "StrongPass123!",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordAlreadySet))
}

func TestCredentialService_ChangePassword_Success(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()
	account := testAccount(t, "student@iiitl.ac.in")
	oldHash := *account.PasswordHash

	fx.hasher.EXPECT().ValidatePasswordStrength("NewStrongPass456!").Return(nil)
	fx.hasher.EXPECT().Hash("NewStrongPass456!").Return("new_hashed_password", nil)
	fx.accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)
	fx.hasher.EXPECT().Check("StrongPass123!", oldHash).Return(true)
	fx.accountRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, updated *entity.Account) {
			assert.Equal(t, "new_hashed_password", *updated.PasswordHash)
		}).
		Return(nil)

	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		AccountID:       account.ID,
		CurrentPassword: "StrongPass123!",
		NewPassword:     "NewStrongPass456!",
	})

	require.NoError(t, err)
}

func TestCredentialService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()
	account := testAccount(t, "student@iiitl.ac.in")

	fx.hasher.EXPECT().ValidatePasswordStrength("NewStrongPass456!").Return(nil)
	fx.hasher.EXPECT().Hash("NewStrongPass456!").Return("new_hashed_password", nil)
	fx.accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)
	fx.hasher.EXPECT().Check("WrongPass789!", *account.PasswordHash).Return(false)

	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		AccountID:       account.ID,
		CurrentPassword: "WrongPass789!",
		NewPassword:     "NewStrongPass456!",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrIncorrectPassword))
}

func TestCredentialService_ChangePassword_RejectsUnchangedPassword(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()
	account := testAccount(t, "student@iiitl.ac.in")

	// No expectations on the hasher or repositories: the rejection must
	// happen before any hashing or storage work.
	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		AccountID:       account.ID,
		CurrentPassword: "StrongPass123!",
		NewPassword:     "StrongPass123!",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordUnchanged))
}

func TestCredentialService_ChangePassword_FederatedAccountSkipsCurrentCheck(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()

	googleID := "google-sub-123"
	account := &entity.Account{
		ID:       uuid.New(),
		Email:    "student@iiitl.ac.in",
		GoogleID: &googleID,
		Roles:    entity.Roles{entity.RoleUser},
	}

	fx.hasher.EXPECT().ValidatePasswordStrength("NewStrongPass456!").Return(nil)
	fx.hasher.EXPECT().Hash("NewStrongPass456!").Return("new_hashed_password", nil)
	fx.accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)
	fx.accountRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.Account")).
		Return(nil)

	err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{
		AccountID:   account.ID,
		NewPassword: "NewStrongPass456!",
	})

	require.NoError(t, err)
}

func TestCredentialService_Profile(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()
	account := testAccount(t, "student@iiitl.ac.in")

	fx.accountRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)

	loaded, err := fx.service.Profile(ctx, account.ID)

	require.NoError(t, err)
	assert.Equal(t, account.Email, loaded.Email)

	missing := uuid.New()
	fx.accountRepo.EXPECT().
		FindByID(mock.Anything, missing).
		Return(nil, repository.ErrAccountNotFound)

	_, err = fx.service.Profile(ctx, missing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}
