package impl

import (
	"context"
	"log/slog"

	"accountd/config"
	deliverycontext "accountd/internal/delivery/context"
	"accountd/internal/domain/entity"
	domainerrors "accountd/internal/domain/errors"
	"accountd/internal/domain/repository"
	"accountd/internal/domain/service"
	"accountd/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	txManager         repository.TransactionManager
	accountRepo       repository.AccountRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	allowedDomains    []string
	logger            *slog.Logger
}

// CredentialServiceParams holds dependencies for credentialService, injected by Fx.
type CredentialServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	AccountRepo       repository.AccountRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	Config            *config.Config
	Logger            *slog.Logger
}

// NewCredentialService is the constructor for credentialService.
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	var allowedDomains []string
	if params.Config != nil && params.Config.Auth != nil {
		allowedDomains = params.Config.Auth.AllowedEmailDomains
	}

	return &credentialService{
		txManager:         params.TxManager,
		accountRepo:       params.AccountRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		allowedDomains:    allowedDomains,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate performs a password sign-in. An unknown email and a wrong
// password produce the same error so the endpoint cannot be used to probe
// which addresses are registered.
func (srv *credentialService) Authenticate(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("no account for this email")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account for sign-in")
	}

	if !account.PasswordSet || account.PasswordHash == nil {
		// Federated-only account; tell the user to set a password instead of
		// pretending the credentials are wrong.
		return nil, domainerrors.ErrPasswordNotSet.WrapMessage("account was created through Google sign-in")
	}

	if !srv.hasher.Check(input.Password, *account.PasswordHash) {
		srv.log(ctx).Warn("Password sign-in rejected", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	return srv.issueSession(ctx, account)
}

// GoogleSignIn verifies a Google ID token and signs the holder in, creating
// the account on first contact. A first-contact account has no password; the
// password flows treat it as "not set" until SetInitialPassword runs.
func (srv *credentialService) GoogleSignIn(ctx context.Context, input *usecase.GoogleSignInInput) (*usecase.LoginOutput, error) {
	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("google token verification failed")
	}

	if !oauthUser.EmailVerified {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("google email not verified")
	}

	email := normalizeEmail(oauthUser.Email)
	if !emailDomainAllowed(email, srv.allowedDomains) {
		return nil, domainerrors.ErrEmailDomainNotAllowed.WrapMessage("sign-in restricted to institutional addresses")
	}

	var account *entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		found, err := accountRepo.FindByGoogleID(ctx, oauthUser.ID)
		if err == nil {
			account = found

			return nil
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to look up google subject")
		}

		// Fall back to the email: a password account signing in with Google
		// for the first time gets the subject linked, not duplicated.
		found, err = accountRepo.FindByEmail(ctx, email)
		if err == nil {
			found.GoogleID = &oauthUser.ID
			if err := accountRepo.Update(ctx, found); err != nil {
				return errors.Wrap(err, "failed to link google subject")
			}
			account = found

			return nil
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to look up account by email")
		}

		newAccount := &entity.Account{
			ID:          uuid.New(),
			Email:       email,
			Name:        oauthUser.Name,
			PasswordSet: false,
			GoogleID:    &oauthUser.ID,
			Roles:       entity.Roles{entity.RoleUser},
		}
		if err := accountRepo.Create(ctx, newAccount); err != nil {
			return errors.Wrap(err, "failed to create federated account")
		}
		account = newAccount

		srv.log(ctx).Info("Account created through google sign-in", slog.Any("accountID", newAccount.ID))

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute google sign-in transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute google sign-in transaction")
	}

	return srv.issueSession(ctx, account)
}

// SetInitialPassword establishes the first local credential on an account
// created through federated sign-in. It refuses to overwrite an existing one.
func (srv *credentialService) SetInitialPassword(ctx context.Context, input *usecase.SetInitialPasswordInput) error {
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return domainerrors.ErrPasswordStrength.WrapMessage(err.Error())
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, input.AccountID)
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound.WrapMessage("account not found")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load account")
		}

		if account.PasswordSet {
			return domainerrors.ErrPasswordAlreadySet.WrapMessage("use the change-password flow instead")
		}

		account.PasswordHash = &hashedPassword
		account.PasswordSet = true

		return errors.Wrap(accountRepo.Update(ctx, account), "failed to store initial password")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to set initial password", slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute set-initial-password transaction")
	}

	srv.log(ctx).Info("Initial password set", slog.Any("accountID", input.AccountID))

	return nil
}

// ChangePassword rotates the local credential. When the account has no
// password yet the current-password check is skipped and this behaves like
// SetInitialPassword.
func (srv *credentialService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	// Rejected before any hashing or storage work.
	if input.NewPassword == input.CurrentPassword {
		return domainerrors.ErrPasswordUnchanged.WrapMessage("new password equals the current one")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return domainerrors.ErrPasswordStrength.WrapMessage(err.Error())
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, input.AccountID)
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound.WrapMessage("account not found")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load account")
		}

		if account.PasswordSet && account.PasswordHash != nil {
			if !srv.hasher.Check(input.CurrentPassword, *account.PasswordHash) {
				return domainerrors.ErrIncorrectPassword.WrapMessage("current password mismatch")
			}
		}

		account.PasswordHash = &hashedPassword
		account.PasswordSet = true

		return errors.Wrap(accountRepo.Update(ctx, account), "failed to store new password")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to change password", slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute change-password transaction")
	}

	srv.log(ctx).Info("Password changed", slog.Any("accountID", input.AccountID))

	return nil
}

// Profile returns the account behind an authenticated session.
func (srv *credentialService) Profile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrAccountNotFound.WrapMessage("account not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account profile")
	}

	return account, nil
}

func (srv *credentialService) issueSession(ctx context.Context, account *entity.Account) (*usecase.LoginOutput, error) {
	token, err := srv.tokenService.Generate(account.ID, account.Roles.ToStrings())
	if err != nil {
		srv.log(ctx).Error("Failed to issue bearer token", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue bearer token")
	}

	srv.log(ctx).Debug("Sign-in completed", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{
		AccessToken: token,
		Account:     account,
	}, nil
}
