package impl

import (
	"context"
	"log/slog"
	"time"

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

const (
	registrationMaxRetries   = 3
	registrationRetryBackoff = 100 * time.Millisecond
)

// registrationService implements the RegistrationUsecase interface.
type registrationService struct {
	txManager      repository.TransactionManager
	hasher         service.PasswordHasher
	allowedDomains []string
	logger         *slog.Logger
}

// RegistrationServiceParams holds dependencies for registrationService, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewRegistrationService is the constructor for registrationService.
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	var allowedDomains []string
	if params.Config != nil && params.Config.Auth != nil {
		allowedDomains = params.Config.Auth.AllowedEmailDomains
	}

	return &registrationService{
		txManager:      params.TxManager,
		hasher:         params.Hasher,
		allowedDomains: allowedDomains,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *registrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account from a verified email challenge. Account
// creation and challenge consumption commit atomically; a write-write
// conflict retries the whole transaction a bounded number of times.
func (srv *registrationService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if !emailDomainAllowed(email, srv.allowedDomains) {
		return nil, domainerrors.ErrEmailDomainNotAllowed.WrapMessage("registration restricted to institutional addresses")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, domainerrors.ErrPasswordStrength.WrapMessage(err.Error())
	}

	// Hash outside the transaction: bcrypt is deliberately slow and must not
	// hold a database transaction open.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	var account *entity.Account
	for attempt := 1; attempt <= registrationMaxRetries; attempt++ {
		account, err = srv.registerOnce(ctx, input, email, hashedPassword)
		if !errors.Is(err, repository.ErrTransientConflict) {
			break
		}

		srv.log(ctx).Warn("Registration hit a transient conflict, retrying",
			slog.String("email", email), slog.Int("attempt", attempt))

		if attempt < registrationMaxRetries {
			select {
			case <-ctx.Done():
				return nil, errors.Wrap(ctx.Err(), "registration cancelled during retry backoff")
			case <-time.After(time.Duration(attempt) * registrationRetryBackoff):
			}
		}
	}
	if errors.Is(err, repository.ErrTransientConflict) {
		return nil, domainerrors.ErrRegistrationFailed.WrapMessage("registration kept conflicting, giving up")
	}
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", account.ID))

	return &usecase.RegisterOutput{Account: account}, nil
}

func (srv *registrationService) registerOnce(
	ctx context.Context,
	input *usecase.RegisterInput,
	email, hashedPassword string,
) (*entity.Account, error) {
	now := time.Now()

	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		otpRepo := repoFactory.OtpChallengeRepo()

		_, err := accountRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrEmailTaken.WrapMessage("account already registered for this email")
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check for existing account")
		}

		challenge, err := otpRepo.FindByEmailAndCode(ctx, email, input.Code)
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return domainerrors.ErrInvalidOrExpiredCode.WrapMessage("no challenge matches this code")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load challenge")
		}
		if !challenge.Verified || challenge.Expired(now) {
			return domainerrors.ErrInvalidOrExpiredCode.WrapMessage("challenge not verified or expired")
		}

		newAccount := &entity.Account{
			ID:           uuid.New(),
			Email:        email,
			Name:         input.Name,
			PasswordHash: &hashedPassword,
			PasswordSet:  true,
			Roles:        entity.Roles{entity.RoleUser},
		}

		if err := accountRepo.Create(ctx, newAccount); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return domainerrors.ErrEmailTaken.WrapMessage("account already registered for this email")
			}

			return errors.Wrap(err, "failed to create account")
		}

		// Consume the challenge in the same transaction so a crash cannot
		// leave an account without retiring its code.
		if err := otpRepo.DeleteByEmail(ctx, email); err != nil {
			return errors.Wrap(err, "failed to consume challenge")
		}

		account = newAccount

		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}
