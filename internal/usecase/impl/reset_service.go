package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/url"
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
	defaultResetTTL   = time.Hour
	resetTokenBytes   = 32
	resetTokenParam   = "token"
	defaultResetRoute = "/reset-password"
)

// passwordResetService implements the PasswordResetUsecase interface.
type passwordResetService struct {
	txManager  repository.TransactionManager
	hasher     service.PasswordHasher
	mailSender service.MailSender
	ttl        time.Duration
	baseURL    string
	logger     *slog.Logger
}

// PasswordResetServiceParams holds dependencies for passwordResetService, injected by Fx.
type PasswordResetServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	Hasher     service.PasswordHasher
	MailSender service.MailSender
	Config     *config.Config
	Logger     *slog.Logger
}

// NewPasswordResetService is the constructor for passwordResetService.
func NewPasswordResetService(params PasswordResetServiceParams) usecase.PasswordResetUsecase {
	ttl := defaultResetTTL
	baseURL := defaultResetRoute
	if params.Config != nil && params.Config.PasswordReset != nil {
		if params.Config.PasswordReset.TTL > 0 {
			ttl = params.Config.PasswordReset.TTL
		}
		if params.Config.PasswordReset.BaseURL != "" {
			baseURL = params.Config.PasswordReset.BaseURL
		}
	}

	return &passwordResetService{
		txManager:  params.TxManager,
		hasher:     params.Hasher,
		mailSender: params.MailSender,
		ttl:        ttl,
		baseURL:    baseURL,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *passwordResetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestReset mails a single-use reset link. The response is uniform: an
// unknown email returns the same nil error as a known one, so the endpoint
// cannot enumerate accounts. Only the token's hash is stored.
func (srv *passwordResetService) RequestReset(ctx context.Context, input *usecase.RequestResetInput) error {
	email := normalizeEmail(input.Email)
	now := time.Now()

	rawToken, tokenHash, err := generateResetToken()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	var accountExists bool
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		resetRepo := repoFactory.ResetChallengeRepo()

		_, err := accountRepo.FindByEmail(ctx, email)
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Swallowed: the caller must not learn whether the email exists.
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to look up account")
		}
		accountExists = true

		// A fresh request supersedes any outstanding link.
		if err := resetRepo.DeleteByEmail(ctx, email); err != nil {
			return errors.Wrap(err, "failed to invalidate previous reset challenges")
		}

		challenge := &entity.PasswordResetChallenge{
			ID:        uuid.New(),
			Email:     email,
			TokenHash: tokenHash,
			ExpiresAt: now.Add(srv.ttl),
		}

		return errors.Wrap(resetRepo.Create(ctx, challenge), "failed to create reset challenge")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute reset request transaction", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute reset request transaction")
	}

	if !accountExists {
		srv.log(ctx).Info("Reset requested for unknown email", slog.String("ip", input.RequesterIP))

		return nil
	}

	if err := srv.mailSender.Send(ctx, srv.resetMail(email, rawToken)); err != nil {
		// Still uniform towards the caller; the user can request again.
		srv.log(ctx).Error("Failed to send reset mail", slog.String("email", email), slog.Any("error", err))
	}

	srv.log(ctx).Info("Reset link issued", slog.String("email", email))

	return nil
}

// ValidateToken reports whether a reset link is still usable without
// consuming it. Lookup is by hash; the raw token never touches storage.
func (srv *passwordResetService) ValidateToken(ctx context.Context, token string) (bool, error) {
	tokenHash := hashResetToken(token)

	var usable bool
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		challenge, err := repoFactory.ResetChallengeRepo().FindByTokenHash(ctx, tokenHash)
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to load reset challenge")
		}

		usable = challenge.Resolvable(time.Now())

		return nil
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to execute token validation transaction")
	}

	return usable, nil
}

// ResolveReset completes a reset: one transaction deletes every outstanding
// challenge for the email and installs the new password, so neither the
// redeemed token nor any concurrently issued sibling can be used afterwards.
func (srv *passwordResetService) ResolveReset(ctx context.Context, input *usecase.ResolveResetInput) error {
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return domainerrors.ErrPasswordStrength.WrapMessage(err.Error())
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	tokenHash := hashResetToken(input.Token)
	now := time.Now()

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()
		resetRepo := repoFactory.ResetChallengeRepo()

		challenge, err := resetRepo.FindByTokenHash(ctx, tokenHash)
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return domainerrors.ErrInvalidOrExpiredToken.WrapMessage("no challenge matches this token")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load reset challenge")
		}
		if !challenge.Resolvable(now) {
			return domainerrors.ErrInvalidOrExpiredToken.WrapMessage("challenge used or expired")
		}

		account, err := accountRepo.FindByEmail(ctx, challenge.Email)
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Account vanished between request and resolve.
			return domainerrors.ErrInvalidOrExpiredToken.WrapMessage("account no longer exists")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load account")
		}

		if err := resetRepo.DeleteByEmail(ctx, challenge.Email); err != nil {
			return errors.Wrap(err, "failed to consume reset challenges")
		}

		account.PasswordHash = &hashedPassword
		account.PasswordSet = true

		return errors.Wrap(accountRepo.Update(ctx, account), "failed to store new password")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to resolve reset", slog.Any("error", err))

		return errors.Wrap(err, "failed to execute reset resolution transaction")
	}

	srv.log(ctx).Info("Password reset completed")

	return nil
}

// generateResetToken returns the raw token for the mail link and the hex
// SHA-256 that goes to storage.
func generateResetToken() (raw, hash string, err error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.Wrap(err, "failed to read random bytes")
	}

	raw = hex.EncodeToString(buf)

	return raw, hashResetToken(raw), nil
}

func hashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}

func (srv *passwordResetService) resetMail(recipient, rawToken string) *service.MailMessage {
	link := srv.baseURL
	if u, err := url.Parse(srv.baseURL); err == nil {
		q := u.Query()
		q.Set(resetTokenParam, rawToken)
		u.RawQuery = q.Encode()
		link = u.String()
	}

	minutes := int(srv.ttl.Minutes())

	return &service.MailMessage{
		Recipient: recipient,
		Subject:   "Reset your password",
		TextBody:  fmt.Sprintf("Use this link to reset your password: %s\nThe link expires in %d minutes. If you did not request this, ignore this mail.", link, minutes),
		HTMLBody:  fmt.Sprintf("<p><a href=%q>Reset your password</a></p><p>The link expires in %d minutes. If you did not request this, ignore this mail.</p>", link, minutes),
	}
}
