// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
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
	defaultOtpTTL            = 10 * time.Minute
	defaultOtpMaxAttempts    = 3
	defaultOtpMaxDailyIssues = 5

	otpCodeSpace = 1_000_000 // codes are drawn uniformly from [0, 1e6)
)

// otpService implements the OtpUsecase interface.
type otpService struct {
	txManager      repository.TransactionManager
	mailSender     service.MailSender
	ttl            time.Duration
	maxAttempts    int
	maxDailyIssues int
	logger         *slog.Logger
}

// OtpServiceParams holds dependencies for otpService, injected by Fx.
type OtpServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	MailSender service.MailSender
	Config     *config.Config
	Logger     *slog.Logger
}

// NewOtpService is the constructor for otpService.
func NewOtpService(params OtpServiceParams) usecase.OtpUsecase {
	ttl := defaultOtpTTL
	maxAttempts := defaultOtpMaxAttempts
	maxDailyIssues := defaultOtpMaxDailyIssues
	if params.Config != nil && params.Config.Otp != nil {
		if params.Config.Otp.TTL > 0 {
			ttl = params.Config.Otp.TTL
		}
		if params.Config.Otp.MaxAttempts > 0 {
			maxAttempts = params.Config.Otp.MaxAttempts
		}
		if params.Config.Otp.MaxDailyIssues > 0 {
			maxDailyIssues = params.Config.Otp.MaxDailyIssues
		}
	}

	return &otpService{
		txManager:      params.TxManager,
		mailSender:     params.MailSender,
		ttl:            ttl,
		maxAttempts:    maxAttempts,
		maxDailyIssues: maxDailyIssues,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *otpService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Issue replaces any outstanding challenge for the email with a fresh one
// and mails the code. Replacement and creation happen in one transaction so
// at most one active challenge ever exists per email.
func (srv *otpService) Issue(ctx context.Context, input *usecase.IssueOtpInput) (*entity.OtpChallenge, error) {
	email := normalizeEmail(input.Email)
	now := time.Now()

	code, err := generateOtpCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification code")
	}

	challenge := &entity.OtpChallenge{
		ID:          uuid.New(),
		Email:       email,
		Code:        code,
		ExpiresAt:   now.Add(srv.ttl),
		RequesterIP: input.RequesterIP,
		UserAgent:   input.UserAgent,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		otpRepo := repoFactory.OtpChallengeRepo()

		issued, err := otpRepo.CountIssuedSince(ctx, email, now.Add(-24*time.Hour))
		if err != nil {
			return errors.Wrap(err, "failed to count issued challenges")
		}
		if issued >= srv.maxDailyIssues {
			return domainerrors.ErrOtpIssueLimit.WrapMessage("daily code issue limit reached")
		}
		challenge.Generation = issued + 1

		// Invalidate the predecessor before creating the replacement.
		if err := otpRepo.DeleteByEmail(ctx, email); err != nil {
			return errors.Wrap(err, "failed to invalidate previous challenges")
		}

		if err := otpRepo.Create(ctx, challenge); err != nil {
			return errors.Wrap(err, "failed to create challenge")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to issue verification code", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute challenge issue transaction")
	}

	// Mail delivery is best-effort: the challenge stands even if the message
	// bounces, and the caller can request a fresh code.
	if err := srv.mailSender.Send(ctx, verificationMail(email, code, srv.ttl)); err != nil {
		srv.log(ctx).Error("Failed to send verification mail", slog.String("email", email), slog.Any("error", err))
	}

	srv.log(ctx).Debug("Verification code issued", slog.String("email", email), slog.Int("generation", challenge.Generation))

	return challenge, nil
}

// Verify checks the code against the active challenge for the email. A
// matching code marks the challenge verified but keeps it around: the
// registration flow consumes it later, in its own transaction. A challenge
// that has already been verified cannot be verified a second time.
func (srv *otpService) Verify(ctx context.Context, input *usecase.VerifyOtpInput) (*entity.OtpChallenge, error) {
	email := normalizeEmail(input.Email)
	now := time.Now()

	var verified *entity.OtpChallenge
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		otpRepo := repoFactory.OtpChallengeRepo()

		challenge, err := otpRepo.FindLatestByEmail(ctx, email)
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return domainerrors.ErrOtpNotFound.WrapMessage("no active challenge for this email")
		}
		if err != nil {
			return errors.Wrap(err, "failed to load challenge")
		}

		if challenge.Expired(now) {
			return domainerrors.ErrOtpExpired.WrapMessage("challenge expired")
		}

		if challenge.Verified {
			// A verified challenge is spent. Accepting a second verify here,
			// whatever the submitted code, would let anyone who knows the
			// email piggyback on the owner's verification.
			return domainerrors.ErrOtpAlreadyUsed.WrapMessage("challenge already verified")
		}

		if challenge.Attempts >= srv.maxAttempts {
			return domainerrors.ErrOtpAttemptsExhausted.WrapMessage("attempt cap already reached")
		}

		if challenge.Code != input.Code {
			return srv.recordFailedAttempt(ctx, otpRepo, challenge, now)
		}

		challenge.Verified = true
		challenge.LastAttemptAt = &now
		if err := otpRepo.Update(ctx, challenge); err != nil {
			return errors.Wrap(err, "failed to mark challenge verified")
		}
		verified = challenge

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Verification failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute challenge verify transaction")
	}

	return verified, nil
}

// recordFailedAttempt bumps the attempt counter and, once the cap is hit,
// destroys the challenge so the code cannot be brute-forced.
func (srv *otpService) recordFailedAttempt(
	ctx context.Context,
	otpRepo repository.OtpChallengeRepository,
	challenge *entity.OtpChallenge,
	now time.Time,
) error {
	challenge.Attempts++
	challenge.LastAttemptAt = &now

	if challenge.Attempts >= srv.maxAttempts {
		if err := otpRepo.DeleteByEmail(ctx, challenge.Email); err != nil {
			return errors.Wrap(err, "failed to destroy exhausted challenge")
		}

		return domainerrors.ErrOtpAttemptsExhausted.WrapMessage("attempt cap reached, challenge destroyed")
	}

	if err := otpRepo.Update(ctx, challenge); err != nil {
		return errors.Wrap(err, "failed to record attempt")
	}

	return domainerrors.ErrInvalidOrExpiredCode.WrapMessage("code mismatch")
}

// generateOtpCode draws a code uniformly from the full 6-digit space so
// every code, leading zeros included, is equally likely.
func generateOtpCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpCodeSpace))
	if err != nil {
		return "", errors.Wrap(err, "failed to draw random code")
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}

func verificationMail(recipient, code string, ttl time.Duration) *service.MailMessage {
	minutes := int(ttl.Minutes())

	return &service.MailMessage{
		Recipient: recipient,
		Subject:   "Your verification code",
		TextBody:  fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, minutes),
		HTMLBody:  fmt.Sprintf("<p>Your verification code is <b>%s</b>.</p><p>It expires in %d minutes.</p>", code, minutes),
	}
}
