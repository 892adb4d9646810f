package postgres

import (
	"context"
	"log/slog"
	"time"

	"accountd/config"
	"accountd/internal/domain/repository"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

const defaultJanitorInterval = 5 * time.Minute

// challengeJanitor periodically prunes expired OTP and reset challenges.
// Postgres has no TTL index, so expiry is enforced at read time and rows are
// physically removed here.
type challengeJanitor struct {
	otpRepo   repository.OtpChallengeRepository
	resetRepo repository.ResetChallengeRepository
	interval  time.Duration
	logger    *slog.Logger
}

// JanitorParams defines the required parameters
type JanitorParams struct {
	fx.In
	fx.Lifecycle

	DB     *gorm.DB
	Config *config.Config
	Logger *slog.Logger
}

// RunChallengeJanitor starts the background pruning loop and ties it to the
// application lifecycle. Registered with fx.Invoke.
func RunChallengeJanitor(params JanitorParams) {
	interval := defaultJanitorInterval
	if params.Config != nil && params.Config.Otp != nil && params.Config.Otp.JanitorInterval > 0 {
		interval = params.Config.Otp.JanitorInterval
	}

	janitor := &challengeJanitor{
		otpRepo:   NewOtpChallengeRepository(params.DB),
		resetRepo: NewResetChallengeRepository(params.DB),
		interval:  interval,
		logger:    params.Logger,
	}

	loopCtx, cancel := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go janitor.run(loopCtx)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
}

func (j *challengeJanitor) run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.prune(ctx)
		}
	}
}

func (j *challengeJanitor) prune(ctx context.Context) {
	if err := j.otpRepo.DeleteExpired(ctx); err != nil {
		j.logger.Warn("Failed to prune expired verification challenges", slog.Any("error", err))
	}
	if err := j.resetRepo.DeleteExpired(ctx); err != nil {
		j.logger.Warn("Failed to prune expired reset challenges", slog.Any("error", err))
	}
}
