package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"accountd/config"
	"accountd/internal/domain/service"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Window defaults applied when a class has no configured rule.
const (
	defaultLimit  = 10
	defaultWindow = time.Minute
)

// slidingWindowLimiter counts events per (identity, class) inside a Redis
// sorted set keyed by timestamp. Unlike a fixed INCR+EXPIRE counter the
// window slides continuously, so a burst at a window boundary cannot double
// the effective rate.
type slidingWindowLimiter struct {
	client *redis.Client
	rules  map[service.OperationClass]config.RateLimitRule
	logger *slog.Logger
}

// LimiterParams holds dependencies for the limiter, injected by Fx.
type LimiterParams struct {
	fx.In

	Client *redis.Client
	Config *config.Config
	Logger *slog.Logger
}

// NewSlidingWindowLimiter is the constructor for slidingWindowLimiter.
func NewSlidingWindowLimiter(params LimiterParams) service.RateLimiter {
	rules := make(map[service.OperationClass]config.RateLimitRule)
	if params.Config != nil && params.Config.RateLimit != nil {
		rl := params.Config.RateLimit
		rules[service.OpSignIn] = rl.SignIn
		rules[service.OpRegister] = rl.Register
		rules[service.OpOtpSend] = rl.OtpSend
		rules[service.OpOtpVerify] = rl.OtpVerify
		rules[service.OpResetRequest] = rl.ResetRequest
		rules[service.OpPasswordChange] = rl.PasswordChange
	}

	return &slidingWindowLimiter{
		client: params.Client,
		rules:  rules,
		logger: params.Logger,
	}
}

// Admit records the event and decides whether it fits the window. When Redis
// is unreachable the limiter fails open: abuse protection degrades, the
// service does not.
func (l *slidingWindowLimiter) Admit(ctx context.Context, identity string, class service.OperationClass) (service.Decision, error) {
	rule := l.ruleFor(class)
	key := fmt.Sprintf("rl:%s:%s", class, identity)
	now := time.Now()
	windowStart := now.Add(-rule.Window)

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart.UnixNano(), 10))
	countCmd := pipe.ZCard(ctx, key)
	oldestCmd := pipe.ZRangeWithScores(ctx, key, 0, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		l.logger.Warn("Rate limiter store unavailable, failing open",
			slog.String("class", string(class)), slog.Any("error", err))

		return service.Decision{Allowed: true}, nil
	}

	if countCmd.Val() >= int64(rule.Limit) {
		retryAfter := rule.Window
		if oldest := oldestCmd.Val(); len(oldest) > 0 {
			oldestAt := time.Unix(0, int64(oldest[0].Score))
			retryAfter = rule.Window - now.Sub(oldestAt)
			if retryAfter < 0 {
				retryAfter = 0
			}
		}

		return service.Decision{Allowed: false, RetryAfter: retryAfter}, nil
	}

	record := l.client.TxPipeline()
	record.ZAdd(ctx, key, redis.Z{
		Score: float64(now.UnixNano()),
		// Random suffix keeps members unique when two events land in the same nanosecond.
		Member: strconv.FormatInt(now.UnixNano(), 10) + "-" + uuid.NewString(),
	})
	record.Expire(ctx, key, rule.Window)
	if _, err := record.Exec(ctx); err != nil {
		l.logger.Warn("Rate limiter failed to record event, failing open",
			slog.String("class", string(class)), slog.Any("error", err))
	}

	return service.Decision{Allowed: true}, nil
}

func (l *slidingWindowLimiter) ruleFor(class service.OperationClass) config.RateLimitRule {
	rule, ok := l.rules[class]
	if !ok || rule.Limit <= 0 || rule.Window <= 0 {
		return config.RateLimitRule{Limit: defaultLimit, Window: defaultWindow}
	}

	return rule
}
