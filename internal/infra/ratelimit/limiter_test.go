package ratelimit

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"accountd/config"
	"accountd/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestLimiter(t *testing.T, rules *config.RateLimitConfig) (service.RateLimiter, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter := NewSlidingWindowLimiter(LimiterParams{
		Client: client,
		Config: &config.Config{RateLimit: rules},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return limiter, server
}

func TestSlidingWindowLimiter_AdmitsUpToLimit(t *testing.T) {
	limiter, _ := createTestLimiter(t, &config.RateLimitConfig{
		OtpSend: config.RateLimitRule{Limit: 3, Window: time.Minute},
	})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		decision, err := limiter.Admit(ctx, "198.51.100.7", service.OpOtpSend)
		require.NoError(t, err)
		assert.True(t, decision.Allowed, "request %d should be admitted", i+1)
	}

	decision, err := limiter.Admit(ctx, "198.51.100.7", service.OpOtpSend)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Greater(t, decision.RetryAfter, time.Duration(0))
	assert.LessOrEqual(t, decision.RetryAfter, time.Minute)
}

func TestSlidingWindowLimiter_IdentitiesAreIndependent(t *testing.T) {
	limiter, _ := createTestLimiter(t, &config.RateLimitConfig{
		SignIn: config.RateLimitRule{Limit: 1, Window: time.Minute},
	})
	ctx := context.Background()

	first, err := limiter.Admit(ctx, "198.51.100.7", service.OpSignIn)
	require.NoError(t, err)
	assert.True(t, first.Allowed)

	blocked, err := limiter.Admit(ctx, "198.51.100.7", service.OpSignIn)
	require.NoError(t, err)
	assert.False(t, blocked.Allowed)

	// A different caller is unaffected by the first one's exhaustion.
	other, err := limiter.Admit(ctx, "203.0.113.9", service.OpSignIn)
	require.NoError(t, err)
	assert.True(t, other.Allowed)
}

func TestSlidingWindowLimiter_ClassesAreIndependent(t *testing.T) {
	limiter, _ := createTestLimiter(t, &config.RateLimitConfig{
		SignIn:  config.RateLimitRule{Limit: 1, Window: time.Minute},
		OtpSend: config.RateLimitRule{Limit: 1, Window: time.Minute},
	})
	ctx := context.Background()

	_, err := limiter.Admit(ctx, "198.51.100.7", service.OpSignIn)
	require.NoError(t, err)

	blocked, err := limiter.Admit(ctx, "198.51.100.7", service.OpSignIn)
	require.NoError(t, err)
	assert.False(t, blocked.Allowed)

	// Exhausting sign-in leaves the code-send budget untouched.
	decision, err := limiter.Admit(ctx, "198.51.100.7", service.OpOtpSend)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func TestSlidingWindowLimiter_UnconfiguredClassUsesDefaults(t *testing.T) {
	limiter, _ := createTestLimiter(t, nil)
	ctx := context.Background()

	for i := 0; i < defaultLimit; i++ {
		decision, err := limiter.Admit(ctx, "198.51.100.7", service.OpRegister)
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
	}

	decision, err := limiter.Admit(ctx, "198.51.100.7", service.OpRegister)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
}

func TestSlidingWindowLimiter_FailsOpenWhenStoreIsDown(t *testing.T) {
	limiter, server := createTestLimiter(t, &config.RateLimitConfig{
		SignIn: config.RateLimitRule{Limit: 1, Window: time.Minute},
	})
	ctx := context.Background()

	server.Close()

	// Abuse protection degrades rather than blocking all traffic.
	decision, err := limiter.Admit(ctx, "198.51.100.7", service.OpSignIn)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func TestSlidingWindowLimiter_WindowSlides(t *testing.T) {
	limiter, _ := createTestLimiter(t, &config.RateLimitConfig{
		OtpVerify: config.RateLimitRule{Limit: 1, Window: 50 * time.Millisecond},
	})
	ctx := context.Background()

	first, err := limiter.Admit(ctx, "198.51.100.7", service.OpOtpVerify)
	require.NoError(t, err)
	assert.True(t, first.Allowed)

	blocked, err := limiter.Admit(ctx, "198.51.100.7", service.OpOtpVerify)
	require.NoError(t, err)
	assert.False(t, blocked.Allowed)

	// Once the first event ages out of the window, admission resumes.
	time.Sleep(60 * time.Millisecond)

	again, err := limiter.Admit(ctx, "198.51.100.7", service.OpOtpVerify)
	require.NoError(t, err)
	assert.True(t, again.Allowed)
}
