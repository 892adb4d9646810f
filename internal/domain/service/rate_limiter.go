package service

import (
	"context"
	"time"
)

// OperationClass names one rate-limited entry point.
type OperationClass string

const (
	OpSignIn         OperationClass = "signin"
	OpRegister       OperationClass = "register"
	OpOtpSend        OperationClass = "otp_send"
	OpOtpVerify      OperationClass = "otp_verify"
	OpResetRequest   OperationClass = "reset_request"
	OpPasswordChange OperationClass = "password_change"
)

// Decision is the outcome of an admission check.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration // Meaningful only when Allowed is false.
}

// RateLimiter admits or rejects a request for (identity, class) against a
// sliding window. Implementations fail open: when the backing store is
// unreachable they log and allow rather than block all traffic.
type RateLimiter interface {
	Admit(ctx context.Context, identity string, class OperationClass) (Decision, error)
}
