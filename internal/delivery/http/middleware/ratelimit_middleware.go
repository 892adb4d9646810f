package middleware

import (
	"log/slog"
	"strconv"

	deliverycontext "accountd/internal/delivery/context"
	"accountd/internal/delivery/http/response"
	"accountd/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware admits requests through the sliding-window limiter.
// Identity is the client IP; each route class carries its own window.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware is the constructor for RateLimitMiddleware.
func NewRateLimitMiddleware(limiter service.RateLimiter, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, logger: logger}
}

// Limit returns a middleware enforcing the window of the given class.
func (m *RateLimitMiddleware) Limit(class service.OperationClass) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			decision, err := m.limiter.Admit(ctx, c.RealIP(), class)
			if err != nil {
				// The limiter itself fails open; an error here is unexpected
				// but still must not take the endpoint down.
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).
					Warn("Rate limiter error, admitting request", slog.Any("error", err))

				return next(c)
			}

			if !decision.Allowed {
				retryAfter := int(decision.RetryAfter.Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))

				return response.TooManyRequests(c, "RATE_LIMITED", "Too many requests, slow down")
			}

			return next(c)
		}
	}
}
