package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"view-counter-service/domain"
	"view-counter-service/httperrors"
	"view-counter-service/request"
)

type RateLimiter interface {
	Allow(ctx context.Context, clientIp string) (*domain.RateLimitResult, error)
}

func RateLimit(limiter RateLimiter) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			if ctx.Request().Method != http.MethodPost {
				return next.Handle(ctx)
			}

			identity := ctx.Identity()
			if identity == nil {
				return next.Handle(ctx)
			}

			result, err := limiter.Allow(ctx.Context(), identity.Ip)
			if err != nil {
				return errors.WithMessage(err, "rate limit: allow")
			}
			if !result.Allow {
				return httperrors.New(
					http.StatusTooManyRequests,
					"Too many requests",
					errors.New("rate limit: window limit reached"),
				).WithHeader("Retry-After", strconv.FormatInt(retryAfterSeconds(result.RetryAfter), 10))
			}

			return next.Handle(ctx)
		})
	}
}

func retryAfterSeconds(retryAfter time.Duration) int64 {
	seconds := int64(retryAfter / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	return seconds
}
