package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"view-counter-service/domain"
)

const (
	rateLimitWindow = 60 * time.Second
	// buckets outlive the window a little to tolerate clock and
	// propagation skew
	rateLimitWindowGrace = 5 * time.Second
)

type RateLimitRepo interface {
	Increment(ctx context.Context, clientIp string, window int64, expiration time.Duration) (int64, error)
}

// RateLimit bounds mutating requests per client ip with a fixed-window
// counter. The window index is part of the storage key, so buckets are
// self-scoping and bursts of up to twice the nominal rate are possible
// across a window boundary. Best effort, not a hard quota.
type RateLimit struct {
	repo        RateLimitRepo
	maxRequests int64
	now         func() time.Time
}

func NewRateLimit(repo RateLimitRepo, maxRequests int64) RateLimit {
	return RateLimit{
		repo:        repo,
		maxRequests: maxRequests,
		now:         time.Now,
	}
}

func (s RateLimit) Allow(ctx context.Context, clientIp string) (*domain.RateLimitResult, error) {
	now := s.now()
	window := windowIndex(now)

	count, err := s.repo.Increment(ctx, clientIp, window, rateLimitWindow+rateLimitWindowGrace)
	if err != nil {
		return nil, errors.WithMessage(err, "increment window counter")
	}

	return &domain.RateLimitResult{
		Allow:      count <= s.maxRequests,
		RetryAfter: windowEnd(window).Sub(now),
	}, nil
}

func windowIndex(now time.Time) int64 {
	return now.Unix() / int64(rateLimitWindow/time.Second)
}

func windowEnd(window int64) time.Time {
	return time.Unix((window+1)*int64(rateLimitWindow/time.Second), 0)
}
