package domain

import (
	"time"
)

type RateLimitResult struct {
	Allow      bool
	RetryAfter time.Duration
}
