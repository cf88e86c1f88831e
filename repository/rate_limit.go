package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"view-counter-service/kv"
)

type RateLimit struct {
	store kv.Store
}

func NewRateLimit(store kv.Store) RateLimit {
	return RateLimit{
		store: store,
	}
}

// Increment bumps the request counter for the client's current window
// bucket and returns the new value. The expiration is armed on the
// first increment only and slightly outlives the window to tolerate
// clock skew; old buckets simply expire, no reset logic exists.
func (r RateLimit) Increment(ctx context.Context, clientIp string, window int64, expiration time.Duration) (int64, error) {
	key := r.key(clientIp, window)
	value, err := r.store.Incr(ctx, key)
	if err != nil {
		return 0, errors.WithMessage(err, "incr")
	}

	if value == 1 {
		err := r.store.ExpireNX(ctx, key, expiration)
		if err != nil {
			return 0, errors.WithMessage(err, "expire nx")
		}
	}

	return value, nil
}

func (r RateLimit) key(clientIp string, window int64) string {
	return fmt.Sprintf("ratelimit:%s:%d", clientIp, window)
}
