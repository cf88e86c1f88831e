// Package kv abstracts the key-value store the counter state lives in.
// Keys are namespaced by prefix (views:, dedup:, ratelimit:) by the
// repository layer; values are strings with optional per-key expiration.
package kv

import (
	"context"
	"time"
)

type Store interface {
	// Get returns the stored value, ok == false when the key is absent
	// or expired.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value under key. expiration == 0 means no expiry.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	// Incr atomically increments the decimal counter under key,
	// creating it at 1, and returns the new value.
	Incr(ctx context.Context, key string) (int64, error)
	// ExpireNX arms an expiration on key only if it has none yet.
	ExpireNX(ctx context.Context, key string, expiration time.Duration) error
}
