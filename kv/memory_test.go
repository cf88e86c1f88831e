package kv_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"view-counter-service/kv"
)

func TestMemoryGetBasic(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	ctx := context.Background()

	store := kv.NewMemory()
	err := store.Set(ctx, "key", "data", 24*time.Hour)
	require.NoError(err)

	value, ok, err := store.Get(ctx, "key")
	require.NoError(err)
	require.True(ok)
	require.EqualValues("data", value)

	_, ok, err = store.Get(ctx, "key2")
	require.NoError(err)
	require.False(ok)
}

func TestMemoryGetExpired(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	ctx := context.Background()

	current := time.Unix(1_700_000_000, 0)
	store := kv.NewMemoryWithClock(func() time.Time { return current })

	err := store.Set(ctx, "key", "data", time.Minute)
	require.NoError(err)

	current = current.Add(2 * time.Minute)

	_, ok, err := store.Get(ctx, "key")
	require.NoError(err)
	require.False(ok)
}

func TestMemoryIncr(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	ctx := context.Background()

	store := kv.NewMemory()

	value, err := store.Incr(ctx, "counter")
	require.NoError(err)
	require.EqualValues(1, value)

	value, err = store.Incr(ctx, "counter")
	require.NoError(err)
	require.EqualValues(2, value)

	stored, ok, err := store.Get(ctx, "counter")
	require.NoError(err)
	require.True(ok)
	require.EqualValues("2", stored)
}

func TestMemoryIncrAfterExpiryRestartsAtOne(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	ctx := context.Background()

	current := time.Unix(1_700_000_000, 0)
	store := kv.NewMemoryWithClock(func() time.Time { return current })

	value, err := store.Incr(ctx, "counter")
	require.NoError(err)
	require.EqualValues(1, value)
	err = store.ExpireNX(ctx, "counter", time.Minute)
	require.NoError(err)

	current = current.Add(2 * time.Minute)

	value, err = store.Incr(ctx, "counter")
	require.NoError(err)
	require.EqualValues(1, value)

	// the fresh counter carries no stale expiration
	value, err = store.Incr(ctx, "counter")
	require.NoError(err)
	require.EqualValues(2, value)
}

func TestMemoryExpireNXArmsOnlyOnce(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	ctx := context.Background()

	current := time.Unix(1_700_000_000, 0)
	store := kv.NewMemoryWithClock(func() time.Time { return current })

	_, err := store.Incr(ctx, "counter")
	require.NoError(err)
	err = store.ExpireNX(ctx, "counter", time.Minute)
	require.NoError(err)
	// second arm must not extend the lifetime
	current = current.Add(30 * time.Second)
	err = store.ExpireNX(ctx, "counter", time.Hour)
	require.NoError(err)

	current = current.Add(31 * time.Second)
	_, ok, err := store.Get(ctx, "counter")
	require.NoError(err)
	require.False(ok)
}
