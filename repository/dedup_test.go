package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"view-counter-service/kv"
)

func TestDedupKeyIsDeterministic(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	store := kv.NewMemory()
	dedup := NewDedup(store, "salt")

	first := dedup.key("hello-world", "10.0.0.1")
	second := dedup.key("hello-world", "10.0.0.1")
	require.EqualValues(first, second)
	require.True(strings.HasPrefix(first, "dedup:hello-world:"))
}

func TestDedupKeyNeverContainsRawIp(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	dedup := NewDedup(kv.NewMemory(), "salt")

	key := dedup.key("hello-world", "203.0.113.7")
	require.NotContains(key, "203.0.113.7")
}

func TestDedupKeyDependsOnSaltSlugAndClient(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	store := kv.NewMemory()
	base := NewDedup(store, "salt").key("hello-world", "10.0.0.1")

	require.NotEqualValues(base, NewDedup(store, "other-salt").key("hello-world", "10.0.0.1"))
	require.NotEqualValues(base, NewDedup(store, "salt").key("other-post", "10.0.0.1"))
	require.NotEqualValues(base, NewDedup(store, "salt").key("hello-world", "10.0.0.2"))
}
