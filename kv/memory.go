package kv

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
)

type item struct {
	value     string
	expiredAt time.Time
}

func (i item) expired(now time.Time) bool {
	return !i.expiredAt.IsZero() && now.After(i.expiredAt)
}

// Memory is an in-process Store with per-key expiration. It backs the
// tests; production uses Redis.
type Memory struct {
	store map[string]item
	lock  *sync.RWMutex
	now   func() time.Time
}

func NewMemory() *Memory {
	return NewMemoryWithClock(time.Now)
}

func NewMemoryWithClock(now func() time.Time) *Memory {
	return &Memory{
		store: map[string]item{},
		lock:  &sync.RWMutex{},
		now:   now,
	}
}

func (s *Memory) Get(_ context.Context, key string) (string, bool, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	stored, ok := s.store[key]
	if !ok || stored.expired(s.now()) {
		return "", false, nil
	}
	return stored.value, true, nil
}

func (s *Memory) Set(_ context.Context, key string, value string, expiration time.Duration) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.store[key] = item{
		value:     value,
		expiredAt: s.expiredAt(expiration),
	}
	return nil
}

func (s *Memory) Incr(_ context.Context, key string) (int64, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	value := int64(0)
	expiredAt := time.Time{}
	stored, ok := s.store[key]
	if ok && !stored.expired(s.now()) {
		parsed, err := strconv.ParseInt(stored.value, 10, 64)
		if err != nil {
			return 0, errors.WithMessagef(err, "value under '%s' is not an integer", key)
		}
		value = parsed
		expiredAt = stored.expiredAt
	}
	value++
	s.store[key] = item{
		value:     strconv.FormatInt(value, 10),
		expiredAt: expiredAt,
	}
	return value, nil
}

func (s *Memory) ExpireNX(_ context.Context, key string, expiration time.Duration) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	stored, ok := s.store[key]
	if !ok || stored.expired(s.now()) || !stored.expiredAt.IsZero() {
		return nil
	}
	stored.expiredAt = s.expiredAt(expiration)
	s.store[key] = stored
	return nil
}

func (s *Memory) expiredAt(expiration time.Duration) time.Time {
	if expiration == 0 {
		return time.Time{}
	}
	return s.now().Add(expiration)
}
