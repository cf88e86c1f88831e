package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"view-counter-service/kv"
)

type Views struct {
	store kv.Store
}

func NewViews(store kv.Store) Views {
	return Views{
		store: store,
	}
}

func (r Views) Get(ctx context.Context, slug string) (int64, error) {
	value, ok, err := r.store.Get(ctx, r.key(slug))
	if err != nil {
		return 0, errors.WithMessage(err, "get count")
	}
	if !ok {
		return 0, nil
	}

	count, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errors.WithMessagef(err, "parse count for '%s'", slug)
	}
	return count, nil
}

// Increment bumps the counter by exactly one and returns the new
// total. The counter never expires.
func (r Views) Increment(ctx context.Context, slug string) (int64, error) {
	count, err := r.store.Incr(ctx, r.key(slug))
	if err != nil {
		return 0, errors.WithMessage(err, "incr count")
	}
	return count, nil
}

func (r Views) key(slug string) string {
	return fmt.Sprintf("views:%s", slug)
}
