package kv

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type Redis struct {
	cli redis.UniversalClient
}

func NewRedis(cli redis.UniversalClient) Redis {
	return Redis{
		cli: cli,
	}
}

func (s Redis) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.cli.Get(ctx, key).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return "", false, nil
	case err != nil:
		return "", false, errors.WithMessage(err, "get")
	default:
		return value, true, nil
	}
}

func (s Redis) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	err := s.cli.Set(ctx, key, value, expiration).Err()
	if err != nil {
		return errors.WithMessage(err, "set")
	}
	return nil
}

func (s Redis) Incr(ctx context.Context, key string) (int64, error) {
	value, err := s.cli.Incr(ctx, key).Result()
	if err != nil {
		return 0, errors.WithMessage(err, "incr")
	}
	return value, nil
}

func (s Redis) ExpireNX(ctx context.Context, key string, expiration time.Duration) error {
	err := s.cli.ExpireNX(ctx, key, expiration).Err()
	if err != nil {
		return errors.WithMessage(err, "expire nx")
	}
	return nil
}
