// Package idempotency contains concrete stores for the idempotency response cache.
package idempotency

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"mesa/config"
	"mesa/internal/domain/entity"
	"mesa/internal/domain/lifecycle"
	"mesa/internal/domain/repository"
	"mesa/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "idem:"

// redisStore implements repository.IdempotencyStore on a TTL-capable Redis instance.
type redisStore struct {
	client *redis.Client
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisStore creates the Redis-backed idempotency store.
func NewRedisStore(params Params) (repository.IdempotencyStore, error) {
	if params.Config.Redis == nil {
		return nil, errors.New("redis configuration is required for the idempotency store")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			params.Logger.Info("Redis idempotency store connected",
				slog.String("addr", params.Config.Redis.Addr),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return &redisStore{client: client}, nil
}

// Check looks up a cached response by key. A miss returns (nil, nil).
func (s *redisStore) Check(ctx context.Context, key string) (*entity.IdempotencyRecord, error) {
	raw, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to check idempotency key")
	}

	var record entity.IdempotencyRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, errors.Wrap(err, "failed to decode idempotency record")
	}

	return &record, nil
}

// Store caches a completed response under the key for the given TTL.
func (s *redisStore) Store(ctx context.Context, record *entity.IdempotencyRecord, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = entity.DefaultIdempotencyTTL
	}

	raw, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "failed to encode idempotency record")
	}

	if err := s.client.Set(ctx, keyPrefix+record.Key, raw, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store idempotency record")
	}

	return nil
}

// Invalidate removes a cached response before its TTL elapses.
func (s *redisStore) Invalidate(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return errors.Wrap(err, "failed to invalidate idempotency key")
	}

	return nil
}
