// Package cache holds the Redis-backed helpers of the fan-out worker.
package cache

import (
	"context"
	"log/slog"
	"time"

	"petkeeper/config"
	"petkeeper/internal/domain/lifecycle"
	"petkeeper/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	keyPrefix        = "petkeeper:pubsub:processed:"
	defaultDedupeTTL = 24 * time.Hour
)

// redisCommands is the subset of *redis.Client the deduplicator needs.
type redisCommands interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisDeduplicator struct {
	client redisCommands
	ttl    time.Duration
}

func newRedisDeduplicator(client redisCommands, ttl time.Duration) *redisDeduplicator {
	if ttl <= 0 {
		ttl = defaultDedupeTTL
	}

	return &redisDeduplicator{client: client, ttl: ttl}
}

// MarkProcessed claims messageID; the first caller wins until the TTL expires.
func (d *redisDeduplicator) MarkProcessed(ctx context.Context, messageID string) (bool, error) {
	if messageID == "" {
		return true, nil
	}

	claimed, err := d.client.SetNX(ctx, keyPrefix+messageID, time.Now().Unix(), d.ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to mark message processed")
	}

	return claimed, nil
}

func (d *redisDeduplicator) Forget(ctx context.Context, messageID string) error {
	if messageID == "" {
		return nil
	}

	return errors.Wrap(d.client.Del(ctx, keyPrefix+messageID).Err(), "failed to forget message")
}

// noopDeduplicator treats every delivery as new
type noopDeduplicator struct{}

func (noopDeduplicator) MarkProcessed(context.Context, string) (bool, error) { return true, nil }

func (noopDeduplicator) Forget(context.Context, string) error { return nil }

// Params defines the dependencies of the deduplicator
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewMessageDeduplicator returns a Redis deduplicator, or a no-op one when Redis is not configured
func NewMessageDeduplicator(params Params) service.MessageDeduplicator {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, worker redelivery dedupe disabled")

		return noopDeduplicator{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Redis connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return newRedisDeduplicator(client, cfg.DedupeTTL)
}
