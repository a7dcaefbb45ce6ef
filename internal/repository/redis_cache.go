package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/liftcal/liftcal/internal/domain"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	historyKeyPrefix  = "user:history:"
	progressKeyPrefix = "user:progress:"
)

var ErrCacheMiss = fmt.Errorf("cache miss")

// RedisCacheRepository caches per-user derived views (full workout history
// and progress analysis) with TTLs, invalidated on every workout mutation.
type RedisCacheRepository struct {
	client *redis.Client
}

// NewRedisCacheRepository creates a new Redis cache repository
func NewRedisCacheRepository(client *redis.Client) *RedisCacheRepository {
	return &RedisCacheRepository{
		client: client,
	}
}

// Get retrieves a value from cache by key with OTel tracing
func (r *RedisCacheRepository) Get(ctx context.Context, key string, dest interface{}) error {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Get",
		trace.WithAttributes(attribute.String("cache.key", key)),
	)
	defer span.End()

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			span.SetAttributes(attribute.String("cache.result", "miss"))
			return ErrCacheMiss
		}
		span.RecordError(err)
		return fmt.Errorf("redis get error: %w", err)
	}

	span.SetAttributes(attribute.String("cache.result", "hit"))
	if err := json.Unmarshal(data, dest); err != nil {
		span.RecordError(err)
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}

// Set stores a value in cache with TTL and OTel tracing
func (r *RedisCacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Set",
		trace.WithAttributes(
			attribute.String("cache.key", key),
			attribute.Int64("cache.ttl_seconds", int64(ttl.Seconds())),
		),
	)
	defer span.End()

	data, err := json.Marshal(value)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("marshal error: %w", err)
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("redis set error: %w", err)
	}

	return nil
}

// Delete removes keys from cache with OTel tracing
func (r *RedisCacheRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Delete",
		trace.WithAttributes(attribute.Int("cache.key_count", len(keys))),
	)
	defer span.End()

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("redis delete error: %w", err)
	}

	return nil
}

// SetHistory caches a user's full workout history
func (r *RedisCacheRepository) SetHistory(ctx context.Context, userID string, workouts []*domain.Workout, ttl time.Duration) error {
	return r.Set(ctx, historyKeyPrefix+userID, workouts, ttl)
}

// GetHistory retrieves a user's cached workout history.
// Returns (nil, nil) on a cache miss.
func (r *RedisCacheRepository) GetHistory(ctx context.Context, userID string) ([]*domain.Workout, error) {
	var workouts []*domain.Workout
	if err := r.Get(ctx, historyKeyPrefix+userID, &workouts); err != nil {
		if err == ErrCacheMiss {
			return nil, nil
		}
		return nil, err
	}
	return workouts, nil
}

// SetProgress caches a user's progress analysis
func (r *RedisCacheRepository) SetProgress(ctx context.Context, userID string, entries []domain.ProgressEntry, ttl time.Duration) error {
	return r.Set(ctx, progressKeyPrefix+userID, entries, ttl)
}

// GetProgress retrieves a user's cached progress analysis.
// Returns (nil, nil) on a cache miss.
func (r *RedisCacheRepository) GetProgress(ctx context.Context, userID string) ([]domain.ProgressEntry, error) {
	var entries []domain.ProgressEntry
	if err := r.Get(ctx, progressKeyPrefix+userID, &entries); err != nil {
		if err == ErrCacheMiss {
			return nil, nil
		}
		return nil, err
	}
	return entries, nil
}

// InvalidateUserViews removes all cached derived views for a user.
// Called after every workout mutation.
func (r *RedisCacheRepository) InvalidateUserViews(ctx context.Context, userID string) error {
	return r.Delete(ctx, historyKeyPrefix+userID, progressKeyPrefix+userID)
}
