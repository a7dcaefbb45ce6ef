package domain

import (
	"context"
	"time"
)

// CacheRepository caches per-user derived views. Getters return (nil, nil)
// on a cache miss; cache failures are never fatal to the caller.
type CacheRepository interface {
	GetHistory(ctx context.Context, userID string) ([]*Workout, error)
	SetHistory(ctx context.Context, userID string, workouts []*Workout, ttl time.Duration) error
	GetProgress(ctx context.Context, userID string) ([]ProgressEntry, error)
	SetProgress(ctx context.Context, userID string, entries []ProgressEntry, ttl time.Duration) error
	InvalidateUserViews(ctx context.Context, userID string) error
}
