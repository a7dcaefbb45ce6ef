package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"time"

	"github.com/liftcal/liftcal/internal/domain"
	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"
)

// ExportStore is where history snapshots land; backed by any S3-compatible
// object store.
type ExportStore interface {
	Upload(ctx context.Context, data []byte, key string, contentType string) (string, error)
}

// Snapshot is the exported document: the user's complete workout history
// and weekly plans at one point in time.
type Snapshot struct {
	UserID     string                  `json:"userId"`
	ExportedAt time.Time               `json:"exportedAt"`
	Workouts   []*domain.Workout       `json:"workouts"`
	Plans      map[string]*domain.Plan `json:"plans"`
}

// BackupService exports a user's full history as a JSON snapshot to object
// storage.
type BackupService struct {
	workoutRepo domain.WorkoutRepository
	planRepo    domain.PlanRepository
	store       ExportStore
}

// NewBackupService creates a new backup service
func NewBackupService(workoutRepo domain.WorkoutRepository, planRepo domain.PlanRepository, store ExportStore) *BackupService {
	return &BackupService{
		workoutRepo: workoutRepo,
		planRepo:    planRepo,
		store:       store,
	}
}

// Export gathers the user's workouts and plans, serializes them as one
// JSON document and uploads it under a per-user ULID key. Returns the
// object URL.
func (s *BackupService) Export(ctx context.Context, userID string) (string, error) {
	snapshot := Snapshot{
		UserID:     userID,
		ExportedAt: time.Now().UTC(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		workouts, err := s.workoutRepo.GetAll(gctx, userID)
		if err != nil {
			return err
		}
		snapshot.Workouts = workouts
		return nil
	})
	g.Go(func() error {
		plans, err := s.planRepo.GetAll(gctx, userID)
		if err != nil {
			return err
		}
		snapshot.Plans = plans
		return nil
	})
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("failed to gather snapshot: %w", err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	// ULID keys sort lexicographically by creation time, so object
	// listings double as an export timeline.
	id := ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader)
	key := fmt.Sprintf("%s/%s.json", userID, id)

	url, err := s.store.Upload(ctx, data, key, "application/json")
	if err != nil {
		return "", err
	}
	return url, nil
}
