package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/liftcal/liftcal/internal/domain"
	"github.com/liftcal/liftcal/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedHistory(t *testing.T, repo *repository.InMemoryWorkoutRepository, entries map[string][]domain.Exercise) {
	t.Helper()
	ctx := context.Background()
	for key, exercises := range entries {
		date, err := domain.ParseDateKey(key)
		require.NoError(t, err)
		w := &domain.Workout{Type: "Session", Exercises: exercises}
		require.NoError(t, repo.Save(ctx, testUser, date, w))
	}
}

func TestAnalyzeWeightGain(t *testing.T) {
	ctx := context.Background()
	workoutRepo := repository.NewInMemoryWorkoutRepository()
	svc := NewProgressService(workoutRepo, nil)

	seedHistory(t, workoutRepo, map[string][]domain.Exercise{
		"2024-03-04": {{Name: "Bench Press", Sets: []domain.Set{{Weight: "40", Reps: 15}}}},
		"2024-03-11": {{Name: "Bench Press", Sets: []domain.Set{{Weight: "45", Reps: 12}}}},
	})

	entries, err := svc.Analyze(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Bench Press", entries[0].Exercise)
	assert.Equal(t, 5.0, entries[0].WeightChange)
	assert.Equal(t, -3, entries[0].RepsChange)
	assert.Equal(t, domain.StatusGain, entries[0].Status)
}

func TestAnalyzeRepsFallback(t *testing.T) {
	ctx := context.Background()
	workoutRepo := repository.NewInMemoryWorkoutRepository()
	svc := NewProgressService(workoutRepo, nil)

	// Weight unchanged: the rep delta decides the status
	seedHistory(t, workoutRepo, map[string][]domain.Exercise{
		"2024-03-04": {{Name: "Pull-ups", Sets: []domain.Set{{Weight: "71", Reps: 6}}}},
		"2024-03-11": {{Name: "Pull-ups", Sets: []domain.Set{{Weight: "71", Reps: 8}}}},
	})

	entries, err := svc.Analyze(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 0.0, entries[0].WeightChange)
	assert.Equal(t, 2, entries[0].RepsChange)
	assert.Equal(t, domain.StatusGain, entries[0].Status)
}

func TestAnalyzeNeutralAndLoss(t *testing.T) {
	ctx := context.Background()
	workoutRepo := repository.NewInMemoryWorkoutRepository()
	svc := NewProgressService(workoutRepo, nil)

	seedHistory(t, workoutRepo, map[string][]domain.Exercise{
		"2024-03-04": {
			{Name: "Squat", Sets: []domain.Set{{Weight: "80", Reps: 10}}},
			{Name: "Plank", Sets: []domain.Set{{Weight: "0", Reps: 60}}},
		},
		"2024-03-11": {
			{Name: "Squat", Sets: []domain.Set{{Weight: "75", Reps: 10}}},
			{Name: "Plank", Sets: []domain.Set{{Weight: "0", Reps: 60}}},
		},
	})

	entries, err := svc.Analyze(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Sorted by weight change descending: neutral plank before losing squat
	assert.Equal(t, "Plank", entries[0].Exercise)
	assert.Equal(t, domain.StatusNeutral, entries[0].Status)
	assert.Equal(t, "Squat", entries[1].Exercise)
	assert.Equal(t, domain.StatusLoss, entries[1].Status)
}

func TestAnalyzeExcludesSingleAppearance(t *testing.T) {
	ctx := context.Background()
	workoutRepo := repository.NewInMemoryWorkoutRepository()
	svc := NewProgressService(workoutRepo, nil)

	seedHistory(t, workoutRepo, map[string][]domain.Exercise{
		"2024-03-04": {{Name: "Deadlift", Sets: []domain.Set{{Weight: "100", Reps: 5}}}},
	})

	entries, err := svc.Analyze(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAnalyzeServedFromCache(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cache := repository.NewRedisCacheRepository(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	workoutRepo := repository.NewInMemoryWorkoutRepository()
	svc := NewProgressService(workoutRepo, cache)

	seedHistory(t, workoutRepo, map[string][]domain.Exercise{
		"2024-03-04": {{Name: "Bench Press", Sets: []domain.Set{{Weight: "40", Reps: 15}}}},
		"2024-03-11": {{Name: "Bench Press", Sets: []domain.Set{{Weight: "45", Reps: 12}}}},
	})

	first, err := svc.Analyze(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Mutating the store without invalidating: the cached analysis wins
	date := time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)
	w := &domain.Workout{Type: "Chest", Exercises: []domain.Exercise{
		{Name: "Bench Press", Sets: []domain.Set{{Weight: "50", Reps: 10}}},
	}}
	require.NoError(t, workoutRepo.Save(ctx, testUser, date, w))

	second, err := svc.Analyze(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// After invalidation the fresh history is analyzed
	require.NoError(t, cache.InvalidateUserViews(ctx, testUser))
	third, err := svc.Analyze(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, 10.0, third[0].WeightChange)
}

func TestExerciseNamesSortedUnique(t *testing.T) {
	ctx := context.Background()
	workoutRepo := repository.NewInMemoryWorkoutRepository()
	svc := NewProgressService(workoutRepo, nil)

	seedHistory(t, workoutRepo, map[string][]domain.Exercise{
		"2024-03-04": {
			{Name: "Squat", Sets: []domain.Set{{Weight: "80", Reps: 10}}},
			{Name: "Bench Press", Sets: []domain.Set{{Weight: "40", Reps: 10}}},
		},
		"2024-03-11": {
			{Name: "Bench Press", Sets: []domain.Set{{Weight: "40", Reps: 10}}},
		},
	})

	names, err := svc.ExerciseNames(ctx, testUser)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bench Press", "Squat"}, names)
}

func TestRepSeriesOldestFirst(t *testing.T) {
	ctx := context.Background()
	workoutRepo := repository.NewInMemoryWorkoutRepository()
	svc := NewProgressService(workoutRepo, nil)

	seedHistory(t, workoutRepo, map[string][]domain.Exercise{
		"2024-03-11": {{Name: "Bench Press", Sets: []domain.Set{
			{Weight: "45", Reps: 12}, {Weight: "45", Reps: 8},
		}}},
		"2024-03-04": {{Name: "Bench Press", Sets: []domain.Set{
			{Weight: "40", Reps: 15}, {Weight: "40", Reps: 10}, {Weight: "40", Reps: 8}, {Weight: "40", Reps: 6},
		}}},
		"2024-03-06": {{Name: "Squat", Sets: []domain.Set{{Weight: "80", Reps: 10}}}},
	})

	points, err := svc.RepSeries(ctx, testUser, "Bench Press")
	require.NoError(t, err)
	require.Len(t, points, 2)

	// Oldest first; only the first three sets chart, missing sets are zero
	assert.Equal(t, domain.RepPoint{
		Timestamp: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC).UnixMilli(),
		Set1:      15, Set2: 10, Set3: 8,
	}, points[0])
	assert.Equal(t, 12, points[1].Set1)
	assert.Equal(t, 8, points[1].Set2)
	assert.Equal(t, 0, points[1].Set3)
}
