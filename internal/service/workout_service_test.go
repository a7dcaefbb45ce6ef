package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/liftcal/liftcal/internal/domain"
	"github.com/liftcal/liftcal/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUser = "user-1"

func newWorkoutService() (*WorkoutService, *repository.InMemoryWorkoutRepository, *repository.InMemoryPlanRepository) {
	workoutRepo := repository.NewInMemoryWorkoutRepository()
	planRepo := repository.NewInMemoryPlanRepository()
	return NewWorkoutService(workoutRepo, planRepo, nil), workoutRepo, planRepo
}

func benchDay() time.Time {
	return time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC) // a Monday
}

func benchWorkout() *domain.Workout {
	return &domain.Workout{
		Type: "Chest",
		Exercises: []domain.Exercise{
			{Name: "Bench Press", Sets: []domain.Set{
				{Weight: "40", Reps: 15}, {Weight: "40", Reps: 10}, {Weight: "40", Reps: 8},
			}},
			{Name: "DB Flyes", Sets: []domain.Set{
				{Weight: "9", Reps: 12}, {Weight: "9", Reps: 12},
			}},
		},
	}
}

func TestSaveAndGetStampsDateFields(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newWorkoutService()
	date := benchDay()

	saved, err := svc.Save(ctx, testUser, date, benchWorkout())
	require.NoError(t, err)
	require.NotNil(t, saved)

	got, err := svc.Get(ctx, testUser, date)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04", got.Date)
	assert.Equal(t, date.UnixMilli(), got.Timestamp)
	assert.Len(t, got.Exercises, 2)
}

func TestGetMissingWorkout(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newWorkoutService()

	_, err := svc.Get(ctx, testUser, benchDay())
	assert.ErrorIs(t, err, domain.ErrWorkoutNotFound)
}

func TestSaveEmptyWorkoutDeletes(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newWorkoutService()
	date := benchDay()

	_, err := svc.Save(ctx, testUser, date, benchWorkout())
	require.NoError(t, err)

	// Overwriting with an exercise-free workout removes the document
	saved, err := svc.Save(ctx, testUser, date, &domain.Workout{Type: "Chest"})
	require.NoError(t, err)
	assert.Nil(t, saved)

	_, err = svc.Get(ctx, testUser, date)
	assert.ErrorIs(t, err, domain.ErrWorkoutNotFound)
}

func TestGetPrunesStoredEmptyWorkout(t *testing.T) {
	ctx := context.Background()
	svc, workoutRepo, _ := newWorkoutService()
	date := benchDay()

	// Write an empty document directly, bypassing the service post-condition
	require.NoError(t, workoutRepo.Save(ctx, testUser, date, &domain.Workout{Type: "Chest"}))

	_, err := svc.Get(ctx, testUser, date)
	assert.ErrorIs(t, err, domain.ErrWorkoutNotFound)

	// The underlying document is gone too
	_, err = workoutRepo.Get(ctx, testUser, date)
	assert.ErrorIs(t, err, domain.ErrWorkoutNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newWorkoutService()
	date := benchDay()

	require.NoError(t, svc.Delete(ctx, testUser, date))
	require.NoError(t, svc.Delete(ctx, testUser, date))
}

func TestHistorySortedNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newWorkoutService()

	for _, day := range []int{4, 11, 6} {
		date := time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)
		_, err := svc.Save(ctx, testUser, date, benchWorkout())
		require.NoError(t, err)
	}

	history, err := svc.History(ctx, testUser)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "2024-03-11", history[0].Date)
	assert.Equal(t, "2024-03-06", history[1].Date)
	assert.Equal(t, "2024-03-04", history[2].Date)
}

func TestApplyTemplate(t *testing.T) {
	ctx := context.Background()
	svc, _, planRepo := newWorkoutService()
	date := benchDay() // Monday

	plan := &domain.Plan{
		Type: "Chest Biceps Core",
		Exercises: []domain.Exercise{
			{Name: "Bench Press", Sets: []domain.Set{{Weight: "40", Reps: 15}}},
		},
	}
	require.NoError(t, planRepo.Save(ctx, testUser, "monday", plan))

	workout, err := svc.ApplyTemplate(ctx, testUser, date)
	require.NoError(t, err)
	assert.Equal(t, "Chest Biceps Core", workout.Type)
	require.Len(t, workout.Exercises, 1)
	assert.Equal(t, "Bench Press", workout.Exercises[0].Name)
}

func TestApplyTemplateMissingPlan(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newWorkoutService()

	_, err := svc.ApplyTemplate(ctx, testUser, benchDay())
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)
}

func TestUpdateReps(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newWorkoutService()
	date := benchDay()

	_, err := svc.Save(ctx, testUser, date, benchWorkout())
	require.NoError(t, err)

	workout, err := svc.UpdateReps(ctx, testUser, date, 0, 1, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, workout.Exercises[0].Sets[1].Reps)

	_, err = svc.UpdateReps(ctx, testUser, date, 5, 0, 12)
	assert.ErrorIs(t, err, domain.ErrExerciseIndex)
	_, err = svc.UpdateReps(ctx, testUser, date, 0, 9, 12)
	assert.ErrorIs(t, err, domain.ErrSetIndex)
}

func TestUpdateWeightMatchesRawString(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newWorkoutService()
	date := benchDay()

	w := &domain.Workout{
		Type: "Chest",
		Exercises: []domain.Exercise{
			{Name: "Bench Press", Sets: []domain.Set{
				{Weight: "20", Reps: 15}, {Weight: "20.0", Reps: 10}, {Weight: "20", Reps: 8},
			}},
		},
	}
	_, err := svc.Save(ctx, testUser, date, w)
	require.NoError(t, err)

	// "20.0" is not "20": only exact string matches change
	updated, err := svc.UpdateWeight(ctx, testUser, date, 0, "20", "25")
	require.NoError(t, err)
	sets := updated.Exercises[0].Sets
	assert.Equal(t, "25", sets[0].Weight)
	assert.Equal(t, "20.0", sets[1].Weight)
	assert.Equal(t, "25", sets[2].Weight)
}

func TestRenameExercise(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newWorkoutService()
	date := benchDay()

	_, err := svc.Save(ctx, testUser, date, benchWorkout())
	require.NoError(t, err)

	workout, err := svc.RenameExercise(ctx, testUser, date, 1, "Cable Flyes")
	require.NoError(t, err)
	assert.Equal(t, "Cable Flyes", workout.Exercises[1].Name)

	_, err = svc.RenameExercise(ctx, testUser, date, 0, "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyName)
}

func TestRemoveLastExerciseDeletesWorkout(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newWorkoutService()
	date := benchDay()

	w := &domain.Workout{
		Type:      "Chest",
		Exercises: []domain.Exercise{{Name: "Bench Press", Sets: []domain.Set{{Weight: "40", Reps: 10}}}},
	}
	_, err := svc.Save(ctx, testUser, date, w)
	require.NoError(t, err)

	workout, err := svc.RemoveExercise(ctx, testUser, date, 0)
	require.NoError(t, err)
	assert.Nil(t, workout)

	_, err = svc.Get(ctx, testUser, date)
	assert.ErrorIs(t, err, domain.ErrWorkoutNotFound)
}

func TestReorderExercises(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newWorkoutService()
	date := benchDay()

	w := &domain.Workout{
		Type: "Chest",
		Exercises: []domain.Exercise{
			{Name: "A"}, {Name: "B"}, {Name: "C"},
		},
	}
	for i := range w.Exercises {
		w.Exercises[i].Sets = []domain.Set{{Weight: "10", Reps: 10}}
	}
	_, err := svc.Save(ctx, testUser, date, w)
	require.NoError(t, err)

	workout, err := svc.Reorder(ctx, testUser, date, 2, 0)
	require.NoError(t, err)
	var names []string
	for _, ex := range workout.Exercises {
		names = append(names, ex.Name)
	}
	assert.Equal(t, []string{"C", "A", "B"}, names)

	_, err = svc.Reorder(ctx, testUser, date, 0, 7)
	assert.ErrorIs(t, err, domain.ErrExerciseIndex)
}

func TestSyncPlan(t *testing.T) {
	ctx := context.Background()
	svc, _, planRepo := newWorkoutService()
	date := benchDay() // Monday

	plan := &domain.Plan{
		Type: "Chest",
		Exercises: []domain.Exercise{
			{Name: "Bench Press", Sets: []domain.Set{{Weight: "40", Reps: 15}}},
			{Name: "Core", Sets: []domain.Set{{Weight: "70", Reps: 20}}},
		},
	}
	require.NoError(t, planRepo.Save(ctx, testUser, "monday", plan))

	w := &domain.Workout{
		Type: "Chest",
		Exercises: []domain.Exercise{
			{Name: "Bench Press", Sets: []domain.Set{{Weight: "45", Reps: 12}}},
			{Name: "Pull-ups", Sets: []domain.Set{{Weight: "71", Reps: 6}}},
		},
	}
	_, err := svc.Save(ctx, testUser, date, w)
	require.NoError(t, err)

	synced, err := svc.SyncPlan(ctx, testUser, date)
	require.NoError(t, err)

	// Plan exercise list is rebuilt from the workout: matched names keep
	// their plan slot but take the workout's sets, unmatched workout
	// exercises carry over, plan-only exercises drop.
	require.Len(t, synced.Exercises, 2)
	assert.Equal(t, "Bench Press", synced.Exercises[0].Name)
	assert.Equal(t, "45", synced.Exercises[0].Sets[0].Weight)
	assert.Equal(t, "Pull-ups", synced.Exercises[1].Name)

	stored, err := planRepo.Get(ctx, testUser, "monday")
	require.NoError(t, err)
	assert.Equal(t, synced.Exercises, stored.Exercises)
}

func TestMutateMissingWorkout(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newWorkoutService()

	_, err := svc.UpdateReps(ctx, testUser, benchDay(), 0, 0, 10)
	assert.True(t, errors.Is(err, domain.ErrWorkoutNotFound))
}
