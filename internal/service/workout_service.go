package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/liftcal/liftcal/internal/domain"
)

// historyCacheTTL bounds how stale a cached workout history may get before
// a read falls through to the store again.
const historyCacheTTL = 10 * time.Minute

// WorkoutService implements the daily-workout use cases on top of the
// repositories. Every mutation follows the same shape: read the whole
// document, modify it, overwrite it, then apply the empty-workout
// post-condition (a workout with no exercises left is deleted and reported
// absent).
type WorkoutService struct {
	workoutRepo domain.WorkoutRepository
	planRepo    domain.PlanRepository
	cache       domain.CacheRepository
}

// NewWorkoutService creates a new workout service. cache may be nil, in
// which case history reads always hit the store.
func NewWorkoutService(workoutRepo domain.WorkoutRepository, planRepo domain.PlanRepository, cache domain.CacheRepository) *WorkoutService {
	return &WorkoutService{
		workoutRepo: workoutRepo,
		planRepo:    planRepo,
		cache:       cache,
	}
}

// Get returns the workout stored for a date. A stored workout whose
// exercise list has emptied out is pruned on the way through and reported
// as not found.
func (s *WorkoutService) Get(ctx context.Context, userID string, date time.Time) (*domain.Workout, error) {
	workout, err := s.workoutRepo.Get(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if workout.Empty() {
		s.prune(ctx, userID, date)
		return nil, domain.ErrWorkoutNotFound
	}
	return workout, nil
}

// History returns every stored workout for the user, newest first, served
// from the cache when a fresh copy exists.
func (s *WorkoutService) History(ctx context.Context, userID string) ([]*domain.Workout, error) {
	if s.cache != nil {
		cached, err := s.cache.GetHistory(ctx, userID)
		if err != nil {
			log.Printf("Warning: history cache read failed for user %s: %v", userID, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	workouts, err := s.workoutRepo.GetAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetHistory(ctx, userID, workouts, historyCacheTTL); err != nil {
			log.Printf("Warning: history cache write failed for user %s: %v", userID, err)
		}
	}
	return workouts, nil
}

// Save overwrites the workout stored for a date. Saving a workout with no
// exercises deletes the document instead; the returned workout is nil when
// the post-condition removed it.
func (s *WorkoutService) Save(ctx context.Context, userID string, date time.Time, workout *domain.Workout) (*domain.Workout, error) {
	if workout.Empty() {
		s.prune(ctx, userID, date)
		return nil, nil
	}

	if err := s.workoutRepo.Save(ctx, userID, date, workout); err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID)
	return workout, nil
}

// Delete removes the workout stored for a date. Deleting an absent workout
// is a no-op.
func (s *WorkoutService) Delete(ctx context.Context, userID string, date time.Time) error {
	if err := s.workoutRepo.Delete(ctx, userID, date); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

// ApplyTemplate seeds a date's workout from the weekly plan assigned to
// that date's weekday, overwriting whatever was stored before.
func (s *WorkoutService) ApplyTemplate(ctx context.Context, userID string, date time.Time) (*domain.Workout, error) {
	plan, err := s.planRepo.Get(ctx, userID, domain.DayKey(date))
	if err != nil {
		return nil, err
	}

	workout := &domain.Workout{
		Type:      plan.Type,
		Exercises: plan.Exercises,
	}
	return s.Save(ctx, userID, date, workout)
}

// UpdateReps sets the rep count of one set of one exercise.
func (s *WorkoutService) UpdateReps(ctx context.Context, userID string, date time.Time, exerciseIdx, setIdx, reps int) (*domain.Workout, error) {
	return s.mutate(ctx, userID, date, func(w *domain.Workout) error {
		if exerciseIdx < 0 || exerciseIdx >= len(w.Exercises) {
			return domain.ErrExerciseIndex
		}
		sets := w.Exercises[exerciseIdx].Sets
		if setIdx < 0 || setIdx >= len(sets) {
			return domain.ErrSetIndex
		}
		sets[setIdx].Reps = reps
		return nil
	})
}

// UpdateWeight replaces a weight within one exercise. Every set whose
// weight matches oldWeight exactly (raw string comparison) takes the new
// value; sets with other weights are untouched.
func (s *WorkoutService) UpdateWeight(ctx context.Context, userID string, date time.Time, exerciseIdx int, oldWeight, newWeight string) (*domain.Workout, error) {
	return s.mutate(ctx, userID, date, func(w *domain.Workout) error {
		if exerciseIdx < 0 || exerciseIdx >= len(w.Exercises) {
			return domain.ErrExerciseIndex
		}
		sets := w.Exercises[exerciseIdx].Sets
		for i := range sets {
			if sets[i].Weight == oldWeight {
				sets[i].Weight = newWeight
			}
		}
		return nil
	})
}

// RenameExercise changes an exercise's display name.
func (s *WorkoutService) RenameExercise(ctx context.Context, userID string, date time.Time, exerciseIdx int, name string) (*domain.Workout, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrEmptyName
	}
	return s.mutate(ctx, userID, date, func(w *domain.Workout) error {
		if exerciseIdx < 0 || exerciseIdx >= len(w.Exercises) {
			return domain.ErrExerciseIndex
		}
		w.Exercises[exerciseIdx].Name = name
		return nil
	})
}

// RemoveExercise drops one exercise from the workout. Removing the last
// exercise deletes the workout via the empty post-condition.
func (s *WorkoutService) RemoveExercise(ctx context.Context, userID string, date time.Time, exerciseIdx int) (*domain.Workout, error) {
	return s.mutate(ctx, userID, date, func(w *domain.Workout) error {
		if exerciseIdx < 0 || exerciseIdx >= len(w.Exercises) {
			return domain.ErrExerciseIndex
		}
		w.Exercises = append(w.Exercises[:exerciseIdx], w.Exercises[exerciseIdx+1:]...)
		return nil
	})
}

// Reorder moves an exercise from one position to another, shifting the
// exercises in between.
func (s *WorkoutService) Reorder(ctx context.Context, userID string, date time.Time, from, to int) (*domain.Workout, error) {
	return s.mutate(ctx, userID, date, func(w *domain.Workout) error {
		if from < 0 || from >= len(w.Exercises) || to < 0 || to >= len(w.Exercises) {
			return domain.ErrExerciseIndex
		}
		moved := w.Exercises[from]
		rest := append(w.Exercises[:from], w.Exercises[from+1:]...)
		w.Exercises = append(rest[:to], append([]domain.Exercise{moved}, rest[to:]...)...)
		return nil
	})
}

// SyncPlan pushes a logged workout's sets back into the weekly plan for
// that date's weekday. The plan's exercise list is rebuilt from the
// workout's: exercises that exist in the plan under the same name keep
// their plan identity but take the workout's sets, the rest are carried
// over as-is.
func (s *WorkoutService) SyncPlan(ctx context.Context, userID string, date time.Time) (*domain.Plan, error) {
	workout, err := s.Get(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	day := domain.DayKey(date)
	plan, err := s.planRepo.Get(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]domain.Exercise, len(plan.Exercises))
	for _, ex := range plan.Exercises {
		byName[ex.Name] = ex
	}

	exercises := make([]domain.Exercise, 0, len(workout.Exercises))
	for _, we := range workout.Exercises {
		ex := we
		if pe, ok := byName[we.Name]; ok {
			ex = pe
		}
		ex.Sets = append([]domain.Set(nil), we.Sets...)
		exercises = append(exercises, ex)
	}
	plan.Exercises = exercises

	if err := s.planRepo.Save(ctx, userID, day, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// mutate runs the read-modify-overwrite cycle shared by all in-place
// workout edits.
func (s *WorkoutService) mutate(ctx context.Context, userID string, date time.Time, fn func(*domain.Workout) error) (*domain.Workout, error) {
	workout, err := s.workoutRepo.Get(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if err := fn(workout); err != nil {
		return nil, err
	}
	return s.Save(ctx, userID, date, workout)
}

// prune deletes an emptied-out workout document. Failures are logged, not
// surfaced: the caller already treats the workout as absent.
func (s *WorkoutService) prune(ctx context.Context, userID string, date time.Time) {
	if err := s.workoutRepo.Delete(ctx, userID, date); err != nil {
		log.Printf("Warning: failed to prune empty workout %s for user %s: %v", domain.DateKey(date), userID, err)
	}
	s.invalidate(ctx, userID)
}

func (s *WorkoutService) invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateUserViews(ctx, userID); err != nil {
		log.Printf("Warning: cache invalidation failed for user %s: %v", userID, err)
	}
}
