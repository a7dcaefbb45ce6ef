package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/liftcal/liftcal/internal/domain"
)

// InMemoryWorkoutRepository implements domain.WorkoutRepository on a map.
// It backs the "memory" store backend and the service/handler tests.
type InMemoryWorkoutRepository struct {
	mu sync.Mutex
	// userID -> date key -> workout
	workouts map[string]map[string]domain.Workout
}

func NewInMemoryWorkoutRepository() *InMemoryWorkoutRepository {
	return &InMemoryWorkoutRepository{
		workouts: make(map[string]map[string]domain.Workout),
	}
}

func cloneWorkout(w domain.Workout) *domain.Workout {
	out := w
	out.Exercises = cloneExercises(w.Exercises)
	return &out
}

func cloneExercises(exercises []domain.Exercise) []domain.Exercise {
	if exercises == nil {
		return nil
	}
	out := make([]domain.Exercise, len(exercises))
	for i, ex := range exercises {
		out[i] = ex
		out[i].Sets = append([]domain.Set(nil), ex.Sets...)
	}
	return out
}

func (r *InMemoryWorkoutRepository) Get(ctx context.Context, userID string, date time.Time) (*domain.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.workouts[userID][domain.DateKey(date)]
	if !ok {
		return nil, domain.ErrWorkoutNotFound
	}
	return cloneWorkout(w), nil
}

func (r *InMemoryWorkoutRepository) GetAll(ctx context.Context, userID string) ([]*domain.Workout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var workouts []*domain.Workout
	for _, w := range r.workouts[userID] {
		workouts = append(workouts, cloneWorkout(w))
	}
	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].Timestamp > workouts[j].Timestamp
	})
	return workouts, nil
}

func (r *InMemoryWorkoutRepository) Save(ctx context.Context, userID string, date time.Time, workout *domain.Workout) error {
	workout.Date = domain.DateKey(date)
	workout.Timestamp = date.UnixMilli()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.workouts[userID] == nil {
		r.workouts[userID] = make(map[string]domain.Workout)
	}
	r.workouts[userID][workout.Date] = *cloneWorkout(*workout)
	return nil
}

func (r *InMemoryWorkoutRepository) Delete(ctx context.Context, userID string, date time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.workouts[userID], domain.DateKey(date))
	return nil
}

// InMemoryPlanRepository implements domain.PlanRepository on a map.
type InMemoryPlanRepository struct {
	mu sync.Mutex
	// userID -> weekday key -> plan
	plans map[string]map[string]domain.Plan
}

func NewInMemoryPlanRepository() *InMemoryPlanRepository {
	return &InMemoryPlanRepository{
		plans: make(map[string]map[string]domain.Plan),
	}
}

func clonePlan(p domain.Plan) *domain.Plan {
	out := p
	out.Exercises = cloneExercises(p.Exercises)
	return &out
}

func (r *InMemoryPlanRepository) Get(ctx context.Context, userID, day string) (*domain.Plan, error) {
	day, err := domain.NormalizeDayKey(day)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.plans[userID][day]
	if !ok {
		return nil, domain.ErrPlanNotFound
	}
	return clonePlan(p), nil
}

func (r *InMemoryPlanRepository) GetAll(ctx context.Context, userID string) (map[string]*domain.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	plans := make(map[string]*domain.Plan)
	for day, p := range r.plans[userID] {
		plans[day] = clonePlan(p)
	}
	return plans, nil
}

func (r *InMemoryPlanRepository) Save(ctx context.Context, userID, day string, plan *domain.Plan) error {
	day, err := domain.NormalizeDayKey(day)
	if err != nil {
		return err
	}

	plan.Day = day
	plan.LastUpdated = time.Now().UnixMilli()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.plans[userID] == nil {
		r.plans[userID] = make(map[string]domain.Plan)
	}
	r.plans[userID][day] = *clonePlan(*plan)
	return nil
}

func (r *InMemoryPlanRepository) Delete(ctx context.Context, userID, day string) error {
	day, err := domain.NormalizeDayKey(day)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.plans[userID], day)
	return nil
}
