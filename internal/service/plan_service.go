package service

import (
	"context"

	"github.com/liftcal/liftcal/internal/domain"
	"golang.org/x/sync/errgroup"
)

// PlanService implements the weekly-template use cases. Unlike workouts,
// plans have no empty post-condition: a plan with no exercises is a valid
// rest day.
type PlanService struct {
	planRepo domain.PlanRepository
}

// NewPlanService creates a new plan service
func NewPlanService(planRepo domain.PlanRepository) *PlanService {
	return &PlanService{planRepo: planRepo}
}

// Get returns the plan stored for a weekday.
func (s *PlanService) Get(ctx context.Context, userID, day string) (*domain.Plan, error) {
	return s.planRepo.Get(ctx, userID, day)
}

// GetAll returns every stored plan keyed by weekday.
func (s *PlanService) GetAll(ctx context.Context, userID string) (map[string]*domain.Plan, error) {
	return s.planRepo.GetAll(ctx, userID)
}

// Save overwrites the plan stored for a weekday.
func (s *PlanService) Save(ctx context.Context, userID, day string, plan *domain.Plan) (*domain.Plan, error) {
	if err := s.planRepo.Save(ctx, userID, day, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// Delete removes the plan stored for a weekday.
func (s *PlanService) Delete(ctx context.Context, userID, day string) error {
	return s.planRepo.Delete(ctx, userID, day)
}

// Bootstrap seeds the built-in default week for a user who has no plans
// yet. It reports whether seeding happened; a user with any existing plan
// is left untouched.
func (s *PlanService) Bootstrap(ctx context.Context, userID string) (bool, error) {
	existing, err := s.planRepo.GetAll(ctx, userID)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for day, plan := range domain.DefaultPlans() {
		day, plan := day, plan
		g.Go(func() error {
			return s.planRepo.Save(ctx, userID, day, plan)
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateReps sets the rep count of one set of one exercise in a plan.
func (s *PlanService) UpdateReps(ctx context.Context, userID, day string, exerciseIdx, setIdx, reps int) (*domain.Plan, error) {
	return s.mutate(ctx, userID, day, func(p *domain.Plan) error {
		if exerciseIdx < 0 || exerciseIdx >= len(p.Exercises) {
			return domain.ErrExerciseIndex
		}
		sets := p.Exercises[exerciseIdx].Sets
		if setIdx < 0 || setIdx >= len(sets) {
			return domain.ErrSetIndex
		}
		sets[setIdx].Reps = reps
		return nil
	})
}

// UpdateWeight replaces a weight within one plan exercise, matching sets
// by exact raw string comparison like the workout variant.
func (s *PlanService) UpdateWeight(ctx context.Context, userID, day string, exerciseIdx int, oldWeight, newWeight string) (*domain.Plan, error) {
	return s.mutate(ctx, userID, day, func(p *domain.Plan) error {
		if exerciseIdx < 0 || exerciseIdx >= len(p.Exercises) {
			return domain.ErrExerciseIndex
		}
		sets := p.Exercises[exerciseIdx].Sets
		for i := range sets {
			if sets[i].Weight == oldWeight {
				sets[i].Weight = newWeight
			}
		}
		return nil
	})
}

func (s *PlanService) mutate(ctx context.Context, userID, day string, fn func(*domain.Plan) error) (*domain.Plan, error) {
	plan, err := s.planRepo.Get(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	if err := fn(plan); err != nil {
		return nil, err
	}
	return s.Save(ctx, userID, day, plan)
}
