package service

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/liftcal/liftcal/internal/domain"
)

// progressCacheTTL bounds staleness of the cached progress analysis. The
// analysis only changes on workout mutations, which invalidate it anyway.
const progressCacheTTL = time.Hour

// ProgressService derives analysis views from the stored workout history:
// per-exercise progress between first and latest appearance, the set of
// exercise names, and per-exercise rep series for charting.
type ProgressService struct {
	workoutRepo domain.WorkoutRepository
	cache       domain.CacheRepository
}

// NewProgressService creates a new progress service. cache may be nil.
func NewProgressService(workoutRepo domain.WorkoutRepository, cache domain.CacheRepository) *ProgressService {
	return &ProgressService{
		workoutRepo: workoutRepo,
		cache:       cache,
	}
}

// occurrence is one appearance of an exercise in the history: the
// workout's timestamp, the first set's parsed weight, and the best reps.
type occurrence struct {
	timestamp int64
	weight    float64
	maxReps   int
}

// Analyze compares each exercise's earliest and latest appearance across
// the whole history. Exercises seen fewer than twice are excluded. Results
// are sorted by weight change, biggest gains first.
func (s *ProgressService) Analyze(ctx context.Context, userID string) ([]domain.ProgressEntry, error) {
	if s.cache != nil {
		cached, err := s.cache.GetProgress(ctx, userID)
		if err != nil {
			log.Printf("Warning: progress cache read failed for user %s: %v", userID, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	workouts, err := s.workoutRepo.GetAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries := analyzeHistory(workouts)

	if s.cache != nil {
		if err := s.cache.SetProgress(ctx, userID, entries, progressCacheTTL); err != nil {
			log.Printf("Warning: progress cache write failed for user %s: %v", userID, err)
		}
	}
	return entries, nil
}

// analyzeHistory is the pure core of Analyze. Each appearance of an
// exercise counts separately, so two workouts listing the same name twice
// yield four occurrences.
func analyzeHistory(workouts []*domain.Workout) []domain.ProgressEntry {
	occurrences := make(map[string][]occurrence)
	var order []string

	for _, w := range workouts {
		for _, ex := range w.Exercises {
			if _, seen := occurrences[ex.Name]; !seen {
				order = append(order, ex.Name)
			}
			occ := occurrence{timestamp: w.Timestamp, maxReps: ex.MaxReps()}
			if len(ex.Sets) > 0 {
				occ.weight = ex.Sets[0].WeightValue()
			}
			occurrences[ex.Name] = append(occurrences[ex.Name], occ)
		}
	}

	entries := make([]domain.ProgressEntry, 0, len(order))
	for _, name := range order {
		occs := occurrences[name]
		if len(occs) < 2 {
			continue
		}
		sort.SliceStable(occs, func(i, j int) bool {
			return occs[i].timestamp < occs[j].timestamp
		})
		first, last := occs[0], occs[len(occs)-1]

		entry := domain.ProgressEntry{
			Exercise:     name,
			WeightChange: last.weight - first.weight,
			RepsChange:   last.maxReps - first.maxReps,
		}
		switch {
		case entry.WeightChange > 0:
			entry.Status = domain.StatusGain
		case entry.WeightChange < 0:
			entry.Status = domain.StatusLoss
		case entry.RepsChange > 0:
			entry.Status = domain.StatusGain
		case entry.RepsChange < 0:
			entry.Status = domain.StatusLoss
		default:
			entry.Status = domain.StatusNeutral
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].WeightChange > entries[j].WeightChange
	})
	return entries
}

// ExerciseNames returns the sorted set of distinct exercise names across
// the user's whole history.
func (s *ProgressService) ExerciseNames(ctx context.Context, userID string) ([]string, error) {
	workouts, err := s.workoutRepo.GetAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	names := []string{}
	for _, w := range workouts {
		for _, ex := range w.Exercises {
			if !seen[ex.Name] {
				seen[ex.Name] = true
				names = append(names, ex.Name)
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

// RepSeries returns one chart point per workout containing the named
// exercise, oldest first. Only the first three sets are charted.
func (s *ProgressService) RepSeries(ctx context.Context, userID, exercise string) ([]domain.RepPoint, error) {
	workouts, err := s.workoutRepo.GetAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	points := []domain.RepPoint{}
	for _, w := range workouts {
		for _, ex := range w.Exercises {
			if ex.Name != exercise {
				continue
			}
			point := domain.RepPoint{Timestamp: w.Timestamp}
			if len(ex.Sets) > 0 {
				point.Set1 = ex.Sets[0].Reps
			}
			if len(ex.Sets) > 1 {
				point.Set2 = ex.Sets[1].Reps
			}
			if len(ex.Sets) > 2 {
				point.Set3 = ex.Sets[2].Reps
			}
			points = append(points, point)
			break
		}
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Timestamp < points[j].Timestamp
	})
	return points, nil
}
