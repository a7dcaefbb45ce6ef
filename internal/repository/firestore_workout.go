package repository

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/liftcal/liftcal/internal/domain"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection    = "users"
	workoutsCollection = "workouts"
	plansCollection    = "plans"
)

// FirestoreWorkoutRepository implements domain.WorkoutRepository over
// users/{userId}/workouts/{yyyy-MM-dd} documents.
type FirestoreWorkoutRepository struct {
	client *firestore.Client
}

func NewFirestoreWorkoutRepository(client *firestore.Client) *FirestoreWorkoutRepository {
	return &FirestoreWorkoutRepository{client: client}
}

func (r *FirestoreWorkoutRepository) doc(userID string, date time.Time) *firestore.DocumentRef {
	return r.client.Collection(usersCollection).Doc(userID).
		Collection(workoutsCollection).Doc(domain.DateKey(date))
}

func (r *FirestoreWorkoutRepository) Get(ctx context.Context, userID string, date time.Time) (*domain.Workout, error) {
	snap, err := r.doc(userID, date).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("failed to fetch workout: %w", err)
	}

	var workout domain.Workout
	if err := snap.DataTo(&workout); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	return &workout, nil
}

func (r *FirestoreWorkoutRepository) GetAll(ctx context.Context, userID string) ([]*domain.Workout, error) {
	iter := r.client.Collection(usersCollection).Doc(userID).
		Collection(workoutsCollection).Documents(ctx)
	defer iter.Stop()

	var workouts []*domain.Workout
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list workouts: %w", err)
		}

		var workout domain.Workout
		if err := snap.DataTo(&workout); err != nil {
			// Schema drift is tolerated on collection scans: skip the
			// document rather than failing the whole history fetch.
			log.Printf("Warning: skipping malformed workout %s/%s: %v", userID, snap.Ref.ID, err)
			continue
		}
		workouts = append(workouts, &workout)
	}

	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].Timestamp > workouts[j].Timestamp
	})
	return workouts, nil
}

func (r *FirestoreWorkoutRepository) Save(ctx context.Context, userID string, date time.Time, workout *domain.Workout) error {
	workout.Date = domain.DateKey(date)
	workout.Timestamp = date.UnixMilli()

	// Set replaces the whole document: concurrent saves are last-write-wins.
	if _, err := r.doc(userID, date).Set(ctx, workout); err != nil {
		return fmt.Errorf("failed to save workout: %w", err)
	}
	return nil
}

func (r *FirestoreWorkoutRepository) Delete(ctx context.Context, userID string, date time.Time) error {
	// Firestore deletes are idempotent: removing an absent document succeeds.
	if _, err := r.doc(userID, date).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	return nil
}
