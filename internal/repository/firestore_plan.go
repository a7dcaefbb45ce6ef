package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/liftcal/liftcal/internal/domain"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestorePlanRepository implements domain.PlanRepository over
// users/{userId}/plans/{weekday} documents.
type FirestorePlanRepository struct {
	client *firestore.Client
}

func NewFirestorePlanRepository(client *firestore.Client) *FirestorePlanRepository {
	return &FirestorePlanRepository{client: client}
}

func (r *FirestorePlanRepository) doc(userID, day string) *firestore.DocumentRef {
	return r.client.Collection(usersCollection).Doc(userID).
		Collection(plansCollection).Doc(day)
}

func (r *FirestorePlanRepository) Get(ctx context.Context, userID, day string) (*domain.Plan, error) {
	day, err := domain.NormalizeDayKey(day)
	if err != nil {
		return nil, err
	}

	snap, err := r.doc(userID, day).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to fetch plan: %w", err)
	}

	var plan domain.Plan
	if err := snap.DataTo(&plan); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	return &plan, nil
}

func (r *FirestorePlanRepository) GetAll(ctx context.Context, userID string) (map[string]*domain.Plan, error) {
	iter := r.client.Collection(usersCollection).Doc(userID).
		Collection(plansCollection).Documents(ctx)
	defer iter.Stop()

	plans := make(map[string]*domain.Plan)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list plans: %w", err)
		}

		var plan domain.Plan
		if err := snap.DataTo(&plan); err != nil {
			log.Printf("Warning: skipping malformed plan %s/%s: %v", userID, snap.Ref.ID, err)
			continue
		}
		plans[snap.Ref.ID] = &plan
	}
	return plans, nil
}

func (r *FirestorePlanRepository) Save(ctx context.Context, userID, day string, plan *domain.Plan) error {
	day, err := domain.NormalizeDayKey(day)
	if err != nil {
		return err
	}

	plan.Day = day
	plan.LastUpdated = time.Now().UnixMilli()

	if _, err := r.doc(userID, day).Set(ctx, plan); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	return nil
}

func (r *FirestorePlanRepository) Delete(ctx context.Context, userID, day string) error {
	day, err := domain.NormalizeDayKey(day)
	if err != nil {
		return err
	}
	if _, err := r.doc(userID, day).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	return nil
}
