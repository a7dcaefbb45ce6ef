package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/liftcal/liftcal/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type planDoc struct {
	UserID      string `bson:"user_id"`
	domain.Plan `bson:",inline"`
}

// MongoPlanRepository implements domain.PlanRepository on a MongoDB
// collection keyed by (user_id, day).
type MongoPlanRepository struct {
	collection *mongo.Collection
}

func NewMongoPlanRepository(db *mongo.Database) *MongoPlanRepository {
	return &MongoPlanRepository{
		collection: db.Collection("plans"),
	}
}

func (r *MongoPlanRepository) Get(ctx context.Context, userID, day string) (*domain.Plan, error) {
	day, err := domain.NormalizeDayKey(day)
	if err != nil {
		return nil, err
	}

	var doc planDoc
	err = r.collection.FindOne(ctx, bson.M{"user_id": userID, "day": day}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to fetch plan: %w", err)
	}
	return &doc.Plan, nil
}

func (r *MongoPlanRepository) GetAll(ctx context.Context, userID string) (map[string]*domain.Plan, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer cursor.Close(ctx)

	plans := make(map[string]*domain.Plan)
	for cursor.Next(ctx) {
		var doc planDoc
		if err := cursor.Decode(&doc); err != nil {
			log.Printf("Warning: skipping malformed plan for user %s: %v", userID, err)
			continue
		}
		plan := doc.Plan
		plans[plan.Day] = &plan
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}

func (r *MongoPlanRepository) Save(ctx context.Context, userID, day string, plan *domain.Plan) error {
	day, err := domain.NormalizeDayKey(day)
	if err != nil {
		return err
	}

	plan.Day = day
	plan.LastUpdated = time.Now().UnixMilli()

	filter := bson.M{"user_id": userID, "day": day}
	doc := planDoc{UserID: userID, Plan: *plan}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, filter, doc, opts); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	return nil
}

func (r *MongoPlanRepository) Delete(ctx context.Context, userID, day string) error {
	day, err := domain.NormalizeDayKey(day)
	if err != nil {
		return err
	}
	if _, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID, "day": day}); err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	return nil
}
