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

// workoutDoc wraps a workout with its owning user for the flat mongo
// collection; the (user_id, date) pair is the document key.
type workoutDoc struct {
	UserID         string `bson:"user_id"`
	domain.Workout `bson:",inline"`
}

// MongoWorkoutRepository implements domain.WorkoutRepository on a MongoDB
// collection, for self-hosted deployments.
type MongoWorkoutRepository struct {
	collection *mongo.Collection
}

func NewMongoWorkoutRepository(db *mongo.Database) *MongoWorkoutRepository {
	return &MongoWorkoutRepository{
		collection: db.Collection("workouts"),
	}
}

func (r *MongoWorkoutRepository) Get(ctx context.Context, userID string, date time.Time) (*domain.Workout, error) {
	filter := bson.M{"user_id": userID, "date": domain.DateKey(date)}

	var doc workoutDoc
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("failed to fetch workout: %w", err)
	}
	return &doc.Workout, nil
}

func (r *MongoWorkoutRepository) GetAll(ctx context.Context, userID string) ([]*domain.Workout, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	defer cursor.Close(ctx)

	var workouts []*domain.Workout
	for cursor.Next(ctx) {
		var doc workoutDoc
		if err := cursor.Decode(&doc); err != nil {
			log.Printf("Warning: skipping malformed workout for user %s: %v", userID, err)
			continue
		}
		workouts = append(workouts, &doc.Workout)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	return workouts, nil
}

func (r *MongoWorkoutRepository) Save(ctx context.Context, userID string, date time.Time, workout *domain.Workout) error {
	workout.Date = domain.DateKey(date)
	workout.Timestamp = date.UnixMilli()

	filter := bson.M{"user_id": userID, "date": workout.Date}
	doc := workoutDoc{UserID: userID, Workout: *workout}

	// ReplaceOne with upsert keeps the full-overwrite, last-write-wins
	// semantic of the document store.
	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, filter, doc, opts); err != nil {
		return fmt.Errorf("failed to save workout: %w", err)
	}
	return nil
}

func (r *MongoWorkoutRepository) Delete(ctx context.Context, userID string, date time.Time) error {
	filter := bson.M{"user_id": userID, "date": domain.DateKey(date)}
	// DeleteOne on an absent key matches nothing and is not an error.
	if _, err := r.collection.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	return nil
}
