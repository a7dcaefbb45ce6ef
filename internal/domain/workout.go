package domain

import (
	"context"
	"time"
)

// Workout is the persisted record of the exercises performed on one
// calendar date. Date duplicates the storage key and Timestamp carries the
// calendar date as epoch milliseconds for sorting; both are stamped by the
// repository on every save.
type Workout struct {
	Type      string     `json:"type" bson:"type" firestore:"type"`
	Exercises []Exercise `json:"exercises" bson:"exercises" firestore:"exercises"`
	Date      string     `json:"date" bson:"date" firestore:"date"`
	Timestamp int64      `json:"timestamp" bson:"timestamp" firestore:"timestamp"`
}

// Empty reports whether the workout has no exercises left. An empty workout
// is logically deleted; the service layer prunes it after every read and
// mutating write.
func (w *Workout) Empty() bool {
	return w == nil || len(w.Exercises) == 0
}

// WorkoutRepository is the per-user CRUD contract over daily workout
// documents keyed by calendar date. Save is a full-document overwrite with
// last-write-wins semantics; Delete is idempotent.
type WorkoutRepository interface {
	Get(ctx context.Context, userID string, date time.Time) (*Workout, error)
	GetAll(ctx context.Context, userID string) ([]*Workout, error)
	Save(ctx context.Context, userID string, date time.Time, workout *Workout) error
	Delete(ctx context.Context, userID string, date time.Time) error
}
