package domain

import "context"

// Plan is a weekly workout template assigned to one weekday. Day duplicates
// the storage key; LastUpdated is stamped (epoch milliseconds) on every
// save. A plan with no exercises is a valid rest day and is never
// auto-deleted.
type Plan struct {
	Type        string     `json:"type" bson:"type" firestore:"type"`
	Exercises   []Exercise `json:"exercises" bson:"exercises" firestore:"exercises"`
	Day         string     `json:"day" bson:"day" firestore:"day"`
	LastUpdated int64      `json:"lastUpdated" bson:"last_updated" firestore:"lastUpdated"`
}

// PlanRepository is the per-user CRUD contract over weekly plan documents
// keyed by lowercase weekday name. GetAll returns a keyed mapping since
// there are exactly seven possible keys.
type PlanRepository interface {
	Get(ctx context.Context, userID, day string) (*Plan, error)
	GetAll(ctx context.Context, userID string) (map[string]*Plan, error)
	Save(ctx context.Context, userID, day string, plan *Plan) error
	Delete(ctx context.Context, userID, day string) error
}
