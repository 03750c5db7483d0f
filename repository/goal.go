package repository

import "context"

type GoalRepository interface {
	List(ctx context.Context, userID string) ([]GoalRecord, error)
	Upsert(ctx context.Context, goal GoalRecord) error
	Delete(ctx context.Context, userID, id string) error
}
