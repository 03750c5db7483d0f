package repository

import "context"

// ProfileRepository mirrors the device profile; rows are keyed by the device id.
type ProfileRepository interface {
	Get(ctx context.Context, id string) (*ProfileRecord, error)
	Upsert(ctx context.Context, profile ProfileRecord) error
}
