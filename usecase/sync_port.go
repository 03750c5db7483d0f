package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/fastygo/quantix/internal/services"
	appLogger "github.com/fastygo/quantix/pkg/logger"
)

// Applier is the write side of the state synchronizer, so use cases stay
// storage-agnostic.
type Applier interface {
	Apply(ctx context.Context, m services.Mutation) (services.Outcome, error)
}

// Apply runs m and logs what the caller cannot see in the returned outcome.
func Apply(ctx context.Context, sync Applier, logger *zap.Logger, op string, m services.Mutation) (services.Outcome, error) {
	out, err := sync.Apply(ctx, m)
	if err != nil {
		return out, err
	}
	log := appLogger.WithContext(ctx, logger)
	if !out.Durable {
		log.Warn("mutation kept in memory only", zap.String("operation", op))
	}
	if out.LeveledUp {
		log.Info("level up",
			zap.String("operation", op),
			zap.Int("level", out.Profile.Level),
			zap.String("rank", out.Profile.RankTitle))
	}
	return out, nil
}
