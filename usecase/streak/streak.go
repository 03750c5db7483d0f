package streak

import (
	"context"

	"go.uber.org/zap"

	"github.com/fastygo/quantix/internal/services"
	"github.com/fastygo/quantix/internal/streak"
	"github.com/fastygo/quantix/usecase"
)

type Store interface {
	usecase.Applier
	Streak() streak.State
}

type UseCase struct {
	store  Store
	logger *zap.Logger
}

func New(store Store, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		store:  store,
		logger: logger,
	}
}

func (uc *UseCase) Get(_ context.Context) streak.State {
	return uc.store.Streak()
}

// Reset starts the streak over from now without deleting history.
func (uc *UseCase) Reset(ctx context.Context) (services.Outcome, error) {
	return usecase.Apply(ctx, uc.store, uc.logger, "streak.reset", services.ResetStreak{})
}
