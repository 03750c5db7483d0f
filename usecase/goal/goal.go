package goal

import (
	"context"

	"go.uber.org/zap"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/internal/services"
	"github.com/fastygo/quantix/usecase"
)

type Store interface {
	usecase.Applier
	Goals() []domain.Goal
}

type Input struct {
	Title    string
	Target   int
	XPReward int
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

func (uc *UseCase) List(_ context.Context) []domain.Goal {
	return uc.store.Goals()
}

func (uc *UseCase) Create(ctx context.Context, in Input) (services.Outcome, error) {
	title, err := usecase.Title(in.Title)
	if err != nil {
		return services.Outcome{}, err
	}
	if in.Target <= 0 {
		return services.Outcome{}, domain.ErrInvalidGoalTarget
	}
	if in.XPReward < 0 {
		return services.Outcome{}, domain.NewError(domain.ErrCodeInvalid, "xp reward must not be negative")
	}

	return usecase.Apply(ctx, uc.store, uc.logger, "goal.create", services.CreateGoal{
		Title:    title,
		Target:   in.Target,
		XPReward: in.XPReward,
	})
}

// UpdateProgress returns the outcome so callers can surface the milestone reward.
func (uc *UseCase) UpdateProgress(ctx context.Context, id string, progress int) (services.Outcome, error) {
	id, err := usecase.ID(id)
	if err != nil {
		return services.Outcome{}, err
	}
	if progress < 0 {
		return services.Outcome{}, domain.NewError(domain.ErrCodeInvalid, "progress must not be negative")
	}
	out, err := usecase.Apply(ctx, uc.store, uc.logger, "goal.progress", services.UpdateGoalProgress{ID: id, Progress: progress})
	if err != nil {
		return out, err
	}
	if out.GoalCompleted {
		uc.logger.Info("goal completed", zap.String("goal_id", out.Goal.ID), zap.Int("xp_reward", out.Goal.XPReward))
	}
	return out, nil
}

func (uc *UseCase) Delete(ctx context.Context, id string) (services.Outcome, error) {
	id, err := usecase.ID(id)
	if err != nil {
		return services.Outcome{}, err
	}
	return usecase.Apply(ctx, uc.store, uc.logger, "goal.delete", services.DeleteGoal{ID: id})
}
