package focus

import (
	"context"

	"go.uber.org/zap"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/internal/services"
	"github.com/fastygo/quantix/usecase"
)

type Store interface {
	usecase.Applier
	Focus() services.FocusView
	Sessions() []domain.SessionRecord
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

func (uc *UseCase) Current(_ context.Context) services.FocusView {
	return uc.store.Focus()
}

func (uc *UseCase) History(_ context.Context) []domain.SessionRecord {
	return uc.store.Sessions()
}

func (uc *UseCase) Start(ctx context.Context) (services.Outcome, error) {
	return uc.transition(ctx, "focus.start", services.StartSession{})
}

func (uc *UseCase) Pause(ctx context.Context) (services.Outcome, error) {
	return uc.transition(ctx, "focus.pause", services.PauseSession{})
}

func (uc *UseCase) Resume(ctx context.Context) (services.Outcome, error) {
	return uc.transition(ctx, "focus.resume", services.ResumeSession{})
}

// Stop closes the session; the outcome carries its record.
func (uc *UseCase) Stop(ctx context.Context) (services.Outcome, error) {
	out, err := usecase.Apply(ctx, uc.store, uc.logger, "focus.stop", services.StopSession{})
	if err != nil {
		return out, err
	}
	if out.Session != nil {
		uc.logger.Info("focus session logged",
			zap.String("session_id", out.Session.ID),
			zap.Int("duration_seconds", out.Session.DurationSeconds))
	}
	return out, nil
}

func (uc *UseCase) transition(ctx context.Context, op string, m services.Mutation) (services.Outcome, error) {
	return usecase.Apply(ctx, uc.store, uc.logger, op, m)
}
