package profile

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/internal/services"
	"github.com/fastygo/quantix/usecase"
)

const (
	MinZoom = 0.5
	MaxZoom = 2.0
)

type Store interface {
	usecase.Applier
	Profile() domain.UserProfile
}

// Patch edits the user-facing profile fields. Nil fields are left unchanged.
type Patch struct {
	Name      *string
	AvatarRef *string
	Zoom      *float64
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

func (uc *UseCase) GetProfile(_ context.Context) domain.UserProfile {
	return uc.store.Profile()
}

func (uc *UseCase) UpdateProfile(ctx context.Context, patch Patch) (services.Outcome, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" || utf8.RuneCountInString(name) > usecase.MaxNameLength {
			return services.Outcome{}, domain.NewError(domain.ErrCodeInvalid, "name must be 1-64 characters")
		}
		patch.Name = &name
	}
	if patch.Zoom != nil && (*patch.Zoom < MinZoom || *patch.Zoom > MaxZoom) {
		return services.Outcome{}, domain.NewError(domain.ErrCodeInvalid, "zoom out of range")
	}

	return usecase.Apply(ctx, uc.store, uc.logger, "profile.update", services.UpdateProfile{
		Name:      patch.Name,
		AvatarRef: patch.AvatarRef,
		Zoom:      patch.Zoom,
	})
}

func (uc *UseCase) ResetLevel(ctx context.Context) (services.Outcome, error) {
	return usecase.Apply(ctx, uc.store, uc.logger, "profile.reset_level", services.ResetLevel{})
}
