package settings

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/internal/clock"
	"github.com/fastygo/quantix/internal/services"
	"github.com/fastygo/quantix/usecase"
)

type Store interface {
	usecase.Applier
	Settings() domain.AppSettings
}

// Patch edits device preferences. Nil fields are left unchanged.
type Patch struct {
	AppName     *string
	AppSubtitle *string
	Timezone    *string
	Theme       *domain.Theme
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

func (uc *UseCase) Get(_ context.Context) domain.AppSettings {
	return uc.store.Settings()
}

func (uc *UseCase) Update(ctx context.Context, patch Patch) (services.Outcome, error) {
	for _, field := range []*string{patch.AppName, patch.AppSubtitle} {
		if field == nil {
			continue
		}
		*field = strings.TrimSpace(*field)
		if utf8.RuneCountInString(*field) > usecase.MaxNameLength {
			return services.Outcome{}, domain.NewError(domain.ErrCodeInvalid, "name too long")
		}
	}
	if patch.AppName != nil && *patch.AppName == "" {
		return services.Outcome{}, domain.ErrEmptyTitle
	}
	if patch.Timezone != nil {
		tz := strings.TrimSpace(*patch.Timezone)
		if _, err := clock.LoadLocation(tz); err != nil || tz == "" {
			return services.Outcome{}, domain.ErrInvalidTimezone
		}
		patch.Timezone = &tz
	}
	if patch.Theme != nil && !patch.Theme.IsValid() {
		return services.Outcome{}, domain.ErrInvalidTheme
	}

	return usecase.Apply(ctx, uc.store, uc.logger, "settings.update", services.UpdateSettings{
		AppName:     patch.AppName,
		AppSubtitle: patch.AppSubtitle,
		Timezone:    patch.Timezone,
		Theme:       patch.Theme,
	})
}
