package task

import (
	"context"

	"go.uber.org/zap"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/internal/services"
	"github.com/fastygo/quantix/usecase"
)

// MaxDurationMinutes caps a single task at one day.
const MaxDurationMinutes = 24 * 60

// Store is the slice of the synchronizer task use cases need.
type Store interface {
	usecase.Applier
	Tasks(listID string) []domain.Task
	Lists() []domain.TaskList
	ListStats() map[string]domain.ListStats
}

type CreateInput struct {
	Title           string
	DurationMinutes int
	Priority        domain.Priority
	ListID          string
}

type ListInput struct {
	Name        string
	Description string
	Icon        string
}

type ListPatch struct {
	Name        *string
	Description *string
	Icon        *string
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

func (uc *UseCase) ListTasks(_ context.Context, listID string) []domain.Task {
	return uc.store.Tasks(listID)
}

func (uc *UseCase) CreateTask(ctx context.Context, in CreateInput) (services.Outcome, error) {
	title, err := usecase.Title(in.Title)
	if err != nil {
		return services.Outcome{}, err
	}
	if in.DurationMinutes < 0 || in.DurationMinutes > MaxDurationMinutes {
		return services.Outcome{}, domain.ErrInvalidDuration
	}
	if in.DurationMinutes == 0 {
		in.DurationMinutes = domain.DefaultDurationMinutes
	}
	if in.Priority == "" {
		in.Priority = domain.PriorityMedium
	}
	if !in.Priority.IsValid() {
		return services.Outcome{}, domain.ErrInvalidPriority
	}

	return usecase.Apply(ctx, uc.store, uc.logger, "task.create", services.CreateTask{
		Title:           title,
		DurationMinutes: in.DurationMinutes,
		Priority:        in.Priority,
		ListID:          in.ListID,
	})
}

// ToggleTask returns the outcome so callers can surface level ups.
func (uc *UseCase) ToggleTask(ctx context.Context, id string) (services.Outcome, error) {
	id, err := usecase.ID(id)
	if err != nil {
		return services.Outcome{}, err
	}
	return usecase.Apply(ctx, uc.store, uc.logger, "task.toggle", services.ToggleTask{ID: id})
}

func (uc *UseCase) DeleteTask(ctx context.Context, id string) (services.Outcome, error) {
	id, err := usecase.ID(id)
	if err != nil {
		return services.Outcome{}, err
	}
	return usecase.Apply(ctx, uc.store, uc.logger, "task.delete", services.DeleteTask{ID: id})
}

func (uc *UseCase) ListLists(_ context.Context) []domain.TaskList {
	return uc.store.Lists()
}

func (uc *UseCase) ListStats(_ context.Context) map[string]domain.ListStats {
	return uc.store.ListStats()
}

func (uc *UseCase) CreateList(ctx context.Context, in ListInput) (services.Outcome, error) {
	name, err := usecase.Title(in.Name)
	if err != nil {
		return services.Outcome{}, err
	}
	return usecase.Apply(ctx, uc.store, uc.logger, "list.create", services.CreateList{
		Name:        name,
		Description: in.Description,
		Icon:        in.Icon,
	})
}

func (uc *UseCase) UpdateList(ctx context.Context, id string, patch ListPatch) (services.Outcome, error) {
	id, err := usecase.ID(id)
	if err != nil {
		return services.Outcome{}, err
	}
	if patch.Name != nil {
		name, err := usecase.Title(*patch.Name)
		if err != nil {
			return services.Outcome{}, err
		}
		patch.Name = &name
	}
	return usecase.Apply(ctx, uc.store, uc.logger, "list.update", services.UpdateList{
		ID:          id,
		Name:        patch.Name,
		Description: patch.Description,
		Icon:        patch.Icon,
	})
}
