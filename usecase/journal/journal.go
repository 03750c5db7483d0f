package journal

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/internal/services"
	"github.com/fastygo/quantix/usecase"
)

// MaxImages bounds the image references stored with one entry.
const MaxImages = 12

type Store interface {
	usecase.Applier
	Journal() []domain.JournalEntry
}

type Input struct {
	Title   string
	Content string
	Images  []string
	Mood    domain.Mood
}

// Patch edits an entry. Nil fields are left unchanged.
type Patch struct {
	Title   *string
	Content *string
	Images  []string
	Mood    *domain.Mood
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

func (uc *UseCase) List(_ context.Context) []domain.JournalEntry {
	return uc.store.Journal()
}

func (uc *UseCase) Create(ctx context.Context, in Input) (services.Outcome, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" && strings.TrimSpace(in.Content) == "" {
		return services.Outcome{}, domain.ErrEmptyTitle
	}
	if in.Mood == "" {
		in.Mood = domain.MoodNeutral
	}
	if !in.Mood.IsValid() {
		return services.Outcome{}, domain.ErrInvalidMood
	}
	if err := checkBody(in.Title, in.Content, in.Images); err != nil {
		return services.Outcome{}, err
	}

	return usecase.Apply(ctx, uc.store, uc.logger, "journal.create", services.CreateJournal{
		Title:   in.Title,
		Content: in.Content,
		Images:  in.Images,
		Mood:    in.Mood,
	})
}

func (uc *UseCase) Update(ctx context.Context, id string, patch Patch) (services.Outcome, error) {
	id, err := usecase.ID(id)
	if err != nil {
		return services.Outcome{}, err
	}
	if patch.Mood != nil && !patch.Mood.IsValid() {
		return services.Outcome{}, domain.ErrInvalidMood
	}
	var title, content string
	if patch.Title != nil {
		title = *patch.Title
	}
	if patch.Content != nil {
		content = *patch.Content
	}
	if err := checkBody(title, content, patch.Images); err != nil {
		return services.Outcome{}, err
	}

	return usecase.Apply(ctx, uc.store, uc.logger, "journal.update", services.UpdateJournal{
		ID:      id,
		Title:   patch.Title,
		Content: patch.Content,
		Images:  patch.Images,
		Mood:    patch.Mood,
	})
}

func (uc *UseCase) Delete(ctx context.Context, id string) (services.Outcome, error) {
	id, err := usecase.ID(id)
	if err != nil {
		return services.Outcome{}, err
	}
	return usecase.Apply(ctx, uc.store, uc.logger, "journal.delete", services.DeleteJournal{ID: id})
}

func checkBody(title, content string, images []string) error {
	if utf8.RuneCountInString(title) > usecase.MaxTitleLength {
		return domain.NewError(domain.ErrCodeInvalid, "title too long")
	}
	if utf8.RuneCountInString(content) > usecase.MaxContentLength {
		return domain.NewError(domain.ErrCodeInvalid, "content too long")
	}
	if len(images) > MaxImages {
		return domain.NewError(domain.ErrCodeInvalid, "too many images")
	}
	return nil
}
