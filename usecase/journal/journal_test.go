package journal

import (
	"context"
	"errors"
	"testing"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/internal/services"
)

type fakeStore struct {
	applied []services.Mutation
}

func (f *fakeStore) Apply(_ context.Context, m services.Mutation) (services.Outcome, error) {
	f.applied = append(f.applied, m)
	return services.Outcome{Journal: &domain.JournalEntry{ID: "j-1"}, Durable: true}, nil
}

func (f *fakeStore) Journal() []domain.JournalEntry { return nil }

func TestCreateRequiresTitleOrContent(t *testing.T) {
	store := &fakeStore{}
	uc := New(store, nil)

	if _, err := uc.Create(context.Background(), Input{Title: " ", Content: "\n"}); !errors.Is(err, domain.ErrEmptyTitle) {
		t.Fatalf("err = %v", err)
	}
	if _, err := uc.Create(context.Background(), Input{Content: "Only content"}); err != nil {
		t.Fatalf("content-only entry rejected: %v", err)
	}
	m := store.applied[0].(services.CreateJournal)
	if m.Mood != domain.MoodNeutral {
		t.Fatalf("default mood = %q", m.Mood)
	}
}

func TestCreateRejectsUnknownMood(t *testing.T) {
	store := &fakeStore{}
	if _, err := New(store, nil).Create(context.Background(), Input{Title: "x", Mood: "angry"}); !errors.Is(err, domain.ErrInvalidMood) {
		t.Fatalf("err = %v", err)
	}
	if len(store.applied) != 0 {
		t.Fatal("invalid mood reached the synchronizer")
	}
}

func TestUpdateRejectsTooManyImages(t *testing.T) {
	store := &fakeStore{}
	images := make([]string, MaxImages+1)
	if _, err := New(store, nil).Update(context.Background(), "j-1", Patch{Images: images}); err == nil {
		t.Fatal("expected error")
	}
	if _, err := New(store, nil).Delete(context.Background(), ""); !errors.Is(err, domain.ErrInvalidPayload) {
		t.Fatalf("delete err = %v", err)
	}
}
