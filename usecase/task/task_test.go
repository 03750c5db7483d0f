package task

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/internal/services"
)

type fakeStore struct {
	applied []services.Mutation
	out     services.Outcome
	err     error
}

func (f *fakeStore) Apply(_ context.Context, m services.Mutation) (services.Outcome, error) {
	f.applied = append(f.applied, m)
	return f.out, f.err
}

func (f *fakeStore) Tasks(string) []domain.Task             { return nil }
func (f *fakeStore) Lists() []domain.TaskList               { return domain.DefaultTaskLists() }
func (f *fakeStore) ListStats() map[string]domain.ListStats { return nil }

func TestCreateTaskValidation(t *testing.T) {
	cases := []struct {
		name string
		in   CreateInput
		want error
	}{
		{"empty title", CreateInput{Title: "   "}, domain.ErrEmptyTitle},
		{"negative duration", CreateInput{Title: "a", DurationMinutes: -5}, domain.ErrInvalidDuration},
		{"too long duration", CreateInput{Title: "a", DurationMinutes: MaxDurationMinutes + 1}, domain.ErrInvalidDuration},
		{"unknown priority", CreateInput{Title: "a", Priority: "Urgent"}, domain.ErrInvalidPriority},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{}
			uc := New(store, nil)
			if _, err := uc.CreateTask(context.Background(), tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			if len(store.applied) != 0 {
				t.Fatal("invalid input reached the synchronizer")
			}
		})
	}

	long := strings.Repeat("x", 201)
	if _, err := New(&fakeStore{}, nil).CreateTask(context.Background(), CreateInput{Title: long}); err == nil {
		t.Fatal("expected oversized title to be rejected")
	}
}

func TestCreateTaskAppliesDefaults(t *testing.T) {
	created := &domain.Task{ID: "t-1"}
	store := &fakeStore{out: services.Outcome{Task: created, Durable: true}}
	uc := New(store, nil)

	out, err := uc.CreateTask(context.Background(), CreateInput{Title: "  Review PR  "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.Task != created || !out.Durable {
		t.Fatalf("outcome = %+v", out)
	}
	m, ok := store.applied[0].(services.CreateTask)
	if !ok {
		t.Fatalf("mutation = %T", store.applied[0])
	}
	if m.Title != "Review PR" || m.DurationMinutes != domain.DefaultDurationMinutes || m.Priority != domain.PriorityMedium {
		t.Fatalf("mutation = %+v", m)
	}
}

func TestToggleAndDeleteRejectBlankID(t *testing.T) {
	store := &fakeStore{}
	uc := New(store, nil)
	if _, err := uc.ToggleTask(context.Background(), " "); !errors.Is(err, domain.ErrInvalidPayload) {
		t.Fatalf("toggle err = %v", err)
	}
	if _, err := uc.DeleteTask(context.Background(), ""); !errors.Is(err, domain.ErrInvalidPayload) {
		t.Fatalf("delete err = %v", err)
	}
	if len(store.applied) != 0 {
		t.Fatal("blank id reached the synchronizer")
	}
}

func TestSynchronizerErrorsPropagate(t *testing.T) {
	store := &fakeStore{err: domain.ErrTaskNotFound}
	uc := New(store, nil)
	if _, err := uc.ToggleTask(context.Background(), "missing"); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestUpdateListTrimsName(t *testing.T) {
	store := &fakeStore{out: services.Outcome{List: &domain.TaskList{ID: "l-1"}}}
	uc := New(store, nil)

	name := "  Errands "
	if _, err := uc.UpdateList(context.Background(), "l-1", ListPatch{Name: &name}); err != nil {
		t.Fatalf("update: %v", err)
	}
	m := store.applied[0].(services.UpdateList)
	if *m.Name != "Errands" {
		t.Fatalf("name = %q", *m.Name)
	}

	blank := " "
	if _, err := uc.UpdateList(context.Background(), "l-1", ListPatch{Name: &blank}); !errors.Is(err, domain.ErrEmptyTitle) {
		t.Fatalf("err = %v", err)
	}
}
