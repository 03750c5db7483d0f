package profile

import (
	"context"
	"testing"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/internal/services"
)

type fakeStore struct {
	applied []services.Mutation
}

func (f *fakeStore) Apply(_ context.Context, m services.Mutation) (services.Outcome, error) {
	f.applied = append(f.applied, m)
	return services.Outcome{Profile: domain.DefaultProfile(), Durable: true}, nil
}

func (f *fakeStore) Profile() domain.UserProfile { return domain.DefaultProfile() }

func TestUpdateProfileValidation(t *testing.T) {
	blank := "  "
	zoom := 3.5
	cases := map[string]Patch{
		"blank name": {Name: &blank},
		"zoom":       {Zoom: &zoom},
	}
	for name, patch := range cases {
		t.Run(name, func(t *testing.T) {
			store := &fakeStore{}
			if _, err := New(store, nil).UpdateProfile(context.Background(), patch); err == nil {
				t.Fatal("expected validation error")
			}
			if len(store.applied) != 0 {
				t.Fatal("invalid patch reached the synchronizer")
			}
		})
	}
}

func TestUpdateProfileTrimsName(t *testing.T) {
	store := &fakeStore{}
	name := "  Nova "
	if _, err := New(store, nil).UpdateProfile(context.Background(), Patch{Name: &name}); err != nil {
		t.Fatalf("update: %v", err)
	}
	m := store.applied[0].(services.UpdateProfile)
	if *m.Name != "Nova" {
		t.Fatalf("name = %q", *m.Name)
	}
}

func TestResetLevelIssuesMutation(t *testing.T) {
	store := &fakeStore{}
	if _, err := New(store, nil).ResetLevel(context.Background()); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, ok := store.applied[0].(services.ResetLevel); !ok {
		t.Fatalf("mutation = %T", store.applied[0])
	}
}
