package settings

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
	s := domain.DefaultSettings("UTC")
	return services.Outcome{Settings: &s, Durable: true}, nil
}

func (f *fakeStore) Settings() domain.AppSettings { return domain.DefaultSettings("UTC") }

func TestUpdateValidation(t *testing.T) {
	badTZ := "Not/AZone"
	blankTZ := " "
	theme := domain.Theme("plaid")
	blankName := "   "

	cases := []struct {
		name  string
		patch Patch
		want  error
	}{
		{"unknown timezone", Patch{Timezone: &badTZ}, domain.ErrInvalidTimezone},
		{"blank timezone", Patch{Timezone: &blankTZ}, domain.ErrInvalidTimezone},
		{"unknown theme", Patch{Theme: &theme}, domain.ErrInvalidTheme},
		{"blank app name", Patch{AppName: &blankName}, domain.ErrEmptyTitle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{}
			if _, err := New(store, nil).Update(context.Background(), tc.patch); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
			if len(store.applied) != 0 {
				t.Fatal("invalid patch reached the synchronizer")
			}
		})
	}
}

func TestUpdateAcceptsValidPatch(t *testing.T) {
	store := &fakeStore{}
	tz := " UTC "
	theme := domain.ThemeRoyalPurple
	if _, err := New(store, nil).Update(context.Background(), Patch{Timezone: &tz, Theme: &theme}); err != nil {
		t.Fatalf("update: %v", err)
	}
	m := store.applied[0].(services.UpdateSettings)
	if *m.Timezone != "UTC" || *m.Theme != theme {
		t.Fatalf("mutation = %+v", m)
	}
}
