package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/internal/services"
)

func TestGoalMilestoneThroughSynchronizer(t *testing.T) {
	sync := services.NewSynchronizer(nil, services.RemoteStores{}, nil, nil, nil, services.SyncConfig{DeviceID: "device-1"})
	t.Cleanup(func() { _ = sync.Close(context.Background()) })
	uc := New(sync, nil)
	ctx := context.Background()

	if _, err := uc.Create(ctx, Input{Title: "Read", Target: 0}); !errors.Is(err, domain.ErrInvalidGoalTarget) {
		t.Fatalf("err = %v", err)
	}
	if _, err := uc.Create(ctx, Input{Title: "Read", Target: 2, XPReward: -1}); err == nil {
		t.Fatal("expected negative reward to be rejected")
	}

	created, err := uc.Create(ctx, Input{Title: "Read 2 books", Target: 2})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	goal := created.Goal
	if goal.XPReward != domain.DefaultGoalXPReward {
		t.Fatalf("reward = %d", goal.XPReward)
	}

	out, err := uc.UpdateProgress(ctx, goal.ID, 1)
	if err != nil || out.GoalCompleted || out.Profile.CurrentXP != 0 {
		t.Fatalf("partial progress: out=%+v err=%v", out, err)
	}
	out, err = uc.UpdateProgress(ctx, goal.ID, 2)
	if err != nil || !out.GoalCompleted || out.Profile.CurrentXP != domain.DefaultGoalXPReward {
		t.Fatalf("completion: out=%+v err=%v", out, err)
	}
	out, err = uc.UpdateProgress(ctx, goal.ID, 3)
	if err != nil || out.GoalCompleted || out.Profile.CurrentXP != domain.DefaultGoalXPReward {
		t.Fatalf("reward repeated: out=%+v err=%v", out, err)
	}

	if _, err := uc.UpdateProgress(ctx, goal.ID, -1); err == nil {
		t.Fatal("expected negative progress to be rejected")
	}
	if _, err := uc.Delete(ctx, goal.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := uc.Delete(ctx, goal.ID); !errors.Is(err, domain.ErrGoalNotFound) {
		t.Fatalf("second delete err = %v", err)
	}
	if got := uc.List(ctx); len(got) != 0 {
		t.Fatalf("goals = %+v", got)
	}
}
