package services

import (
	"testing"
	"time"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/repository"
)

func TestGoalFromRecordDefaultsReward(t *testing.T) {
	created := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		rec  repository.GoalRecord
		want int
	}{
		{name: "missing reward", rec: repository.GoalRecord{ID: "g-1", Target: 3}, want: domain.DefaultGoalXPReward},
		{name: "negative reward", rec: repository.GoalRecord{ID: "g-2", Target: 3, XPReward: -5}, want: domain.DefaultGoalXPReward},
		{name: "explicit reward", rec: repository.GoalRecord{ID: "g-3", Target: 3, XPReward: 250}, want: 250},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.rec.CreatedAt = created
			g := goalFromRecord(tc.rec)
			if g.XPReward != tc.want {
				t.Fatalf("xpReward = %d, want %d", g.XPReward, tc.want)
			}
		})
	}

	if g := goalFromRecord(repository.GoalRecord{ID: "g-4", Target: 2, Progress: -1}); g.Progress != 0 {
		t.Fatalf("progress = %d, want 0", g.Progress)
	}
}

func TestTaskFromRecordRepairsRemoteRow(t *testing.T) {
	created := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	task := taskFromRecord(repository.TaskRecord{
		ID:        "t-1",
		Title:     "Imported",
		Completed: true,
		Priority:  "urgent",
		CreatedAt: created,
	})
	if task.XPWorth != hydratedMinXP {
		t.Fatalf("xpWorth = %d, want %d", task.XPWorth, hydratedMinXP)
	}
	if task.Priority != domain.PriorityMedium {
		t.Fatalf("priority = %q", task.Priority)
	}
	if task.ListID != domain.DefaultListID {
		t.Fatalf("listId = %q", task.ListID)
	}
	if task.CompletedAt == nil || !task.CompletedAt.Equal(created) {
		t.Fatalf("completedAt = %v, want %v", task.CompletedAt, created)
	}

	done := created.Add(time.Hour)
	open := taskFromRecord(repository.TaskRecord{ID: "t-2", Title: "Open", CompletedAt: &done, CreatedAt: created, XPWorth: 40, Priority: "High", ListID: "tasks_only"})
	if open.CompletedAt != nil {
		t.Fatalf("open task kept completedAt %v", open.CompletedAt)
	}
	if open.XPWorth != 40 || open.Priority != domain.PriorityHigh || open.ListID != "tasks_only" {
		t.Fatalf("task = %+v", open)
	}
}
