package streak

import (
	"testing"
	"time"

	"github.com/fastygo/quantix/domain"
)

func TestListStatsDailyRules(t *testing.T) {
	yesterday := now.AddDate(0, 0, -1)

	createdToday := domain.Task{ID: "1", ListID: domain.DefaultListID, CreatedAt: now.Add(-time.Hour)}
	createdYesterdayOpen := domain.Task{ID: "2", ListID: domain.DefaultListID, CreatedAt: yesterday}
	createdYesterdayDoneToday := completedTask("3", now.Add(-30*time.Minute), 10)
	createdYesterdayDoneToday.CreatedAt = yesterday
	other := domain.Task{ID: "4", ListID: domain.TasksOnlyListID, CreatedAt: yesterday}
	legacy := domain.Task{ID: "5", CreatedAt: now}

	tasks := []domain.Task{createdToday, createdYesterdayOpen, createdYesterdayDoneToday, other, legacy}

	cases := []struct {
		rule      DailyRule
		total     int
		completed int
	}{
		{DailyRuleCreated, 2, 0},
		{DailyRuleCompleted, 1, 1},
		{DailyRuleHybrid, 4, 1},
	}
	for _, tc := range cases {
		stats := ListStats(tasks, tc.rule, now, time.UTC)
		daily := stats[domain.DefaultListID]
		if daily.Total != tc.total || daily.Completed != tc.completed {
			t.Errorf("%s: daily = %+v, want %d/%d", tc.rule, daily, tc.total, tc.completed)
		}
		if got := stats[domain.TasksOnlyListID]; got.Total != 1 {
			t.Errorf("%s: tasks_only = %+v, want total 1", tc.rule, got)
		}
	}
}

func TestParseDailyRule(t *testing.T) {
	if r, err := ParseDailyRule(""); err != nil || r != DailyRuleCreated {
		t.Fatalf("default rule = %q, %v", r, err)
	}
	if _, err := ParseDailyRule("weekly"); err == nil {
		t.Fatal("expected error for unknown rule")
	}
}
