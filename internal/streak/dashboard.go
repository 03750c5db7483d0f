package streak

import (
	"fmt"
	"time"

	"github.com/fastygo/quantix/domain"
	"github.com/fastygo/quantix/internal/clock"
)

// DailyRule decides which tasks count toward a daily list's dashboard total.
type DailyRule string

const (
	// DailyRuleCreated counts tasks created today.
	DailyRuleCreated DailyRule = "created"
	// DailyRuleCompleted counts tasks completed today.
	DailyRuleCompleted DailyRule = "completed"
	// DailyRuleHybrid counts active tasks plus tasks completed today.
	DailyRuleHybrid DailyRule = "hybrid"
)

// ParseDailyRule validates a configured rule name.
func ParseDailyRule(s string) (DailyRule, error) {
	switch r := DailyRule(s); r {
	case DailyRuleCreated, DailyRuleCompleted, DailyRuleHybrid:
		return r, nil
	case "":
		return DailyRuleCreated, nil
	default:
		return "", fmt.Errorf("unknown daily list rule %q", s)
	}
}

// ListStats computes dashboard totals per list id. Non-daily lists count every task.
func ListStats(tasks []domain.Task, rule DailyRule, now time.Time, loc *time.Location) map[string]domain.ListStats {
	today := clock.DayKey(now, loc)
	stats := make(map[string]domain.ListStats)

	for _, task := range tasks {
		listID := task.ListID
		if listID == "" {
			listID = domain.DefaultListID
		}
		s := stats[listID]

		if domain.IsDailyListID(listID) && !countsToday(task, rule, today, loc) {
			stats[listID] = s
			continue
		}
		s.Total++
		if task.Completed {
			s.Completed++
		}
		stats[listID] = s
	}
	return stats
}

func countsToday(task domain.Task, rule DailyRule, today string, loc *time.Location) bool {
	completedToday := task.Completed && task.CompletedAt != nil && clock.DayKey(*task.CompletedAt, loc) == today
	switch rule {
	case DailyRuleCompleted:
		return completedToday
	case DailyRuleHybrid:
		return !task.Completed || completedToday
	default:
		return clock.DayKey(task.CreatedAt, loc) == today
	}
}
