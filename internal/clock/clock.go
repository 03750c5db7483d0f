// Package clock maps instants to calendar days in a user-configured timezone.
package clock

import (
	"fmt"
	"time"
)

// DayLayout is the YYYY-MM-DD day key format.
const DayLayout = "2006-01-02"

// Clock abstracts time.Now so state machines can be driven deterministically.
type Clock interface {
	Now() time.Time
}

// System is the wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

// Func adapts a plain function to Clock.
type Func func() time.Time

func (f Func) Now() time.Time { return f() }

// LoadLocation resolves an IANA timezone name. An empty name means UTC.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "UTC" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}

// LocationOrUTC is LoadLocation that never fails.
func LocationOrUTC(name string) *time.Location {
	loc, err := LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DayKey returns the calendar day of t in loc, ignoring the runtime's local zone.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DayLayout)
}

// AddDays shifts a day key by n calendar days. Keys are civil dates, so the
// arithmetic runs in UTC where every day is 24h long.
func AddDays(key string, n int) (string, error) {
	day, err := time.ParseInLocation(DayLayout, key, time.UTC)
	if err != nil {
		return "", err
	}
	return day.AddDate(0, 0, n).Format(DayLayout), nil
}

// WeekKeys returns the seven day keys of the Monday-start week containing t.
func WeekKeys(t time.Time, loc *time.Location) []string {
	today := DayKey(t, loc)
	offset := (int(t.In(locOrUTC(loc)).Weekday()) + 6) % 7
	monday, _ := AddDays(today, -offset)
	keys := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		key, _ := AddDays(monday, i)
		keys = append(keys, key)
	}
	return keys
}

func locOrUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
