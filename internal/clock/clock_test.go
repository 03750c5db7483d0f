package clock

import (
	"testing"
	"time"
)

func TestDayKeyUsesConfiguredZone(t *testing.T) {
	tokyo, err := LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("load tokyo: %v", err)
	}
	newYork, err := LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load new york: %v", err)
	}

	// 2024-03-10 20:30 UTC is already the 11th in Tokyo and still the 10th in New York.
	instant := time.Date(2024, 3, 10, 20, 30, 0, 0, time.UTC)

	if got := DayKey(instant, tokyo); got != "2024-03-11" {
		t.Fatalf("DayKey tokyo = %s, want 2024-03-11", got)
	}
	if got := DayKey(instant, newYork); got != "2024-03-10" {
		t.Fatalf("DayKey new york = %s, want 2024-03-10", got)
	}
	if got := DayKey(instant, nil); got != "2024-03-10" {
		t.Fatalf("DayKey nil loc = %s, want 2024-03-10", got)
	}
}

func TestAddDaysCrossesMonthAndDST(t *testing.T) {
	cases := []struct {
		key  string
		n    int
		want string
	}{
		{"2024-03-01", -1, "2024-02-29"},
		{"2024-01-01", -1, "2023-12-31"},
		{"2024-03-10", -1, "2024-03-09"},
		{"2024-11-03", 1, "2024-11-04"},
	}
	for _, tc := range cases {
		got, err := AddDays(tc.key, tc.n)
		if err != nil {
			t.Fatalf("AddDays(%s, %d): %v", tc.key, tc.n, err)
		}
		if got != tc.want {
			t.Errorf("AddDays(%s, %d) = %s, want %s", tc.key, tc.n, got, tc.want)
		}
	}

	if _, err := AddDays("not-a-day", 1); err == nil {
		t.Fatal("expected error for malformed key")
	}
}

func TestLoadLocationRejectsUnknownZone(t *testing.T) {
	if _, err := LoadLocation("Mars/Olympus_Mons"); err == nil {
		t.Fatal("expected error for unknown zone")
	}
	if loc := LocationOrUTC("Mars/Olympus_Mons"); loc != time.UTC {
		t.Fatalf("LocationOrUTC fallback = %v, want UTC", loc)
	}
}

func TestWeekKeysStartOnMonday(t *testing.T) {
	// Thursday.
	now := time.Date(2024, 5, 16, 12, 0, 0, 0, time.UTC)
	keys := WeekKeys(now, time.UTC)
	if len(keys) != 7 {
		t.Fatalf("len = %d, want 7", len(keys))
	}
	if keys[0] != "2024-05-13" || keys[6] != "2024-05-19" {
		t.Fatalf("week = %v, want 2024-05-13..2024-05-19", keys)
	}

	// Sunday belongs to the week that started six days earlier.
	sunday := time.Date(2024, 5, 19, 12, 0, 0, 0, time.UTC)
	if got := WeekKeys(sunday, time.UTC)[0]; got != "2024-05-13" {
		t.Fatalf("sunday week start = %s, want 2024-05-13", got)
	}
}
