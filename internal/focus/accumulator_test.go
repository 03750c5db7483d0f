package focus

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fastygo/quantix/domain"
)

var t0 = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func TestPauseExcludesPausedGap(t *testing.T) {
	state, err := Start(domain.SessionState{}, "s-1", t0)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	state, err = Pause(state, t0.Add(10*time.Second))
	if err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if got := Elapsed(state, t0.Add(14*time.Second)); got != 10 {
		t.Fatalf("elapsed while paused = %d, want 10", got)
	}
	state, err = Resume(state, t0.Add(15*time.Second))
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if got := Elapsed(state, t0.Add(20*time.Second)); got != 15 {
		t.Fatalf("elapsed after resume = %d, want 15", got)
	}

	idle, record, err := Stop(state, t0.Add(25*time.Second))
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if record.DurationSeconds != 20 {
		t.Fatalf("duration = %d, want 20", record.DurationSeconds)
	}
	if record.ID != "s-1" || !record.StartedAt.Equal(t0) || record.EndedAt == nil {
		t.Fatalf("record = %+v", record)
	}
	if idle.IsActive || idle.StartTime != nil || idle.Accumulated != 0 {
		t.Fatalf("state not idle after stop: %+v", idle)
	}
}

func TestStopWhilePaused(t *testing.T) {
	state, _ := Start(domain.SessionState{}, "s-2", t0)
	state, _ = Pause(state, t0.Add(90*time.Second))

	_, record, err := Stop(state, t0.Add(time.Hour))
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if record.DurationSeconds != 90 {
		t.Fatalf("duration = %d, want 90", record.DurationSeconds)
	}
}

func TestInvalidTransitions(t *testing.T) {
	idle := domain.SessionState{}
	if _, err := Pause(idle, t0); !errors.Is(err, domain.ErrSessionIdle) {
		t.Fatalf("pause idle err = %v", err)
	}
	if _, err := Resume(idle, t0); !errors.Is(err, domain.ErrSessionIdle) {
		t.Fatalf("resume idle err = %v", err)
	}
	if _, _, err := Stop(idle, t0); !errors.Is(err, domain.ErrSessionIdle) {
		t.Fatalf("stop idle err = %v", err)
	}

	running, _ := Start(idle, "s-3", t0)
	if _, err := Start(running, "s-4", t0); !errors.Is(err, domain.ErrSessionActive) {
		t.Fatalf("double start err = %v", err)
	}
	if _, err := Resume(running, t0); !errors.Is(err, domain.ErrSessionNotPaused) {
		t.Fatalf("resume running err = %v", err)
	}

	paused, _ := Pause(running, t0.Add(time.Second))
	if _, err := Pause(paused, t0.Add(2*time.Second)); !errors.Is(err, domain.ErrSessionNotRunning) {
		t.Fatalf("double pause err = %v", err)
	}
}

func TestElapsedIgnoresClockGoingBackwards(t *testing.T) {
	state, _ := Start(domain.SessionState{}, "s-5", t0)
	if got := Elapsed(state, t0.Add(-time.Minute)); got != 0 {
		t.Fatalf("elapsed = %d, want 0", got)
	}
}

func TestManyPauseCycles(t *testing.T) {
	state, _ := Start(domain.SessionState{}, "s-6", t0)
	now := t0
	for i := 0; i < 10; i++ {
		now = now.Add(30 * time.Second)
		state, _ = Pause(state, now)
		now = now.Add(time.Hour)
		state, _ = Resume(state, now)
	}
	_, record, _ := Stop(state, now.Add(30*time.Second))
	if record.DurationSeconds != 330 {
		t.Fatalf("duration = %d, want 330", record.DurationSeconds)
	}
}

type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func TestTickerStopsDeliveringAfterCancel(t *testing.T) {
	var ticks atomic.Int64
	var last atomic.Int64
	clk := &stepClock{now: t0}
	ticker := NewTicker(5*time.Millisecond, clk, func(elapsed int) {
		ticks.Add(1)
		last.Store(int64(elapsed))
	})

	ticker.Run(100*time.Second, t0)
	deadline := time.Now().Add(2 * time.Second)
	for ticks.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(2 * time.Millisecond)
	}
	if ticks.Load() < 3 {
		t.Fatalf("ticker delivered %d ticks, want >= 3", ticks.Load())
	}
	if last.Load() <= 100 {
		t.Fatalf("elapsed %d not derived from base + segment", last.Load())
	}

	ticker.Cancel()
	if ticker.Active() {
		t.Fatal("ticker still active after cancel")
	}
	after := ticks.Load()
	time.Sleep(30 * time.Millisecond)
	if ticks.Load() != after {
		t.Fatalf("ticks delivered after cancel: %d -> %d", after, ticks.Load())
	}
}

func TestSubSecondSegmentsAreNotTruncatedPerPause(t *testing.T) {
	segment := 9600 * time.Millisecond
	state, _ := Start(domain.SessionState{}, "s-3", t0)
	now := t0.Add(segment)
	state, _ = Pause(state, now)
	now = now.Add(time.Minute)
	state, _ = Resume(state, now)
	now = now.Add(segment)
	state, _ = Pause(state, now)

	if state.Accumulated != 2*segment {
		t.Fatalf("accumulated = %v, want %v", state.Accumulated, 2*segment)
	}
	if got := Elapsed(state, now); got != 19 {
		t.Fatalf("elapsed = %d, want 19", got)
	}
	_, record, err := Stop(state, now.Add(time.Hour))
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if record.DurationSeconds != 19 {
		t.Fatalf("duration = %d, want 19", record.DurationSeconds)
	}
}

func TestSecondsRounding(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want int
	}{
		{in: -time.Second, want: 0},
		{in: 0, want: 0},
		{in: 499 * time.Millisecond, want: 0},
		{in: 1500 * time.Millisecond, want: 2},
		{in: 45 * time.Second, want: 45},
	}
	for _, tc := range cases {
		if got := Seconds(tc.in); got != tc.want {
			t.Errorf("Seconds(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
