package services

import (
	"sync"
	"testing"
	"time"
)

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

// fakeScheduler records timers; tests fire them explicitly.
type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{delay: d, fn: f}
	s.timers = append(s.timers, t)
	return t
}

// fireAll runs every timer that has not been stopped, like real timers
// whose delay elapsed.
func (s *fakeScheduler) fireAll() {
	s.mu.Lock()
	timers := append([]*fakeTimer(nil), s.timers...)
	s.mu.Unlock()
	for _, t := range timers {
		if !t.stopped {
			t.stopped = true
			t.fn()
		}
	}
}

func (s *fakeScheduler) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

func TestDebouncerCoalescesBurst(t *testing.T) {
	sched := &fakeScheduler{}
	d := NewDebouncer(1500*time.Millisecond, sched)

	var calls []int
	for i := 1; i <= 5; i++ {
		i := i
		d.Schedule(func() { calls = append(calls, i) })
	}
	if !d.Pending() {
		t.Fatal("expected pending call")
	}
	if sched.count() != 5 {
		t.Fatalf("timers = %d, want 5", sched.count())
	}
	for i, timer := range sched.timers[:4] {
		if !timer.stopped {
			t.Fatalf("timer %d not cancelled by later schedule", i)
		}
	}
	if sched.timers[4].delay != 1500*time.Millisecond {
		t.Fatalf("delay = %v", sched.timers[4].delay)
	}

	sched.fireAll()
	if len(calls) != 1 || calls[0] != 5 {
		t.Fatalf("calls = %v, want [5]", calls)
	}
	if d.Pending() {
		t.Fatal("still pending after fire")
	}
}

func TestDebouncerStaleTimerDoesNotRun(t *testing.T) {
	sched := &fakeScheduler{}
	d := NewDebouncer(time.Second, sched)

	ran := 0
	d.Schedule(func() { ran++ })
	stale := sched.timers[0]
	d.Cancel()

	// Simulates a timer that had already fired when Cancel ran.
	stale.fn()
	if ran != 0 {
		t.Fatalf("stale timer ran %d times", ran)
	}
}

func TestDebouncerFlushRunsPendingOnce(t *testing.T) {
	sched := &fakeScheduler{}
	d := NewDebouncer(time.Second, sched)

	ran := 0
	d.Schedule(func() { ran++ })
	d.Flush()
	d.Flush()
	sched.fireAll()
	if ran != 1 {
		t.Fatalf("ran = %d, want 1", ran)
	}
}

func TestDebouncerWithRealTimers(t *testing.T) {
	d := NewDebouncer(20*time.Millisecond, nil)
	done := make(chan int, 3)
	for i := 0; i < 3; i++ {
		i := i
		d.Schedule(func() { done <- i })
	}
	select {
	case got := <-done:
		if got != 2 {
			t.Fatalf("ran call %d, want 2", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("debounced call never ran")
	}
	select {
	case extra := <-done:
		t.Fatalf("unexpected extra call %d", extra)
	case <-time.After(60 * time.Millisecond):
	}
}
