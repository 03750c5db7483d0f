package focus

import (
	"sync"
	"time"

	"github.com/fastygo/quantix/internal/clock"
)

// TickFunc receives the elapsed display value on every tick.
type TickFunc func(elapsedSeconds int)

// Ticker drives live display updates while a session is running. Each tick
// recomputes elapsed time from the session snapshot, so delayed or skipped
// ticks never drift.
type Ticker struct {
	interval time.Duration
	clock    clock.Clock
	onTick   TickFunc

	mu   sync.Mutex
	gen  uint64
	stop chan struct{}
}

// NewTicker builds a ticker; interval defaults to one second.
func NewTicker(interval time.Duration, c clock.Clock, onTick TickFunc) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	if c == nil {
		c = clock.System{}
	}
	return &Ticker{interval: interval, clock: c, onTick: onTick}
}

// Run starts ticking for a session that accumulated base before resuming
// at since. Any previous run is cancelled first.
func (t *Ticker) Run(base time.Duration, since time.Time) {
	if t == nil || t.onTick == nil {
		return
	}
	t.mu.Lock()
	t.cancelLocked()
	t.gen++
	gen := t.gen
	stop := make(chan struct{})
	t.stop = stop
	t.mu.Unlock()

	go t.loop(gen, stop, base, since)
}

// Cancel stops the current run. After Cancel returns no tick from that run is delivered.
func (t *Ticker) Cancel() {
	if t == nil {
		return
	}
	t.mu.Lock()
	t.cancelLocked()
	t.mu.Unlock()
}

// Active reports whether a run is in progress.
func (t *Ticker) Active() bool {
	if t == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

func (t *Ticker) cancelLocked() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
	t.gen++
}

func (t *Ticker) loop(gen uint64, stop <-chan struct{}, base time.Duration, since time.Time) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			elapsed := Seconds(base + segment(since, t.clock.Now()))
			// Deliver under the lock so Cancel cannot interleave with a stale tick.
			t.mu.Lock()
			if t.gen != gen {
				t.mu.Unlock()
				return
			}
			t.onTick(elapsed)
			t.mu.Unlock()
		}
	}
}
