package services

import (
	"sync"
	"time"
)

// Timer is a handle to one scheduled callback.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. It exists so debounced writes can be
// driven by a fake clock in tests.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemScheduler schedules on the runtime timer wheel.
type SystemScheduler struct{}

func (SystemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Debouncer coalesces bursts of work: each Schedule cancels the pending call
// and starts a fresh idle delay, so only the last call of a burst runs.
type Debouncer struct {
	delay     time.Duration
	scheduler Scheduler

	mu      sync.Mutex
	pending Timer
	fn      func()
	seq     uint64
}

func NewDebouncer(delay time.Duration, scheduler Scheduler) *Debouncer {
	if scheduler == nil {
		scheduler = SystemScheduler{}
	}
	return &Debouncer{delay: delay, scheduler: scheduler}
}

// Schedule replaces any pending call with fn.
func (d *Debouncer) Schedule(fn func()) {
	if d == nil || fn == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		d.pending.Stop()
	}
	d.seq++
	seq := d.seq
	d.fn = fn
	d.pending = d.scheduler.AfterFunc(d.delay, func() { d.fire(seq) })
}

// Flush runs the pending call now, if any.
func (d *Debouncer) Flush() {
	if fn := d.take(); fn != nil {
		fn()
	}
}

// Cancel drops the pending call without running it.
func (d *Debouncer) Cancel() {
	d.take()
}

// Pending reports whether a call is waiting for its delay to elapse.
func (d *Debouncer) Pending() bool {
	if d == nil {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fn != nil
}

func (d *Debouncer) take() func() {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		d.pending.Stop()
	}
	fn := d.fn
	d.fn = nil
	d.pending = nil
	d.seq++
	return fn
}

func (d *Debouncer) fire(seq uint64) {
	d.mu.Lock()
	// A timer that lost the race with Schedule/Cancel must not run.
	if seq != d.seq || d.fn == nil {
		d.mu.Unlock()
		return
	}
	fn := d.fn
	d.fn = nil
	d.pending = nil
	d.mu.Unlock()

	fn()
}
