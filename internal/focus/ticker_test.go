package focus

import (
	"testing"
	"time"

	"github.com/fastygo/quantix/internal/clock"
)

func TestTickerDeliversElapsedFromSnapshot(t *testing.T) {
	since := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	now := since.Add(30 * time.Second)
	ticks := make(chan int, 8)

	tk := NewTicker(5*time.Millisecond, clock.Func(func() time.Time { return now }), func(elapsed int) {
		select {
		case ticks <- elapsed:
		default:
		}
	})
	tk.Run(100*time.Second, since)
	defer tk.Cancel()

	select {
	case got := <-ticks:
		if got != 130 {
			t.Fatalf("elapsed = %d, want 130", got)
		}
	case <-time.After(time.Second):
		t.Fatal("no tick delivered")
	}
}

func TestNilTickerIsInert(t *testing.T) {
	var tk *Ticker
	tk.Run(0, time.Now())
	tk.Cancel()
	if tk.Active() {
		t.Fatal("nil ticker reported active")
	}
}
