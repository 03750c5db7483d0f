package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestShutdownRunsHooksInReverse(t *testing.T) {
	m := New(time.Second, nil)

	var order []string
	for _, name := range []string{"store", "mirror", "synchronizer"} {
		name := name
		m.Register(name, func(context.Context) error {
			order = append(order, name)
			return nil
		})
	}
	m.Register("ignored", nil)

	if err := m.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	want := []string{"synchronizer", "mirror", "store"}
	if len(order) != len(want) {
		t.Fatalf("order = %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}

	if err := m.Shutdown(context.Background()); err != nil || len(order) != 3 {
		t.Fatalf("second shutdown reran hooks: %v %v", order, err)
	}
}

func TestShutdownJoinsErrorsAndContinues(t *testing.T) {
	m := New(time.Second, nil)
	errA := errors.New("a failed")
	ran := false

	m.Register("last", func(context.Context) error {
		ran = true
		return nil
	})
	m.Register("first", func(context.Context) error { return errA })

	err := m.Shutdown(context.Background())
	if !errors.Is(err, errA) {
		t.Fatalf("err = %v", err)
	}
	if !ran {
		t.Fatal("hook after failure did not run")
	}
}

func TestShutdownHooksSeeDeadline(t *testing.T) {
	m := New(50*time.Millisecond, nil)
	m.Register("slow", func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); !ok {
			return errors.New("no deadline")
		}
		return nil
	})
	if err := m.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
