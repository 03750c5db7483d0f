package logger

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithContextAddsIdentifiers(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)

	ctx := ContextWithRequestID(context.Background(), "req-1")
	ctx = ContextWithDeviceID(ctx, "device-1")
	WithContext(ctx, base).Info("hello")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["request_id"] != "req-1" || fields["device_id"] != "device-1" {
		t.Fatalf("fields = %v", fields)
	}
	if RequestID(ctx) != "req-1" {
		t.Fatalf("request id = %q", RequestID(ctx))
	}
}

func TestWithContextWithoutValuesReturnsBase(t *testing.T) {
	base := zap.NewNop()
	if got := WithContext(context.Background(), base); got != base {
		t.Fatal("expected base logger")
	}
}

func TestNewFallsBackToInfo(t *testing.T) {
	l, err := New(Config{Level: "loud", Encoding: "console"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !l.Core().Enabled(zap.InfoLevel) || l.Core().Enabled(zap.DebugLevel) {
		t.Fatal("expected info level")
	}
}
