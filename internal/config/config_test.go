package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sync.ProfileDebounce != 1500*time.Millisecond {
		t.Errorf("debounce = %v, want 1.5s", cfg.Sync.ProfileDebounce)
	}
	if !cfg.Remote.Enabled {
		t.Error("remote should be enabled by default")
	}
	if cfg.Dashboard.DailyListRule != "created" {
		t.Errorf("daily rule = %q", cfg.Dashboard.DailyListRule)
	}
	if !strings.Contains(cfg.Database.URL, "secret@localhost:5432/quantix") {
		t.Errorf("database url = %q", cfg.Database.URL)
	}
	if cfg.Address() != "127.0.0.1:7777" {
		t.Errorf("address = %q", cfg.Address())
	}
}

func TestLoadOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PROFILE_DEBOUNCE", "2s")
	t.Setenv("FOCUS_TICK_INTERVAL", "3")
	t.Setenv("REMOTE_ENABLED", "false")
	t.Setenv("HUD_TIMEZONE", "Asia/Dhaka")
	t.Setenv("DAILY_LIST_RULE", "hybrid")
	t.Setenv("DEVICE_ID", "device-1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sync.ProfileDebounce != 2*time.Second {
		t.Errorf("debounce = %v", cfg.Sync.ProfileDebounce)
	}
	if cfg.Focus.TickInterval != 3*time.Second {
		t.Errorf("tick = %v", cfg.Focus.TickInterval)
	}
	if cfg.Remote.Enabled {
		t.Error("remote should be disabled")
	}
	if cfg.Device.Timezone != "Asia/Dhaka" || cfg.Device.ID != "device-1" {
		t.Errorf("device = %+v", cfg.Device)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("DAILY_LIST_RULE", "weekly")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown daily rule")
	}

	t.Setenv("DAILY_LIST_RULE", "created")
	t.Setenv("HUD_TIMEZONE", "Nowhere/Special")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore cwd: %v", err)
		}
	})
}
