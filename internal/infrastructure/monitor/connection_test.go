package monitor

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/fastygo/quantix/internal/infrastructure/localstore"
)

func TestMonitorWithoutRemoteIsOffline(t *testing.T) {
	store, err := localstore.Open(filepath.Join(t.TempDir(), "hud.db"), "")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()
	if err := store.Save(localstore.KeyProfile, map[string]int{"level": 1}); err != nil {
		t.Fatalf("save: %v", err)
	}

	m := New(nil, nil, store, time.Hour, nil)
	m.Start()
	defer m.Stop()

	if m.IsOnline() || m.PresenceOnline() {
		t.Fatal("monitor reports remote online with no connections")
	}
	status := m.GetStatus()
	if !status.LocalStore || status.LocalKeys != 1 {
		t.Fatalf("status = %+v", status)
	}
	if status.LastCheck.IsZero() {
		t.Fatal("startup probe did not run")
	}
}
