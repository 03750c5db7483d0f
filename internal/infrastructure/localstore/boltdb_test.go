package localstore

import (
	"errors"
	"path/filepath"
	"testing"
)

type blob struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "hud.db"), "")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save(KeyProfile, blob{Name: "Agent", Count: 3}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	var got blob
	if err := store.Load(KeyProfile, &got); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != "Agent" || got.Count != 3 {
		t.Fatalf("got %+v", got)
	}

	if err := store.Save(KeyProfile, blob{Name: "Operator"}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if err := store.Load(KeyProfile, &got); err != nil || got.Name != "Operator" {
		t.Fatalf("after overwrite got %+v err %v", got, err)
	}
}

func TestLoadMissingKey(t *testing.T) {
	store := openTestStore(t)
	var got blob
	if err := store.Load(KeyGoals, &got); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSaveAllAndDelete(t *testing.T) {
	store := openTestStore(t)
	err := store.SaveAll(map[Key]any{
		KeyTasks:    []blob{{Name: "a"}, {Name: "b"}},
		KeySettings: blob{Name: "settings"},
	})
	if err != nil {
		t.Fatalf("SaveAll: %v", err)
	}
	size, err := store.Size()
	if err != nil || size != 2 {
		t.Fatalf("size = %d, err %v", size, err)
	}

	var tasks []blob
	if err := store.Load(KeyTasks, &tasks); err != nil || len(tasks) != 2 {
		t.Fatalf("tasks = %+v err %v", tasks, err)
	}

	if err := store.Delete(KeyTasks); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Delete(KeyTasks); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if err := store.Load(KeyTasks, &tasks); !errors.Is(err, ErrNotFound) {
		t.Fatalf("load after delete err = %v", err)
	}
}

func TestNilStoreReportsClosed(t *testing.T) {
	var store *Store
	if err := store.Save(KeyProfile, blob{}); err == nil {
		t.Fatal("expected error from nil store")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close on nil: %v", err)
	}
}
