package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenInvalidPath(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(filepath.Join(blocker, "sub", "test.db")); err == nil {
		t.Error("Open() should fail when the parent is a file")
	}
}

func TestHighScoreContract(t *testing.T) {
	stores := map[string]func(t *testing.T) Backend{
		"sqlite": func(t *testing.T) Backend { return openTestStore(t) },
		"memory": func(t *testing.T) Backend { return NewMemory() },
	}

	for name, open := range stores {
		t.Run(name, func(t *testing.T) {
			store := open(t)

			if _, ok, err := store.HighScore(); err != nil || ok {
				t.Fatalf("empty store: ok=%v err=%v", ok, err)
			}
			if entry, err := store.HighScoreEntry(); err != nil || entry != nil {
				t.Fatalf("empty store entry = %v, %v", entry, err)
			}

			steps := []struct {
				save int
				want int
			}{
				{5, 5},
				{3, 5},
				{5, 5},
				{12, 12},
				{0, 12},
			}
			for _, s := range steps {
				if err := store.SaveHighScore(s.save); err != nil {
					t.Fatalf("SaveHighScore(%d): %v", s.save, err)
				}
				got, ok, err := store.HighScore()
				if err != nil || !ok || got != s.want {
					t.Fatalf("after SaveHighScore(%d): got %d ok=%v err=%v, want %d", s.save, got, ok, err, s.want)
				}
			}

			if err := store.SaveHighScore(-1); err == nil {
				t.Error("negative score should be rejected")
			}

			entry, err := store.HighScoreEntry()
			if err != nil || entry == nil || entry.Score != 12 {
				t.Fatalf("entry = %+v, %v", entry, err)
			}
			if entry.UpdatedAt.IsZero() {
				t.Error("entry should carry an update time")
			}

			if err := store.Reset(); err != nil {
				t.Fatalf("Reset: %v", err)
			}
			if _, ok, _ := store.HighScore(); ok {
				t.Error("high score should be gone after Reset")
			}
			if err := store.Close(); err != nil {
				t.Errorf("Close: %v", err)
			}
		})
	}
}

func TestStorePersistsAcrossOpens(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveHighScore(42); err != nil {
		t.Fatalf("SaveHighScore: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	score, ok, err := store.HighScore()
	if err != nil || !ok || score != 42 {
		t.Errorf("HighScore = %d, %v, %v; want 42", score, ok, err)
	}
}
