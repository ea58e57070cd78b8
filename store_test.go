package papertrade

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirStoreRoundTrip(t *testing.T) {
	store, err := NewDirStore(filepath.Join(t.TempDir(), "state"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if err := store.Save(KeyWallet, "93000"); err != nil {
		t.Fatalf("save: %v", err)
	}
	value, ok, err := store.Load(KeyWallet)
	if err != nil || !ok {
		t.Fatalf("Load = %q, %v, %v, want value present", value, ok, err)
	}
	if value != "93000" {
		t.Errorf("value = %q, want %q", value, "93000")
	}

	// a save replaces the previous value
	if err := store.Save(KeyWallet, "100500"); err != nil {
		t.Fatalf("save: %v", err)
	}
	value, _, _ = store.Load(KeyWallet)
	if value != "100500" {
		t.Errorf("value = %q after overwrite, want %q", value, "100500")
	}
}

func TestDirStoreMissingKey(t *testing.T) {
	store, err := NewDirStore(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	value, ok, err := store.Load("nope")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok || value != "" {
		t.Errorf("Load = %q, %v, want absent without error", value, ok)
	}
}

func TestDirStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDirStore(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Save(KeyWatchlist, `["TCS"]`); err != nil {
		t.Fatalf("save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("store dir holds %v, want only the saved key", names)
	}
}

func TestMemStoreSnapshot(t *testing.T) {
	store := NewMemStore()
	store.Save(KeyWallet, "100000")
	store.Save(KeyWatchlist, "[]")

	snap := store.Snapshot()
	if len(snap) != 2 || snap[KeyWallet] != "100000" {
		t.Errorf("snapshot = %v", snap)
	}

	// the snapshot is a copy, later saves must not leak into it
	store.Save(KeyWallet, "0")
	if snap[KeyWallet] != "100000" {
		t.Error("snapshot shares state with the store")
	}
}
