package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestManagerLoadsAndCaches(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "file.txt"), []byte("payload"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(dir)
	defer m.Close()

	data, err := m.Load("file.txt")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("got %q", data)
	}

	// Second load hits the cache
	if _, err := m.Load("file.txt"); err != nil {
		t.Fatalf("second load: %v", err)
	}
	hits, misses := m.cache.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("expected 1 hit and 1 miss, got %d/%d", hits, misses)
	}
}

func TestManagerMissingFile(t *testing.T) {
	m := NewManager(t.TempDir())
	if _, err := m.Load("nope.png"); err == nil {
		t.Error("missing assets should error")
	}
}

func TestCacheClear(t *testing.T) {
	c := NewCache()
	c.Set("k", []byte("v"))
	if _, ok := c.Get("k"); !ok {
		t.Fatal("set then get should hit")
	}
	c.Clear()
	if _, ok := c.Get("k"); ok {
		t.Error("clear should drop entries")
	}
	hits, misses := c.Stats()
	if hits != 0 || misses != 1 {
		t.Errorf("clear should reset stats, got %d/%d", hits, misses)
	}
}
