package features

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testCatalogJSON = `[
	{
		"id": "digital-cards",
		"name": "Digital Cards",
		"description": "Share your card with a link.",
		"screenshots": [
			{"id": "s3", "url": "https://cdn.example.com/3.png", "position": 3},
			{"id": "s1", "url": "https://cdn.example.com/1.png", "position": 1},
			{"id": "s2", "url": "https://cdn.example.com/2.png", "position": 2}
		]
	},
	{
		"id": "qr-codes",
		"name": "QR Codes",
		"description": "Print a QR code on anything."
	}
]`

func writeTestCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "features.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func TestCatalog_ScreenshotsOrderedByPosition(t *testing.T) {
	catalog := NewCatalog(writeTestCatalog(t, testCatalogJSON), NewCache(4, 0))

	features, err := catalog.All()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(features) != 2 {
		t.Fatalf("Expected 2 features, got: %d", len(features))
	}

	shots := features[0].Screenshots
	for i := 1; i < len(shots); i++ {
		if shots[i].Position < shots[i-1].Position {
			t.Errorf("Expected ascending positions, got %d after %d",
				shots[i].Position, shots[i-1].Position)
		}
	}
	if shots[0].ID != "s1" {
		t.Errorf("Expected first screenshot s1, got: %s", shots[0].ID)
	}
}

func TestCatalog_CachesFileRead(t *testing.T) {
	path := writeTestCatalog(t, testCatalogJSON)
	catalog := NewCatalog(path, NewCache(4, 0))

	if _, err := catalog.All(); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// Removing the file must not matter once the catalog is cached.
	if err := os.Remove(path); err != nil {
		t.Fatalf("Failed to remove fixture: %v", err)
	}
	if _, err := catalog.All(); err != nil {
		t.Errorf("Expected cached read to succeed, got: %v", err)
	}

	// After invalidation the next read hits the missing file.
	catalog.Invalidate()
	if _, err := catalog.All(); err == nil {
		t.Error("Expected error after invalidation with file gone")
	}
}

func TestCatalog_Get(t *testing.T) {
	catalog := NewCatalog(writeTestCatalog(t, testCatalogJSON), NewCache(4, 0))

	feature, err := catalog.Get("qr-codes")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if feature.Name != "QR Codes" {
		t.Errorf("Expected QR Codes, got: %s", feature.Name)
	}

	if _, err := catalog.Get("missing"); err == nil {
		t.Error("Expected error for unknown feature")
	}
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := NewCache(2, 0)
	cache.Set("a", 1)
	cache.Set("b", 2)

	// Touch "a" so "b" is the eviction candidate.
	if _, ok := cache.Get("a"); !ok {
		t.Fatal("Expected a to be cached")
	}

	cache.Set("c", 3)
	if _, ok := cache.Get("b"); ok {
		t.Error("Expected b to be evicted")
	}
	if _, ok := cache.Get("a"); !ok {
		t.Error("Expected a to survive")
	}
	if cache.Len() != 2 {
		t.Errorf("Expected 2 entries, got: %d", cache.Len())
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	cache := NewCache(4, 10*time.Millisecond)
	cache.Set("k", "v")

	if _, ok := cache.Get("k"); !ok {
		t.Fatal("Expected fresh entry to be cached")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := cache.Get("k"); ok {
		t.Error("Expected entry to expire")
	}
}
