package service

import (
	"testing"
	"time"
)

func TestCacheKey(t *testing.T) {
	tests := []struct {
		a, b string
	}{
		{"Paris", " paris "},
		{"PARIS", "paris"},
		{"München", "MÜNCHEN"},
	}
	for _, tt := range tests {
		if CacheKey(tt.a) != CacheKey(tt.b) {
			t.Errorf("expected %q and %q to share a key: %q vs %q", tt.a, tt.b, CacheKey(tt.a), CacheKey(tt.b))
		}
	}
	if CacheKey("Paris") != "weather:paris" {
		t.Errorf("unexpected key %q", CacheKey("Paris"))
	}
}

func TestCache(t *testing.T) {
	t.Run("returns entry within TTL", func(t *testing.T) {
		c := NewCache(time.Minute, 10)
		r := &ProviderResult{Raw: []byte(`{}`)}
		c.Set("k", r)

		got, ok := c.Get("k")
		if !ok || got != r {
			t.Fatal("expected cache hit")
		}
	})

	t.Run("entry expires after TTL", func(t *testing.T) {
		c := NewCache(time.Minute, 10)
		now := time.Now()
		c.now = func() time.Time { return now }

		c.Set("k", &ProviderResult{})
		now = now.Add(time.Minute)

		if _, ok := c.Get("k"); ok {
			t.Error("expected expired entry to miss")
		}
	})

	t.Run("bounded size evicts oldest", func(t *testing.T) {
		c := NewCache(time.Minute, 2)
		now := time.Now()
		c.now = func() time.Time { return now }

		c.Set("a", &ProviderResult{})
		now = now.Add(time.Second)
		c.Set("b", &ProviderResult{})
		now = now.Add(time.Second)
		c.Set("c", &ProviderResult{})

		if c.Len() != 2 {
			t.Fatalf("expected 2 entries, got %d", c.Len())
		}
		if _, ok := c.Get("a"); ok {
			t.Error("expected oldest entry evicted")
		}
		if _, ok := c.Get("c"); !ok {
			t.Error("expected newest entry kept")
		}
	})

	t.Run("expired entries are purged before evicting live ones", func(t *testing.T) {
		c := NewCache(time.Minute, 2)
		now := time.Now()
		c.now = func() time.Time { return now }

		c.Set("a", &ProviderResult{})
		now = now.Add(50 * time.Second)
		c.Set("b", &ProviderResult{})
		now = now.Add(20 * time.Second) // a expired, b alive
		c.Set("c", &ProviderResult{})

		if _, ok := c.Get("b"); !ok {
			t.Error("expected live entry kept")
		}
	})

	t.Run("overwrite does not evict", func(t *testing.T) {
		c := NewCache(time.Minute, 1)
		c.Set("a", &ProviderResult{})
		c.Set("a", &ProviderResult{})
		if c.Len() != 1 {
			t.Errorf("expected 1 entry, got %d", c.Len())
		}
	})
}
