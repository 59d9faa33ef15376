package text

import (
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/displaylist/backend"
)

func TestCacheGetSet(t *testing.T) {
	c := NewCache[string, int](0)

	if _, ok := c.Get("a"); ok {
		t.Error("Get on empty cache reported a hit")
	}
	c.Set("a", 1)
	c.Set("a", 2)
	if v, ok := c.Get("a"); !ok || v != 2 {
		t.Errorf("Get(a) = (%v, %v), want (2, true)", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewCache[int, int](4)
	for i := range 4 {
		c.Set(i, i)
	}
	// Touch 0 so that 1 and 2 are the oldest.
	c.Get(0)
	c.Set(4, 4)

	// 5 entries over a limit of 4 shrink to 3.
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	for _, k := range []int{0, 3, 4} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("key %d evicted", k)
		}
	}
	for _, k := range []int{1, 2} {
		if _, ok := c.Get(k); ok {
			t.Errorf("key %d kept", k)
		}
	}
}

func TestCacheConcurrentUse(t *testing.T) {
	c := NewCache[int, int](64)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				c.Set(g*1000+i, i)
				c.Get(g*1000 + i/2)
			}
		}()
	}
	wg.Wait()
	if c.Len() > 64 {
		t.Errorf("Len() = %d, want <= 64", c.Len())
	}
}

func TestShaperCachesRuns(t *testing.T) {
	s := newTestShaper(t)
	key := backend.FontKey{Index: 1}

	first, err := s.Shape("cached text", 14, key)
	if err != nil {
		t.Fatalf("Shape() error = %v", err)
	}
	first.ExtraWordSpacing = 128

	second, err := s.Shape("cached text", 14, key)
	if err != nil {
		t.Fatalf("Shape() error = %v", err)
	}
	if s.CachedRuns() != 1 {
		t.Errorf("CachedRuns() = %d, want 1", s.CachedRuns())
	}
	if second == first {
		t.Error("cache returned the caller's Run")
	}
	if second.ExtraWordSpacing != 0 {
		t.Errorf("ExtraWordSpacing = %v, want 0", second.ExtraWordSpacing)
	}
	if len(second.Stores()) != len(first.Stores()) {
		t.Errorf("stores = %d, want %d", len(second.Stores()), len(first.Stores()))
	}

	if _, err := s.Shape("cached text", 20, key); err != nil {
		t.Fatalf("Shape() error = %v", err)
	}
	if s.CachedRuns() != 2 {
		t.Errorf("CachedRuns() after new size = %d, want 2", s.CachedRuns())
	}
}

func TestShaperWithoutCache(t *testing.T) {
	s, err := NewShaper(goregular.TTF, WithRunCacheSize(0))
	if err != nil {
		t.Fatalf("NewShaper() error = %v", err)
	}
	if _, err := s.Shape("x", 12, backend.FontKey{}); err != nil {
		t.Fatalf("Shape() error = %v", err)
	}
	if s.CachedRuns() != 0 {
		t.Errorf("CachedRuns() = %d, want 0", s.CachedRuns())
	}
}
