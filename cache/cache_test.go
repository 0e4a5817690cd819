package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestBasic(t *testing.T) {
	c := New[string, int](3)

	c.Set("a", 1)
	c.Set("b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v; want 1, true", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) should return false")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d; want 2", c.Len())
	}
}

func TestUpdate(t *testing.T) {
	c := New[string, int](2)

	c.Set("a", 1)
	c.Set("a", 10)

	if v, _ := c.Get("a"); v != 10 {
		t.Errorf("Get(a) = %d; want 10", v)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d; want 1", c.Len())
	}
}

func TestEviction(t *testing.T) {
	c := New[string, int](2)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // now most recently used
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("a should have survived eviction")
	}
}

func TestGetOrSet(t *testing.T) {
	c := New[string, int](2)

	calls := 0
	v := c.GetOrSet("a", func() int {
		calls++
		return 42
	})
	if v != 42 || calls != 1 {
		t.Errorf("GetOrSet = %d (calls %d); want 42 (1)", v, calls)
	}

	v = c.GetOrSet("a", func() int {
		calls++
		return 99
	})
	if v != 42 || calls != 1 {
		t.Errorf("cached GetOrSet = %d (calls %d); want 42 (1)", v, calls)
	}
}

func TestStats(t *testing.T) {
	c := New[string, int](2)

	c.Set("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("b")

	stats := c.Stats()
	if stats.Size != 1 || stats.Hits != 2 || stats.Misses != 1 {
		t.Errorf("Stats = %+v; want size 1, hits 2, misses 1", stats)
	}
}

func TestZeroCapacityDefaults(t *testing.T) {
	c := New[int, int](0)
	for i := 0; i < 100; i++ {
		c.Set(i, i)
	}
	if c.Len() != 100 {
		t.Errorf("Len() = %d; want 100", c.Len())
	}
}

func TestConcurrent(t *testing.T) {
	c := New[int, string](64)

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Set(i, fmt.Sprintf("v%d", i))
			c.Get(i)
			c.GetOrSet(i, func() string { return "other" })
		}(i)
	}
	wg.Wait()

	for i := 0; i < 64; i++ {
		if v, ok := c.Get(i); ok && v != fmt.Sprintf("v%d", i) {
			t.Errorf("Get(%d) = %q; want v%d", i, v, i)
		}
	}
}
