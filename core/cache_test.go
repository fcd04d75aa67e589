package core

import "testing"

func TestRenderCache_PutGet(t *testing.T) {
	c := NewRenderCache(10)

	if _, ok := c.Get("kitchen"); ok {
		t.Fatalf("expected miss on empty cache")
	}

	c.Put("kitchen", "<div>kitchen</div>")
	frag, ok := c.Get("kitchen")
	if !ok || frag != "<div>kitchen</div>" {
		t.Fatalf("expected hit, got (%q, %v)", frag, ok)
	}

	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Entries != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestRenderCache_EvictsOldest(t *testing.T) {
	c := NewRenderCache(2)
	c.Put("a", "A")
	c.Put("b", "B")
	c.Put("c", "C")

	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected oldest entry to be evicted")
	}
	if _, ok := c.Get("b"); !ok {
		t.Fatalf("expected b to survive")
	}
	if _, ok := c.Get("c"); !ok {
		t.Fatalf("expected c to survive")
	}
}

func TestRenderCache_OverwriteDoesNotEvict(t *testing.T) {
	c := NewRenderCache(2)
	c.Put("a", "A")
	c.Put("b", "B")
	c.Put("a", "A2")

	if frag, ok := c.Get("a"); !ok || frag != "A2" {
		t.Fatalf("expected overwritten value, got (%q, %v)", frag, ok)
	}
	if _, ok := c.Get("b"); !ok {
		t.Fatalf("overwrite must not evict the other entry")
	}
}

func TestRenderCache_ClearAndInvalidate(t *testing.T) {
	c := NewRenderCache(5)
	c.Put("a", "A")
	c.Put("b", "B")

	c.Invalidate("a")
	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected a to be invalidated")
	}

	if n := c.Clear(); n != 1 {
		t.Fatalf("expected 1 dropped entry, got %d", n)
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty cache after clear")
	}
}
