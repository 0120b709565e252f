package canvas

import "testing"

// Cache bookkeeping is exercised with already-released textures so no
// backend is needed; Texture.Destroy tolerates a cleared handle.

func TestTextCacheDisabledByDefault(t *testing.T) {
	c := New(Config{})
	if c.cachedText("hi", White) != nil {
		t.Error("cache should miss when disabled")
	}
	if c.storeText("hi", White, &Texture{}, 10, 10) {
		t.Error("store should refuse ownership when the cache is disabled")
	}
}

func TestTextCacheStoreAndHit(t *testing.T) {
	c := New(Config{})
	c.SetTextCacheSize(4)
	if !c.storeText("hi", White, &Texture{}, 20, 8) {
		t.Fatal("store should take ownership when enabled")
	}
	e := c.cachedText("hi", White)
	if e == nil {
		t.Fatal("expected a cache hit")
	}
	if e.w != 20 || e.h != 8 {
		t.Errorf("cached size = (%d, %d), want (20, 8)", e.w, e.h)
	}
	if c.cachedText("hi", Red) != nil {
		t.Error("same string in another color should miss")
	}
}

func TestTextCacheEvictsOldest(t *testing.T) {
	c := New(Config{})
	c.SetTextCacheSize(2)
	c.storeText("a", White, &Texture{}, 1, 1)
	c.storeText("b", White, &Texture{}, 1, 1)
	c.storeText("c", White, &Texture{}, 1, 1)
	if c.cachedText("a", White) != nil {
		t.Error("oldest entry should have been evicted")
	}
	if c.cachedText("b", White) == nil || c.cachedText("c", White) == nil {
		t.Error("newer entries should survive eviction")
	}
}

func TestTextCacheDuplicateStoreRefused(t *testing.T) {
	c := New(Config{})
	c.SetTextCacheSize(2)
	c.storeText("a", White, &Texture{}, 1, 1)
	if c.storeText("a", White, &Texture{}, 1, 1) {
		t.Error("second store of the same key should leave ownership with the caller")
	}
}

func TestTextCacheFlushAndDisable(t *testing.T) {
	c := New(Config{})
	c.SetTextCacheSize(2)
	c.storeText("a", White, &Texture{}, 1, 1)
	c.flushTextCache()
	if c.cachedText("a", White) != nil {
		t.Error("flush should empty the cache")
	}
	c.storeText("b", White, &Texture{}, 1, 1)
	c.SetTextCacheSize(0)
	if c.cachedText("b", White) != nil {
		t.Error("disabling should drop held entries")
	}
}
