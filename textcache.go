package canvas

// The original renderer re-rasterized and re-uploaded identical text
// every frame. The cache keeps the uploaded texture keyed by string
// and color instead, bounded, evicting the oldest entry. Blit output
// is identical either way. Off by default.

type textKey struct {
	text string
	col  Color
}

type textEntry struct {
	tex  *Texture
	w, h int32
}

type textCache struct {
	max     int
	entries map[textKey]*textEntry
	order   []textKey
}

// SetTextCacheSize bounds the number of rendered strings kept across
// DrawText calls. Zero (the default) disables caching and releases any
// held textures. The cache is flushed whenever the font changes.
func (c *Canvas) SetTextCacheSize(n int) {
	c.flushTextCache()
	if n <= 0 {
		c.textCache = nil
		return
	}
	c.textCache = &textCache{
		max:     n,
		entries: make(map[textKey]*textEntry, n),
	}
}

func (c *Canvas) cachedText(text string, col Color) *textEntry {
	if c.textCache == nil {
		return nil
	}
	return c.textCache.entries[textKey{text, col}]
}

// storeText keeps a just-rendered text texture, reporting whether the
// cache took ownership of it.
func (c *Canvas) storeText(text string, col Color, tex *Texture, w, h int32) bool {
	tc := c.textCache
	if tc == nil {
		return false
	}
	k := textKey{text, col}
	if _, ok := tc.entries[k]; ok {
		// Already present; the caller keeps its duplicate.
		return false
	}
	if len(tc.order) >= tc.max {
		oldest := tc.order[0]
		tc.order = tc.order[1:]
		if e := tc.entries[oldest]; e != nil {
			e.tex.Destroy()
		}
		delete(tc.entries, oldest)
	}
	tc.entries[k] = &textEntry{tex: tex, w: w, h: h}
	tc.order = append(tc.order, k)
	return true
}

func (c *Canvas) flushTextCache() {
	tc := c.textCache
	if tc == nil {
		return
	}
	for _, e := range tc.entries {
		e.tex.Destroy()
	}
	tc.entries = make(map[textKey]*textEntry, tc.max)
	tc.order = tc.order[:0]
}
