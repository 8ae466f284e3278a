/*
Responsibilities
- Memoize rendered messages by content hash
- Expire entries on a TTL

Chat views re-render the same messages every time the surrounding list
changes, so the pipeline consults this cache before paying parse and walk
cost again. The cache is an optimization only: a miss or an eviction is
never an error, and nothing downstream may depend on an entry existing.
*/
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rohmanhakim/msgrender/internal/script"
)

// Entry is one memoized render outcome.
type Entry struct {
	HTML      string
	Direction script.Script
}

type RenderCache struct {
	store *gocache.Cache
}

// NewRenderCache builds a cache whose entries live for ttl and whose
// expired entries are swept every sweepInterval.
func NewRenderCache(ttl time.Duration, sweepInterval time.Duration) *RenderCache {
	return &RenderCache{
		store: gocache.New(ttl, sweepInterval),
	}
}

func (c *RenderCache) Get(key string) (Entry, bool) {
	v, found := c.store.Get(key)
	if !found {
		return Entry{}, false
	}
	entry, ok := v.(Entry)
	if !ok {
		return Entry{}, false
	}
	return entry, true
}

func (c *RenderCache) Put(key string, entry Entry) {
	c.store.SetDefault(key, entry)
}

func (c *RenderCache) Len() int {
	return c.store.ItemCount()
}
