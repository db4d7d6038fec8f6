package view

import (
	"sync"

	"github.com/golang/groupcache/lru"
	"github.com/google/uuid"
	"github.com/youssefsiam38/answerui"
)

// DefaultCacheSize is the number of parsed answers kept by default.
const DefaultCacheSize = 256

// CacheStats reports parse cache activity.
type CacheStats struct {
	Hits    int `json:"hits"`
	Misses  int `json:"misses"`
	Entries int `json:"entries"`
}

// Cache holds parsed answers keyed by answer ID. A hit requires the same
// ID; a new answer with identical text is parsed again. The least recently
// used entry is evicted when the cache is full.
type Cache struct {
	mu     sync.Mutex
	lru    *lru.Cache
	hits   int
	misses int
}

// NewCache creates a cache holding at most size entries.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Cache{lru: lru.New(size)}
}

// Parse returns the parsed form of a, calling parse only on a miss.
// Answers without an ID are never cached.
func (c *Cache) Parse(a *answerui.Answer, parse func(text string) answerui.ParsedAnswer) answerui.ParsedAnswer {
	if a.ID == uuid.Nil {
		c.mu.Lock()
		c.misses++
		c.mu.Unlock()
		return parse(a.Text)
	}

	c.mu.Lock()
	if v, ok := c.lru.Get(a.ID); ok {
		c.hits++
		c.mu.Unlock()
		return v.(answerui.ParsedAnswer)
	}
	c.misses++
	c.mu.Unlock()

	parsed := parse(a.Text)

	c.mu.Lock()
	c.lru.Add(a.ID, parsed)
	c.mu.Unlock()
	return parsed
}

// Invalidate drops the entry for id.
func (c *Cache) Invalidate(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Remove(id)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{Hits: c.hits, Misses: c.misses, Entries: c.lru.Len()}
}
