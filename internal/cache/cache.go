package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/pmurley/linkboard/internal/models"
)

const entriesKey = "entries"

type Cache struct {
	cache    *gocache.Cache
	duration time.Duration
}

func New(duration time.Duration) *Cache {
	return &Cache{
		cache:    gocache.New(duration, duration*2),
		duration: duration,
	}
}

func (c *Cache) SetEntries(entries models.EntryList) {
	c.cache.Set(entriesKey, entries.Clone(), c.duration)
}

// GetEntries returns a copy of the cached entries, safe to sort in place
func (c *Cache) GetEntries() (models.EntryList, bool) {
	if entries, found := c.cache.Get(entriesKey); found {
		return entries.(models.EntryList).Clone(), true
	}
	return nil, false
}

func (c *Cache) Flush() {
	c.cache.Flush()
}
