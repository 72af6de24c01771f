package cache

// Cache remembers the last alerted domains to avoid duplicated alerts
type Cache struct {
	Slab    map[string]bool
	List    []string
	Limit   int
	Counter int
}

// GetNewCache returns an empty cache holding up to limit entries
func GetNewCache(limit int) *Cache {
	return &Cache{Slab: make(map[string]bool), Limit: limit}
}

// InCache tells if a key is present in the cache
func (c *Cache) InCache(key string) bool {
	return c.Slab[key]
}

// Reset empties the cache
func (c *Cache) Reset() {
	c.Slab = make(map[string]bool)
	c.List = c.List[:0]
	c.Counter = 0
}

// StoreCache stores a key, evicting the oldest one when the cache is
// full
func (c *Cache) StoreCache(key string) {
	if c.InCache(key) {
		return
	}
	c.Slab[key] = true
	c.List = append(c.List, key)
	if len(c.List) > c.Limit {
		delete(c.Slab, c.List[0])
		c.List = c.List[1:]
	}
	c.Counter = len(c.List)
}
