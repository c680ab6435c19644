package main

import "sync"

// Cache stores assembled job records keyed by normalized title. A record in
// the cache is served as-is until it is evicted or the cache is cleared.
type Cache interface {
	Get(key string) (*JobRecord, bool)
	Put(key string, rec *JobRecord)
	Clear()
	Len() int
}

type memoryCache struct {
	mu      sync.Mutex
	records map[string]*JobRecord
}

func NewMemoryCache() Cache {
	return &memoryCache{records: make(map[string]*JobRecord)}
}

func (c *memoryCache) Get(key string) (*JobRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.records[key]
	return rec, ok
}

func (c *memoryCache) Put(key string, rec *JobRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records[key] = rec
}

func (c *memoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = make(map[string]*JobRecord)
}

func (c *memoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}
