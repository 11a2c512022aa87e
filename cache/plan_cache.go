package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// PlanCache memoizes scan plans keyed by a (result type, column set)
// fingerprint. It caches derived metadata only, never driver handles, so
// entries need no cleanup on eviction.
type PlanCache struct {
	cache *lru.Cache[uint64, any]
	mu    sync.RWMutex
}

func NewPlanCache(size int) *PlanCache {
	cache, _ := lru.New[uint64, any](size)
	return &PlanCache{cache: cache}
}

func (c *PlanCache) Get(key uint64) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Get(key)
}

func (c *PlanCache) Set(key uint64, plan any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Add(key, plan)
}

// GetOrCompute returns the cached plan for key, computing and storing it on a
// miss. The compute function may run more than once under contention; the
// first stored plan wins.
func (c *PlanCache) GetOrCompute(key uint64, compute func() (any, error)) (any, error) {
	// Fast path: read lock only.
	c.mu.RLock()
	if plan, ok := c.cache.Get(key); ok {
		c.mu.RUnlock()
		return plan, nil
	}
	c.mu.RUnlock()

	plan, err := compute()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock.
	if existing, ok := c.cache.Get(key); ok {
		return existing, nil
	}
	c.cache.Add(key, plan)
	return plan, nil
}

func (c *PlanCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Len()
}

func (c *PlanCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Purge()
}
