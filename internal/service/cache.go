// Package service contains the business logic for the trailer loading service.
package service

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/trailer-loading-service/internal/domain/model"
	"github.com/guttosm/trailer-loading-service/internal/metrics"
	"github.com/guttosm/trailer-loading-service/internal/service/cache"
)

// ttlCache is an LRU cache of computed loading plans keyed by request
// digest. Entries expire after the configured TTL; when the cache is
// full the least recently served plan is evicted. It implements the
// cache.Cache interface.
type ttlCache struct {
	mu        sync.RWMutex
	capacity  int
	ttl       time.Duration
	plans     map[string]*planEntry
	head      *planEntry
	tail      *planEntry
	stopCh    chan struct{}
	hits      int64
	misses    int64
	evictions int64
}

// planEntry is one cached plan plus its position in the LRU list.
type planEntry struct {
	digest    string
	plan      model.LoadingPlan
	expiresAt time.Time
	prev      *planEntry
	next      *planEntry
}

// newTTLCache creates a plan cache with the given capacity and TTL and
// starts the background sweep for expired entries.
func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	c := &ttlCache{
		capacity: capacity,
		ttl:      ttl,
		plans:    make(map[string]*planEntry, capacity),
		stopCh:   make(chan struct{}),
	}
	go c.sweepLoop()
	return c
}

// Get returns the cached plan for a request digest, if present and fresh.
func (c *ttlCache) Get(digest string) (model.LoadingPlan, bool) {
	c.mu.RLock()
	entry, ok := c.plans[digest]
	c.mu.RUnlock()

	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "miss")
		return model.LoadingPlan{}, false
	}

	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		if _, still := c.plans[digest]; still {
			c.unlink(entry)
		}
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "expired")
		return model.LoadingPlan{}, false
	}

	c.mu.Lock()
	c.moveToFront(entry)
	c.mu.Unlock()

	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation("get", "hit")
	return entry.plan, true
}

// Set stores a plan under a request digest, refreshing the TTL if the
// digest is already present. At capacity the LRU entry is dropped.
func (c *ttlCache) Set(digest string, plan model.LoadingPlan) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.plans[digest]; ok {
		entry.plan = plan
		entry.expiresAt = time.Now().Add(c.ttl)
		c.moveToFront(entry)
		return
	}

	entry := &planEntry{
		digest:    digest,
		plan:      plan,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.plans[digest] = entry
	c.pushFront(entry)

	if len(c.plans) > c.capacity {
		c.dropTail()
		atomic.AddInt64(&c.evictions, 1)
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
}

// Invalidate removes a single digest.
func (c *ttlCache) Invalidate(digest string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.plans[digest]; ok {
		c.unlink(entry)
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

// Clear drops every cached plan and resets counters.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.plans = make(map[string]*planEntry, c.capacity)
	c.head = nil
	c.tail = nil

	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)

	metrics.RecordCacheOperation("clear", "success")
}

// Stop terminates the background sweep.
func (c *ttlCache) Stop() {
	close(c.stopCh)
}

// Metrics reports hit/miss/eviction counters and occupancy.
func (c *ttlCache) Metrics() cache.Metrics {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cache.Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.plans),
		Capacity:  c.capacity,
	}
}

// sweepLoop removes expired plans once a minute. The sweep only walks
// the map when occupancy is above 80%; expired entries below that mark
// are dropped lazily on Get.
func (c *ttlCache) sweepLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.RLock()
			crowded := len(c.plans) > (c.capacity * 80 / 100)
			c.mu.RUnlock()
			if crowded {
				c.sweep()
			}
		case <-c.stopCh:
			return
		}
	}
}

func (c *ttlCache) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := time.Now()
	for _, entry := range c.plans {
		if cutoff.After(entry.expiresAt) {
			c.unlink(entry)
		}
	}
}

// unlink removes an entry from the map and the LRU list.
func (c *ttlCache) unlink(entry *planEntry) {
	delete(c.plans, entry.digest)
	c.detach(entry)
}

func (c *ttlCache) moveToFront(entry *planEntry) {
	if entry == c.head {
		return
	}
	c.detach(entry)
	c.pushFront(entry)
}

func (c *ttlCache) pushFront(entry *planEntry) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

// detach removes an entry from the LRU list without touching the map.
func (c *ttlCache) detach(entry *planEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
}

func (c *ttlCache) dropTail() {
	if c.tail == nil {
		return
	}
	delete(c.plans, c.tail.digest)
	c.detach(c.tail)
}

// ShardedCache spreads plan digests over several ttlCache shards so
// that concurrent optimize requests do not contend on one lock.
type ShardedCache struct {
	shards    []*ttlCache
	shardMask int
}

// NewShardedCache builds a sharded plan cache. numShards is rounded up
// to a power of two; capacity is divided evenly between the shards.
func NewShardedCache(capacity int, ttl time.Duration, numShards int) *ShardedCache {
	if numShards <= 0 {
		numShards = 16
	}
	n := 1
	for n < numShards {
		n *= 2
	}
	numShards = n

	perShard := capacity / numShards
	if perShard < 1 {
		perShard = 1
	}

	shards := make([]*ttlCache, numShards)
	for i := range shards {
		shards[i] = newTTLCache(perShard, ttl)
	}

	return &ShardedCache{
		shards:    shards,
		shardMask: numShards - 1,
	}
}

// getShard maps a digest to its shard with an FNV-1a hash.
func (sc *ShardedCache) getShard(digest string) *ttlCache {
	h := fnv.New32a()
	h.Write([]byte(digest))
	return sc.shards[int(h.Sum32())&sc.shardMask]
}

// Get retrieves a plan from the shard owning the digest.
func (sc *ShardedCache) Get(digest string) (model.LoadingPlan, bool) {
	return sc.getShard(digest).Get(digest)
}

// Set stores a plan in the shard owning the digest.
func (sc *ShardedCache) Set(digest string, plan model.LoadingPlan) {
	sc.getShard(digest).Set(digest, plan)
}

// Invalidate removes a digest from its shard.
func (sc *ShardedCache) Invalidate(digest string) {
	sc.getShard(digest).Invalidate(digest)
}

// Clear empties every shard.
func (sc *ShardedCache) Clear() {
	for _, shard := range sc.shards {
		shard.Clear()
	}
}

// Stop terminates every shard's sweep goroutine.
func (sc *ShardedCache) Stop() {
	for _, shard := range sc.shards {
		shard.Stop()
	}
}

// Metrics aggregates counters across shards.
func (sc *ShardedCache) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, shard := range sc.shards {
		m := shard.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}
