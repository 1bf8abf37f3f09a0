package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/trailer-loading-service/internal/domain/model"
)

type mockCache struct {
	store map[string]model.LoadingPlan
}

func newMockCache() *mockCache {
	return &mockCache{store: make(map[string]model.LoadingPlan)}
}

func (m *mockCache) Get(key string) (model.LoadingPlan, bool) {
	v, ok := m.store[key]
	return v, ok
}

func (m *mockCache) Set(key string, value model.LoadingPlan) { m.store[key] = value }

func (m *mockCache) Invalidate(key string) { delete(m.store, key) }

func (m *mockCache) Clear() { m.store = make(map[string]model.LoadingPlan) }

func (m *mockCache) Stop() {}

func (m *mockCache) Metrics() Metrics {
	return Metrics{Size: len(m.store)}
}

// Compile-time checks that the mock satisfies both interfaces.
var (
	_ Cache            = (*mockCache)(nil)
	_ CacheWithMetrics = (*mockCache)(nil)
)

func TestCacheInterface(t *testing.T) {
	var c Cache = newMockCache()

	_, found := c.Get("digest")
	assert.False(t, found)

	c.Set("digest", model.LoadingPlan{Fits: true})
	plan, found := c.Get("digest")
	assert.True(t, found)
	assert.True(t, plan.Fits)

	c.Invalidate("digest")
	_, found = c.Get("digest")
	assert.False(t, found)

	c.Stop()
}

func TestCacheWithMetricsInterface(t *testing.T) {
	var c CacheWithMetrics = newMockCache()

	c.Set("digest", model.LoadingPlan{})

	m := c.Metrics()
	assert.Equal(t, 1, m.Size)
}

func TestMetricsStructure(t *testing.T) {
	m := Metrics{
		Hits:      10,
		Misses:    5,
		Evictions: 2,
		Size:      8,
		Capacity:  10,
	}

	assert.Equal(t, int64(10), m.Hits)
	assert.Equal(t, int64(5), m.Misses)
	assert.Equal(t, int64(2), m.Evictions)
	assert.Equal(t, 8, m.Size)
	assert.Equal(t, 10, m.Capacity)
}
