package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestCache(t *testing.T, ttl time.Duration, clock *fakeClock, opts ...Option) *TTL[string] {
	t.Helper()
	c, err := New[string](ttl, append(opts, WithClock(clock.Now))...)
	require.NoError(t, err)
	return c
}

func TestTTL_SetGet(t *testing.T) {
	c := newTestCache(t, time.Minute, newFakeClock())

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("categories-0-100", "v1")
	v, ok := c.Get("categories-0-100")
	require.True(t, ok)
	assert.Equal(t, "v1", v)

	c.Set("categories-0-100", "v2")
	v, _ = c.Get("categories-0-100")
	assert.Equal(t, "v2", v)
	assert.Equal(t, 1, c.Len())
}

func TestTTL_Expiry(t *testing.T) {
	clock := newFakeClock()
	c := newTestCache(t, time.Minute, clock)

	c.Set("k", "v")
	clock.Advance(time.Minute)

	// exactly at the deadline the entry is still valid
	_, ok := c.Get("k")
	assert.True(t, ok)

	clock.Advance(time.Nanosecond)
	_, ok = c.Get("k")
	assert.False(t, ok)
	assert.Zero(t, c.Len(), "expired entry is dropped on read")
}

func TestTTL_SetRestartsLifetime(t *testing.T) {
	clock := newFakeClock()
	c := newTestCache(t, time.Minute, clock)

	c.Set("k", "v1")
	clock.Advance(50 * time.Second)
	c.Set("k", "v2")
	clock.Advance(50 * time.Second)

	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v2", v)
}

func TestTTL_DeleteAndClear(t *testing.T) {
	c := newTestCache(t, time.Minute, newFakeClock())

	c.Set("a", "1")
	c.Set("b", "2")

	assert.True(t, c.Delete("a"))
	assert.False(t, c.Delete("a"))
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Zero(t, c.Len())
	_, ok := c.Get("b")
	assert.False(t, ok)
}

func TestTTL_Purge(t *testing.T) {
	clock := newFakeClock()
	c := newTestCache(t, time.Minute, clock)

	c.Set("old-1", "x")
	c.Set("old-2", "x")
	clock.Advance(2 * time.Minute)
	c.Set("fresh", "y")

	assert.Equal(t, 2, c.Purge())
	assert.Equal(t, 1, c.Len())
	assert.Zero(t, c.Purge())
}

func TestTTL_DefaultTTL(t *testing.T) {
	clock := newFakeClock()
	c := newTestCache(t, 0, clock)

	c.Set("k", "v")
	clock.Advance(DefaultTTL)
	_, ok := c.Get("k")
	assert.True(t, ok)

	clock.Advance(time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestTTL_Concurrent(t *testing.T) {
	c, err := New[int](time.Minute)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				key := fmt.Sprintf("k-%d", j%10)
				c.Set(key, i)
				c.Get(key)
				if j%25 == 0 {
					c.Clear()
				}
				c.Purge()
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 10)
}

func TestTTL_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	clock := newFakeClock()
	c := newTestCache(t, time.Minute, clock, WithMetrics(reg, "categories"))

	c.Set("a", "1")
	c.Set("b", "2")
	c.Get("a")
	c.Get("missing")
	c.Delete("b")
	clock.Advance(2 * time.Minute)
	c.Purge()

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, mf := range families {
		byName[mf.GetName()] = mf
	}

	counter := func(name string) float64 {
		mf := byName[name]
		require.NotNil(t, mf, name)
		require.Len(t, mf.GetMetric(), 1)
		return mf.GetMetric()[0].GetCounter().GetValue()
	}

	assert.Equal(t, float64(1), counter("catalog_cache_hits_total"))
	assert.Equal(t, float64(1), counter("catalog_cache_misses_total"))
	assert.Equal(t, float64(2), counter("catalog_cache_sets_total"))
	assert.Equal(t, float64(1), counter("catalog_cache_deletes_total"))
	assert.Equal(t, float64(1), counter("catalog_cache_evictions_total"))

	size := byName["catalog_cache_size"]
	require.NotNil(t, size)
	assert.Equal(t, float64(0), size.GetMetric()[0].GetGauge().GetValue())
	assert.Equal(t, "categories", size.GetMetric()[0].GetLabel()[0].GetValue())
}

func TestTTL_MetricsPerCache(t *testing.T) {
	reg := prometheus.NewRegistry()

	cities, err := New[string](time.Minute, WithMetrics(reg, "cities"))
	require.NoError(t, err)
	_, err = New[string](time.Minute, WithMetrics(reg, "departments"))
	require.NoError(t, err)

	cities.Set("k", "v")
	n, err := testutil.GatherAndCount(reg, "catalog_cache_size")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// registering the same cache name twice fails
	_, err = New[string](time.Minute, WithMetrics(reg, "cities"))
	require.Error(t, err)
}
