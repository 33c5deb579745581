// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTL is a concurrency-safe key/value cache whose entries expire a fixed
// duration after they were stored.
//
// Expired entries are dropped lazily by Get and in bulk by Purge, which is
// meant to be called periodically (see the cache janitor worker).
type TTL[V any] struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]entry[V]

	now     func() time.Time
	metrics *cacheMetrics
}

// New creates a TTL cache. A non-positive ttl falls back to DefaultTTL.
// It fails only when metrics registration fails.
func New[V any](ttl time.Duration, opts ...Option) (*TTL[V], error) {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c := &TTL[V]{
		ttl:   ttl,
		items: make(map[string]entry[V]),
		now:   o.now,
	}

	if o.registerer != nil {
		m, err := newCacheMetrics(o.registerer, o.name)
		if err != nil {
			return nil, err
		}
		c.metrics = m
	}

	return c, nil
}

// Get returns the value stored under key if it has not expired.
func (c *TTL[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	if ok && c.now().After(e.expiresAt) {
		c.mu.Lock()
		// re-check: a concurrent Set may have refreshed the entry
		if current, still := c.items[key]; still && c.now().After(current.expiresAt) {
			delete(c.items, key)
			c.metrics.recordEviction(len(c.items))
		}
		c.mu.Unlock()
		ok = false
	}

	if !ok {
		c.metrics.recordMiss()
		var zero V
		return zero, false
	}

	c.metrics.recordHit()
	return e.value, true
}

// Set stores value under key, replacing any previous entry and restarting
// its lifetime.
func (c *TTL[V]) Set(key string, value V) {
	c.mu.Lock()
	c.items[key] = entry[V]{value: value, expiresAt: c.now().Add(c.ttl)}
	size := len(c.items)
	c.mu.Unlock()

	c.metrics.recordSet(size)
}

// Delete removes key and reports whether it was present.
func (c *TTL[V]) Delete(key string) bool {
	c.mu.Lock()
	_, ok := c.items[key]
	delete(c.items, key)
	size := len(c.items)
	c.mu.Unlock()

	if ok {
		c.metrics.recordDelete(size)
	}
	return ok
}

// Clear removes every entry.
func (c *TTL[V]) Clear() {
	c.mu.Lock()
	c.items = make(map[string]entry[V])
	c.mu.Unlock()

	c.metrics.recordClear()
}

// Purge removes expired entries and returns how many were removed.
func (c *TTL[V]) Purge() int {
	now := c.now()

	c.mu.Lock()
	removed := 0
	for key, e := range c.items {
		if now.After(e.expiresAt) {
			delete(c.items, key)
			removed++
		}
	}
	size := len(c.items)
	c.mu.Unlock()

	for range removed {
		c.metrics.recordEviction(size)
	}
	return removed
}

// Len returns the number of stored entries, including expired ones not yet
// purged.
func (c *TTL[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
