package cache

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultTTL is used when a cache is created without a positive ttl.
const DefaultTTL = 10 * time.Minute

type options struct {
	registerer prometheus.Registerer
	name       string
	now        func() time.Time
}

// Option configures a cache created with New.
type Option func(*options)

// WithMetrics exports hit, miss, set, delete and eviction counters and a
// size gauge to reg, labelled with cache=name.
func WithMetrics(reg prometheus.Registerer, name string) Option {
	return func(o *options) {
		o.registerer = reg
		o.name = name
	}
}

// WithClock replaces time.Now. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}
