// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-catalog-api/internal/logger"
)

// DefaultCleanupInterval is used when the janitor is built with a
// non-positive interval.
const DefaultCleanupInterval = time.Minute

// CacheJanitor periodically purges expired entries from named caches.
type CacheJanitor struct {
	interval time.Duration
	caches   map[string]Purger
	logger   *logger.Logger
}

// NewCacheJanitor creates a janitor for caches, keyed by a name used in logs.
func NewCacheJanitor(interval time.Duration, caches map[string]Purger, log *logger.Logger) *CacheJanitor {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	return &CacheJanitor{
		interval: interval,
		caches:   caches,
		logger:   log,
	}
}

// Run purges all caches every interval until ctx is cancelled.
func (j *CacheJanitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info().Dur("interval", j.interval).Int("caches", len(j.caches)).Msg("cache janitor started")
	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("cache janitor stopped")
			return
		case <-ticker.C:
			j.purge()
		}
	}
}

func (j *CacheJanitor) purge() {
	for name, c := range j.caches {
		if removed := c.Purge(); removed > 0 {
			j.logger.Debug().Str("cache", name).Int("removed", removed).Msg("purged expired cache entries")
		}
	}
}
