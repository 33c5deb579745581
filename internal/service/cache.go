// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-catalog-api/internal/cache"
	"github.com/MKhiriev/go-catalog-api/internal/config"
	"github.com/MKhiriev/go-catalog-api/internal/logger"
	"github.com/MKhiriev/go-catalog-api/models"
)

// Caches holds one read cache per resource. List pages and single records of
// a resource share a cache; a single record is stored as a one-element slice.
type Caches struct {
	Categories  *cache.TTL[[]models.Category]
	Departments *cache.TTL[[]models.Department]
	Cities      *cache.TTL[[]models.City]
}

// NewCaches creates the resource caches and registers their metrics with reg.
// reg may be nil.
func NewCaches(cfg config.Cache, reg prometheus.Registerer) (*Caches, error) {
	opts := func(name string) []cache.Option {
		if reg == nil {
			return nil
		}
		return []cache.Option{cache.WithMetrics(reg, name)}
	}

	categories, err := cache.New[[]models.Category](cfg.TTL, opts("categories")...)
	if err != nil {
		return nil, err
	}
	departments, err := cache.New[[]models.Department](cfg.TTL, opts("departments")...)
	if err != nil {
		return nil, err
	}
	cities, err := cache.New[[]models.City](cfg.TTL, opts("cities")...)
	if err != nil {
		return nil, err
	}

	return &Caches{
		Categories:  categories,
		Departments: departments,
		Cities:      cities,
	}, nil
}

// cached returns the entry under key, loading and storing it on a miss.
// Failed loads are not cached.
func cached[T any](ctx context.Context, c *cache.TTL[[]T], key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if v, ok := c.Get(key); ok {
		logger.FromContext(ctx).Debug().Str("key", key).Msg("cache hit")
		return v, nil
	}

	v, err := load(ctx)
	if err != nil {
		return nil, err
	}
	c.Set(key, v)

	return v, nil
}

// cachedOne is [cached] for a single record.
func cachedOne[T any](ctx context.Context, c *cache.TTL[[]T], key string, load func(context.Context) (T, error)) (T, error) {
	v, err := cached(ctx, c, key, func(ctx context.Context) ([]T, error) {
		item, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return []T{item}, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return v[0], nil
}

func itemKey(prefix string, id int64) string {
	return fmt.Sprintf("%s-%d", prefix, id)
}
