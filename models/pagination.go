// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// DefaultLimit is the page size used when a list request has no limit.
const DefaultLimit uint64 = 100

// Page selects a window of an ordered result set.
type Page struct {
	Offset uint64
	Limit  uint64
}

// Normalize fills in the default limit.
func (p Page) Normalize() Page {
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	return p
}

// Key renders the page as "<prefix>-<offset>-<limit>", the form used for
// cache keys.
func (p Page) Key(prefix string) string {
	return fmt.Sprintf("%s-%d-%d", prefix, p.Offset, p.Limit)
}
