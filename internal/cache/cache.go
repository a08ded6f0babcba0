// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/shelfwise/internal/logging"
)

// GenerateKey creates a cache key from the method name and parameters
func GenerateKey(method string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		// Fallback to simple string key
		return fmt.Sprintf("%s:%v", method, params)
	}

	// Hash the JSON data for a compact key
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}

// sweeper is the part of LRUCache the janitor needs.
type sweeper interface {
	CleanupExpired() int
}

// Janitor periodically sweeps expired cache entries. It implements
// suture.Service.
type Janitor struct {
	name     string
	cache    sweeper
	interval time.Duration
}

// NewJanitor creates a janitor for c. A non-positive interval means DefaultTTL.
func NewJanitor(name string, c sweeper, interval time.Duration) *Janitor {
	if interval <= 0 {
		interval = DefaultTTL
	}
	return &Janitor{name: name, cache: c, interval: interval}
}

// Serve sweeps the cache on every tick until ctx is cancelled.
func (j *Janitor) Serve(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if removed := j.cache.CleanupExpired(); removed > 0 {
				logging.Debug().
					Str("cache", j.name).
					Int("removed", removed).
					Msg("Swept expired cache entries")
			}
		}
	}
}

// String returns the service name for supervisor logging.
func (j *Janitor) String() string {
	return j.name + "-janitor"
}
