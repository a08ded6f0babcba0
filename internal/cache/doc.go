// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

/*
Package cache provides a thread-safe LRU cache with TTL support for API
responses.

# Overview

  - O(1) Get, Add and eviction (hashmap plus doubly-linked list)
  - Capacity bound with least recently used eviction
  - Lazy expiration on Get, plus a Janitor service that sweeps expired entries
  - Generic values, so callers never type-assert

# Keys

GenerateKey hashes a method name and its parameters into a compact key.
Recommendation responses are keyed by snapshot version, operation, id and n,
so installing a new engine snapshot invalidates old entries without an
explicit flush:

	key := cache.GenerateKey("hybrid", []any{version, userID, n})
	if list, ok := c.Get(key); ok {
	    return list
	}

# Janitor

Janitor implements the suture Service interface and calls CleanupExpired on
a fixed interval until its context is cancelled.
*/
package cache
