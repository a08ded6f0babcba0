// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

/*
Package services provides suture.Service wrappers for Shelfwise components.

Each wrapper implements the suture.Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTP Server (HTTPServerService):
  - Wraps *http.Server with graceful shutdown
  - Converts the ListenAndServe pattern to Serve

Snapshot Reload (ReloadService):
  - Runs a robfig/cron schedule that re-reads the feeds and rebuilds the
    recommendation engine
  - Each rebuild runs through a sony/gobreaker circuit breaker so a broken
    feed stops being hammered after repeated failures
  - A failed rebuild keeps the previous snapshot serving

The response cache janitor lives in the cache package and is added to the
same engine layer.
*/
package services
