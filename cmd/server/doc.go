// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

/*
Package main is the entry point for the Shelfwise server.

Shelfwise serves product recommendations over HTTP. At startup it reads the
products and ratings feeds, builds an immutable engine snapshot (TF-IDF
content similarity, user-based collaborative filtering and a popularity
ranking) and then serves read-only queries against it.

# Application Architecture

	RootSupervisor ("shelfwise")
	├── EngineSupervisor ("engine-layer")
	│   ├── Response cache janitor (when the cache is enabled)
	│   └── Snapshot reload (when reload.enabled is true)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Startup order:

 1. Configuration: Koanf v2 with defaults, optional YAML file and environment
 2. Logging: zerolog with JSON or console output
 3. Snapshot build: DuckDB reads the CSV feeds, the engine is built; failure exits
 4. HTTP: chi router with CORS, rate limiting, compression and metrics
 5. Supervisor tree: Suture v4 runs the HTTP server and background services

# Configuration

Common environment variables:

	HTTP_PORT=8000
	DATA_DIR=data
	RECOMMEND_MAX_N=50
	CACHE_ENABLED=true
	RELOAD_ENABLED=true
	RELOAD_SCHEDULE="@every 1h"
	LOG_LEVEL=info
	LOG_FORMAT=json

A YAML file may be supplied with CONFIG_PATH or placed at ./config.yaml.

# Shutdown

SIGINT and SIGTERM cancel the root context. The HTTP server drains within
server.shutdown_timeout and any service that fails to stop is logged.
*/
package main
