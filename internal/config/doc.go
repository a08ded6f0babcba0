// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

/*
Package config provides centralized configuration management for Shelfwise.

Configuration is layered with Koanf v2, later layers overriding earlier ones:

 1. Defaults: built-in values from defaultConfig()
 2. Config file: optional YAML (config.yaml, or the path in CONFIG_PATH)
 3. Environment variables: an explicit allow-list mapped to config keys

# Configuration Structure

  - ServerConfig: HTTP listener (host, port, timeouts)
  - DataConfig: feed directory, feed file names and DuckDB reader tuning
  - RecommendConfig: engine tunables and API limits for n
  - CacheConfig: response cache
  - ReloadConfig: scheduled snapshot rebuilds and their circuit breaker
  - SecurityConfig: CORS and rate limiting
  - ImagesConfig: product image URLs
  - LoggingConfig: zerolog level and format

# Environment Variables

	HTTP_PORT=8000
	DATA_DIR=/data
	RECOMMEND_NEIGHBORS=9
	RELOAD_ENABLED=true
	RELOAD_SCHEDULE="@every 30m"
	CORS_ORIGINS=https://shop.example.com,https://admin.example.com
	LOG_LEVEL=debug

Unknown environment variables are ignored.

# Example config.yaml

	server:
	  port: 8000
	data:
	  dir: /srv/shelfwise/data
	recommend:
	  max_n: 20
	  price_bucket_profile: true
	images:
	  names:
	    "Table Lamp": product_20.png

Config is immutable after Load() and safe for concurrent reads.
*/
package config
