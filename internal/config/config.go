// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Data      DataConfig      `koanf:"data"`
	Recommend RecommendConfig `koanf:"recommend"`
	Cache     CacheConfig     `koanf:"cache"`
	Reload    ReloadConfig    `koanf:"reload"`
	Security  SecurityConfig  `koanf:"security"`
	Images    ImagesConfig    `koanf:"images"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DataConfig locates the feeds and tunes the DuckDB reader.
type DataConfig struct {
	Dir              string `koanf:"dir"`
	ProductsFile     string `koanf:"products_file"`
	RatingsFile      string `koanf:"ratings_file"`
	UsersFile        string `koanf:"users_file"`
	TransactionsFile string `koanf:"transactions_file"`
	MaxMemory        string `koanf:"max_memory"`
	Threads          int    `koanf:"threads"` // 0 = runtime.NumCPU()
}

// RecommendConfig holds engine tunables and request limits.
type RecommendConfig struct {
	MaxFeatures        int    `koanf:"max_features"`
	Neighbors          int    `koanf:"neighbors"`
	HybridOverfetch    int    `koanf:"hybrid_overfetch"`
	PriceBucketProfile bool   `koanf:"price_bucket_profile"`
	DuplicatePolicy    string `koanf:"duplicate_policy"` // "mean" or "last"
	NumWorkers         int    `koanf:"num_workers"`      // 0 = GOMAXPROCS

	// DefaultN is used when a request has no n parameter. MaxN caps it.
	DefaultN int `koanf:"default_n"`
	MaxN     int `koanf:"max_n"`
}

// CacheConfig holds response cache settings
type CacheConfig struct {
	Enabled  bool          `koanf:"enabled"`
	TTL      time.Duration `koanf:"ttl"`
	Capacity int           `koanf:"capacity"`
}

// ReloadConfig controls scheduled snapshot rebuilds.
type ReloadConfig struct {
	Enabled bool `koanf:"enabled"`

	// Schedule is a cron expression or descriptor such as "@every 1h".
	Schedule string `koanf:"schedule"`

	// BuildTimeout bounds a single feed read and rebuild.
	BuildTimeout time.Duration `koanf:"build_timeout"`

	// Circuit breaker around the rebuild.
	BreakerMaxFailures uint32        `koanf:"breaker_max_failures"`
	BreakerTimeout     time.Duration `koanf:"breaker_timeout"`
}

// SecurityConfig holds CORS and rate limit settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// ImagesConfig maps products to image URLs.
type ImagesConfig struct {
	// StaticPrefix is prepended to every image file name. A path prefix is
	// also where Dir is served.
	StaticPrefix string `koanf:"static_prefix"`

	// Dir holds the image files. Empty disables serving them.
	Dir string `koanf:"dir"`

	// FallbackPattern formats the file name for unmapped products from the
	// product id.
	FallbackPattern string `koanf:"fallback_pattern"`

	// Names maps exact product names to image file names.
	Names map[string]string `koanf:"names"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration in priority order:
//  1. Built-in defaults
//  2. Config file (config.yaml if it exists, or the path in CONFIG_PATH)
//  3. Environment variables
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// FileName returns the image file for a product: the configured file for a
// known name, otherwise the fallback pattern applied to the id.
func (c *ImagesConfig) FileName(id int, name string) string {
	if file, ok := c.Names[name]; ok {
		return file
	}
	return fmt.Sprintf(c.FallbackPattern, id)
}
