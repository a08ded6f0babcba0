// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateData(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateReload(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	if err := c.validateImages(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateData() error {
	if strings.TrimSpace(c.Data.Dir) == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	if c.Data.ProductsFile == "" {
		return fmt.Errorf("DATA_PRODUCTS_FILE is required")
	}
	if c.Data.RatingsFile == "" {
		return fmt.Errorf("DATA_RATINGS_FILE is required")
	}
	if c.Data.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be non-negative")
	}
	return nil
}

// Engine limits
const (
	maxFeaturesLimit = 100000
	maxNLimit        = 1000
)

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.MaxFeatures < 1 || r.MaxFeatures > maxFeaturesLimit {
		return fmt.Errorf("RECOMMEND_MAX_FEATURES must be between 1 and %d", maxFeaturesLimit)
	}
	if r.Neighbors < 1 {
		return fmt.Errorf("RECOMMEND_NEIGHBORS must be at least 1")
	}
	if r.HybridOverfetch < 1 {
		return fmt.Errorf("RECOMMEND_HYBRID_OVERFETCH must be at least 1")
	}
	if r.NumWorkers < 0 {
		return fmt.Errorf("RECOMMEND_WORKERS must be non-negative")
	}
	if r.DuplicatePolicy != "mean" && r.DuplicatePolicy != "last" {
		return fmt.Errorf("RECOMMEND_DUPLICATE_POLICY must be one of: mean, last")
	}
	if r.MaxN < 1 || r.MaxN > maxNLimit {
		return fmt.Errorf("RECOMMEND_MAX_N must be between 1 and %d", maxNLimit)
	}
	if r.DefaultN < 1 || r.DefaultN > r.MaxN {
		return fmt.Errorf("RECOMMEND_DEFAULT_N must be between 1 and RECOMMEND_MAX_N (%d)", r.MaxN)
	}
	return nil
}

func (c *Config) validateCache() error {
	if !c.Cache.Enabled {
		return nil
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive when the cache is enabled")
	}
	if c.Cache.Capacity < 1 {
		return fmt.Errorf("CACHE_CAPACITY must be at least 1 when the cache is enabled")
	}
	return nil
}

func (c *Config) validateReload() error {
	if !c.Reload.Enabled {
		return nil
	}
	if _, err := cron.ParseStandard(c.Reload.Schedule); err != nil {
		return fmt.Errorf("RELOAD_SCHEDULE is invalid: %w", err)
	}
	if c.Reload.BuildTimeout <= 0 {
		return fmt.Errorf("RELOAD_BUILD_TIMEOUT must be positive")
	}
	if c.Reload.BreakerMaxFailures < 1 {
		return fmt.Errorf("RELOAD_BREAKER_MAX_FAILURES must be at least 1")
	}
	if c.Reload.BreakerTimeout <= 0 {
		return fmt.Errorf("RELOAD_BREAKER_TIMEOUT must be positive")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateImages() error {
	if !strings.Contains(c.Images.FallbackPattern, "%d") {
		return fmt.Errorf("IMAGES_FALLBACK_PATTERN must contain %%d for the product id")
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// HasWildcardCORS reports whether any origin is allowed.
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
