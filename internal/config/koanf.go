// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/shelfwise/config.yaml",
	"/etc/shelfwise/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultImageNames maps the stock catalog product names to their images.
func DefaultImageNames() map[string]string {
	names := []string{
		"Wireless Earbuds",
		"Bluetooth Speaker",
		"Smart Watch",
		"Fitness Band",
		"Laptop Backpack",
		"Men's Running Shoes",
		"Women's Casual Shoes",
		"Cotton T-Shirt",
		"Jeans",
		"DSLR Camera",
		"USB-C Cable",
		"Portable Hard Disk",
		"Oven Toaster Grill",
		"Mixer Grinder",
		"Induction Stove",
		"Pressure Cooker",
		"Office Chair",
		"Study Table",
		"Bed Mattress",
		"Table Lamp",
	}
	m := make(map[string]string, len(names))
	for i, name := range names {
		m[name] = fmt.Sprintf("product_%d.png", i+1)
	}
	return m
}

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8000,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Data: DataConfig{
			Dir:              "data",
			ProductsFile:     "products.csv",
			RatingsFile:      "ratings.csv",
			UsersFile:        "users.csv",
			TransactionsFile: "transactions.csv",
			MaxMemory:        "1GB",
			Threads:          0, // 0 = use runtime.NumCPU()
		},
		Recommend: RecommendConfig{
			MaxFeatures:        100,
			Neighbors:          9,
			HybridOverfetch:    3,
			PriceBucketProfile: false,
			DuplicatePolicy:    "mean",
			NumWorkers:         0,
			DefaultN:           5,
			MaxN:               50,
		},
		Cache: CacheConfig{
			Enabled:  true,
			TTL:      5 * time.Minute,
			Capacity: 10000,
		},
		// Snapshots are built once at startup unless reloads are enabled.
		Reload: ReloadConfig{
			Enabled:            false,
			Schedule:           "@every 1h",
			BuildTimeout:       2 * time.Minute,
			BreakerMaxFailures: 3,
			BreakerTimeout:     10 * time.Minute,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
		},
		Images: ImagesConfig{
			StaticPrefix:    "/static/images/",
			Dir:             "static/images",
			FallbackPattern: "product_%d.jpg",
			Names:           DefaultImageNames(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// HTTP_PORT -> server.port, RECOMMEND_MAX_N -> recommend.max_n
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	mergeDefaultImageNames(&cfg.Images)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// mergeDefaultImageNames adds every stock product image the configured map
// does not already name. The structs provider stores the default map as a
// single value, so a file that sets images.names would otherwise replace it.
func mergeDefaultImageNames(images *ImagesConfig) {
	if images.Names == nil {
		images.Names = make(map[string]string)
	}
	for name, file := range DefaultImageNames() {
		if _, ok := images.Names[name]; !ok {
			images.Names[name] = file
		}
	}
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while YAML already yields slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to config keys.
var envMappings = map[string]string{
	// Server mappings
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",

	// Data mappings
	"data_dir":               "data.dir",
	"data_products_file":     "data.products_file",
	"data_ratings_file":      "data.ratings_file",
	"data_users_file":        "data.users_file",
	"data_transactions_file": "data.transactions_file",
	"duckdb_max_memory":      "data.max_memory",
	"duckdb_threads":         "data.threads",

	// Recommendation engine mappings
	"recommend_max_features":         "recommend.max_features",
	"recommend_neighbors":            "recommend.neighbors",
	"recommend_hybrid_overfetch":     "recommend.hybrid_overfetch",
	"recommend_price_bucket_profile": "recommend.price_bucket_profile",
	"recommend_duplicate_policy":     "recommend.duplicate_policy",
	"recommend_workers":              "recommend.num_workers",
	"recommend_default_n":            "recommend.default_n",
	"recommend_max_n":                "recommend.max_n",

	// Cache mappings
	"cache_enabled":  "cache.enabled",
	"cache_ttl":      "cache.ttl",
	"cache_capacity": "cache.capacity",

	// Reload mappings
	"reload_enabled":              "reload.enabled",
	"reload_schedule":             "reload.schedule",
	"reload_build_timeout":        "reload.build_timeout",
	"reload_breaker_max_failures": "reload.breaker_max_failures",
	"reload_breaker_timeout":      "reload.breaker_timeout",

	// Security mappings
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Image mappings
	"images_static_prefix":    "images.static_prefix",
	"images_dir":              "images.dir",
	"images_fallback_pattern": "images.fallback_pattern",

	// Logging mappings
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped keys return an empty string so unrelated environment variables
// never reach the configuration.
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
