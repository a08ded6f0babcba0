// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import (
	"fmt"

	"github.com/tomtom215/shelfwise/internal/recommend/algorithms"
)

// Config contains the tunables of a snapshot build.
type Config struct {
	// MaxFeatures caps the content vocabulary.
	MaxFeatures int `json:"max_features"`

	// Neighbors is the collaborative neighborhood size.
	Neighbors int `json:"neighbors"`

	// HybridOverfetch multiplies n when requesting collaborative candidates
	// for the hybrid merge.
	HybridOverfetch int `json:"hybrid_overfetch"`

	// PriceBucketProfile appends the price bucket and item rating to every
	// item profile.
	PriceBucketProfile bool `json:"price_bucket_profile"`

	// DuplicatePolicy resolves repeated (user, item) ratings: "mean" or "last".
	DuplicatePolicy string `json:"duplicate_policy"`

	// NumWorkers bounds the similarity build parallelism. Zero means GOMAXPROCS.
	NumWorkers int `json:"num_workers"`
}

// DefaultConfig returns the default build configuration.
func DefaultConfig() Config {
	return Config{
		MaxFeatures:     algorithms.DefaultMaxFeatures,
		Neighbors:       algorithms.DefaultNeighbors,
		HybridOverfetch: 3,
		DuplicatePolicy: string(algorithms.DuplicateMean),
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.MaxFeatures < 1 {
		return fmt.Errorf("max_features must be positive, got %d", c.MaxFeatures)
	}
	if c.Neighbors < 1 {
		return fmt.Errorf("neighbors must be positive, got %d", c.Neighbors)
	}
	if c.HybridOverfetch < 1 {
		return fmt.Errorf("hybrid_overfetch must be positive, got %d", c.HybridOverfetch)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("num_workers must be non-negative, got %d", c.NumWorkers)
	}
	if _, err := algorithms.ParseDuplicatePolicy(c.DuplicatePolicy); err != nil {
		return err
	}
	return nil
}
