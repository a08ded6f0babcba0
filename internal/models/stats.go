// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package models

import "time"

// HealthStatus represents the health check response
type HealthStatus struct {
	Status          string  `json:"status"`
	Version         string  `json:"version"`
	EngineReady     bool    `json:"engine_ready"`
	SnapshotVersion int64   `json:"snapshot_version,omitempty"`
	Uptime          float64 `json:"uptime_seconds"`
}

// EngineStats describes the serving snapshot.
type EngineStats struct {
	SnapshotVersion int64     `json:"snapshot_version"`
	BuiltAt         time.Time `json:"built_at"`
	BuildTimeMS     int64     `json:"build_time_ms"`
	Items           int       `json:"items"`
	Ratings         int       `json:"ratings"`
	Users           int       `json:"users"`
	RatedItems      int       `json:"rated_items"`
	Duplicates      int       `json:"duplicate_ratings"`
	OrphanRatings   int       `json:"orphan_ratings"`
	VocabularySize  int       `json:"vocabulary_size"`
	EmptyProfiles   int       `json:"empty_profiles"`

	// Engine settings the snapshot was built with.
	Neighbors          int    `json:"neighbors"`
	MaxFeatures        int    `json:"max_features"`
	HybridOverfetch    int    `json:"hybrid_overfetch"`
	DuplicatePolicy    string `json:"duplicate_policy"`
	PriceBucketProfile bool   `json:"price_bucket_profile"`
}
