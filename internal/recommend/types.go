// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import (
	"time"

	"github.com/tomtom215/shelfwise/internal/catalog"
)

// Source identifies the signal that produced a recommendation.
type Source string

const (
	SourceContent             Source = "content"
	SourceCollaborative       Source = "collaborative"
	SourcePopularity          Source = "popularity"
	SourceHybridCollaborative Source = "hybrid_collaborative"
	SourceHybridContent       Source = "hybrid_content"
)

// Outcome summarizes how a recommendation list was produced.
type Outcome string

const (
	// OutcomePersonalized means the requested signal produced the list.
	OutcomePersonalized Outcome = "personalized"

	// OutcomeFallback means the popularity ranking was used instead.
	OutcomeFallback Outcome = "fallback"

	// OutcomeEmpty means no recommendation could be made.
	OutcomeEmpty Outcome = "empty"
)

// Recommendation is one ranked item.
type Recommendation struct {
	Item catalog.Item `json:"item"`

	// Score is the similarity for content results, the predicted rating for
	// collaborative results and the catalog rating for popularity results.
	Score float64 `json:"score"`

	// RatedBy is the number of neighbors behind a collaborative prediction.
	RatedBy int `json:"rated_by,omitempty"`

	Source Source `json:"source"`
}

// Result is an ordered recommendation list.
type Result struct {
	Recommendations []Recommendation
	Outcome         Outcome
}

// Items returns the recommended items in order.
func (r Result) Items() []catalog.Item {
	items := make([]catalog.Item, len(r.Recommendations))
	for i, rec := range r.Recommendations {
		items[i] = rec.Item
	}
	return items
}

// Len returns the number of recommendations.
func (r Result) Len() int {
	return len(r.Recommendations)
}

// BuildStats describes a built snapshot.
type BuildStats struct {
	Version        int64         `json:"version"`
	BuiltAt        time.Time     `json:"built_at"`
	Duration       time.Duration `json:"duration_ns"`
	Items          int           `json:"items"`
	Ratings        int           `json:"ratings"`
	Users          int           `json:"users"`
	RatedItems     int           `json:"rated_items"`
	Duplicates     int           `json:"duplicate_ratings"`
	OrphanRatings  int           `json:"orphan_ratings"`
	VocabularySize int           `json:"vocabulary_size"`
	EmptyProfiles  int           `json:"empty_profiles"`
}
