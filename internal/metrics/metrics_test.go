// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/products", "200"))

	RecordAPIRequest("GET", "/api/v1/products", "200", 3*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/products", "200"))
	if after != before+1 {
		t.Errorf("api_requests_total = %v, want %v", after, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active requests = %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests = %v, want %v", got, before)
	}
}

func TestRecordRecommendation(t *testing.T) {
	tests := []struct {
		operation string
		outcome   string
	}{
		{"content", OutcomePersonalized},
		{"collaborative", OutcomeFallback},
		{"hybrid", OutcomeEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.operation+"/"+tt.outcome, func(t *testing.T) {
			counter := RecommendRequestsTotal.WithLabelValues(tt.operation, tt.outcome)
			before := testutil.ToFloat64(counter)

			RecordRecommendation(tt.operation, tt.outcome, time.Millisecond)

			if got := testutil.ToFloat64(counter); got != before+1 {
				t.Errorf("recommend_requests_total = %v, want %v", got, before+1)
			}
		})
	}
}

func TestRecordEngineBuild(t *testing.T) {
	RecordEngineBuild(7, 20, 11, 48, 120*time.Millisecond)

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"items", testutil.ToFloat64(EngineItems), 20},
		{"users", testutil.ToFloat64(EngineUsers), 11},
		{"vocabulary", testutil.ToFloat64(EngineVocabularySize), 48},
		{"version", testutil.ToFloat64(EngineSnapshotVersion), 7},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestRecordReload(t *testing.T) {
	before := testutil.ToFloat64(EngineReloadsTotal.WithLabelValues("failure"))
	RecordReload("failure")
	if got := testutil.ToFloat64(EngineReloadsTotal.WithLabelValues("failure")); got != before+1 {
		t.Errorf("engine_reloads_total{failure} = %v, want %v", got, before+1)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits)
	misses := testutil.ToFloat64(CacheMisses)

	RecordCacheLookup(true)
	RecordCacheLookup(false)
	RecordCacheLookup(false)

	if got := testutil.ToFloat64(CacheHits); got != hits+1 {
		t.Errorf("cache hits = %v, want %v", got, hits+1)
	}
	if got := testutil.ToFloat64(CacheMisses); got != misses+2 {
		t.Errorf("cache misses = %v, want %v", got, misses+2)
	}
}
