// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import (
	"testing"

	"github.com/tomtom215/shelfwise/internal/catalog"
)

func TestPriceBucket(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{0, "very_cheap"},
		{499.99, "very_cheap"},
		{500, "cheap"},
		{1500, "midrange"},
		{3999, "midrange"},
		{4000, "expensive"},
		{10000, "luxury"},
	}
	for _, tt := range tests {
		if got := PriceBucket(tt.price); got != tt.want {
			t.Errorf("PriceBucket(%v) = %q, want %q", tt.price, got, tt.want)
		}
	}
}

func TestProfile(t *testing.T) {
	item := catalog.Item{ID: 1, Name: "Smart Watch", Category: "Electronics", Brand: "Noise", Price: 2999, Rating: 4.1}

	if got, want := Profile(item, false), "Smart Watch Electronics Noise"; got != want {
		t.Errorf("Profile() = %q, want %q", got, want)
	}
	if got, want := Profile(item, true), "Smart Watch Electronics Noise midrange 4.1"; got != want {
		t.Errorf("Profile(priceBucket) = %q, want %q", got, want)
	}
}
