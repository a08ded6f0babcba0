// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

import (
	"strconv"
	"strings"

	"github.com/tomtom215/shelfwise/internal/catalog"
)

// PriceBucket names the price band of an item.
func PriceBucket(price float64) string {
	switch {
	case price < 500:
		return "very_cheap"
	case price < 1500:
		return "cheap"
	case price < 4000:
		return "midrange"
	case price < 10000:
		return "expensive"
	default:
		return "luxury"
	}
}

// Profile returns the text used to vectorize an item: name, category and
// brand joined by single spaces, optionally followed by the price bucket and
// the item rating.
func Profile(item catalog.Item, withPriceBucket bool) string {
	parts := []string{item.Name, item.Category, item.Brand}
	if withPriceBucket {
		parts = append(parts, PriceBucket(item.Price), strconv.FormatFloat(item.Rating, 'f', -1, 64))
	}
	return strings.Join(parts, " ")
}
