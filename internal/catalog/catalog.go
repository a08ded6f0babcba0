// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

// Package catalog holds the canonical product and rating records and the
// immutable in-memory stores built from the catalog and ratings feeds.
//
// Both stores validate their input once at construction. A store that was
// constructed successfully is never modified afterwards and is safe for
// unsynchronized concurrent reads.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Errors returned when a feed cannot be turned into a store. All of them are
// initialization-time failures.
var (
	ErrEmptyCatalog  = errors.New("catalog is empty")
	ErrDuplicateItem = errors.New("duplicate item id")
	ErrInvalidRecord = errors.New("invalid record")

	errNonFinite = errors.New("value is not a finite number")
)

// MaxItemRating is the upper bound of an item's catalog rating.
const MaxItemRating = 5.0

// Item is a catalog product.
type Item struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
}

// Catalog is the immutable item table. Items are held in ascending id order
// and each item's position in that order is its dense index.
type Catalog struct {
	items []Item
	index map[int]int
}

// NewCatalog validates items and builds the store. The input slice is not
// retained.
func NewCatalog(items []Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}

	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	index := make(map[int]int, len(sorted))
	for i := range sorted {
		item := &sorted[i]
		if err := validateItem(item); err != nil {
			return nil, err
		}
		if _, exists := index[item.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateItem, item.ID)
		}
		index[item.ID] = i
	}

	return &Catalog{items: sorted, index: index}, nil
}

func validateItem(item *Item) error {
	if err := finite(item.Price); err != nil {
		return fmt.Errorf("%w: item %d price: %w", ErrInvalidRecord, item.ID, err)
	}
	if err := finite(item.Rating); err != nil {
		return fmt.Errorf("%w: item %d rating: %w", ErrInvalidRecord, item.ID, err)
	}
	if item.Price < 0 {
		return fmt.Errorf("%w: item %d price %.2f is negative", ErrInvalidRecord, item.ID, item.Price)
	}
	if item.Rating < 0 || item.Rating > MaxItemRating {
		return fmt.Errorf("%w: item %d rating %.2f outside [0,5]", ErrInvalidRecord, item.ID, item.Rating)
	}
	return nil
}

func finite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errNonFinite
	}
	return nil
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Get looks up an item by id.
func (c *Catalog) Get(id int) (Item, bool) {
	i, ok := c.index[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Index returns the dense index of an item id.
func (c *Catalog) Index(id int) (int, bool) {
	i, ok := c.index[id]
	return i, ok
}

// At returns the item at dense index i.
func (c *Catalog) At(i int) Item {
	return c.items[i]
}

// Items returns a copy of all items in ascending id order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}
