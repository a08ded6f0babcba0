// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package catalog

import "fmt"

// Rating is one (user, item, rating) triple from the ratings feed.
type Rating struct {
	UserID int     `json:"user_id"`
	ItemID int     `json:"item_id"`
	Value  float64 `json:"rating"`
}

// Ratings is the immutable rating table. Feed order is preserved so that
// order-sensitive duplicate handling stays deterministic.
type Ratings struct {
	ratings []Rating
	users   int
}

// NewRatings validates the triples and builds the store. Values must be
// finite and non-negative. An empty feed is valid and yields an empty store.
func NewRatings(ratings []Rating) (*Ratings, error) {
	stored := make([]Rating, len(ratings))
	users := make(map[int]struct{})

	for i, r := range ratings {
		if err := finite(r.Value); err != nil {
			return nil, fmt.Errorf("%w: rating %d (user %d, item %d): %w",
				ErrInvalidRecord, i+1, r.UserID, r.ItemID, err)
		}
		// Zero marks an unrated cell in the user-item matrix, so only
		// negative values are invalid.
		if r.Value < 0 {
			return nil, fmt.Errorf("%w: rating %d (user %d, item %d) value %.2f is negative",
				ErrInvalidRecord, i+1, r.UserID, r.ItemID, r.Value)
		}
		stored[i] = r
		users[r.UserID] = struct{}{}
	}

	return &Ratings{ratings: stored, users: len(users)}, nil
}

// Len returns the number of triples.
func (r *Ratings) Len() int {
	return len(r.ratings)
}

// Users returns the number of distinct users.
func (r *Ratings) Users() int {
	return r.users
}

// All returns a copy of the triples in feed order.
func (r *Ratings) All() []Rating {
	out := make([]Rating, len(r.ratings))
	copy(out, r.ratings)
	return out
}
