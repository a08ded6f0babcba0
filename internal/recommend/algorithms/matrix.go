// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package algorithms

import (
	"fmt"
	"sort"

	"github.com/tomtom215/shelfwise/internal/catalog"
)

// DuplicatePolicy decides how repeated (user, item) ratings collapse into a
// single cell.
type DuplicatePolicy string

const (
	// DuplicateMean averages every rating seen for the pair.
	DuplicateMean DuplicatePolicy = "mean"

	// DuplicateLast keeps the last rating in feed order.
	DuplicateLast DuplicatePolicy = "last"
)

// ParseDuplicatePolicy validates a policy name. Empty means DuplicateMean.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch DuplicatePolicy(s) {
	case "", DuplicateMean:
		return DuplicateMean, nil
	case DuplicateLast:
		return DuplicateLast, nil
	default:
		return "", fmt.Errorf("unknown duplicate policy %q (want %q or %q)", s, DuplicateMean, DuplicateLast)
	}
}

// UserItemMatrix is the dense user by item rating pivot. Rows are the
// distinct users in the ratings, columns the distinct rated items, both in
// ascending id order. A zero cell means unrated.
type UserItemMatrix struct {
	users      []int
	items      []int
	userIndex  map[int]int
	itemIndex  map[int]int
	rows       [][]float64
	duplicates int
}

type cellKey struct {
	user int
	item int
}

type cellAccumulator struct {
	sum   float64
	count int
	last  float64
}

// BuildUserItemMatrix pivots ratings. An empty input yields a matrix with no
// rows.
func BuildUserItemMatrix(ratings []catalog.Rating, policy DuplicatePolicy) *UserItemMatrix {
	cells := make(map[cellKey]*cellAccumulator, len(ratings))
	userSet := make(map[int]struct{})
	itemSet := make(map[int]struct{})
	duplicates := 0

	for _, r := range ratings {
		key := cellKey{user: r.UserID, item: r.ItemID}
		acc, ok := cells[key]
		if !ok {
			acc = &cellAccumulator{}
			cells[key] = acc
		} else {
			duplicates++
		}
		acc.sum += r.Value
		acc.count++
		acc.last = r.Value

		userSet[r.UserID] = struct{}{}
		itemSet[r.ItemID] = struct{}{}
	}

	m := &UserItemMatrix{
		users:      sortedKeys(userSet),
		items:      sortedKeys(itemSet),
		duplicates: duplicates,
	}
	m.userIndex = indexOf(m.users)
	m.itemIndex = indexOf(m.items)

	m.rows = make([][]float64, len(m.users))
	for i := range m.rows {
		m.rows[i] = make([]float64, len(m.items))
	}
	for key, acc := range cells {
		value := acc.sum / float64(acc.count)
		if policy == DuplicateLast {
			value = acc.last
		}
		m.rows[m.userIndex[key.user]][m.itemIndex[key.item]] = value
	}

	return m
}

func sortedKeys(set map[int]struct{}) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func indexOf(ids []int) map[int]int {
	index := make(map[int]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	return index
}

// Rows returns the number of users.
func (m *UserItemMatrix) Rows() int {
	return len(m.users)
}

// Cols returns the number of rated items.
func (m *UserItemMatrix) Cols() int {
	return len(m.items)
}

// Duplicates returns how many ratings collapsed into an existing cell.
func (m *UserItemMatrix) Duplicates() int {
	return m.duplicates
}

// UserRow returns the row index of a user.
func (m *UserItemMatrix) UserRow(userID int) (int, bool) {
	i, ok := m.userIndex[userID]
	return i, ok
}

// UserAt returns the user id of row i.
func (m *UserItemMatrix) UserAt(i int) int {
	return m.users[i]
}

// ItemAt returns the item id of column j.
func (m *UserItemMatrix) ItemAt(j int) int {
	return m.items[j]
}

// Items returns the column item ids.
func (m *UserItemMatrix) Items() []int {
	out := make([]int, len(m.items))
	copy(out, m.items)
	return out
}

// Row returns the ratings of user row i. The slice must not be modified.
func (m *UserItemMatrix) Row(i int) []float64 {
	return m.rows[i]
}

// RatedItems returns the ids of items the user rated above zero. Unknown
// users have no rated items.
func (m *UserItemMatrix) RatedItems(userID int) map[int]struct{} {
	rated := make(map[int]struct{})
	i, ok := m.userIndex[userID]
	if !ok {
		return rated
	}
	for j, v := range m.rows[i] {
		if isRated(v) {
			rated[m.items[j]] = struct{}{}
		}
	}
	return rated
}

// isRated reports whether a matrix cell holds a rating. Zero cells are
// unrated; ratings are validated non-negative before they reach the matrix.
func isRated(v float64) bool {
	return v > 0
}

// UserSimilarity computes the cosine similarity between every pair of user
// rows, zero-filled cells included.
func (m *UserItemMatrix) UserSimilarity(numWorkers int) *Matrix {
	return BuildSymmetric(SymmetricConfig{
		Size: len(m.rows),
		Pair: func(i, j int) float64 {
			return CosineDense(m.rows[i], m.rows[j])
		},
		Diagonal: func(i int) float64 {
			for _, v := range m.rows[i] {
				if isRated(v) {
					return 1
				}
			}
			return 0
		},
		NumWorkers: numWorkers,
	})
}
