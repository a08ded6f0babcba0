// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package algorithms

import "sort"

// Scored is a row index with its score.
type Scored struct {
	Index int
	Score float64
}

// ContentConfig configures the content similarity index.
type ContentConfig struct {
	Vectorizer VectorizerConfig
	NumWorkers int
}

// ContentIndex holds the TF-IDF vectors of every item profile and the dense
// item by item cosine similarity matrix built from them.
//
// The diagonal is 1 for every item, including items whose profile produced
// an empty vector. Off-diagonal pairs involving an empty vector are 0.
type ContentIndex struct {
	ids        []int
	vectors    []SparseVector
	vectorizer *Vectorizer
	matrix     *Matrix
}

// BuildContentIndex vectorizes profiles and computes all pairwise
// similarities. ids[i] is the item id of profiles[i].
func BuildContentIndex(ids []int, profiles []string, cfg ContentConfig) *ContentIndex {
	vectorizer, vectors := FitTransform(profiles, cfg.Vectorizer)

	matrix := BuildSymmetric(SymmetricConfig{
		Size: len(profiles),
		Pair: func(i, j int) float64 {
			return clampUnit(CosineSparse(vectors[i], vectors[j]))
		},
		Diagonal:   func(int) float64 { return 1 },
		NumWorkers: cfg.NumWorkers,
	})

	idsCopy := make([]int, len(ids))
	copy(idsCopy, ids)

	return &ContentIndex{
		ids:        idsCopy,
		vectors:    vectors,
		vectorizer: vectorizer,
		matrix:     matrix,
	}
}

// Matrix returns the similarity matrix.
func (c *ContentIndex) Matrix() *Matrix {
	return c.matrix
}

// VocabularySize returns the number of terms in the fitted vocabulary.
func (c *ContentIndex) VocabularySize() int {
	return c.vectorizer.Len()
}

// EmptyProfiles returns the number of items whose vector is all zero.
func (c *ContentIndex) EmptyProfiles() int {
	count := 0
	for _, v := range c.vectors {
		if v.IsZero() {
			count++
		}
	}
	return count
}

// Similar returns up to n other rows ordered by descending similarity to
// row, ties broken by ascending item id. row itself is never returned.
func (c *ContentIndex) Similar(row, n int) []Scored {
	if n <= 0 || row < 0 || row >= c.matrix.Len() {
		return nil
	}

	sims := c.matrix.Row(row)
	candidates := make([]Scored, 0, len(sims)-1)
	for j, s := range sims {
		if j == row {
			continue
		}
		candidates = append(candidates, Scored{Index: j, Score: s})
	}

	sort.Slice(candidates, func(a, b int) bool {
		if candidates[a].Score != candidates[b].Score {
			return candidates[a].Score > candidates[b].Score
		}
		return c.ids[candidates[a].Index] < c.ids[candidates[b].Index]
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}
