// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package algorithms

import "sort"

// PopularityRanking is the catalog ordered by raw item rating, descending,
// ties broken by ascending id. It is computed once per snapshot.
type PopularityRanking struct {
	order []int // item ids
}

// NewPopularityRanking ranks ids by their ratings. ids[i] has ratings[i].
func NewPopularityRanking(ids []int, ratings []float64) *PopularityRanking {
	idx := make([]int, len(ids))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		ra, rb := ratings[idx[a]], ratings[idx[b]]
		if ra != rb {
			return ra > rb
		}
		return ids[idx[a]] < ids[idx[b]]
	})

	order := make([]int, len(idx))
	for i, k := range idx {
		order[i] = ids[k]
	}
	return &PopularityRanking{order: order}
}

// Top returns up to n item ids, skipping any id in exclude.
func (p *PopularityRanking) Top(n int, exclude map[int]struct{}) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, 0, min(n, len(p.order)))
	for _, id := range p.order {
		if _, skip := exclude[id]; skip {
			continue
		}
		out = append(out, id)
		if len(out) == n {
			break
		}
	}
	return out
}
