// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package recommend

// HybridRecommendations merges collaborative and content signals with an
// expand-and-filter pass:
//
//  1. fetch n*HybridOverfetch collaborative candidates
//  2. keep each candidate in first-seen order and insert its single closest
//     content neighbor right after it
//  3. drop anything the user already rated and truncate to n
//
// Collaborative signal drives the order; content neighbors add diversity and
// cover items nobody in the neighborhood rated.
func (e *Engine) HybridRecommendations(userID, n int) (res Result) {
	defer e.guard("hybrid", &res)

	if n <= 0 {
		return emptyResult()
	}
	// The catalog bounds any useful over-fetch.
	fetch := min(n, e.catalog.Len()) * e.config.HybridOverfetch

	rated := e.users.RatedItems(userID)
	candidates := e.CollaborativeRecommendations(userID, fetch)
	if candidates.Len() == 0 {
		return emptyResult()
	}

	seen := make(map[int]struct{}, candidates.Len()*2)
	merged := make([]Recommendation, 0, candidates.Len()*2)

	for _, cand := range candidates.Recommendations {
		if _, ok := seen[cand.Item.ID]; !ok {
			seen[cand.Item.ID] = struct{}{}
			cand.Source = SourceHybridCollaborative
			merged = append(merged, cand)
		}

		similar := e.ContentRecommendations(cand.Item.ID, 1)
		for _, sim := range similar.Recommendations {
			if _, ok := seen[sim.Item.ID]; ok {
				continue
			}
			if _, ok := rated[sim.Item.ID]; ok {
				continue
			}
			seen[sim.Item.ID] = struct{}{}
			sim.Source = SourceHybridContent
			merged = append(merged, sim)
		}
	}

	out := make([]Recommendation, 0, min(n, len(merged)))
	for _, rec := range merged {
		if _, ok := rated[rec.Item.ID]; ok {
			continue
		}
		out = append(out, rec)
		if len(out) == n {
			break
		}
	}

	outcome := OutcomePersonalized
	if candidates.Outcome == OutcomeFallback {
		outcome = OutcomeFallback
	}
	return newResult(out, outcome)
}
