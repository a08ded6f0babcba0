// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

// Package recommend builds and serves immutable recommendation snapshots.
//
// # Architecture
//
// An Engine is a snapshot computed in one pass from the catalog and ratings
// stores:
//
//   - Content: item profiles (name, category, brand) are TF-IDF vectorized
//     and compared pairwise by cosine similarity
//   - Collaborative: ratings are pivoted into a user by item matrix, users are
//     compared by cosine similarity, and unrated items are scored by the mean
//     rating of the nearest neighbors
//   - Popularity: catalog items ranked by their own rating, used whenever a
//     personalized list cannot be produced
//   - Hybrid: collaborative candidates, each expanded with its closest content
//     neighbor, with already-rated items filtered out
//
// # Usage
//
//	engine, err := recommend.Build(items, ratings, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    // fatal: never serve a partially built engine
//	}
//	holder := recommend.NewHolder(engine)
//
//	res := holder.Current().HybridRecommendations(userID, 5)
//
// # Thread Safety
//
// An Engine is never modified after Build returns, so its read operations
// need no locking. Rebuilding produces a new Engine that is installed with
// Holder.Swap; readers holding the previous snapshot keep using it
// undisturbed.
package recommend
