// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

// Package algorithms implements the numeric building blocks of the
// recommendation engine.
//
// # Components
//
//   - TF-IDF: Tokenize, FitTransform (bounded vocabulary, smoothed idf, L2 norm)
//   - Similarity: cosine over sparse and dense vectors, symmetric matrices
//     built by a fixed pool of workers
//   - UserItemMatrix: dense user by item rating pivot (0 = unrated)
//   - Neighbors: top-k most similar rows with deterministic tie-breaking
//   - Scoring: neighborhood mean prediction and popularity ranking
//
// # Determinism
//
// Every ordering in this package has a total tie-break on ids, so identical
// input always yields identical output regardless of worker scheduling.
//
// # Thread Safety
//
// Built structures are never mutated after construction and can be read
// concurrently without locks.
package algorithms
