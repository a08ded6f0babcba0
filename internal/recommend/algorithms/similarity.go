// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package algorithms

import (
	"math"
	"runtime"
	"sync"
)

// CosineSparse returns the cosine similarity of two sparse vectors.
// A zero vector has similarity 0 with everything.
func CosineSparse(a, b SparseVector) float64 {
	if a.IsZero() || b.IsZero() {
		return 0
	}

	var dot, normA, normB float64
	for _, v := range a.Values {
		normA += v * v
	}
	for _, v := range b.Values {
		normB += v * v
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			dot += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// CosineDense returns the cosine similarity of two equal-length vectors.
// Mismatched lengths and zero vectors yield 0.
func CosineDense(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Matrix is a dense square matrix stored row-major.
type Matrix struct {
	n    int
	data []float64
}

// Len returns the matrix dimension.
func (m *Matrix) Len() int {
	if m == nil {
		return 0
	}
	return m.n
}

// At returns entry [i][j].
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Row returns row i. The slice aliases the matrix and must not be modified.
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.n : (i+1)*m.n]
}

// SymmetricConfig describes how to fill a symmetric similarity matrix.
type SymmetricConfig struct {
	// Size is the matrix dimension.
	Size int

	// Pair computes the similarity of rows i and j for i < j.
	Pair func(i, j int) float64

	// Diagonal computes entry [i][i].
	Diagonal func(i int) float64

	// NumWorkers is the number of parallel workers. Zero means GOMAXPROCS.
	NumWorkers int
}

// BuildSymmetric fills a symmetric matrix. Each worker owns a stride of rows
// and writes both [i][j] and its mirror [j][i] for j > i, so no two workers
// ever touch the same cell.
func BuildSymmetric(cfg SymmetricConfig) *Matrix {
	n := cfg.Size
	m := &Matrix{n: n, data: make([]float64, n*n)}
	if n == 0 {
		return m
	}

	workers := cfg.NumWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for i := offset; i < n; i += workers {
				m.data[i*n+i] = cfg.Diagonal(i)
				for j := i + 1; j < n; j++ {
					s := cfg.Pair(i, j)
					m.data[i*n+j] = s
					m.data[j*n+i] = s
				}
			}
		}(w)
	}
	wg.Wait()

	return m
}

// clampUnit bounds a similarity to [0, 1], absorbing floating point drift.
func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
