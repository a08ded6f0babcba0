// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package algorithms

import "sort"

// DefaultNeighbors is the user neighborhood size.
const DefaultNeighbors = 9

// Neighbor is a similar user row.
type Neighbor struct {
	Row        int
	Similarity float64
}

// TopNeighbors returns the k rows most similar to self, excluding self and
// rows with non-positive similarity. Ties are broken by ascending row, which
// is ascending user id in a UserItemMatrix.
func TopNeighbors(sim *Matrix, self, k int) []Neighbor {
	if k <= 0 || self < 0 || self >= sim.Len() {
		return nil
	}

	row := sim.Row(self)
	neighbors := make([]Neighbor, 0, len(row))
	for j, s := range row {
		if j == self || s <= 0 {
			continue
		}
		neighbors = append(neighbors, Neighbor{Row: j, Similarity: s})
	}

	sort.Slice(neighbors, func(a, b int) bool {
		if neighbors[a].Similarity != neighbors[b].Similarity {
			return neighbors[a].Similarity > neighbors[b].Similarity
		}
		return neighbors[a].Row < neighbors[b].Row
	})

	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	return neighbors
}

// Prediction is a neighborhood estimate for one unrated item.
type Prediction struct {
	ItemID  int
	Score   float64
	RatedBy int
}

// PredictNeighborhoodMean scores every item the user has not rated by the
// plain mean of the neighbors' positive ratings. Items no neighbor rated are
// skipped. Results are ordered by score descending, then rated-by count
// descending, then item id ascending.
func PredictNeighborhoodMean(m *UserItemMatrix, userRow int, neighbors []Neighbor) []Prediction {
	if len(neighbors) == 0 {
		return nil
	}

	own := m.Row(userRow)
	predictions := make([]Prediction, 0)

	for j, v := range own {
		if isRated(v) {
			continue
		}

		var sum float64
		count := 0
		for _, n := range neighbors {
			if r := m.Row(n.Row)[j]; isRated(r) {
				sum += r
				count++
			}
		}
		if count == 0 {
			continue
		}

		predictions = append(predictions, Prediction{
			ItemID:  m.ItemAt(j),
			Score:   sum / float64(count),
			RatedBy: count,
		})
	}

	SortPredictions(predictions)
	return predictions
}

// SortPredictions orders predictions by score, rated-by count and item id.
func SortPredictions(predictions []Prediction) {
	sort.Slice(predictions, func(a, b int) bool {
		pa, pb := predictions[a], predictions[b]
		if pa.Score != pb.Score {
			return pa.Score > pb.Score
		}
		if pa.RatedBy != pb.RatedBy {
			return pa.RatedBy > pb.RatedBy
		}
		return pa.ItemID < pb.ItemID
	})
}
