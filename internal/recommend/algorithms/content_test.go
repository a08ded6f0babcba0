// Shelfwise - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfwise

package algorithms

import "testing"

func TestContentIndex_Similar(t *testing.T) {
	ids := []int{1, 2, 3}
	profiles := []string{
		"Wireless Earbuds Audio BrandA",
		"Bluetooth Speaker Audio BrandA",
		"Office Chair Furniture BrandB",
	}
	idx := BuildContentIndex(ids, profiles, ContentConfig{})

	tests := []struct {
		name    string
		row     int
		n       int
		wantIDs []int
	}{
		{name: "shared terms rank first", row: 0, n: 2, wantIDs: []int{2, 3}},
		{name: "truncates to n", row: 0, n: 1, wantIDs: []int{2}},
		{name: "n larger than catalog", row: 2, n: 10, wantIDs: []int{1, 2}},
		{name: "non-positive n", row: 0, n: 0, wantIDs: nil},
		{name: "row out of range", row: 9, n: 2, wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idx.Similar(tt.row, tt.n)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Similar() returned %d results, want %d", len(got), len(tt.wantIDs))
			}
			for i, s := range got {
				if s.Index == tt.row {
					t.Errorf("Similar() included the reference row")
				}
				if ids[s.Index] != tt.wantIDs[i] {
					t.Errorf("result[%d] = item %d, want %d", i, ids[s.Index], tt.wantIDs[i])
				}
			}
		})
	}
}

func TestContentIndex_MatrixProperties(t *testing.T) {
	ids := []int{10, 20, 30, 40}
	profiles := []string{"Mixer Grinder Kitchen", "Induction Stove Kitchen", "", "Pressure Cooker Kitchen"}
	idx := BuildContentIndex(ids, profiles, ContentConfig{NumWorkers: 2})

	m := idx.Matrix()
	for i := 0; i < m.Len(); i++ {
		if m.At(i, i) != 1 {
			t.Errorf("diagonal[%d] = %f, want 1", i, m.At(i, i))
		}
		for j := 0; j < m.Len(); j++ {
			if m.At(i, j) != m.At(j, i) {
				t.Errorf("matrix not symmetric at [%d][%d]", i, j)
			}
			if m.At(i, j) < 0 || m.At(i, j) > 1 {
				t.Errorf("[%d][%d] = %f outside [0,1]", i, j, m.At(i, j))
			}
		}
	}

	// The empty profile is unrelated to everything else.
	for j := 0; j < m.Len(); j++ {
		if j != 2 && m.At(2, j) != 0 {
			t.Errorf("empty profile similarity [2][%d] = %f, want 0", j, m.At(2, j))
		}
	}
	if idx.EmptyProfiles() != 1 {
		t.Errorf("EmptyProfiles() = %d, want 1", idx.EmptyProfiles())
	}
}

func TestContentIndex_TieBreakByID(t *testing.T) {
	// Items 7 and 5 are equally similar to item 9; the lower id comes first.
	ids := []int{9, 7, 5}
	profiles := []string{"lamp", "lamp", "lamp"}
	idx := BuildContentIndex(ids, profiles, ContentConfig{})

	got := idx.Similar(0, 2)
	if len(got) != 2 || ids[got[0].Index] != 5 || ids[got[1].Index] != 7 {
		t.Errorf("Similar() order = %+v, want items 5 then 7", got)
	}
}
