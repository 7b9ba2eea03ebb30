// SPDX-License-Identifier: MIT

package ckmeans

import (
	"fmt"

	"github.com/katalvlaran/onedcluster/matrix"
)

// tables holds the filled dynamic-programming state.
//   - distance[k][i]: least withinss when splitting x[1..i] into k clusters.
//   - backtrack[k][i]: first index of the k-th cluster in that optimum.
type tables struct {
	distance  *matrix.Dense[float64]
	backtrack *matrix.Dense[int]
}

// fillTables runs the Ckmeans dynamic program.
//
// x is the sorted sample addressed 1-based: x[0] is an unused sentinel and
// x[1..n] hold the values. Both tables are (kmax+1)×(n+1).
//
// Algorithm Outline:
//  1. Row k=1 accumulates the withinss of the prefix x[1..i] with the online
//     mean/variance recurrence; every prefix starts at 1.
//  2. Row k>1, column i scans the last cluster x[j..i] for j = i down to k,
//     growing its withinss d online. The cost of the split is
//     d + D[k-1][j-1] (d alone at j = 1). j = i seeds the optimum; j = 1
//     replaces it on <=, every other j only on a strict <.
//
// Complexity:
//
//	Time   = O(kmax·n²)
//	Memory = O(kmax·n)
func fillTables(x []float64, kmax int) (tables, error) {
	n := len(x) - 1

	distance, err := matrix.NewDense[float64](kmax+1, n+1)
	if err != nil {
		return tables{}, fmt.Errorf("ckmeans: distance table %dx%d: %w", kmax+1, n+1, err)
	}
	backtrack, err := matrix.NewDense[int](kmax+1, n+1)
	if err != nil {
		return tables{}, fmt.Errorf("ckmeans: backtrack table %dx%d: %w", kmax+1, n+1, err)
	}

	// A single point is its own cluster whatever k is.
	for k := 1; k <= kmax; k++ {
		if err = backtrack.Set(k, 1, 1); err != nil {
			return tables{}, fmt.Errorf("ckmeans: seed backtrack row %d: %w", k, err)
		}
	}

	fillFirstRow(x, distance.Row(1), backtrack.Row(1))

	for k := 2; k <= kmax; k++ {
		fillRow(x, distance.Row(k-1), distance.Row(k), backtrack.Row(k), k)
	}

	return tables{distance: distance, backtrack: backtrack}, nil
}

// fillFirstRow fills D[1][2..n]: the withinss of every prefix as one cluster.
func fillFirstRow(x, d []float64, b []int) {
	n := len(x) - 1
	mean := x[1]
	for i := 2; i <= n; i++ {
		fi := float64(i)
		dev := x[i] - mean
		d[i] = d[i-1] + float64(i-1)/fi*(dev*dev)
		mean = (float64(i-1)*mean + x[i]) / fi
		b[i] = 1
	}
}

// fillRow fills D[k][max(2,k)..n] from the completed row k-1.
func fillRow(x, prev, d []float64, b []int, k int) {
	n := len(x) - 1
	for i := max(2, k); i <= n; i++ {
		var (
			ss   float64 // withinss of x[j..i]
			mean float64 // mean of x[j..i]
		)
		for j := i; j >= k; j-- {
			w := float64(i - j) // points already in the run
			dev := x[j] - mean
			ss += w / (w + 1) * (dev * dev)
			mean = (x[j] + w*mean) / (w + 1)

			switch {
			case j == i:
				d[i] = ss
				b[i] = j
				if j != 1 {
					d[i] += prev[j-1]
				}
			case j == 1:
				// No D[k-1][0] term: the run covers the whole prefix.
				if ss <= d[i] {
					d[i] = ss
					b[i] = j
				}
			case ss+prev[j-1] < d[i]:
				d[i] = ss + prev[j-1]
				b[i] = j
			}
		}
	}
}
