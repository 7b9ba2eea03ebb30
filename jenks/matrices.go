// SPDX-License-Identifier: MIT

package jenks

import (
	"fmt"
	"math"

	"github.com/katalvlaran/onedcluster/matrix"
)

// tables holds the natural-breaks dynamic program.
//   - lowerLimits (LC) [l][j]: 1-based start of the last class when the first
//     l values are split into j classes.
//   - variances (OP) [l][j]: the matching least total variance.
//
// The tables built for k classes serve every class count up to k.
type tables struct {
	lowerLimits *matrix.Dense[int]
	variances   *matrix.Dense[float64]
}

// fillTables computes LC and OP for the ascending sample d (0-based) and
// up to classes classes.
//
// Algorithm Outline:
//  1. Row 1 is a single value: LC=1, OP=0. Rows 2..n start at OP=+Inf.
//  2. For every end l = 2..n, grow the trailing run d[l-m..l-1] for
//     m = 1..l, keeping its sum, sum of squares and weight, and derive its
//     variance as Σx² − (Σx)²/w.
//  3. For every class count j = 2..classes, a run that starts after the first
//     value competes with OP[l][j] as variance + OP[start-1][j-1]; the run
//     replaces the incumbent on >=, so on ties the longer run wins.
//  4. Column 1 takes the variance of the whole prefix.
//
// Complexity:
//
//	Time   = O(classes·n²)
//	Memory = O(classes·n)
func fillTables(d []float64, classes int) (tables, error) {
	rows, cols := len(d), classes

	lc, err := matrix.NewDense[int](rows+1, cols+1)
	if err != nil {
		return tables{}, fmt.Errorf("jenks: lower class limits %dx%d: %w", rows+1, cols+1, err)
	}
	op, err := matrix.NewDense[float64](rows+1, cols+1)
	if err != nil {
		return tables{}, fmt.Errorf("jenks: variance combinations %dx%d: %w", rows+1, cols+1, err)
	}

	for j := 1; j <= cols; j++ {
		if err = lc.Set(1, j, 1); err != nil {
			return tables{}, fmt.Errorf("jenks: seed lower class limits: %w", err)
		}
	}
	op.Fill(math.Inf(1))
	clear(op.Row(0))
	clear(op.Row(1))

	for l := 2; l <= rows; l++ {
		lcRow, opRow := lc.Row(l), op.Row(l)

		var (
			sum      float64 // sum of the trailing run
			sumSq    float64 // sum of squares of the trailing run
			weight   float64 // length of the trailing run
			variance float64 // Σx² − (Σx)²/w of the trailing run
		)
		for m := 1; m <= l; m++ {
			start := l - m + 1 // 1-based first index of the run
			val := d[start-1]

			weight++
			sum += val
			sumSq += val * val
			variance = sumSq - (sum*sum)/weight

			before := start - 1
			if before == 0 {
				continue
			}
			prev := op.Row(before)
			for j := 2; j <= cols; j++ {
				if opRow[j] >= variance+prev[j-1] {
					lcRow[j] = start
					opRow[j] = variance + prev[j-1]
				}
			}
		}

		lcRow[1] = 1
		opRow[1] = variance
	}

	return tables{lowerLimits: lc, variances: op}, nil
}
