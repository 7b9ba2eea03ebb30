// SPDX-License-Identifier: MIT

package ckmeans

import (
	"fmt"

	"github.com/katalvlaran/onedcluster/cluster"
	"github.com/katalvlaran/onedcluster/matrix"
)

// span is a cluster as an inclusive 1-based index range over the sorted sample.
type span struct {
	left, right int
}

// size returns the number of points in the span.
func (s span) size() int { return s.right - s.left + 1 }

// recoverSpans walks the backtrack table from (k, n) and returns the k spans in
// ascending order. Only rows 1..k are read, so the same table serves every
// k up to its kmax.
func recoverSpans(b *matrix.Dense[int], k, n int) ([]span, error) {
	spans := make([]span, k)
	right := n
	for c := k; c >= 1; c-- {
		left, err := b.At(c, right)
		if err != nil {
			return nil, fmt.Errorf("ckmeans: backtrack cluster %d: %w: %w", c, cluster.ErrInternalInvariant, err)
		}
		if left < 1 || left > right {
			return nil, fmt.Errorf("ckmeans: backtrack cluster %d: start %d outside [1,%d]: %w",
				c, left, right, cluster.ErrInternalInvariant)
		}
		spans[c-1] = span{left: left, right: right}
		if c > 1 {
			right = left - 1
		}
	}

	return spans, nil
}
