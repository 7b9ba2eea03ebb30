// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Sample is an ascending, immutable copy of the values handed to an engine.
// Duplicates are kept; Distinct reports how many different values occur.
type Sample struct {
	values   []float64
	distinct int
}

// Prepare copies data, sorts it ascending and counts distinct values.
//
// Errors:
//   - ErrInvalidArgument for an empty sample or a NaN/±Inf value.
//
// Complexity: O(n log n).
func Prepare(data []float64) (Sample, error) {
	if len(data) == 0 {
		return Sample{}, fmt.Errorf("sample must not be empty: %w", ErrInvalidArgument)
	}
	if floats.HasNaN(data) {
		return Sample{}, fmt.Errorf("sample contains NaN: %w", ErrInvalidArgument)
	}
	for _, v := range data {
		if math.IsInf(v, 0) {
			return Sample{}, fmt.Errorf("sample contains %v: %w", v, ErrInvalidArgument)
		}
	}

	values := slices.Clone(data)
	slices.Sort(values)

	distinct := 1
	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1] {
			distinct++
		}
	}

	return Sample{values: values, distinct: distinct}, nil
}

// Values returns a copy of the sorted sample.
func (s Sample) Values() []float64 { return slices.Clone(s.values) }

// Len returns the number of points, duplicates included.
func (s Sample) Len() int { return len(s.values) }

// Distinct returns the number of different values.
func (s Sample) Distinct() int { return s.distinct }

// Degenerate reports whether the sample holds a single distinct value, in
// which case the only sensible partition is one cluster with every point.
func (s Sample) Degenerate() bool { return s.distinct <= 1 }

// Min returns the smallest value.
func (s Sample) Min() float64 { return s.values[0] }

// Max returns the largest value.
func (s Sample) Max() float64 { return s.values[len(s.values)-1] }

// At returns the i-th smallest value (0-based).
func (s Sample) At(i int) float64 { return s.values[i] }

// Contains reports whether v is one of the sample values (binary search).
func (s Sample) Contains(v float64) bool {
	_, found := slices.BinarySearch(s.values, v)

	return found
}

// LastIndex returns the index of the last occurrence of v, or -1.
func (s Sample) LastIndex(v float64) int {
	i := sort.Search(len(s.values), func(i int) bool { return s.values[i] > v }) - 1
	if i < 0 || s.values[i] != v {
		return -1
	}

	return i
}

// ValidateRange checks a [kmin, kmax] cluster-count range against a sample
// of n points. kmax is the requested value, before any clamping.
func ValidateRange(n, kmin, kmax int) error {
	switch {
	case kmin < 1:
		return fmt.Errorf("kmin (%d) can not be less than 1: %w", kmin, ErrInvalidArgument)
	case kmin > kmax:
		return fmt.Errorf("kmin (%d) can not be greater than kmax (%d): %w", kmin, kmax, ErrInvalidArgument)
	case kmin > n:
		return fmt.Errorf("kmin (%d) can not be greater than data size (%d): %w", kmin, n, ErrInvalidArgument)
	case kmax > n:
		return fmt.Errorf("kmax (%d) can not be greater than data size (%d): %w", kmax, n, ErrInvalidArgument)
	}

	return nil
}

// ValidateClasses checks a fixed class count against a sample of n points.
func ValidateClasses(n, k int) error {
	if k > n {
		return fmt.Errorf("number of classes (%d) can not be greater than data size (%d): %w", k, n, ErrInvalidArgument)
	}
	if k < 1 {
		return fmt.Errorf("number of classes (%d) can not be less than 1: %w", k, ErrInvalidArgument)
	}

	return nil
}

// ClampMax limits kmax to the number of distinct values: asking for more
// clusters than distinct values can only produce duplicated bounds.
func ClampMax(kmax, distinct int) int {
	return min(kmax, distinct)
}
