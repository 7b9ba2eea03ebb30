// SPDX-License-Identifier: MIT

package cluster

import "fmt"

// Clusterer is the minimal contract a one-dimensional clustering engine
// fulfils. Classify and Intervals are implemented once against it.
type Clusterer interface {
	// Data returns the sorted sample the engine was built from.
	Data() []float64

	// Bounds returns the ascending thresholds: the sentinel 0 followed by the
	// maximum of each cluster. The first call may trigger the computation.
	Bounds() ([]float64, error)
}

// Sampler is implemented by engines that can share their prepared sample.
// Classify and Intervals prefer it over Data, which copies.
type Sampler interface {
	Sample() Sample
}

// sampleOf returns the sorted sample behind c without copying when c is a
// Sampler. Otherwise Data is wrapped as is; it is already sorted.
func sampleOf(c Clusterer) Sample {
	if s, ok := c.(Sampler); ok {
		return s.Sample()
	}

	return Sample{values: c.Data()}
}

// Classify returns the zero-based index of the cluster that value belongs to:
// the position of the first bound after the sentinel that is >= value.
//
// value must be one of the sample values; membership is checked exactly,
// it is not a range check.
//
// Errors:
//   - ErrInvalidArgument when value is not in the sample.
//   - whatever c.Bounds() returns.
//
// Complexity: O(log n + k) on top of Bounds when c is a Sampler.
func Classify(c Clusterer, value float64) (int, error) {
	if !sampleOf(c).Contains(value) {
		return 0, fmt.Errorf("value %v must be in data: %w", value, ErrInvalidArgument)
	}
	bounds, err := c.Bounds()
	if err != nil {
		return 0, err
	}

	for i := 1; i < len(bounds); i++ {
		if value <= bounds[i] {
			return i - 1, nil
		}
	}

	// The last bound is the sample maximum, so a member always matches.
	return 0, fmt.Errorf("value %v above last bound %v: %w", value, bounds[len(bounds)-1], ErrInternalInvariant)
}

// Intervals returns the inclusive [low, high] limits of each cluster.
//
// high is the cluster's bound. The first interval starts at the sentinel
// bound; every later one starts at the sample value that follows the last
// occurrence of the previous bound, which skips duplicated boundary values.
//
// Complexity: O(k log n) on top of Bounds.
func Intervals(c Clusterer) ([][2]float64, error) {
	bounds, err := c.Bounds()
	if err != nil {
		return nil, err
	}
	if len(bounds) < 2 {
		return nil, nil
	}
	s := sampleOf(c)

	out := make([][2]float64, 0, len(bounds)-1)
	out = append(out, [2]float64{bounds[0], bounds[1]})
	for i := 2; i < len(bounds); i++ {
		next := min(s.LastIndex(bounds[i-1])+1, s.Len()-1)
		out = append(out, [2]float64{s.At(next), bounds[i]})
	}

	return out, nil
}

// Partition buckets an ascending sample by ascending bounds (sentinel
// included) with a single forward cursor. A value moves the cursor to the
// next bucket only when it strictly exceeds the current bound, so values equal
// to a bound stay in the lower bucket. The cursor never passes the last bucket.
//
// The result has len(bounds)-1 buckets; a bucket may be empty when bounds
// repeat.
func Partition(sorted, bounds []float64) [][]float64 {
	k := len(bounds) - 1
	if k < 1 {
		return nil
	}
	out := make([][]float64, k)
	for i := range out {
		out[i] = []float64{}
	}

	cur := 0
	for _, v := range sorted {
		if v > bounds[cur+1] && cur < k-1 {
			cur++
		}
		out[cur] = append(out[cur], v)
	}

	return out
}
