// SPDX-License-Identifier: MIT

package ckmeans

import (
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/onedcluster/cluster"
)

// Ckmeans clusters a one-dimensional sample optimally, choosing the number
// of clusters in [KMin, KMax] by BIC when the range is wider than one.
//
// Results are computed on the first call to Clusters, Bounds, K, Scores,
// Classify or Intervals and cached; a Ckmeans is safe for concurrent reads.
type Ckmeans struct {
	input  []float64
	sample cluster.Sample
	kmin   int // as requested
	kmax   int // clamped to the distinct count
	opts   Options
	log    zerolog.Logger

	once sync.Once
	res  result
	err  error
}

// result is the memoized outcome of the first access.
type result struct {
	k        int
	clusters [][]float64
	bounds   []float64
	scores   []Score
}

// Compile-time assertions: Ckmeans offers the shared clustering capability
// and shares its sample with it.
var (
	_ cluster.Clusterer = (*Ckmeans)(nil)
	_ cluster.Sampler   = (*Ckmeans)(nil)
)

// New prepares a Ckmeans clustering of data into kmin..kmax clusters.
// data need not be sorted and is not modified.
//
// kmax is clamped to the number of distinct values. When kmin == kmax exactly
// that many clusters are produced (at most the distinct count).
//
// Errors:
//   - cluster.ErrInvalidArgument: empty or non-finite data, kmin < 1,
//     kmin > kmax, kmin > len(data), kmax > len(data).
func New(data []float64, kmin, kmax int, opts ...Option) (*Ckmeans, error) {
	if err := cluster.ValidateRange(len(data), kmin, kmax); err != nil {
		return nil, err
	}
	sample, err := cluster.Prepare(data)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	return &Ckmeans{
		input:  slices.Clone(data),
		sample: sample,
		kmin:   kmin,
		kmax:   cluster.ClampMax(kmax, sample.Distinct()),
		opts:   o,
		log:    o.Logger,
	}, nil
}

// NewK prepares a Ckmeans clustering into exactly k clusters
// (at most the number of distinct values).
func NewK(data []float64, k int, opts ...Option) (*Ckmeans, error) {
	return New(data, k, k, opts...)
}

// Input returns a copy of the data in the order it was given.
func (c *Ckmeans) Input() []float64 { return slices.Clone(c.input) }

// Data returns the sorted sample.
func (c *Ckmeans) Data() []float64 { return c.sample.Values() }

// Sample returns the prepared sample without copying it.
func (c *Ckmeans) Sample() cluster.Sample { return c.sample }

// KMin returns the requested minimum number of clusters.
func (c *Ckmeans) KMin() int { return c.kmin }

// KMax returns the maximum number of clusters after clamping to the number
// of distinct values.
func (c *Ckmeans) KMax() int { return c.kmax }

// Likelihood returns the density model used for model selection.
func (c *Ckmeans) Likelihood() Likelihood { return c.opts.Likelihood }

// K returns the number of clusters actually produced.
func (c *Ckmeans) K() (int, error) {
	r, err := c.resolve()
	if err != nil {
		return 0, err
	}

	return r.k, nil
}

// Clusters returns the clusters in ascending order. Each cluster is a
// non-empty ascending run of the sorted sample.
func (c *Ckmeans) Clusters() ([][]float64, error) {
	r, err := c.resolve()
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(r.clusters))
	for i, cl := range r.clusters {
		out[i] = slices.Clone(cl)
	}

	return out, nil
}

// Bounds returns the sentinel 0 followed by each cluster's maximum.
func (c *Ckmeans) Bounds() ([]float64, error) {
	r, err := c.resolve()
	if err != nil {
		return nil, err
	}

	return slices.Clone(r.bounds), nil
}

// Scores returns the BIC evaluation of every candidate k, in ascending k.
// It is empty when only one k was possible.
func (c *Ckmeans) Scores() ([]Score, error) {
	r, err := c.resolve()
	if err != nil {
		return nil, err
	}

	return slices.Clone(r.scores), nil
}

// Classify returns the zero-based index of the cluster holding value, which
// must be one of the sample values.
func (c *Ckmeans) Classify(value float64) (int, error) {
	return cluster.Classify(c, value)
}

// Intervals returns the inclusive [low, high] limits of each cluster.
func (c *Ckmeans) Intervals() ([][2]float64, error) {
	return cluster.Intervals(c)
}

// resolve computes the clustering once and returns the cached outcome.
func (c *Ckmeans) resolve() (*result, error) {
	c.once.Do(func() {
		c.res, c.err = c.compute()
	})
	if c.err != nil {
		return nil, c.err
	}

	return &c.res, nil
}

// compute runs the full pipeline: fill tables, select k, backtrack.
func (c *Ckmeans) compute() (result, error) {
	sorted := c.sample.Values()
	if c.sample.Degenerate() {
		return result{
			k:        1,
			clusters: [][]float64{sorted},
			bounds:   []float64{0, c.sample.Max()},
		}, nil
	}

	// 1-based view: x[0] is a sentinel.
	n := len(sorted)
	x := make([]float64, n+1)
	copy(x[1:], sorted)

	t, err := fillTables(x, c.kmax)
	if err != nil {
		return result{}, err
	}
	c.log.Debug().Int("n", n).Int("kmax", c.kmax).Msg("tables filled")
	c.log.Trace().Stringer("backtrack", t.backtrack).Msg("backtrack table")

	kmin := min(c.kmin, c.kmax)
	k, scores, err := selectLevels(x, t.backtrack, kmin, c.kmax, c.opts.Likelihood, c.log)
	if err != nil {
		return result{}, err
	}

	spans, err := recoverSpans(t.backtrack, k, n)
	if err != nil {
		return result{}, err
	}

	clusters := make([][]float64, k)
	bounds := make([]float64, 1, k+1)
	for i, s := range spans {
		clusters[i] = sorted[s.left-1 : s.right : s.right]
		bounds = append(bounds, sorted[s.right-1])
	}

	return result{k: k, clusters: clusters, bounds: bounds, scores: scores}, nil
}
