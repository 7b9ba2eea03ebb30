// SPDX-License-Identifier: MIT

package jenks

import (
	"fmt"
	"slices"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/onedcluster/cluster"
)

// Jenks computes natural breaks for a fixed number of classes. The tables
// are filled on first use and then answer any class count up to Classes().
//
// The class count is clamped to the number of distinct values, so every
// class is non-empty and ends at its bound. A Jenks is safe for concurrent
// reads.
type Jenks struct {
	input   []float64
	sample  cluster.Sample
	classes int // as requested
	levels  int // classes clamped to the distinct count
	log     zerolog.Logger

	once sync.Once
	tab  tables
	top  partition // result for levels classes
	err  error

	cache *lru.Cache[int, partition] // class counts below levels
}

// partition is a memoized classing: its bounds and the classes they cut.
type partition struct {
	bounds   []float64
	clusters [][]float64
}

// Compile-time assertions: Jenks offers the shared clustering capability
// and shares its sample with it.
var (
	_ cluster.Clusterer = (*Jenks)(nil)
	_ cluster.Sampler   = (*Jenks)(nil)
)

// New prepares natural breaks of data into classes classes.
// data need not be sorted and is not modified.
//
// Errors:
//   - cluster.ErrInvalidArgument: classes > len(data), classes < 1, or
//     non-finite data.
func New(data []float64, classes int, opts ...Option) (*Jenks, error) {
	if err := cluster.ValidateClasses(len(data), classes); err != nil {
		return nil, err
	}
	sample, err := cluster.Prepare(data)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	cache, err := lru.New[int, partition](o.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("jenks: partition cache: %w", err)
	}

	return &Jenks{
		input:   slices.Clone(data),
		sample:  sample,
		classes: classes,
		levels:  cluster.ClampMax(classes, sample.Distinct()),
		log:     o.Logger,
		cache:   cache,
	}, nil
}

// Input returns a copy of the data in the order it was given.
func (j *Jenks) Input() []float64 { return slices.Clone(j.input) }

// Data returns the sorted sample.
func (j *Jenks) Data() []float64 { return j.sample.Values() }

// Sample returns the prepared sample without copying it.
func (j *Jenks) Sample() cluster.Sample { return j.sample }

// Classes returns the number of classes produced: the requested count
// clamped to the number of distinct values.
func (j *Jenks) Classes() int { return j.levels }

// Bounds returns the bounds for the configured number of classes.
func (j *Jenks) Bounds() ([]float64, error) { return j.BoundsN(j.classes) }

// Clusters returns the classes for the configured number of classes.
func (j *Jenks) Clusters() ([][]float64, error) { return j.ClustersN(j.classes) }

// BoundsN returns the sentinel 0 followed by the maximum of each class when
// the sample is split into n classes. n may be any count from 1 to the
// requested class count; like the configured count it is clamped to the
// number of distinct values. The tables are shared by every n.
func (j *Jenks) BoundsN(n int) ([]float64, error) {
	p, err := j.partitionN(n)
	if err != nil {
		return nil, err
	}

	return slices.Clone(p.bounds), nil
}

// ClustersN returns the sample split into n classes, n as in BoundsN.
// Values equal to a bound stay in the lower class.
func (j *Jenks) ClustersN(n int) ([][]float64, error) {
	p, err := j.partitionN(n)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(p.clusters))
	for i, cl := range p.clusters {
		out[i] = slices.Clone(cl)
	}

	return out, nil
}

// Classify returns the zero-based index of the class holding value, which
// must be one of the sample values.
func (j *Jenks) Classify(value float64) (int, error) {
	return cluster.Classify(j, value)
}

// Intervals returns the inclusive [low, high] limits of each class.
func (j *Jenks) Intervals() ([][2]float64, error) {
	return cluster.Intervals(j)
}

// partitionN returns the memoized classing into min(n, Classes()) classes.
// The configured count is kept with the tables; smaller counts live in the
// LRU and are recovered again from the tables after eviction.
func (j *Jenks) partitionN(n int) (partition, error) {
	if n < 1 || n > j.classes {
		return partition{}, fmt.Errorf("n (%d) must be in [1, %d]: %w", n, j.classes, cluster.ErrInvalidArgument)
	}
	k := min(n, j.levels)
	if k == j.levels {
		return j.resolve()
	}

	if p, ok := j.cache.Get(k); ok {
		j.log.Debug().Int("n", k).Msg("partition cache hit")
		return p, nil
	}
	if _, err := j.resolve(); err != nil {
		return partition{}, err
	}
	p, err := j.recover(k)
	if err != nil {
		return partition{}, err
	}
	j.cache.Add(k, p)
	j.log.Debug().Int("n", k).Msg("partition cache miss")

	return p, nil
}

// resolve fills the tables once and recovers the configured classing.
// A single class needs no tables.
func (j *Jenks) resolve() (partition, error) {
	j.once.Do(func() {
		if j.levels == 1 {
			j.top = partition{
				bounds:   []float64{0, j.sample.Max()},
				clusters: [][]float64{j.sample.Values()},
			}
			return
		}

		j.tab, j.err = fillTables(j.sample.Values(), j.levels)
		if j.err != nil {
			return
		}
		j.log.Debug().Int("n", j.sample.Len()).Int("classes", j.levels).Msg("tables filled")
		j.log.Trace().Stringer("lower_limits", j.tab.lowerLimits).Msg("lower class limits")

		j.top, j.err = j.recover(j.levels)
	})

	return j.top, j.err
}

// recover derives the bounds for n classes from the filled tables and cuts
// the sample with them.
func (j *Jenks) recover(n int) (partition, error) {
	b, err := j.recoverBounds(n)
	if err != nil {
		return partition{}, err
	}

	return partition{bounds: b, clusters: cluster.Partition(j.sample.Values(), b)}, nil
}

// recoverBounds walks LC from the last value back to the first class.
// Each class start contributes the value just before it as the previous
// class's upper bound. Should the walk reach the first value early, the
// remaining bounds repeat the minimum.
func (j *Jenks) recoverBounds(n int) ([]float64, error) {
	rows := j.sample.Len()

	b := make([]float64, n+1)
	b[0] = 0
	b[n] = j.sample.Max()

	k := rows
	for c := n; c >= 2; c-- {
		if k < 1 {
			b[c-1] = j.sample.Min()
			continue
		}
		start, err := j.tab.lowerLimits.At(k, c)
		if err != nil {
			return nil, fmt.Errorf("jenks: class %d ending at %d: %w: %w", c, k, cluster.ErrInternalInvariant, err)
		}
		b[c-1] = j.sample.At(max(start-2, 0))
		k = start - 1
	}

	return b, nil
}
