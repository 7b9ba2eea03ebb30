package cluster_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/onedcluster/cluster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixed is a Clusterer with precomputed bounds.
type fixed struct {
	data   []float64
	bounds []float64
	err    error
}

var _ cluster.Clusterer = fixed{}

func (f fixed) Data() []float64             { return f.data }
func (f fixed) Bounds() ([]float64, error) { return f.bounds, f.err }

// TestClassify maps each member to its cluster and rejects non-members.
func TestClassify(t *testing.T) {
	c := fixed{
		data:   []float64{0, 0, 0, 100, 100, 100, 99999},
		bounds: []float64{0, 0, 100, 99999},
	}

	for value, want := range map[float64]int{0: 0, 100: 1, 99999: 2} {
		got, err := cluster.Classify(c, value)
		require.NoError(t, err)
		assert.Equal(t, want, got, "value %v", value)
	}

	_, err := cluster.Classify(c, 123)
	require.ErrorIs(t, err, cluster.ErrInvalidArgument)
}

// TestClassify_PropagatesBoundsError surfaces engine failures unchanged.
func TestClassify_PropagatesBoundsError(t *testing.T) {
	boom := errors.New("boom")
	c := fixed{data: []float64{1, 2}, err: boom}

	_, err := cluster.Classify(c, 1)
	require.ErrorIs(t, err, boom)

	_, err = cluster.Intervals(c)
	require.ErrorIs(t, err, boom)
}

// TestIntervals skips duplicated boundary values when opening the next interval.
func TestIntervals(t *testing.T) {
	c := fixed{
		data:   []float64{0, 0, 1, 100, 100, 100, 99999},
		bounds: []float64{0, 1, 100, 99999},
	}

	got, err := cluster.Intervals(c)
	require.NoError(t, err)
	assert.Equal(t, [][2]float64{{0, 1}, {100, 100}, {99999, 99999}}, got)
}

// TestIntervals_DuplicateBounds starts the next interval after the last copy.
func TestIntervals_DuplicateBounds(t *testing.T) {
	c := fixed{
		data:   []float64{1, 2, 2, 2, 5, 6},
		bounds: []float64{0, 2, 6},
	}

	got, err := cluster.Intervals(c)
	require.NoError(t, err)
	assert.Equal(t, [][2]float64{{0, 2}, {5, 6}}, got)
}

// TestPartition keeps boundary-equal values in the lower bucket.
func TestPartition(t *testing.T) {
	got := cluster.Partition(
		[]float64{1, 1, 1, 100, 100, 100, 999, 999},
		[]float64{0, 1, 100, 999},
	)
	assert.Equal(t, [][]float64{{1, 1, 1}, {100, 100, 100}, {999, 999}}, got)

	got = cluster.Partition([]float64{4, 4}, []float64{0, 4})
	assert.Equal(t, [][]float64{{4, 4}}, got)

	assert.Nil(t, cluster.Partition([]float64{1}, []float64{0}))
}

// shared hands out its prepared sample; Data must stay untouched.
type shared struct {
	sample cluster.Sample
	bounds []float64
}

var _ cluster.Sampler = shared{}

func (s shared) Data() []float64             { panic("Data copies the sample") }
func (s shared) Sample() cluster.Sample      { return s.sample }
func (s shared) Bounds() ([]float64, error) { return s.bounds, nil }

// TestSampler_SkipsDataCopy reads membership and interval starts from Sample.
func TestSampler_SkipsDataCopy(t *testing.T) {
	s, err := cluster.Prepare([]float64{100, 0, 1, 100, 99999, 0, 100})
	require.NoError(t, err)
	c := shared{sample: s, bounds: []float64{0, 1, 100, 99999}}

	got, err := cluster.Classify(c, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	_, err = cluster.Classify(c, 2)
	require.ErrorIs(t, err, cluster.ErrInvalidArgument)

	intervals, err := cluster.Intervals(c)
	require.NoError(t, err)
	assert.Equal(t, [][2]float64{{0, 1}, {100, 100}, {99999, 99999}}, intervals)
}
