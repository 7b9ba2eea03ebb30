package jenks

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFillTables_Shape checks the initial rows and the prefix variances.
func TestFillTables_Shape(t *testing.T) {
	tab, err := fillTables([]float64{1, 2, 3, 10}, 2)
	require.NoError(t, err)

	rows, cols := tab.lowerLimits.Shape()
	assert.Equal(t, 5, rows)
	assert.Equal(t, 3, cols)

	assert.Equal(t, []int{0, 1, 1}, tab.lowerLimits.Row(1))
	assert.Equal(t, []float64{0, 0, 0}, tab.variances.Row(1))

	// Column 1 holds the squared deviation sum of every prefix.
	for l, want := range map[int]float64{2: 0.5, 3: 2, 4: 50} {
		got, err := tab.variances.At(l, 1)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-12, "l=%d", l)
	}

	// Two classes over all four values start the second class at 10.
	start, err := tab.lowerLimits.At(4, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, start)
	v, err := tab.variances.At(4, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, 1e-12)
}

// TestFillTables_TiesPreferLongerRun replaces the incumbent on equal cost.
func TestFillTables_TiesPreferLongerRun(t *testing.T) {
	// {1,2}|{3} and {1}|{2,3} both cost 0.5; the run {2,3} is scanned later.
	tab, err := fillTables([]float64{1, 2, 3}, 2)
	require.NoError(t, err)

	start, err := tab.lowerLimits.At(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, start)
}

// TestFillTables_SinglePoint leaves no row to fill.
func TestFillTables_SinglePoint(t *testing.T) {
	tab, err := fillTables([]float64{4}, 1)
	require.NoError(t, err)

	v, err := tab.variances.At(1, 1)
	require.NoError(t, err)
	assert.False(t, math.IsInf(v, 1))
}
