// Package matrix_test contains unit tests for the generic Dense table.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/onedcluster/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense[float64](0, 5)             // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense[int](5, 0)                  // zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense[int](-1, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows(), Cols() and Shape() report the dimensions.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewDense[float64](rows, cols)
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
	r, c := m.Shape()
	require.Equal(t, rows, r)
	require.Equal(t, cols, c)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense[int](2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0) // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2) // column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1) // row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.Contains(t, err.Error(), "Dense.Set(2,0)")

	err = m.Set(0, -1, 4) // negative column index
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)

	val, err = m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, val, "fresh tables are zero-filled")
}

// TestRowSharesStorage checks that Row returns a writable window of one row.
func TestRowSharesStorage(t *testing.T) {
	m, err := matrix.NewDense[int](3, 4)
	require.NoError(t, err)

	row := m.Row(1)
	require.Len(t, row, 4)
	row[3] = 42

	v, err := m.At(1, 3)
	require.NoError(t, err)
	require.Equal(t, 42, v)

	// Neighbouring rows are untouched.
	v, err = m.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, 0, v)

	require.Panics(t, func() { m.Row(3) })
	require.Panics(t, func() { _ = m.Row(0)[:5] }, "row capacity is capped at Cols()")
}

// TestFill sets every cell, including the ones Row views expose.
func TestFill(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)
	m.Fill(1.5)

	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 1.5, v)
	require.Equal(t, []float64{1.5, 1.5}, m.Row(0))
}

// TestString renders rows line by line.
func TestString(t *testing.T) {
	m, err := matrix.NewDense[int](2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 7))
	require.NoError(t, m.Set(1, 0, 3))

	require.Equal(t, "[0, 7]\n[3, 0]\n", m.String())
}
