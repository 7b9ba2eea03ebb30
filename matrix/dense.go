// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Offer Row(i) as a no-copy window for hot DP loops.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Row: O(1); Fill: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Number is the set of cell types a Dense table may hold.
type Number interface {
	~int | ~float64
}

// denseErrorf wraps an error with a uniform Dense context and callsite indices,
// e.g. "Dense.At(3,7): matrix: index out of range".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major table.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Number] struct {
	r, c int // row and column counts (>0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for fmt.Stringer conformance.
var (
	_ fmt.Stringer = (*Dense[int])(nil)
	_ fmt.Stringer = (*Dense[float64])(nil)
)

// NewDense creates an r×c zero table using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Rows returns the row count.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns row i as a slice sharing the table's storage.
// Writes through the slice mutate the table; the slice length is Cols(),
// so column overruns are caught by the runtime bounds check.
//
// Row panics when i is not a valid row: callers pass indices derived from
// the table's own shape, so a bad row is a programmer error.
// Complexity: O(1).
func (m *Dense[T]) Row(i int) []T {
	if i < 0 || i >= m.r {
		panic(denseErrorf("Row", i, 0, ErrOutOfRange))
	}
	base := i * m.c

	return m.data[base : base+m.c : base+m.c]
}

// Fill sets every cell to v.
// Complexity: O(r*c).
func (m *Dense[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// String renders rows as lines with comma-separated values.
// Intended for logs and debugging, not for hot paths.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		base := i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%v", m.data[base+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
