// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every table accessor returns one of these sentinels, optionally wrapped with
// method context via %w. Callers match them with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested table dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, they do not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
