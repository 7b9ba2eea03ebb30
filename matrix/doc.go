// Package matrix provides the dense, fixed-shape tables that back the
// dynamic programs in ckmeans and jenks.
//
// What & Why:
//
//	Both clustering engines fill triangular cost tables addressed by
//	(cluster-count, prefix-length) pairs. Dense stores such a table in a
//	single row-major buffer and bounds-checks every public access, so an
//	off-by-one in a recurrence surfaces as ErrOutOfRange instead of silently
//	reading a neighbouring row.
//
//	Dense is generic over int and float64: cost tables hold float64,
//	backtrack tables hold int split indices.
//
// Complexity:
//
//	NewDense: O(r*c) zero-init; At/Set/Row: O(1); Fill: O(r*c).
package matrix
