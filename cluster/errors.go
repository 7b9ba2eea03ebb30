// SPDX-License-Identifier: MIT
// Package cluster: sentinel error set shared by the engines.
// Engines wrap these with fmt.Errorf("...: %w", ErrX) to add context;
// callers match them with errors.Is.

package cluster

import "errors"

var (
	// ErrInvalidArgument reports a caller mistake: bad cluster counts, an empty
	// or non-finite sample, or a Classify value that is not a sample member.
	ErrInvalidArgument = errors.New("cluster: invalid argument")

	// ErrInternalInvariant reports a should-be-unreachable state detected while
	// computing a result, e.g. a BIC bin whose lower edge exceeds its upper edge.
	ErrInternalInvariant = errors.New("cluster: internal invariant violated")
)
