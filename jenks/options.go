// SPDX-License-Identifier: MIT

// Package jenks: functional configuration.

package jenks

import (
	"fmt"

	"github.com/rs/zerolog"
)

// DefaultCacheSize is the number of smaller class counts whose partitions
// are kept by default.
const DefaultCacheSize = 16

// Option configures a Jenks instance.
type Option func(*Options)

// Options holds the resolved configuration of a Jenks instance.
//
// Fields:
//   - Logger   : receives debug events (table fill, cache hits).
//     Defaults to a no-op logger.
//   - CacheSize: how many class counts below the configured one keep their
//     partitions memoized. The configured count is always kept.
type Options struct {
	Logger    zerolog.Logger
	CacheSize int
}

// DefaultOptions returns the configuration used when no Option is given.
func DefaultOptions() Options {
	return Options{
		Logger:    zerolog.Nop(),
		CacheSize: DefaultCacheSize,
	}
}

// WithLogger routes debug events to l, tagged with component=jenks.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithCacheSize sets how many smaller class counts keep their partitions
// memoized.
// Panics when size < 1.
func WithCacheSize(size int) Option {
	if size < 1 {
		panic(fmt.Sprintf("jenks: WithCacheSize(%d): size must be >= 1", size))
	}

	return func(o *Options) {
		o.CacheSize = size
	}
}

// gatherOptions applies user options over the defaults.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}
	o.Logger = o.Logger.With().Str("component", "jenks").Logger()

	return o
}
