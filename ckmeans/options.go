// SPDX-License-Identifier: MIT

// Package ckmeans: functional configuration.
// Options are gathered once in New; WithX constructors panic on nonsensical
// values (programmer error).

package ckmeans

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Likelihood selects the density model used to score a candidate k.
type Likelihood int

const (
	// Gaussian models each cluster as a normal component weighted by its
	// share of the sample. Clusters without spread fall back to a uniform
	// density over their bin. This is the default.
	Gaussian Likelihood = iota

	// Uniform models each cluster as a uniform density over its bin.
	Uniform
)

// String returns the model name.
func (l Likelihood) String() string {
	switch l {
	case Gaussian:
		return "gaussian"
	case Uniform:
		return "uniform"
	default:
		return fmt.Sprintf("Likelihood(%d)", int(l))
	}
}

// Option configures a Ckmeans instance.
type Option func(*Options)

// Options holds the resolved configuration of a Ckmeans instance.
//
// Fields:
//   - Logger    : receives debug events (table fill, BIC candidates).
//     Defaults to a no-op logger.
//   - Likelihood: density model for BIC model selection. Default Gaussian.
type Options struct {
	Logger     zerolog.Logger
	Likelihood Likelihood
}

// DefaultOptions returns the configuration used when no Option is given.
func DefaultOptions() Options {
	return Options{
		Logger:     zerolog.Nop(),
		Likelihood: Gaussian,
	}
}

// WithLogger routes debug events to l, tagged with component=ckmeans.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithLikelihood selects the density model used by BIC model selection.
// Panics on an unknown model.
func WithLikelihood(m Likelihood) Option {
	if m != Gaussian && m != Uniform {
		panic(fmt.Sprintf("ckmeans: WithLikelihood(%v): unknown model", m))
	}

	return func(o *Options) {
		o.Likelihood = m
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
	o.Logger = o.Logger.With().Str("component", "ckmeans").Logger()

	return o
}
