// SPDX-License-Identifier: MIT
// Package: depdecode/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • rng   = nil   (stochastic fixtures refuse to run unless seeded)
//   • mean  = 0.0
//   • sigma = 1.0

package builder

import "math/rand"

// builderConfig aggregates all knobs used by fixtures.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	// Source for every random draw; nil until WithSeed/WithRand.
	rng *rand.Rand

	// Gaussian score parameters.
	mean  float64
	sigma float64 // >0
}

const (
	defaultMean  = 0.0
	defaultSigma = 1.0
)

// newBuilderConfig applies opts over the defaults, in order.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:   nil,
		mean:  defaultMean,
		sigma: defaultSigma,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
