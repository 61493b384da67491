// SPDX-License-Identifier: MIT
// Package: depdecode/builder
//
// options.go - knobs for the fixture generators.
//
// Rules:
//   • An Option mutates builderConfig; later options win.
//   • Constructors reject nonsense (nil RNG, non-positive sigma) by panicking,
//     so the fixtures themselves only ever return errors.
//   • Stochastic fixtures draw from the RNG installed here and nowhere else.

package builder

import (
	"math/rand"
)

// Option customizes a fixture before generation begins.
type Option func(*builderConfig)

// WithRand shares r with the fixture; draws advance r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed gives the fixture a private source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSigma sets the standard deviation (>0) of Gaussian scores.
// Panics if sigma <= 0.
func WithSigma(sigma float64) Option {
	if sigma <= 0 {
		panic("builder: WithSigma(sigma<=0)")
	}
	return func(c *builderConfig) {
		c.sigma = sigma
	}
}

// WithMean sets the mean of Gaussian scores. Any real value is accepted.
func WithMean(mean float64) Option {
	return func(c *builderConfig) {
		c.mean = mean
	}
}
