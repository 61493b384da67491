// SPDX-License-Identifier: MIT
// Package: depdecode/bucket
//
// options.go — functional options and resolved configuration for Cluster.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     Cluster itself never panics.
//   • Determinism is explicit: seed via WithSeed or WithRand. Without either,
//     Cluster draws its initial centroids from a time-seeded source.

package bucket

import (
	"math/rand"
	"time"
)

// Option customizes a Cluster call.
type Option func(*config)

// config is the single source of truth for clustering knobs.
type config struct {
	// RNG used to pick the initial centroids; nil until resolved.
	rng *rand.Rand
	// Upper bound on assign/update rounds.
	maxIter int
}

// defaultMaxIterations bounds the refinement loop. Length k-means converges in
// a handful of rounds; the bound only matters for oscillating inputs.
const defaultMaxIterations = 1000

// WithRand provides an explicit RNG for centroid initialization.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("bucket: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed, making cluster
// membership reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxIterations caps the number of assign/update rounds.
// Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("bucket: WithMaxIterations(n<1)")
	}
	return func(c *config) {
		c.maxIter = n
	}
}

// newConfig applies options in order (last wins) and resolves the RNG.
func newConfig(opts ...Option) config {
	cfg := config{maxIter: defaultMaxIterations}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
