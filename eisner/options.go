// SPDX-License-Identifier: MIT
// Package: depdecode/eisner
//
// options.go — functional options for Decode.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs;
//     Decode itself never panics.
//   • Later options override earlier ones.

package eisner

// Option customizes a Decode call.
type Option func(*config)

// config holds the resolved decoding knobs.
type config struct {
	// workers is the number of goroutines sharing the batch axis.
	workers int
}

const defaultWorkers = 1 // sequential unless asked otherwise

// WithWorkers decodes sentences on n goroutines, each owning a contiguous
// range of the batch. Output is identical for every n.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("eisner: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

func newConfig(opts ...Option) config {
	cfg := config{workers: defaultWorkers}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
