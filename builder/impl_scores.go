// SPDX-License-Identifier: MIT
// Package: depdecode/builder
//
// impl_scores.go - score tensors and length lists for decoder and bucketer tests.
//
// Fixtures:
//   - RandomScores(batch, n): Gaussian N(mean, sigma²) in every cell.
//   - ArcScores(heads, n, hit, miss): a matrix whose gold arcs score hit and
//     whose every other cell scores miss.
//   - ArcTensor(trees, n, hit, miss): ArcScores for a batch.
//   - RandomLengths(count, lo, hi): uniform integers in [lo, hi].
//
// Determinism:
//   - Cells are drawn in (b, i, j) ascending order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/depdecode/matrix"
)

const (
	methodRandomScores  = "RandomScores"
	methodArcScores     = "ArcScores"
	methodArcTensor     = "ArcTensor"
	methodRandomLengths = "RandomLengths"
)

// RandomScores returns a batch×n×n tensor of Gaussian scores.
// Requires an RNG (WithSeed/WithRand); WithMean/WithSigma shape the draw.
func RandomScores(batch, n int, opts ...Option) (*matrix.Tensor, error) {
	if batch < 1 || n < 1 {
		return nil, fmt.Errorf("%s: batch=%d n=%d: %w", methodRandomScores, batch, n, ErrTooFewTokens)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: rng is required: %w", methodRandomScores, ErrNeedRandSource)
	}
	t, err := matrix.NewTensor(batch, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomScores, err)
	}
	var b, i, j int
	for b = 0; b < batch; b++ {
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if err = t.Set(b, i, j, cfg.mean+cfg.sigma*cfg.rng.NormFloat64()); err != nil {
					return nil, fmt.Errorf("%s: %w", methodRandomScores, err)
				}
			}
		}
	}

	return t, nil
}

// ArcScores returns an n×n matrix where cell (d, heads[d]) scores hit for
// every token d ≥ 1 of heads, and all remaining cells score miss.
// heads[0] is ignored; len(heads) must not exceed n.
func ArcScores(heads []int, n int, hit, miss float64) (*matrix.Dense, error) {
	if len(heads) < 2 || len(heads) > n {
		return nil, fmt.Errorf("%s: %d heads for n=%d: %w", methodArcScores, len(heads), n, ErrBadHeads)
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodArcScores, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err = m.Set(i, j, miss); err != nil {
				return nil, fmt.Errorf("%s: %w", methodArcScores, err)
			}
		}
	}
	for d := 1; d < len(heads); d++ {
		if heads[d] < 0 || heads[d] >= len(heads) {
			return nil, fmt.Errorf("%s: heads[%d]=%d: %w", methodArcScores, d, heads[d], ErrBadHeads)
		}
		if err = m.Set(d, heads[d], hit); err != nil {
			return nil, fmt.Errorf("%s: %w", methodArcScores, err)
		}
	}

	return m, nil
}

// ArcTensor stacks ArcScores for every tree into a len(trees)×n×n tensor.
func ArcTensor(trees [][]int, n int, hit, miss float64) (*matrix.Tensor, error) {
	if len(trees) == 0 {
		return nil, fmt.Errorf("%s: no trees: %w", methodArcTensor, ErrTooFewTokens)
	}
	t, err := matrix.NewTensor(len(trees), n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodArcTensor, err)
	}
	var m *matrix.Dense
	var v float64
	var i, j int
	for b, heads := range trees {
		if m, err = ArcScores(heads, n, hit, miss); err != nil {
			return nil, fmt.Errorf("%s: tree %d: %w", methodArcTensor, b, err)
		}
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				v, _ = m.At(i, j) // in range by construction
				if err = t.Set(b, i, j, v); err != nil {
					return nil, fmt.Errorf("%s: %w", methodArcTensor, err)
				}
			}
		}
	}

	return t, nil
}

// RandomLengths draws count sentence lengths uniformly from [lo, hi].
func RandomLengths(count, lo, hi int, opts ...Option) ([]int, error) {
	if count < 1 {
		return nil, fmt.Errorf("%s: count=%d: %w", methodRandomLengths, count, ErrTooFewTokens)
	}
	if lo < 1 || lo > hi {
		return nil, fmt.Errorf("%s: [%d, %d]: %w", methodRandomLengths, lo, hi, ErrBadRange)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: rng is required: %w", methodRandomLengths, ErrNeedRandSource)
	}
	out := make([]int, count)
	for i := range out {
		out[i] = lo + cfg.rng.Intn(hi-lo+1)
	}

	return out, nil
}
