// SPDX-License-Identifier: MIT
// Package: depdecode/builder
//
// impl_tree.go - random single-rooted projective trees.
//
// Canonical model:
//   - The root (index 0) takes exactly one dependent c0, drawn uniformly from 1..n.
//   - attach(h, a, b) hangs the contiguous block [a, b], adjacent to h, under h:
//     draw a child c of h inside the block, give c everything on its far side,
//     split the stretch between c and h at a random point, give the part next
//     to c to c and hand the rest back to h.
//   - Every subtree is therefore a contiguous span: the tree is projective by
//     construction, never by rejection.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewTokens).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Result has n+1 entries; heads[0] == RootParent.
//
// Complexity:
//   - Time: O(n) draws; recursion depth O(n).
//
// Determinism:
//   - Fixed draw order for a fixed seed.

package builder

import (
	"fmt"
	"math/rand"
)

const (
	methodProjectiveTree = "ProjectiveTree"
	minTreeTokens        = 1
)

// RootParent is stored in heads[0] of generated trees.
const RootParent = -1

// treeGen carries generation state across attach recursion.
type treeGen struct {
	rng   *rand.Rand
	heads []int
}

// ProjectiveTree returns a random head array over n real tokens describing a
// single-rooted projective tree.
func ProjectiveTree(n int, opts ...Option) ([]int, error) {
	if n < minTreeTokens {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodProjectiveTree, n, minTreeTokens, ErrTooFewTokens)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: rng is required: %w", methodProjectiveTree, ErrNeedRandSource)
	}

	g := &treeGen{rng: cfg.rng, heads: make([]int, n+1)}
	g.heads[0] = RootParent

	c0 := 1 + g.rng.Intn(n)
	g.heads[c0] = 0
	g.attach(c0, 1, c0-1)
	g.attach(c0, c0+1, n)

	return g.heads, nil
}

// attach assigns every token of [a, b] to the subtree of h. The block lies
// entirely on one side of h and touches it.
func (g *treeGen) attach(h, a, b int) {
	if a > b {
		return
	}
	c := a + g.rng.Intn(b-a+1)
	g.heads[c] = h
	if c < h {
		g.attach(c, a, c-1)
		m := c + g.rng.Intn(b-c+1) // c..m goes to c
		g.attach(c, c+1, m)
		g.attach(h, m+1, b)

		return
	}
	g.attach(c, c+1, b)
	m := a - 1 + g.rng.Intn(c-a+1) // m+1..c goes to c
	g.attach(h, a, m)
	g.attach(c, m+1, c-1)
}
