// Package builder provides reproducible fixtures for dependency decoding:
// random projective trees, score tensors and sentence-length lists. It backs
// the property tests of eisner, deptree and bucket, and doubles as a
// synthetic-data source for benchmarks.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – Option:            a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG and Gaussian score parameters.
//   - Fixtures:
//     – ProjectiveTree:    random single-rooted projective head array.
//     – RandomScores:      Gaussian batch×n×n score tensor.
//     – ArcScores:         n×n matrix rewarding exactly one tree's arcs.
//     – ArcTensor:         ArcScores for a batch of trees.
//     – RandomLengths:     uniform sentence lengths.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (ErrTooFewTokens, ErrBadRange, ErrNeedRandSource,
//     ErrBadHeads) wrapped with the fixture name for context.
//   - Same seed, same options, same call order ⇒ identical output.
package builder
