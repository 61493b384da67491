// SPDX-License-Identifier: MIT
// Package: depdecode/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context as "<Method>: <detail>: %w".
//   • Fixtures MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewTokens indicates that a sentence length or batch size is smaller
// than the allowed minimum for the requested fixture.
// Usage: if errors.Is(err, ErrTooFewTokens) { /* report invalid size */ }.
var ErrTooFewTokens = errors.New("builder: parameter too small")

// ErrBadRange indicates an empty or inverted [min, max] interval.
var ErrBadRange = errors.New("builder: invalid range")

// ErrNeedRandSource indicates that a stochastic fixture requires a non-nil
// *rand.Rand in the resolved config (WithSeed/WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadHeads indicates a head array that cannot be turned into scores
// (empty, or a head outside the matrix).
var ErrBadHeads = errors.New("builder: invalid head array")
