// SPDX-License-Identifier: MIT
// Package: depdecode/eisner
//
// errors.go — sentinel errors for the eisner package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Decode wraps sentinels with the offending sentence index via %w.
//   • Decoding never panics on caller input; precondition violations are
//     reported before any chart is allocated.

package eisner

import "errors"

var (
	// ErrNilInput indicates a nil score tensor, score matrix or mask.
	ErrNilInput = errors.New("eisner: nil input")

	// ErrShapeMismatch indicates that scores and mask disagree on batch size or
	// sequence length, or that a sentence score matrix is not square.
	ErrShapeMismatch = errors.New("eisner: shape mismatch")

	// ErrBadLength indicates a sentence length outside [1, n-1]: an empty
	// sentence, or one that leaves no room for the root at index 0.
	ErrBadLength = errors.New("eisner: invalid sentence length")

	// ErrInvalidScore indicates a NaN or +Inf arc score inside a sentence's
	// real-token region. Such values are rejected instead of propagated.
	ErrInvalidScore = errors.New("eisner: NaN or +Inf arc score")
)
