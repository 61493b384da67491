// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. All constructors and
// accessors MUST return these sentinels and tests MUST check them via
// errors.Is. No accessor panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Accessors
// wrap these sentinels with their method name and coordinates
// (see denseErrorf); callers still match with errors.Is.
//
// ERROR PRIORITY:
// dimensions -> raggedness -> index range -> numeric policy.

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRagged indicates that nested input slices do not share one shape,
	// e.g. score rows of different widths or mask rows of different lengths.
	ErrRagged = errors.New("matrix: ragged input")

	// ErrOutOfRange indicates that an index (batch, row or column) is outside
	// valid bounds. Public indexers (At/Set/Row/Sentence) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidValue signals a NaN or +Inf score. -Inf is accepted: it is the
	// conventional "forbidden arc" score.
	ErrInvalidValue = errors.New("matrix: NaN or +Inf score")
)
