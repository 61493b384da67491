// SPDX-License-Identifier: MIT

// Package matrix: public read interface for score matrices.
package matrix

import "math"

// Matrix is the read surface a decoder needs from one sentence's scores.
// Implementations are square in practice (n×n arc scores) but the interface
// does not require it.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i or j is outside the matrix.
	At(i, j int) (float64, error)

	// Row returns row i as a slice. The slice may alias internal storage and
	// MUST NOT be modified by callers.
	// Returns ErrOutOfRange if i is outside the matrix.
	Row(i int) ([]float64, error)
}

// ValidScore reports whether v is admissible as an arc score: any real number
// or -Inf. NaN and +Inf are rejected; in max-plus arithmetic +Inf meets -Inf
// and yields NaN.
func ValidScore(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 1)
}
