// SPDX-License-Identifier: MIT

// Package matrix - Mask: batch×n validity flags for padded score tensors.

package matrix

import "fmt"

// Mask marks which positions of each padded sentence are real tokens.
// Position 0 is the synthetic root and is conventionally false, so a
// sentence's length (row sum) counts real tokens only.
type Mask struct {
	batch, n int
	data     []bool
}

// NewMask allocates an all-false batch×n mask.
func NewMask(batch, n int) (*Mask, error) {
	if batch <= 0 || n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Mask{batch: batch, n: n, data: make([]bool, batch*n)}, nil
}

// NewMaskFrom copies nested [batch][n] flags into a new Mask.
//
// Errors:
//   - ErrInvalidDimensions for empty input.
//   - ErrRagged when rows differ in length.
func NewMaskFrom(rows [][]bool) (*Mask, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewMask(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for b := range rows {
		if len(rows[b]) != m.n {
			return nil, fmt.Errorf("NewMaskFrom: row %d has %d positions, want %d: %w", b, len(rows[b]), m.n, ErrRagged)
		}
		copy(m.data[b*m.n:(b+1)*m.n], rows[b])
	}

	return m, nil
}

// MaskFromLengths builds the standard padding mask: for sentence b, positions
// 1..lengths[b] are true and the root (0) and padding are false.
//
// Errors:
//   - ErrInvalidDimensions for empty lengths or n<=0.
//   - ErrOutOfRange when a length is negative or does not fit next to the root (length > n-1).
func MaskFromLengths(lengths []int, n int) (*Mask, error) {
	if len(lengths) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewMask(len(lengths), n)
	if err != nil {
		return nil, err
	}
	for b, l := range lengths {
		if l < 0 || l > n-1 {
			return nil, fmt.Errorf("MaskFromLengths: sentence %d length %d with n=%d: %w", b, l, n, ErrOutOfRange)
		}
		row := m.data[b*n : (b+1)*n]
		for i := 1; i <= l; i++ {
			row[i] = true
		}
	}

	return m, nil
}

// Batch returns the number of sentences.
func (m *Mask) Batch() int { return m.batch }

// Size returns the padded sequence length n.
func (m *Mask) Size() int { return m.n }

// At reports whether position i of sentence b is a real token.
func (m *Mask) At(b, i int) (bool, error) {
	if b < 0 || b >= m.batch || i < 0 || i >= m.n {
		return false, fmt.Errorf("Mask.At(%d,%d): %w", b, i, ErrOutOfRange)
	}

	return m.data[b*m.n+i], nil
}

// Set marks position i of sentence b.
func (m *Mask) Set(b, i int, v bool) error {
	if b < 0 || b >= m.batch || i < 0 || i >= m.n {
		return fmt.Errorf("Mask.Set(%d,%d): %w", b, i, ErrOutOfRange)
	}
	m.data[b*m.n+i] = v

	return nil
}

// Lengths returns the row sums: the number of real tokens per sentence.
// Complexity: O(batch*n).
func (m *Mask) Lengths() []int {
	out := make([]int, m.batch)
	var b, i int
	for b = 0; b < m.batch; b++ {
		for i = 0; i < m.n; i++ {
			if m.data[b*m.n+i] {
				out[b]++
			}
		}
	}

	return out
}
