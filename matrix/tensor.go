// SPDX-License-Identifier: MIT

// Package matrix - Tensor: a batch of square arc-score matrices.
//
// Layout:
//   - One flat buffer of length batch*n*n; sentence b occupies
//     data[b*n*n : (b+1)*n*n] in the same row-major order as Dense.
//   - At(b, i, j) is the score of token j being the head of token i.
//   - Sentence(b) exposes one slice as a *Dense sharing storage, so decoders
//     read rows without copying.

package matrix

import "fmt"

const (
	ctxTensorAt  = "Tensor.At"
	ctxTensorSet = "Tensor.Set"
	ctxSentence  = "Tensor.Sentence"
)

// Tensor holds batch×n×n arc scores.
type Tensor struct {
	batch, n int
	data     []float64
}

// NewTensor allocates a zero batch×n×n tensor.
//
// Errors:
//   - ErrInvalidDimensions when batch<=0 or n<=0.
func NewTensor(batch, n int) (*Tensor, error) {
	if batch <= 0 || n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Tensor{batch: batch, n: n, data: make([]float64, batch*n*n)}, nil
}

// NewTensorFrom copies nested [batch][n][n] scores into a new Tensor.
//
// Errors:
//   - ErrInvalidDimensions for an empty batch or empty first matrix.
//   - ErrRagged when any matrix is not n×n.
//   - ErrInvalidValue for NaN/+Inf cells.
func NewTensorFrom(scores [][][]float64) (*Tensor, error) {
	if len(scores) == 0 || len(scores[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	t, err := NewTensor(len(scores), len(scores[0]))
	if err != nil {
		return nil, err
	}
	var b, i, j int
	for b = range scores {
		if len(scores[b]) != t.n {
			return nil, fmt.Errorf("NewTensorFrom: sentence %d has %d rows, want %d: %w", b, len(scores[b]), t.n, ErrRagged)
		}
		for i = range scores[b] {
			if len(scores[b][i]) != t.n {
				return nil, fmt.Errorf("NewTensorFrom: sentence %d row %d has %d cols, want %d: %w", b, i, len(scores[b][i]), t.n, ErrRagged)
			}
			for j = range scores[b][i] {
				if err = t.Set(b, i, j, scores[b][i][j]); err != nil {
					return nil, err
				}
			}
		}
	}

	return t, nil
}

// Batch returns the number of sentences.
func (t *Tensor) Batch() int { return t.batch }

// Size returns the padded sequence length n (root included).
func (t *Tensor) Size() int { return t.n }

func (t *Tensor) offset(b, i, j int) (int, error) {
	if b < 0 || b >= t.batch || i < 0 || i >= t.n || j < 0 || j >= t.n {
		return 0, ErrOutOfRange
	}

	return (b*t.n+i)*t.n + j, nil
}

// At returns the score of token j heading token i in sentence b.
func (t *Tensor) At(b, i, j int) (float64, error) {
	off, err := t.offset(b, i, j)
	if err != nil {
		return 0, fmt.Errorf("%s(%d,%d,%d): %w", ctxTensorAt, b, i, j, err)
	}

	return t.data[off], nil
}

// Set stores v at (b, i, j) under the score numeric policy.
func (t *Tensor) Set(b, i, j int, v float64) error {
	off, err := t.offset(b, i, j)
	if err != nil {
		return fmt.Errorf("%s(%d,%d,%d): %w", ctxTensorSet, b, i, j, err)
	}
	if !ValidScore(v) {
		return fmt.Errorf("%s(%d,%d,%d): %w", ctxTensorSet, b, i, j, ErrInvalidValue)
	}
	t.data[off] = v

	return nil
}

// Sentence returns sentence b as an n×n Dense sharing the tensor's storage.
// Writes through the returned Dense are visible in the tensor.
func (t *Tensor) Sentence(b int) (*Dense, error) {
	if b < 0 || b >= t.batch {
		return nil, fmt.Errorf("%s(%d): %w", ctxSentence, b, ErrOutOfRange)
	}
	size := t.n * t.n
	lo := b * size

	return &Dense{r: t.n, c: t.n, data: t.data[lo : lo+size : lo+size]}, nil
}
