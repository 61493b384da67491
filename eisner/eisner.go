package eisner

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/depdecode/matrix"
)

// Eisner: projective dependency decoding
//
// Description:
//
//	Given arc scores s(d, h) (token h heading token d) for a sentence with a
//	synthetic root at index 0, find the single-rooted projective tree with
//	the highest total arc score. This is Eisner's O(n³) span algorithm.
//
// Algorithm Outline:
//  1. C(i→i) = 0 for every token; every other span starts at -∞.
//  2. For widths w = 1..L, for every span [i, j] of width w:
//     I(j→i) = max_{i≤r<j} C(i→r) + C(j→r+1) + s(i, j)
//     I(i→j) = max_{i≤r<j} C(i→r) + C(j→r+1) + s(j, i)
//     C(j→i) = max_{i≤r<j} I(j→r) + C(r→i)
//     C(i→j) = max_{i<r≤j} I(i→r) + C(r→j)
//     keeping the first maximizing r of each.
//  3. After width w, C(0→w) is reset to -∞ unless w == L: the root takes one
//     dependent whose subtree covers the whole sentence.
//  4. Backtrack from C(0→L) through the stored split points.
//
// Complexity:
//
//	Time   = O(L³) per sentence
//	Memory = O(L²) per sentence (four L+1 × L+1 tables)

const (
	// RootHead is the parent recorded for the root slot (index 0).
	RootHead = -1

	// Pad fills the positions of a decoded row beyond its sentence length.
	Pad = 1
)

// DecodeSentence decodes one sentence whose real tokens are 1..length.
// Only rows and columns 0..length of scores are read.
//
// Returns the head array (length+1 entries, heads[0] == RootHead) and the
// tree's total arc score. If every tree contains a -Inf arc, the returned
// tree is still well-formed and the score is -Inf.
//
// Errors:
//   - ErrNilInput: scores is nil.
//   - ErrShapeMismatch: scores is not square.
//   - ErrBadLength: length < 1 or length > n-1.
//   - ErrInvalidScore: NaN or +Inf inside the [0..length]² block.
func DecodeSentence(scores matrix.Matrix, length int) ([]int, float64, error) {
	if scores == nil {
		return nil, 0, ErrNilInput
	}
	n := scores.Rows()
	if scores.Cols() != n {
		return nil, 0, fmt.Errorf("scores %d×%d: %w", n, scores.Cols(), ErrShapeMismatch)
	}
	if length < 1 || length > n-1 {
		return nil, 0, fmt.Errorf("length %d with n=%d: %w", length, n, ErrBadLength)
	}

	// Gather the real-token block once; the chart indexes it directly.
	size := length + 1
	rows := make([][]float64, size)
	var row []float64
	var err error
	for i := 0; i < size; i++ {
		if row, err = scores.Row(i); err != nil {
			return nil, 0, fmt.Errorf("row %d: %w", i, err)
		}
		if len(row) < size {
			return nil, 0, fmt.Errorf("row %d has %d cols: %w", i, len(row), ErrShapeMismatch)
		}
		rows[i] = row[:size:size]
		for j, v := range rows[i] {
			if !matrix.ValidScore(v) {
				return nil, 0, fmt.Errorf("score (%d,%d) = %v: %w", i, j, v, ErrInvalidScore)
			}
		}
	}

	c := newChart(rows, length)
	for w := range c.widths() {
		c.fillWidth(w)
	}

	heads := make([]int, size)
	for i := range heads {
		heads[i] = RootHead
	}
	c.backtrack(heads, 0, length, true)

	return heads, c.score(), nil
}

// Decode finds the best projective tree for every sentence of a batch.
//
// Sentence b has length L = mask row sum and its tokens are 1..L. The result
// has one row of length n per sentence: row[0] == RootHead, row[1..L] are the
// decoded parents, and row[L+1..n-1] hold Pad. Padding scores never affect
// the output.
//
// All lengths are validated before any decoding starts.
//
// Errors:
//   - ErrNilInput: scores or mask is nil.
//   - ErrShapeMismatch: batch sizes or sequence lengths differ.
//   - ErrBadLength: some sentence has L < 1 or L > n-1.
//   - ErrInvalidScore: NaN or +Inf in some sentence's real-token block.
func Decode(scores *matrix.Tensor, mask *matrix.Mask, opts ...Option) ([][]int, error) {
	if scores == nil || mask == nil {
		return nil, ErrNilInput
	}
	batch, n := scores.Batch(), scores.Size()
	if mask.Batch() != batch || mask.Size() != n {
		return nil, fmt.Errorf("scores %d×%d×%d, mask %d×%d: %w",
			batch, n, n, mask.Batch(), mask.Size(), ErrShapeMismatch)
	}
	lens := mask.Lengths()
	for b, l := range lens {
		if l < 1 || l > n-1 {
			return nil, fmt.Errorf("sentence %d: length %d with n=%d: %w", b, l, n, ErrBadLength)
		}
	}

	cfg := newConfig(opts...)
	out := make([][]int, batch)
	errs := make([]error, batch)

	decodeRange := func(start, end int) {
		for b := start; b < end; b++ {
			out[b], errs[b] = decodeRow(scores, b, lens[b])
		}
	}

	workers := min(cfg.workers, batch)
	if workers <= 1 {
		decodeRange(0, batch)
	} else {
		// Contiguous sentence ranges per worker; rows never overlap, so writes
		// need no synchronization.
		var wg sync.WaitGroup
		perWorker := (batch + workers - 1) / workers
		for w := 0; w < workers; w++ {
			start := w * perWorker
			if start >= batch {
				break
			}
			end := min(start+perWorker, batch)
			wg.Add(1)
			go func(start, end int) {
				defer wg.Done()
				decodeRange(start, end)
			}(start, end)
		}
		wg.Wait()
	}

	for b, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("sentence %d: %w", b, err)
		}
	}

	return out, nil
}

// decodeRow decodes sentence b and pads the result to the tensor width.
func decodeRow(scores *matrix.Tensor, b, length int) ([]int, error) {
	sent, err := scores.Sentence(b)
	if err != nil {
		return nil, err
	}
	heads, _, err := DecodeSentence(sent, length)
	if err != nil {
		return nil, err
	}
	row := make([]int, scores.Size())
	copy(row, heads)
	for i := len(heads); i < len(row); i++ {
		row[i] = Pad
	}

	return row, nil
}
