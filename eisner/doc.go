// Package eisner decodes arc scores into projective dependency trees.
//
// What:
//
//	Decode takes a batch of n×n arc-score matrices (matrix.Tensor, where
//	At(b, i, j) scores token j as the head of token i) and a padding mask
//	(matrix.Mask), and returns for every sentence the head array of its
//	highest-scoring single-rooted projective tree. Index 0 of every sentence
//	is the synthetic root.
//
// How:
//
//	Eisner's dynamic program over complete and incomplete spans, filled in
//	strictly increasing width, followed by backtracking through stored split
//	points. Ties resolve to the first maximizing split point, so decoding is
//	deterministic. Scores are summed and maximized as-is; -Inf marks a
//	forbidden arc.
//
// Output convention:
//
//	row[0] == RootHead (-1), row[1..L] are parents, row[L+1..n-1] == Pad (1).
//
// Options:
//
//   - WithWorkers(n)  spread the batch over n goroutines.
//
// Complexity:
//
//   - Time:   O(L³) per sentence.
//   - Memory: O(L²) per sentence, allocated per call and never shared.
//
// Errors:
//
//   - ErrNilInput, ErrShapeMismatch, ErrBadLength, ErrInvalidScore.
package eisner
