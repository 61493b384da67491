// Package matrix stores arc scores for dependency decoding.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with error-returning accessors,
//     holding one sentence's n×n arc scores.
//   - Tensor: a batch of n×n score matrices in one flat buffer; Sentence(b)
//     hands out a shared-storage Dense per sentence.
//   - Mask: batch×n flags marking real tokens; Lengths() yields the per-sentence
//     token counts a decoder needs.
//
// Convention: index 0 of every sentence is the synthetic root, and
// At(i, j) is the score of token j being the head of token i.
//
// Numeric policy: NaN and +Inf are rejected on write (ErrInvalidValue);
// -Inf is accepted and marks a forbidden arc.
//
// See the examples in this package for usage patterns.
package matrix
