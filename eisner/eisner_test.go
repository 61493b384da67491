package eisner_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/depdecode/builder"
	"github.com/katalvlaran/depdecode/deptree"
	"github.com/katalvlaran/depdecode/eisner"
	"github.com/katalvlaran/depdecode/matrix"
)

// rawMatrix is a Matrix without the numeric policy of matrix.Dense, so tests
// can feed NaN and odd shapes straight to DecodeSentence.
type rawMatrix [][]float64

func (m rawMatrix) Rows() int { return len(m) }
func (m rawMatrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}
func (m rawMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= len(m) || j < 0 || j >= len(m[i]) {
		return 0, matrix.ErrOutOfRange
	}
	return m[i][j], nil
}
func (m rawMatrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= len(m) {
		return nil, matrix.ErrOutOfRange
	}
	return m[i], nil
}

// treeScore sums the arc scores of heads[1:] under m.
func treeScore(t *testing.T, m matrix.Matrix, heads []int) float64 {
	t.Helper()
	total := 0.0
	for d := 1; d < len(heads); d++ {
		v, err := m.At(d, heads[d])
		require.NoError(t, err)
		total += v
	}
	return total
}

// TestDecode_DominantTree checks that a tree whose arcs clearly outscore every
// alternative is returned exactly: token 1 under the root, token 2 under token 1.
func TestDecode_DominantTree(t *testing.T) {
	gold := []int{-1, 0, 1}
	scores, err := builder.ArcTensor([][]int{gold}, 3, 5, 0)
	require.NoError(t, err)
	mask, err := matrix.MaskFromLengths([]int{2}, 3)
	require.NoError(t, err)

	out, err := eisner.Decode(scores, mask)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, gold, out[0], "dominant tree must be decoded")

	sent, err := scores.Sentence(0)
	require.NoError(t, err)
	heads, score, err := eisner.DecodeSentence(sent, 2)
	require.NoError(t, err)
	assert.Equal(t, gold, heads)
	assert.Equal(t, 10.0, score, "two gold arcs of 5 each")
}

// TestDecode_PaddedBatch decodes two sentences of different lengths in one
// batch and checks the Pad sentinel after the shorter one.
func TestDecode_PaddedBatch(t *testing.T) {
	short := []int{-1, 0, 1}
	long := []int{-1, 2, 0, 2, 3}
	scores, err := builder.ArcTensor([][]int{short, long}, 5, 5, 0)
	require.NoError(t, err)
	mask, err := matrix.MaskFromLengths([]int{2, 4}, 5)
	require.NoError(t, err)

	out, err := eisner.Decode(scores, mask)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 0, 1, eisner.Pad, eisner.Pad}, out[0])
	assert.Equal(t, long, out[1])
}

// TestDecode_PaddingDoesNotMatter overwrites every padding cell with extreme
// values and expects identical output.
func TestDecode_PaddingDoesNotMatter(t *testing.T) {
	const batch, n = 6, 12
	scores, err := builder.RandomScores(batch, n, builder.WithSeed(7))
	require.NoError(t, err)
	lengths, err := builder.RandomLengths(batch, 1, n-1, builder.WithSeed(8))
	require.NoError(t, err)
	mask, err := matrix.MaskFromLengths(lengths, n)
	require.NoError(t, err)

	want, err := eisner.Decode(scores, mask)
	require.NoError(t, err)

	for _, fill := range []float64{1e9, -1e9, math.Inf(-1), 0} {
		for b, l := range lengths {
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					if i > l || j > l {
						require.NoError(t, scores.Set(b, i, j, fill))
					}
				}
			}
		}
		got, err := eisner.Decode(scores, mask)
		require.NoError(t, err)
		assert.Equal(t, want, got, "padding filled with %v changed the output", fill)
	}
}

// TestDecode_OutputIsProjectiveTree runs random batches of every size 2..20 and
// batch 1..8 through the validator.
func TestDecode_OutputIsProjectiveTree(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 2; n <= 20; n++ {
		for batch := 1; batch <= 8; batch++ {
			scores, err := builder.RandomScores(batch, n, builder.WithRand(rng))
			require.NoError(t, err)
			lengths, err := builder.RandomLengths(batch, 1, n-1, builder.WithRand(rng))
			require.NoError(t, err)
			mask, err := matrix.MaskFromLengths(lengths, n)
			require.NoError(t, err)

			out, err := eisner.Decode(scores, mask)
			require.NoError(t, err)
			require.Len(t, out, batch)
			for b, row := range out {
				require.Len(t, row, n)
				l := lengths[b]
				assert.Equal(t, eisner.RootHead, row[0])
				for i := l + 1; i < n; i++ {
					assert.Equal(t, eisner.Pad, row[i], "n=%d b=%d pos=%d", n, b, i)
				}
				ok, err := deptree.IsProjectiveTree(row[:l+1])
				require.NoError(t, err)
				assert.True(t, ok, "n=%d batch=%d b=%d heads=%v", n, batch, b, row[:l+1])
			}
		}
	}
}

// bruteForce enumerates every head array over length tokens and returns the
// best projective tree and its score.
func bruteForce(t *testing.T, m matrix.Matrix, length int) ([]int, float64) {
	t.Helper()
	heads := make([]int, length+1)
	heads[0] = -1
	var best []int
	bestScore := math.Inf(-1)
	var rec func(d int)
	rec = func(d int) {
		if d > length {
			ok, err := deptree.IsProjectiveTree(heads)
			require.NoError(t, err)
			if !ok {
				return
			}
			if s := treeScore(t, m, heads); best == nil || s > bestScore {
				best, bestScore = append([]int(nil), heads...), s
			}
			return
		}
		for h := 0; h <= length; h++ {
			if h == d {
				continue
			}
			heads[d] = h
			rec(d + 1)
		}
	}
	rec(1)
	return best, bestScore
}

// TestDecodeSentence_MatchesBruteForce compares the decoder with exhaustive
// search over all projective trees of up to five tokens.
func TestDecodeSentence_MatchesBruteForce(t *testing.T) {
	for length := 1; length <= 5; length++ {
		for seed := int64(0); seed < 5; seed++ {
			scores, err := builder.RandomScores(1, length+1, builder.WithSeed(seed*31+int64(length)))
			require.NoError(t, err)
			sent, err := scores.Sentence(0)
			require.NoError(t, err)

			heads, score, err := eisner.DecodeSentence(sent, length)
			require.NoError(t, err)
			wantHeads, wantScore := bruteForce(t, sent, length)

			assert.InDelta(t, wantScore, score, 1e-9, "length=%d seed=%d", length, seed)
			assert.InDelta(t, treeScore(t, sent, heads), score, 1e-9, "reported score must match the tree")
			assert.Equal(t, wantHeads, heads, "length=%d seed=%d", length, seed)
		}
	}
}

// TestDecodeSentence_ForbiddenArcs leaves only one tree with finite score.
func TestDecodeSentence_ForbiddenArcs(t *testing.T) {
	gold := []int{-1, 3, 1, 0, 3, 4}
	m, err := builder.ArcScores(gold, 6, 0.5, math.Inf(-1))
	require.NoError(t, err)

	heads, score, err := eisner.DecodeSentence(m, 5)
	require.NoError(t, err)
	assert.Equal(t, gold, heads)
	assert.Equal(t, 2.5, score)
}

// TestDecodeSentence_AllForbidden still yields a well-formed tree, scored -Inf.
func TestDecodeSentence_AllForbidden(t *testing.T) {
	m, err := builder.ArcScores([]int{-1, 0}, 4, math.Inf(-1), math.Inf(-1))
	require.NoError(t, err)

	heads, score, err := eisner.DecodeSentence(m, 3)
	require.NoError(t, err)
	assert.True(t, math.IsInf(score, -1))
	ok, err := deptree.IsProjectiveTree(heads)
	require.NoError(t, err)
	assert.True(t, ok, "heads=%v", heads)
}

// TestDecodeSentence_TiesAreDeterministic decodes a constant matrix repeatedly.
func TestDecodeSentence_TiesAreDeterministic(t *testing.T) {
	m, err := matrix.NewDense(8, 8)
	require.NoError(t, err)

	first, _, err := eisner.DecodeSentence(m, 7)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, _, err := eisner.DecodeSentence(m, 7)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	ok, err := deptree.IsProjectiveTree(first)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestDecode_WorkersAgree checks that parallel decoding matches sequential.
func TestDecode_WorkersAgree(t *testing.T) {
	const batch, n = 13, 15
	scores, err := builder.RandomScores(batch, n, builder.WithSeed(3))
	require.NoError(t, err)
	lengths, err := builder.RandomLengths(batch, 1, n-1, builder.WithSeed(4))
	require.NoError(t, err)
	mask, err := matrix.MaskFromLengths(lengths, n)
	require.NoError(t, err)

	seq, err := eisner.Decode(scores, mask)
	require.NoError(t, err)
	for _, w := range []int{2, 4, 13, 32} {
		par, err := eisner.Decode(scores, mask, eisner.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, seq, par, "workers=%d", w)
	}
}

func TestWithWorkers_Panics(t *testing.T) {
	assert.Panics(t, func() { eisner.WithWorkers(0) })
}

func TestDecode_Errors(t *testing.T) {
	scores, err := matrix.NewTensor(2, 4)
	require.NoError(t, err)
	good, err := matrix.MaskFromLengths([]int{3, 2}, 4)
	require.NoError(t, err)

	_, err = eisner.Decode(nil, good)
	assert.ErrorIs(t, err, eisner.ErrNilInput)
	_, err = eisner.Decode(scores, nil)
	assert.ErrorIs(t, err, eisner.ErrNilInput)

	wrongBatch, err := matrix.MaskFromLengths([]int{3}, 4)
	require.NoError(t, err)
	_, err = eisner.Decode(scores, wrongBatch)
	assert.ErrorIs(t, err, eisner.ErrShapeMismatch)

	wrongLen, err := matrix.MaskFromLengths([]int{3, 2}, 5)
	require.NoError(t, err)
	_, err = eisner.Decode(scores, wrongLen)
	assert.ErrorIs(t, err, eisner.ErrShapeMismatch)

	empty, err := matrix.MaskFromLengths([]int{3, 0}, 4)
	require.NoError(t, err)
	_, err = eisner.Decode(scores, empty)
	assert.ErrorIs(t, err, eisner.ErrBadLength)
	assert.Contains(t, err.Error(), "sentence 1")

	full, err := matrix.NewMaskFrom([][]bool{{true, true, true, true}, {false, true, false, false}})
	require.NoError(t, err)
	_, err = eisner.Decode(scores, full)
	assert.ErrorIs(t, err, eisner.ErrBadLength, "length 4 leaves no room for the root")
}

func TestDecodeSentence_Errors(t *testing.T) {
	_, _, err := eisner.DecodeSentence(nil, 1)
	assert.ErrorIs(t, err, eisner.ErrNilInput)

	_, _, err = eisner.DecodeSentence(rawMatrix{{0, 0, 0}, {0, 0, 0}}, 1)
	assert.ErrorIs(t, err, eisner.ErrShapeMismatch)

	square := rawMatrix{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	_, _, err = eisner.DecodeSentence(square, 0)
	assert.ErrorIs(t, err, eisner.ErrBadLength)
	_, _, err = eisner.DecodeSentence(square, 3)
	assert.ErrorIs(t, err, eisner.ErrBadLength)

	withNaN := rawMatrix{{0, 0, 0}, {0, 0, math.NaN()}, {0, 0, 0}}
	_, _, err = eisner.DecodeSentence(withNaN, 2)
	assert.ErrorIs(t, err, eisner.ErrInvalidScore)

	// Out-of-block NaN is never read.
	heads, _, err := eisner.DecodeSentence(withNaN, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 0}, heads)

	withPosInf := rawMatrix{{0, 0, 0}, {math.Inf(1), 0, 0}, {0, 0, 0}}
	_, _, err = eisner.DecodeSentence(withPosInf, 2)
	assert.ErrorIs(t, err, eisner.ErrInvalidScore)
}
