// Package matrix_test contains unit tests for Dense, Tensor and Mask.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/depdecode/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, -1)                      // negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestDenseRowsCols verifies that Rows() and Cols() return the requested shape.
func TestDenseRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4) // 3x4 zero matrix
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestDenseOutOfRange ensures accessors return ErrOutOfRange instead of panicking.
func TestDenseOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDenseNumericPolicy checks that NaN and +Inf are rejected while -Inf is stored.
func TestDenseNumericPolicy(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrInvalidValue)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrInvalidValue)
	require.NoError(t, m.Set(0, 1, math.Inf(-1)))

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, -1)) // forbidden arc kept

	v, err = m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, v) // rejected writes leave the cell untouched
}

// TestNewDenseFrom covers the literal constructor and its error paths.
func TestNewDenseFrom(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())

	v, err := m.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRagged)

	_, err = matrix.NewDenseFrom([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrInvalidValue)
}

// TestDenseRowAliasesAndCloneCopies checks the sharing contract of Row and Clone.
func TestDenseRowAliasesAndCloneCopies(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	cp := m.Clone()
	require.NoError(t, m.Set(1, 0, 30))

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{30, 4}, row) // Row sees the write

	old, err := cp.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, old) // Clone does not

	require.Equal(t, "[1, 2]\n[30, 4]\n", m.String())
}

// TestValidScore pins the admissible score values.
func TestValidScore(t *testing.T) {
	require.True(t, matrix.ValidScore(0))
	require.True(t, matrix.ValidScore(-1e300))
	require.True(t, matrix.ValidScore(math.Inf(-1)))
	require.False(t, matrix.ValidScore(math.Inf(1)))
	require.False(t, matrix.ValidScore(math.NaN()))
}
