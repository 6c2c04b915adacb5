package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rentdiv/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 3}, {0, 0}} {
		_, err := matrix.NewDense(dims[0], dims[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "dims=%v", dims)
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)

	// +Inf is a legal stored value (distance sentinel).
	require.NoError(t, m.Set(0, 0, math.Inf(1)))
}

func TestNewDenseFrom_CopiesInput(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 2}, {3, 4}}
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	rows[0][0] = 99 // caller mutation must not leak in
	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, []float64{3, 4}, m.Row(1))
	assert.Nil(t, m.Row(2))
}

func TestNewDenseFrom_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDenseFrom(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFrom([][]float64{{}})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDense_FillCloneString(t *testing.T) {
	t.Parallel()

	m, _ := matrix.NewDense(2, 2)
	require.NoError(t, m.Fill([]float64{1, 2, 3, 4}))
	assert.ErrorIs(t, m.Fill([]float64{1}), matrix.ErrDimensionMismatch)

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, -1))
	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v, "clone must be independent")

	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
