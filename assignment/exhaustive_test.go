package assignment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rentdiv/assignment"
	"github.com/katalvlaran/rentdiv/matrix"
)

func TestExhaustive_TooLarge(t *testing.T) {
	t.Parallel()

	n := assignment.MaxExhaustive + 1
	v, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	_, err = assignment.Exhaustive(v)
	assert.ErrorIs(t, err, assignment.ErrTooLarge)
}

func TestExhaustive_VisitsAllPermutations(t *testing.T) {
	t.Parallel()

	// Only the permutation 3,1,0,2 scores 4; Heap's algorithm must reach it.
	rows := make([][]float64, 4)
	for i := range rows {
		rows[i] = make([]float64, 4)
	}
	rows[0][3], rows[1][1], rows[2][0], rows[3][2] = 1, 1, 1, 1

	res, err := assignment.Exhaustive(mustDense(t, rows))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 0, 2}, res.Assignment)
	assert.Equal(t, 4.0, res.Welfare)
}

func TestValidatePermutation(t *testing.T) {
	t.Parallel()

	require.NoError(t, assignment.ValidatePermutation([]int{2, 0, 1}, 3))
	assert.ErrorIs(t, assignment.ValidatePermutation([]int{0, 1}, 3), assignment.ErrNotPermutation)
	assert.ErrorIs(t, assignment.ValidatePermutation([]int{0, 0, 1}, 3), assignment.ErrNotPermutation)
	assert.ErrorIs(t, assignment.ValidatePermutation([]int{0, 3, 1}, 3), assignment.ErrNotPermutation)
	assert.ErrorIs(t, assignment.ValidatePermutation([]int{-1, 0, 1}, 3), assignment.ErrNotPermutation)
}

func TestWelfare_Errors(t *testing.T) {
	t.Parallel()

	_, err := assignment.Welfare(nil, []int{0})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = assignment.Welfare(mustDense(t, [][]float64{{1, 2}, {3, 4}}), []int{1, 1})
	assert.ErrorIs(t, err, assignment.ErrNotPermutation)
}
