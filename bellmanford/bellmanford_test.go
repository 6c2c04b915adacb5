package bellmanford_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rentdiv/bellmanford"
	"github.com/katalvlaran/rentdiv/matrix"
)

func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	return m
}

// chain is a complete 4-vertex graph whose heaviest paths follow 0→1→2→3.
// It contains the zero-weight cycle 0→1→2→0 and no positive cycle.
var chain = [][]float64{
	{0, 2, -1, -10},
	{-5, 0, 3, -10},
	{-5, -6, 0, 1},
	{-20, -20, -20, 0},
}

// twoCycle has the positive cycle 0→1→0 with gain 3.
var twoCycle = [][]float64{
	{0, 5},
	{-2, 0},
}

func TestLongest_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := bellmanford.Longest(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, _, err = bellmanford.Longest(mustDense(t, [][]float64{{0, 1}}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, _, err = bellmanford.Longest(mustDense(t, [][]float64{{0, math.NaN()}, {1, 0}}))
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	_, _, err = bellmanford.Longest(mustDense(t, chain), bellmanford.Source(4))
	assert.ErrorIs(t, err, bellmanford.ErrSourceOutOfRange)

	_, _, err = bellmanford.Longest(mustDense(t, chain), bellmanford.Source(-1))
	assert.ErrorIs(t, err, bellmanford.ErrSourceOutOfRange)
}

func TestWithEpsilon_NegativePanics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, bellmanford.ErrBadEpsilon.Error(), func() {
		bellmanford.WithEpsilon(-1)(&bellmanford.Options{})
	})
}

func TestLongest_Chain(t *testing.T) {
	t.Parallel()

	dist, prev, err := bellmanford.Longest(mustDense(t, chain), bellmanford.Source(0), bellmanford.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 5, 6}, dist)
	assert.Equal(t, []int{-1, 0, 1, 2}, prev)

	dist, prev, err = bellmanford.Longest(mustDense(t, chain), bellmanford.Source(3))
	require.NoError(t, err)
	assert.Nil(t, prev, "prev is only returned with WithReturnPath")
	assert.Equal(t, 0.0, dist[3])
	assert.Equal(t, -15.0, dist[2], "3→0→1→2 = -20+2+3")
}

func TestLongest_SingleVertex(t *testing.T) {
	t.Parallel()

	dist, prev, err := bellmanford.Longest(mustDense(t, [][]float64{{42}}), bellmanford.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, dist, "diagonal is not an edge")
	assert.Equal(t, []int{-1}, prev)
}

func TestLongest_PositiveCycle(t *testing.T) {
	t.Parallel()

	_, _, err := bellmanford.Longest(mustDense(t, twoCycle))
	require.ErrorIs(t, err, bellmanford.ErrPositiveCycle)

	var ce *bellmanford.CycleError
	require.ErrorAs(t, err, &ce)
	assert.ElementsMatch(t, []int{0, 1}, ce.Cycle)
	assert.InDelta(t, 3.0, ce.Gain, 1e-12)
	assert.Contains(t, err.Error(), "gain 3")
}

func TestLongest_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	w := mustDense(t, chain)
	before := w.Clone()
	_, _, err := bellmanford.Longest(w)
	require.NoError(t, err)
	assert.Equal(t, before, matrix.Matrix(w))
}
