package envy_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rentdiv/assignment"
	"github.com/katalvlaran/rentdiv/bellmanford"
	"github.com/katalvlaran/rentdiv/envy"
	"github.com/katalvlaran/rentdiv/matrix"
)

const tol = 1e-6

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	return m
}

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

var freeRider = [][]float64{{150, 0}, {140, 10}}

func TestNewGraph_Weights(t *testing.T) {
	t.Parallel()

	g, err := envy.NewGraph(mustDense(t, freeRider), []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 2, g.N())
	assert.Equal(t, -150.0, g.Weight(0, 1))
	assert.Equal(t, 130.0, g.Weight(1, 0))
	assert.Equal(t, 0.0, g.Weight(0, 0))
	assert.Equal(t, 0.0, g.Weight(5, 0), "out of range reads as 0")
	assert.Equal(t, [][2]int{{1, 0}}, g.Envious())

	w := g.Matrix()
	require.NoError(t, w.Set(0, 1, 99))
	assert.Equal(t, -150.0, g.Weight(0, 1), "Matrix returns a copy")
}

func TestNewGraph_Errors(t *testing.T) {
	t.Parallel()

	_, err := envy.NewGraph(nil, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = envy.NewGraph(mustDense(t, [][]float64{{1, 2}}), []int{0})
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = envy.NewGraph(mustDense(t, freeRider), []int{1, 1})
	assert.ErrorIs(t, err, assignment.ErrNotPermutation)

	_, err = envy.NewGraph(mustDense(t, [][]float64{{math.Inf(1)}}), []int{0})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestPrice_FreeRider(t *testing.T) {
	t.Parallel()

	res, err := envy.Price(mustDense(t, freeRider), []int{0, 1}, 100)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0, 130}, res.Subsidies, tol)
	assert.InDelta(t, 115.0, res.Base, tol)
	assert.InDeltaSlice(t, []float64{115, -15}, res.Prices, tol)
	assert.InDelta(t, 100.0, sum(res.Prices), tol)
}

func TestPrice_ThreeRooms(t *testing.T) {
	t.Parallel()

	v := [][]float64{{35, 40, 25}, {35, 60, 40}, {25, 40, 20}}
	res, err := envy.Price(mustDense(t, v), []int{0, 1, 2}, 100)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{10, 0, 20}, res.Subsidies, tol)
	assert.InDeltaSlice(t, []float64{100.0 / 3, 130.0 / 3, 70.0 / 3}, res.Prices, tol)
	assert.InDelta(t, 100.0, sum(res.Prices), tol)

	rep, err := envy.Audit(mustDense(t, v), []int{0, 1, 2}, res.Prices)
	require.NoError(t, err)
	assert.True(t, rep.EnvyFree(tol), "max envy %v by %d→%d", rep.MaxEnvy, rep.Agent, rep.Other)
}

func TestPrice_NonOptimalAssignment_PositiveCycle(t *testing.T) {
	t.Parallel()

	// Swapping the free-rider assignment loses 20 welfare: the cycle 0→1→0 gains 20.
	_, err := envy.Price(mustDense(t, freeRider), []int{1, 0}, 100)
	require.ErrorIs(t, err, bellmanford.ErrPositiveCycle)

	var ce *bellmanford.CycleError
	require.ErrorAs(t, err, &ce)
	assert.InDelta(t, 20.0, ce.Gain, tol)
}

func TestPrices_Errors(t *testing.T) {
	t.Parallel()

	_, err := envy.Prices(nil, nil, 10)
	assert.ErrorIs(t, err, envy.ErrEmpty)
	_, err = envy.Prices([]int{0, 1}, []float64{0}, 10)
	assert.ErrorIs(t, err, envy.ErrLengthMismatch)
	_, err = envy.Prices([]int{0}, []float64{0}, math.NaN())
	assert.ErrorIs(t, err, envy.ErrNonFinite)
	_, err = envy.Prices([]int{0}, []float64{math.Inf(1)}, 1)
	assert.ErrorIs(t, err, envy.ErrNonFinite)
	_, err = envy.Subsidies(nil)
	assert.ErrorIs(t, err, envy.ErrEmpty)
}

func TestPrice_SingleAgent(t *testing.T) {
	t.Parallel()

	res, err := envy.Price(mustDense(t, [][]float64{{-7}}), []int{0}, 42)
	require.NoError(t, err)
	assert.Equal(t, []float64{42}, res.Prices)
	assert.Equal(t, []float64{0}, res.Subsidies)

	rep, err := envy.Audit(mustDense(t, [][]float64{{-7}}), []int{0}, res.Prices)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rep.MaxEnvy)
	assert.Equal(t, -1, rep.Agent)
}

func TestAudit_DetectsEnvy(t *testing.T) {
	t.Parallel()

	// Equal split leaves agent 1 envying agent 0 by 130.
	rep, err := envy.Audit(mustDense(t, freeRider), []int{0, 1}, []float64{50, 50})
	require.NoError(t, err)
	assert.False(t, rep.EnvyFree(tol))
	assert.InDelta(t, 130.0, rep.MaxEnvy, tol)
	assert.Equal(t, 1, rep.Agent)
	assert.Equal(t, 0, rep.Other)
	assert.InDelta(t, -150.0, rep.Envy[0][1], tol)

	_, err = envy.Audit(mustDense(t, freeRider), []int{0, 1}, []float64{50})
	assert.ErrorIs(t, err, envy.ErrLengthMismatch)
}

// TestPrice_RandomEnvyFree checks budget conservation and envy-freeness on
// random instances priced under every strategy.
func TestPrice_RandomEnvyFree(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	strategies := []bellmanford.Strategy{
		bellmanford.StrategyPerSource,
		bellmanford.StrategySuperSink,
		bellmanford.StrategyFloydWarshall,
	}
	for trial := 0; trial < 40; trial++ {
		n := 1 + rng.Intn(9)
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = make([]float64, n)
			for j := range rows[i] {
				rows[i][j] = math.Round(rng.Float64()*1000) / 10
			}
		}
		v := mustDense(t, rows)
		opt, err := assignment.Solve(v)
		require.NoError(t, err)
		rent := rng.Float64() * 500

		for _, s := range strategies {
			res, err := envy.Price(v, opt.Assignment, rent, bellmanford.WithStrategy(s))
			require.NoError(t, err)
			require.InDelta(t, rent, sum(res.Prices), tol)
			for _, q := range res.Subsidies {
				require.GreaterOrEqual(t, q, 0.0)
			}

			rep, err := envy.Audit(v, opt.Assignment, res.Prices)
			require.NoError(t, err)
			require.Truef(t, rep.EnvyFree(tol), "trial %d %s: envy %v (%d→%d)", trial, s, rep.MaxEnvy, rep.Agent, rep.Other)
		}
	}
}

func TestAudit_RejectsNonFinite(t *testing.T) {
	t.Parallel()

	nan := math.NaN()
	_, err := envy.Audit(mustDense(t, freeRider), []int{0, 1}, []float64{nan, nan})
	assert.ErrorIs(t, err, envy.ErrNonFinite)

	_, err = envy.Audit(mustDense(t, freeRider), []int{0, 1}, []float64{math.Inf(1), 0})
	assert.ErrorIs(t, err, envy.ErrNonFinite)

	_, err = envy.Audit(mustDense(t, [][]float64{{nan, 0}, {0, 0}}), []int{0, 1}, []float64{0, 0})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = envy.Audit(mustDense(t, freeRider), []int{0, 1}, nil)
	assert.ErrorIs(t, err, envy.ErrLengthMismatch)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestPrices_RejectsNonPermutation(t *testing.T) {
	t.Parallel()

	// A repeated item would overwrite a price and break the budget.
	_, err := envy.Prices([]int{0, 0}, []float64{0, 0}, 100)
	assert.ErrorIs(t, err, assignment.ErrNotPermutation)

	_, err = envy.Prices([]int{0, 2}, []float64{0, 0}, 100)
	assert.ErrorIs(t, err, assignment.ErrNotPermutation)

	p, err := envy.Prices([]int{1, 0}, []float64{0, 10}, 100)
	require.NoError(t, err)
	assert.Equal(t, []float64{45, 55}, p)
}
