package rent_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rentdiv/rent"
)

func freeRider(t *testing.T) *rent.Allocation {
	t.Helper()
	a, err := rent.Solve([][]float64{{150, 0}, {140, 10}}, 100)
	require.NoError(t, err)

	return a
}

func TestAllocation_Accessors(t *testing.T) {
	t.Parallel()

	a := freeRider(t)
	assert.Equal(t, 2, a.N())
	assert.Equal(t, 1, a.ItemOf(1))
	assert.Equal(t, -1, a.ItemOf(2))
	assert.Equal(t, 0, a.AgentOf(0))
	assert.Equal(t, -1, a.AgentOf(7))
	assert.InDelta(t, 35.0, a.Utility(0), tol)
	assert.InDelta(t, 25.0, a.Utility(1), tol)
	assert.True(t, math.IsNaN(a.Utility(-1)))
	assert.InDelta(t, 0.0, a.EnvyToward(1, 0), tol, "agent 1 is exactly indifferent")
	assert.InDelta(t, -20.0, a.EnvyToward(0, 1), tol)
	assert.InDelta(t, 100.0, a.TotalPrice(), tol)
	assert.InDelta(t, 115.0, a.Base, tol)
}

func TestAllocation_Audit(t *testing.T) {
	t.Parallel()

	rep, err := freeRider(t).Audit()
	require.NoError(t, err)
	assert.True(t, rep.EnvyFree(tol))
	assert.InDelta(t, 0.0, rep.MaxEnvy, tol)
}

func TestAllocation_VerifyFailures(t *testing.T) {
	t.Parallel()

	t.Run("budget", func(t *testing.T) {
		a := freeRider(t)
		a.Prices[0] += 1
		assert.ErrorIs(t, a.Verify(tol), rent.ErrBudgetViolated)
	})
	t.Run("envy", func(t *testing.T) {
		a := freeRider(t)
		a.Prices = []float64{50, 50}
		assert.ErrorIs(t, a.Verify(tol), rent.ErrEnvy)
	})
	t.Run("bijection", func(t *testing.T) {
		a := freeRider(t)
		a.Assignment = []int{0, 0}
		assert.ErrorIs(t, a.Verify(tol), rent.ErrNotBijection)
	})
	t.Run("no values", func(t *testing.T) {
		a := freeRider(t)
		a.Values = nil
		assert.ErrorIs(t, a.Verify(tol), rent.ErrNotBijection)
	})
}

func TestAllocation_VerifyNonFinitePrices(t *testing.T) {
	t.Parallel()

	a := freeRider(t)
	a.Prices = []float64{math.NaN(), math.NaN()}
	assert.ErrorIs(t, a.Verify(tol), rent.ErrBudgetViolated)

	a = freeRider(t)
	a.Prices = []float64{math.Inf(1), math.Inf(-1)}
	assert.ErrorIs(t, a.Verify(tol), rent.ErrBudgetViolated)
}
