package envy

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rentdiv/assignment"
	"github.com/katalvlaran/rentdiv/bellmanford"
	"github.com/katalvlaran/rentdiv/matrix"
)

// Subsidies returns q[i], the heaviest envy chain starting at agent i, floored
// at 0. A positive cycle (non-optimal assignment) is returned as a
// *bellmanford.CycleError.
func Subsidies(g *Graph, opts ...bellmanford.Option) ([]float64, error) {
	if g == nil || g.n == 0 {
		return nil, ErrEmpty
	}

	return bellmanford.Subsidies(g.w, opts...)
}

// Prices distributes rent over items: b = (rent + Σq)/n and P[a[i]] = b − q[i].
// The returned slice is indexed by item and sums to rent.
//
// Errors: ErrEmpty, assignment.ErrNotPermutation, ErrLengthMismatch, ErrNonFinite.
func Prices(a []int, q []float64, rent float64) ([]float64, error) {
	p, _, err := prices(a, q, rent)

	return p, err
}

func prices(a []int, q []float64, rent float64) ([]float64, float64, error) {
	n := len(a)
	if n == 0 {
		return nil, 0, ErrEmpty
	}
	if err := assignment.ValidatePermutation(a, n); err != nil {
		return nil, 0, fmt.Errorf("envy: %w", err)
	}
	if err := matrix.ValidateVecLen(q, n); err != nil {
		return nil, 0, fmt.Errorf("%w: %d subsidies for %d agents: %w", ErrLengthMismatch, len(q), n, err)
	}
	if math.IsNaN(rent) || math.IsInf(rent, 0) {
		return nil, 0, fmt.Errorf("%w: rent %v", ErrNonFinite, rent)
	}
	if err := checkFinite("subsidy", q); err != nil {
		return nil, 0, err
	}

	var s float64
	for _, qi := range q {
		s += qi
	}

	b := (rent + s) / float64(n)
	p := make([]float64, n)
	for i, item := range a {
		p[item] = b - q[i]
	}

	return p, b, nil
}

// checkFinite rejects the first NaN or ±Inf entry of xs.
func checkFinite(what string, xs []float64) error {
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: %s[%d] = %v", ErrNonFinite, what, i, x)
		}
	}

	return nil
}

// Price runs the three pricing steps for valuations v, optimal assignment a
// and total rent.
func Price(v matrix.Matrix, a []int, rent float64, opts ...bellmanford.Option) (Result, error) {
	g, err := NewGraph(v, a)
	if err != nil {
		return Result{}, err
	}
	q, err := Subsidies(g, opts...)
	if err != nil {
		return Result{}, err
	}
	p, b, err := prices(a, q, rent)
	if err != nil {
		return Result{}, err
	}

	return Result{Prices: p, Subsidies: q, Base: b}, nil
}
