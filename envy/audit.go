package envy

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rentdiv/assignment"
	"github.com/katalvlaran/rentdiv/matrix"
)

// Report summarises post-price envy of an allocation.
type Report struct {
	// MaxEnvy is max over i≠j of (V[i][A(j)] − P[A(j)]) − (V[i][A(i)] − P[A(i)]);
	// ≤ 0 means envy-free. It is 0 for a single agent.
	MaxEnvy float64

	// Agent and Other identify the pair attaining MaxEnvy (−1 when n = 1).
	Agent, Other int

	// Envy[i][j] is the post-price envy of i toward j.
	Envy [][]float64
}

// EnvyFree reports whether no agent envies another by more than tol.
func (r Report) EnvyFree(tol float64) bool { return r.MaxEnvy <= tol }

// Audit computes the post-price envy matrix of (v, a, p).
// p is indexed by item.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf,
// assignment.ErrNotPermutation, ErrLengthMismatch, ErrNonFinite.
//
// Complexity: O(n²).
func Audit(v matrix.Matrix, a []int, p []float64) (Report, error) {
	if err := matrix.ValidateSquare(v); err != nil {
		return Report{}, fmt.Errorf("envy: %w", err)
	}
	if err := matrix.ValidateFinite(v); err != nil {
		return Report{}, fmt.Errorf("envy: %w", err)
	}
	n := v.Rows()
	if err := assignment.ValidatePermutation(a, n); err != nil {
		return Report{}, fmt.Errorf("envy: %w", err)
	}
	if err := matrix.ValidateVecLen(p, n); err != nil {
		return Report{}, fmt.Errorf("%w: %d prices for %d items: %w", ErrLengthMismatch, len(p), n, err)
	}
	if err := checkFinite("price", p); err != nil {
		return Report{}, err
	}

	rep := Report{MaxEnvy: math.Inf(-1), Agent: -1, Other: -1, Envy: make([][]float64, n)}
	var (
		i, j      int
		own, them float64
		e         float64
	)
	for i = 0; i < n; i++ {
		rep.Envy[i] = make([]float64, n)
		own, _ = v.At(i, a[i])
		own -= p[a[i]]
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			them, _ = v.At(i, a[j])
			e = (them - p[a[j]]) - own
			rep.Envy[i][j] = e
			if e > rep.MaxEnvy {
				rep.MaxEnvy, rep.Agent, rep.Other = e, i, j
			}
		}
	}
	if n == 1 {
		rep.MaxEnvy = 0
	}

	return rep, nil
}
