package bellmanford

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rentdiv/matrix"
)

// Subsidies returns q where q[i] is the heaviest weight of any path starting
// at vertex i, including the empty path (so q[i] ≥ 0).
//
// Vertices that reach nothing, or reach only through negative paths, get 0.
// The algorithm is chosen by WithStrategy; see the package documentation.
//
// Errors: as for Longest, plus ErrUnknownStrategy. A positive cycle is
// reported as *CycleError (errors.Is(err, ErrPositiveCycle)).
func Subsidies(w matrix.Matrix, opts ...Option) ([]float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	weights, scale, err := copyWeights(w)
	if err != nil {
		return nil, err
	}

	switch cfg.Strategy {
	case StrategyPerSource:
		return perSource(weights, cfg, scale)
	case StrategySuperSink:
		return superSink(weights, cfg.Epsilon*scale)
	case StrategyFloydWarshall:
		return floydWarshall(weights, cfg.Epsilon*scale)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, cfg.Strategy)
	}
}

// perSource runs one Longest relaxation per source; q[i] is the largest
// finite distance reached, which is at least dist[i] = 0.
// Complexity: O(n⁴).
func perSource(w [][]float64, cfg Options, scale float64) ([]float64, error) {
	n := len(w)
	q := make([]float64, n)

	var src, v int
	for src = 0; src < n; src++ {
		cfg.Source = src
		r := newRunner(w, cfg, scale)
		r.init()
		if err := r.process(); err != nil {
			return nil, err
		}
		best := 0.0 // the empty path
		for v = 0; v < n; v++ {
			if !math.IsInf(r.dist[v], -1) && r.dist[v] > best {
				best = r.dist[v]
			}
		}
		q[src] = best
	}

	return q, nil
}

// superSink relaxes q[i] = max(q[i], w(i,j) + q[j]) starting from q ≡ 0.
// Starting every vertex at 0 is the same as adding a sink s with a zero edge
// i→s from every vertex and running a longest-path search towards s, so n
// passes (n+1 vertices) suffice; one more improving pass proves a cycle
// unless the witness weighs no more than tol.
// Complexity: O(n³).
func superSink(w [][]float64, tol float64) ([]float64, error) {
	n := len(w)
	q := make([]float64, n)
	next := make([]int, n) // next[i] = j: the heaviest path from i starts with i→j
	for i := range next {
		next[i] = -1
	}

	relax := func() (bool, int) {
		var (
			i, j    int
			cand    float64
			changed bool
			last    = -1
		)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j {
					continue
				}
				cand = w[i][j] + q[j]
				if cand > q[i]+tol {
					q[i] = cand
					next[i] = j
					changed = true
					last = i
				}
			}
		}
		return changed, last
	}

	changed := true
	for pass := 0; pass < n && changed; pass++ {
		changed, _ = relax()
	}
	if changed {
		if again, last := relax(); again {
			if ce := successorCycle(w, next, last); len(ce.Cycle) == 0 || ce.Gain > tol {
				return nil, ce
			}
		}
	}

	return q, nil
}

// successorCycle follows next pointers from start until a vertex repeats.
func successorCycle(w [][]float64, next []int, start int) *CycleError {
	n := len(w)
	v := start
	for k := 0; k < n && v >= 0; k++ {
		v = next[v]
	}
	if v < 0 {
		return &CycleError{}
	}

	cycle := []int{v}
	for u := next[v]; u != v; u = next[u] {
		if u < 0 || len(cycle) > n {
			return &CycleError{}
		}
		cycle = append(cycle, u)
	}

	return &CycleError{Cycle: cycle, Gain: cycleWeight(w, cycle)}
}

// floydWarshall negates w, closes it with matrix.FloydWarshall and reads
// q[i] = max(0, −min_j d[i][j]). A diagonal entry below −tol after closure is
// a positive cycle in w.
// Complexity: O(n³).
func floydWarshall(w [][]float64, tol float64) ([]float64, error) {
	n := len(w)
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("bellmanford: %w", err)
	}

	flat := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j { // diagonal stays 0
				flat[i*n+j] = -w[i][j]
			}
		}
	}
	if err = d.Fill(flat); err != nil {
		return nil, fmt.Errorf("bellmanford: %w", err)
	}
	if err = matrix.FloydWarshall(d); err != nil {
		return nil, fmt.Errorf("bellmanford: %w", err)
	}

	bad, err := matrix.NegativeDiagonal(d, tol)
	if err != nil {
		return nil, fmt.Errorf("bellmanford: %w", err)
	}
	if bad >= 0 {
		gain, _ := d.At(bad, bad)
		return nil, &CycleError{Gain: -gain}
	}

	q := make([]float64, n)
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = d.At(i, j)
			if -v > q[i] {
				q[i] = -v
			}
		}
	}

	return q, nil
}
