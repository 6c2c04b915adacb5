// Package bellmanford implements longest-path relaxation on dense weight matrices.
//
// Complexity:
//
//   - Time:  O(V · E) = O(n³) per source on a complete graph (n−1 passes over n·(n−1) edges).
//   - Space: O(n²) for the weight copy, O(n) for distances and predecessors.
//
// Notes on implementation choices:
//
//   - Weights are copied into [][]float64 once so the hot loop is free of
//     interface calls and error checks.
//   - Edges are relaxed in a fixed (i, j) order, so results are deterministic.
//   - The diagonal is ignored: a vertex has no edge to itself.
//   - Epsilon is relative: an update must beat the current distance by more
//     than Epsilon·n·max(1, max|w|), the size of the rounding error a path sum
//     can pick up. Zero-weight cycles therefore stay quiet at any magnitude.
package bellmanford

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rentdiv/matrix"
)

// Longest computes the heaviest path weight from Options.Source to every vertex.
//
// Returns:
//
//   - dist: dist[v] = maximum weight of a path Source → v; dist[Source] = 0 unless
//     a cycle improves it (which is an error); −∞ for unreachable vertices.
//   - prev: predecessor slice if ReturnPath=true (nil otherwise).
//     prev[v] == u means the heaviest path to v ends with edge u→v; −1 for the
//     source and for unreachable vertices.
//   - err:  error if inputs are invalid or a positive cycle is detected.
//
// Preconditions and validation (in order):
//  1. w must be non-nil and square (matrix.ErrNilMatrix, matrix.ErrNonSquare).
//  2. w must be finite (matrix.ErrNaNInf).
//  3. Source must be in 0..n-1 (ErrSourceOutOfRange).
func Longest(w matrix.Matrix, opts ...Option) ([]float64, []int, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate and copy the weights.
	weights, scale, err := copyWeights(w)
	if err != nil {
		return nil, nil, err
	}

	// 3) Validate Source.
	if cfg.Source < 0 || cfg.Source >= len(weights) {
		return nil, nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, cfg.Source, len(weights))
	}

	r := newRunner(weights, cfg, scale)
	r.init()
	if err = r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single-source relaxation.
type runner struct {
	w       [][]float64 // weight copy; read-only
	n       int
	options Options
	tol     float64   // absolute improvement threshold: Epsilon scaled to w
	dist    []float64 // best-known path weight from Source
	prev    []int     // predecessor on the best-known path
}

func newRunner(w [][]float64, cfg Options, scale float64) *runner {
	return &runner{
		w:       w,
		n:       len(w),
		options: cfg,
		tol:     cfg.Epsilon * scale,
		dist:    make([]float64, len(w)),
		prev:    make([]int, len(w)),
	}
}

// init sets dist[v] = −∞, prev[v] = −1 for all v, then dist[Source] = 0.
func (r *runner) init() {
	negInf := math.Inf(-1)
	for v := 0; v < r.n; v++ {
		r.dist[v] = negInf
		r.prev[v] = -1
	}
	r.dist[r.options.Source] = 0
}

// process runs up to n−1 passes and stops on the first quiet pass. If the
// (n−1)-th pass still changed something, one verification pass decides
// between "converged exactly at the limit" and "positive cycle". A witness
// cycle whose own weight is within tolerance is rounding noise on a
// zero-weight cycle and counts as converged.
func (r *runner) process() error {
	changed := true
	for pass := 1; pass < r.n && changed; pass++ {
		changed, _ = r.relax()
	}
	if !changed {
		return nil
	}

	if again, last := r.relax(); again {
		if ce := r.cycleError(last); len(ce.Cycle) == 0 || ce.Gain > r.tol {
			return ce
		}
	}

	return nil
}

// relax performs one full pass over all off-diagonal edges.
// It reports whether any distance improved by more than tol and the last
// vertex that improved.
func (r *runner) relax() (bool, int) {
	var (
		i, j    int
		di, nd  float64
		changed bool
		last    = -1
		eps     = r.tol
	)
	for i = 0; i < r.n; i++ {
		di = r.dist[i]
		if math.IsInf(di, -1) {
			continue // i not reached yet
		}
		for j = 0; j < r.n; j++ {
			if i == j {
				continue
			}
			nd = di + r.w[i][j]
			if nd > r.dist[j]+eps {
				r.dist[j] = nd
				r.prev[j] = i
				changed = true
				last = j
			}
		}
	}

	return changed, last
}

// cycleError walks the predecessor chain from a vertex improved in the
// verification pass. After n steps the walk is inside the cycle; collecting
// predecessors until the start repeats yields the cycle in reverse.
func (r *runner) cycleError(from int) *CycleError {
	v := from
	for k := 0; k < r.n && v >= 0; k++ {
		v = r.prev[v]
	}
	if v < 0 {
		return &CycleError{}
	}

	rev := []int{v}
	for u := r.prev[v]; u != v; u = r.prev[u] {
		if u < 0 || len(rev) > r.n {
			return &CycleError{}
		}
		rev = append(rev, u)
	}
	cycle := make([]int, len(rev))
	for k := range rev {
		cycle[k] = rev[len(rev)-1-k]
	}

	return &CycleError{Cycle: cycle, Gain: cycleWeight(r.w, cycle)}
}

// cycleWeight sums w along cycle[0]→cycle[1]→…→cycle[0].
func cycleWeight(w [][]float64, cycle []int) float64 {
	var total float64
	for k, u := range cycle {
		total += w[u][cycle[(k+1)%len(cycle)]]
	}

	return total
}

// copyWeights validates w and returns its rows as plain slices together with
// the tolerance scale n·max(1, max|w|): the largest magnitude a simple path
// weight can reach.
func copyWeights(w matrix.Matrix) ([][]float64, float64, error) {
	if err := matrix.ValidateSquare(w); err != nil {
		return nil, 0, fmt.Errorf("bellmanford: %w", err)
	}
	if err := matrix.ValidateFinite(w); err != nil {
		return nil, 0, fmt.Errorf("bellmanford: %w", err)
	}

	n := w.Rows()
	out := make([][]float64, n)
	peak := 1.0
	var i, j int
	for i = 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			out[i][j], _ = w.At(i, j) // safe after shape validation
			if i != j {
				peak = math.Max(peak, math.Abs(out[i][j]))
			}
		}
	}

	return out, float64(n) * peak, nil
}
