package envy

import (
	"fmt"

	"github.com/katalvlaran/rentdiv/assignment"
	"github.com/katalvlaran/rentdiv/matrix"
)

// Graph is the envy graph of one assignment: W[i][j] = V[i][A(j)] − V[i][A(i)],
// zero on the diagonal. It is derived data and never mutated after NewGraph.
type Graph struct {
	n int
	w *matrix.Dense
}

// NewGraph builds the envy graph for valuations v under assignment a.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf,
// assignment.ErrNotPermutation.
// Complexity: O(n²).
func NewGraph(v matrix.Matrix, a []int) (*Graph, error) {
	if err := matrix.ValidateSquare(v); err != nil {
		return nil, fmt.Errorf("envy: %w", err)
	}
	if err := matrix.ValidateFinite(v); err != nil {
		return nil, fmt.Errorf("envy: %w", err)
	}
	n := v.Rows()
	if err := assignment.ValidatePermutation(a, n); err != nil {
		return nil, fmt.Errorf("envy: %w", err)
	}

	w, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("envy: %w", err)
	}

	var (
		i, j      int
		own, them float64
	)
	for i = 0; i < n; i++ {
		own, _ = v.At(i, a[i]) // safe after validation
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			them, _ = v.At(i, a[j])
			_ = w.Set(i, j, them-own)
		}
	}

	return &Graph{n: n, w: w}, nil
}

// N returns the number of agents.
func (g *Graph) N() int { return g.n }

// Weight returns the envy of agent i toward agent j's item (0 when i == j or
// either index is out of range).
func (g *Graph) Weight(i, j int) float64 {
	x, err := g.w.At(i, j)
	if err != nil {
		return 0
	}

	return x
}

// Matrix returns a copy of the weight matrix.
func (g *Graph) Matrix() *matrix.Dense {
	return g.w.Clone().(*matrix.Dense)
}

// Envious lists the ordered pairs (i, j) where i strictly prefers j's item at
// equal prices, in row-major order.
func (g *Graph) Envious() [][2]int {
	var out [][2]int
	for i := 0; i < g.n; i++ {
		for j := 0; j < g.n; j++ {
			if i != j && g.Weight(i, j) > 0 {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out
}
