package assignment

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rentdiv/matrix"
)

// Solve returns a maximum-welfare perfect matching of the square valuation
// matrix v.
//
// The potentials form of the Hungarian algorithm minimises cost; we feed it
// cost[i][j] = −v[i][j]. Arrays are 1-indexed internally with column 0 acting
// as the virtual start of every augmenting path.
//
// Complexity: O(n³) time, O(n²) space.
func Solve(v matrix.Matrix) (Result, error) {
	cost, err := negatedCost(v)
	if err != nil {
		return Result{}, err
	}
	n := len(cost)

	inf := math.Inf(1)
	u := make([]float64, n+1)    // row potentials
	pot := make([]float64, n+1)  // column potentials
	p := make([]int, n+1)        // p[j] = row matched to column j (0 = free)
	way := make([]int, n+1)      // way[j] = previous column on the augmenting path
	minv := make([]float64, n+1) // minv[j] = smallest reduced cost seen for column j
	used := make([]bool, n+1)

	var (
		i, j, i0, j0, j1 int
		cur, delta       float64
	)
	for i = 1; i <= n; i++ {
		p[0] = i
		j0 = 0
		for j = 0; j <= n; j++ {
			minv[j] = inf
			used[j] = false
		}

		for {
			used[j0] = true
			i0 = p[j0]
			delta = inf
			j1 = -1

			for j = 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur = cost[i0-1][j-1] - u[i0] - pot[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			// All costs are finite, so some free column always exists.
			if j1 < 0 {
				return Result{}, fmt.Errorf("assignment: no augmenting column for row %d", i-1)
			}

			for j = 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					pot[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// Flip the augmenting path.
		for j0 != 0 {
			j1 = way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	res := Result{Assignment: make([]int, n)}
	for j = 1; j <= n; j++ {
		res.Assignment[p[j]-1] = j - 1
	}
	for i = 0; i < n; i++ {
		res.Welfare -= cost[i][res.Assignment[i]]
	}

	return res, nil
}

// negatedCost validates v and returns −v as a slice of rows.
func negatedCost(v matrix.Matrix) ([][]float64, error) {
	if err := matrix.ValidateSquare(v); err != nil {
		return nil, fmt.Errorf("assignment: %w", err)
	}
	if err := matrix.ValidateFinite(v); err != nil {
		return nil, fmt.Errorf("assignment: %w", err)
	}

	n := v.Rows()
	cost := make([][]float64, n)
	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		cost[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			x, _ = v.At(i, j) // safe after shape validation
			cost[i][j] = -x
		}
	}

	return cost, nil
}
