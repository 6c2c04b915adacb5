package assignment

import (
	"fmt"

	"github.com/katalvlaran/rentdiv/matrix"
)

// Exhaustive enumerates every permutation of 0..n-1 (Heap's algorithm, iterative)
// and returns one with maximum welfare. The first maximum in enumeration order
// wins; later permutations must be strictly better to replace it.
//
// Complexity: O(n·n!) time, O(n) extra space.
func Exhaustive(v matrix.Matrix) (Result, error) {
	cost, err := negatedCost(v)
	if err != nil {
		return Result{}, err
	}
	n := len(cost)
	if n > MaxExhaustive {
		return Result{}, fmt.Errorf("%w: n=%d > %d", ErrTooLarge, n, MaxExhaustive)
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	score := func() float64 {
		var s float64
		for i, j := range perm {
			s -= cost[i][j]
		}
		return s
	}

	best := Result{Assignment: append([]int(nil), perm...), Welfare: score()}
	c := make([]int, n)
	for i := 1; i < n; {
		if c[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[c[i]], perm[i] = perm[i], perm[c[i]]
			}
			if s := score(); s > best.Welfare {
				best.Welfare = s
				copy(best.Assignment, perm)
			}
			c[i]++
			i = 1
			continue
		}
		c[i] = 0
		i++
	}

	return best, nil
}
