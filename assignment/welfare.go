package assignment

import (
	"fmt"

	"github.com/katalvlaran/rentdiv/matrix"
)

// ValidatePermutation checks that a is a bijection on 0..n-1.
// Complexity: O(n).
func ValidatePermutation(a []int, n int) error {
	if len(a) != n {
		return fmt.Errorf("%w: length %d, want %d", ErrNotPermutation, len(a), n)
	}
	seen := make([]bool, n)
	for agent, item := range a {
		if item < 0 || item >= n {
			return fmt.Errorf("%w: agent %d → item %d out of range", ErrNotPermutation, agent, item)
		}
		if seen[item] {
			return fmt.Errorf("%w: item %d assigned twice", ErrNotPermutation, item)
		}
		seen[item] = true
	}

	return nil
}

// Welfare returns Σ v[i][a[i]] after validating that a is a permutation.
func Welfare(v matrix.Matrix, a []int) (float64, error) {
	if err := matrix.ValidateSquare(v); err != nil {
		return 0, fmt.Errorf("assignment: %w", err)
	}
	if err := ValidatePermutation(a, v.Rows()); err != nil {
		return 0, err
	}

	var total float64
	for i, j := range a {
		x, err := v.At(i, j)
		if err != nil {
			return 0, fmt.Errorf("assignment: %w", err)
		}
		total += x
	}

	return total, nil
}
