package assignment

import "errors"

// MaxExhaustive is the largest n accepted by Exhaustive (9! = 362 880 permutations).
const MaxExhaustive = 9

// Sentinel errors returned by the assignment solvers.
var (
	// ErrTooLarge indicates that Exhaustive was asked to enumerate too many permutations.
	ErrTooLarge = errors.New("assignment: matrix too large for exhaustive search")

	// ErrNotPermutation indicates that an assignment vector is not a bijection on 0..n-1.
	ErrNotPermutation = errors.New("assignment: not a permutation")
)

// Result holds the outcome of an assignment solver.
type Result struct {
	// Assignment maps agent index to item index; a permutation of 0..n-1.
	Assignment []int

	// Welfare is the total declared value Σ v[i][Assignment[i]].
	Welfare float64
}
