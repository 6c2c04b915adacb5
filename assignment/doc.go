// Package assignment solves the linear assignment problem on a square
// valuation matrix: find the bijection agents → items with maximum total value
// (social welfare).
//
// Two solvers are provided:
//
//   - Solve — Kuhn–Munkres with row/column potentials (the Jonker–Volgenant
//     shortest-augmenting-path form). Time O(n³), memory O(n²) for the
//     negated cost copy. Always globally optimal.
//
//   - Exhaustive — enumerates all n! permutations with Heap's algorithm.
//     Only for n ≤ MaxExhaustive; intended as a reference oracle.
//
// Optimality matters downstream: an optimal assignment guarantees the envy
// graph has no positive-weight cycle, which is what makes longest paths (and
// therefore envy-free prices) well defined.
//
// Ties between equally good assignments are broken by the fixed scan order of
// the solver (rows ascending, lowest column on equal reduced cost); callers
// should rely on optimality only.
//
// Errors (sentinel, match with errors.Is):
//
//	matrix.ErrNilMatrix  - nil valuation matrix.
//	matrix.ErrNonSquare  - valuation matrix is not n×n.
//	matrix.ErrNaNInf     - a valuation is NaN or ±Inf.
//	ErrTooLarge          - Exhaustive called with n > MaxExhaustive.
//	ErrNotPermutation    - Welfare called with something that is not a bijection.
package assignment
