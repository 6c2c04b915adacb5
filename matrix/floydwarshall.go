// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) implementation with deterministic loop order.
//   - Used as an independent cross-check of Bellman–Ford longest paths on envy graphs
//     (longest paths on w are shortest paths on −w).
//
// Contract:
//   - Square matrix; +Inf means “no path”; diagonal must be 0 before calling.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opFloydWarshall    = "FloydWarshall"
	opNegativeDiagonal = "NegativeDiagonal"
)

// floydWarshallInPlace runs APSP closure on a square *Dense in-place.
//
// Loop order is fixed (k → i → j) for deterministic accumulation.
// Time: O(n^3); Extra space: O(1). No allocations inside the hot loops.
func floydWarshallInPlace(d *Dense) {
	n := d.r

	var (
		k, i, j      int     // loop indices
		baseK, baseI int     // row base offsets for K and I in the flat buffer
		ik, ij, kj   float64 // distances d[i,k], d[i,j], d[k,j]
		cand         float64 // candidate path length via k
	)
	data := d.data

	for k = 0; k < n; k++ { // intermediate vertex
		baseK = k * n
		for i = 0; i < n; i++ { // source vertex
			ik = data[i*n+k]
			if math.IsInf(ik, 1) { // i cannot reach k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ { // destination vertex
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				ij = data[baseI+j]
				cand = ik + kj
				if cand < ij { // strict improvement only (deterministic tie rule)
					data[baseI+j] = cand
				}
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest paths in-place on m.
//
// Contract:
//   - m must be square (n×n).
//   - +Inf denotes “no edge” off-diagonal; the diagonal MUST be 0.
//   - Negative edges are allowed. A negative cycle through i leaves d[i,i] < 0
//     (see NegativeDiagonal); the remaining entries are then meaningless.
//
// Complexity: Time O(n^3), Extra space O(1) (fully in-place).
func FloydWarshall(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}

	// Fast-path: direct dense traversal.
	if d, ok := m.(*Dense); ok {
		floydWarshallInPlace(d)

		return nil
	}

	// Generic interface fallback.
	n := m.Rows()
	var (
		k, i, j       int
		dik, dkj, dij float64
		err           error
	)
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			if dik, err = m.At(i, k); err != nil {
				return matrixErrorf(opFloydWarshall, err)
			}
			if math.IsInf(dik, 1) {
				continue
			}
			for j = 0; j < n; j++ {
				if dkj, err = m.At(k, j); err != nil {
					return matrixErrorf(opFloydWarshall, err)
				}
				if math.IsInf(dkj, 1) {
					continue
				}
				if dij, err = m.At(i, j); err != nil {
					return matrixErrorf(opFloydWarshall, err)
				}
				if dik+dkj < dij {
					if err = m.Set(i, j, dik+dkj); err != nil {
						return matrixErrorf(opFloydWarshall, err)
					}
				}
			}
		}
	}

	return nil
}

// NegativeDiagonal reports the first index i with d[i,i] < -tol after a
// FloydWarshall closure, or -1 when the closure contains no negative cycle.
//
// Complexity: O(n).
func NegativeDiagonal(d Matrix, tol float64) (int, error) {
	if err := ValidateSquare(d); err != nil {
		return -1, matrixErrorf(opNegativeDiagonal, err)
	}

	var (
		i   int
		v   float64
		err error
	)
	for i = 0; i < d.Rows(); i++ {
		if v, err = d.At(i, i); err != nil {
			return -1, matrixErrorf(opNegativeDiagonal, err)
		}
		if v < -tol {
			return i, nil
		}
	}

	return -1, nil
}
