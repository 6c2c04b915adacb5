// Package matrix offers the dense numeric storage shared by the rent-division
// solvers.
//
// The matrix package provides:
//
//   - Matrix, a small bounds-checked interface over a two-dimensional float64
//     array, and Dense, its row-major implementation.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateFinite) that return
//     plain sentinel errors so call sites can wrap them uniformly.
//   - FloydWarshall, an in-place all-pairs shortest-path closure used to
//     cross-check the longest-path subsidies computed by package bellmanford.
//
// Valuation matrices and envy graphs are dense n×n objects with n in the tens
// to low hundreds, so O(n²) memory is never a concern.
package matrix
