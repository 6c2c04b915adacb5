// Package rent is the entry point for envy-free rent division.
//
// Given an n×n valuation matrix (value[i][j] = how much agent i values item j)
// and a total rent, Solve returns an Allocation: a bijection agents → items and
// one price per item such that
//
//   - the prices sum to the rent, and
//   - no agent strictly prefers another agent's (item, price) pair under
//     quasi-linear utility value − price.
//
// The computation has two phases:
//
//  1. assignment.Solve finds a welfare-maximising assignment.
//  2. envy.Price builds the envy graph of that assignment, takes the heaviest
//     envy chain leaving every agent as its subsidy q[i] (bellmanford), and
//     sets P[A(i)] = (rent + Σq)/n − q[i].
//
// Prices may be negative: an agent whose room nobody wants can be paid to take it.
//
// Errors:
//
//	*InvalidInputError - empty, ragged or non-finite input; matches ErrInvalidInput.
//	ErrInstability     - subsidy relaxation did not converge (a positive envy
//	                     cycle). Indicates a non-optimal assignment; never
//	                     silently degraded.
//
// Example:
//
//	alloc, err := rent.Solve([][]float64{{150, 0}, {140, 10}}, 100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(alloc.Assignment, alloc.Prices) // [0 1] [115 -15]
package rent
