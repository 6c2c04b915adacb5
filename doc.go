// Package rentdiv splits a shared rent fairly: n housemates, n rooms, one
// total rent, and every housemate's valuation of every room.
//
// 🚀 What does it compute?
//
//	An assignment (who gets which room) and one price per room such that
//		• the prices add up to the rent, and
//		• nobody prefers another housemate's room at that room's price.
//
// ✨ How?
//
//	1. Maximise total value with the Hungarian algorithm (assignment/).
//	2. Build the envy graph of that assignment and run Bellman–Ford longest
//	   paths on it (bellmanford/, envy/); the heaviest envy chain leaving each
//	   housemate becomes that housemate's subsidy.
//	3. Price every room as (rent + Σ subsidies)/n minus its holder's subsidy.
//
// Under the hood the module is organised as:
//
//	matrix/      — dense float64 matrix, validators, Floyd–Warshall closure
//	assignment/  — Hungarian and exhaustive assignment solvers
//	bellmanford/ — longest-path relaxation and positive-cycle detection
//	envy/        — envy graph, subsidies, prices and envy audit
//	rent/        — Solve: the public entry point and Allocation
//	batch/       — many independent instances on a bounded errgroup
//	report/      — text, table and YAML-friendly renderings
//	cmd/rentdiv  — command-line front end (solve, batch, scenarios)
//
// Quick start:
//
//	alloc, err := rent.Solve([][]float64{
//	    {150, 0},
//	    {140, 10},
//	}, 100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(alloc.Assignment, alloc.Prices) // [0 1] [115 -15]
package rentdiv
