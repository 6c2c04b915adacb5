// Package bellmanford computes longest paths on dense, complete, weighted
// directed graphs that may contain negative edges but no positive-weight
// cycle — the envy graphs produced by an optimal rent-division assignment.
//
// Overview:
//
//   - Longest runs Bellman–Ford relaxation in the longest-path sign
//     convention directly: dist[source] = 0, every other vertex −∞, and each
//     pass relaxes all n·(n−1) off-diagonal edges with
//     dist[j] = max(dist[j], dist[i] + w(i,j)) whenever dist[i] is finite.
//     At most n−1 passes are run and a quiet pass stops the loop early.
//   - Subsidies derives, for every vertex i, q[i] = the heaviest path weight
//     starting at i, floored at 0 (the trivial empty path).
//
// Why not Dijkstra:
//
//   - Envy edges are usually negative. Dijkstra's greedy settle order is only
//     correct for non-negative weights; relaxation is correct for any weights
//     as long as no cycle has positive total weight.
//
// Strategies for Subsidies:
//
//   - StrategyPerSource (default): one Longest run per source vertex, exactly
//     as described above. Time O(n⁴) on a complete graph.
//   - StrategySuperSink: relax the fixed point q[i] = max(0, max_j w(i,j)+q[j])
//     from an implicit zero-weight sink reachable from every vertex. O(n³).
//   - StrategyFloydWarshall: negate the weights, run matrix.FloydWarshall and
//     read q[i] = max(0, −min_j d[i][j]). O(n³).
//
// All three agree on graphs without positive cycles; the test-suite checks it.
//
// Positive cycles:
//
//   - After the last regular pass one more verification pass is run. Any
//     further improvement proves a positive-weight cycle; the call fails with
//     a *CycleError wrapping ErrPositiveCycle that carries a witness cycle.
//   - Improvements and witness gains are compared against Epsilon scaled by
//     n·max(1, max|w|). A witness whose recomputed weight is within that
//     tolerance is rounding noise on a zero-weight cycle, not a failure.
//     For envy graphs this is an internal invariant violation: it means the
//     assignment fed into pricing was not welfare-optimal.
//
// Error handling (sentinel errors):
//
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf:
//     the weight matrix is nil, not square, or holds a non-finite weight.
//   - ErrSourceOutOfRange: Source is not a vertex index.
//   - ErrPositiveCycle: relaxation did not converge (see above).
//   - ErrUnknownStrategy: Strategy value not recognised.
//   - ErrBadEpsilon: returned (via panic) if WithEpsilon gets a negative value.
//
// Thread safety:
//
//   - All functions are pure; they copy the weights and never mutate the input.
package bellmanford
