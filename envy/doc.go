// Package envy turns a welfare-optimal assignment into envy-free prices.
//
// Given a valuation matrix V and an assignment A (agent → item):
//
//  1. NewGraph builds the envy graph: a complete directed graph on agents
//     where edge i→j weighs V[i][A(j)] − V[i][A(i)], i.e. how much more agent
//     i values j's item than its own.
//  2. Subsidies computes q[i], the heaviest envy chain starting at i (≥ 0),
//     with package bellmanford. Chains matter: i may envy j only mildly while
//     j strongly envies k, which together make k's item look better to i.
//  3. Prices sets b = (rent + Σq)/n and P[A(i)] = b − q[i].
//
// The prices sum to rent exactly by construction, and because
// q[i] ≥ q[j] + envy(i,j) for every edge the resulting allocation is
// envy-free: V[i][A(i)] − P[A(i)] ≥ V[i][A(j)] − P[A(j)].
//
// Audit re-checks an arbitrary (V, A, P) triple and reports the worst envy.
package envy
