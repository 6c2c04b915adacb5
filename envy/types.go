package envy

import "errors"

// Sentinel errors for envy-graph construction and pricing.
var (
	// ErrEmpty indicates a zero-agent instance.
	ErrEmpty = errors.New("envy: no agents")

	// ErrLengthMismatch indicates that an assignment, subsidy or price vector
	// does not have one entry per agent.
	ErrLengthMismatch = errors.New("envy: vector length does not match agent count")

	// ErrNonFinite indicates a NaN or ±Inf rent, subsidy or price.
	ErrNonFinite = errors.New("envy: non-finite value")
)

// Result is the outcome of Price.
type Result struct {
	// Prices is indexed by item.
	Prices []float64

	// Subsidies is indexed by agent: q[i] ≥ 0.
	Subsidies []float64

	// Base is the common amount b = (rent + Σq)/n before subsidies.
	Base float64
}
