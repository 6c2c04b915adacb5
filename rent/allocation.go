package rent

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rentdiv/assignment"
	"github.com/katalvlaran/rentdiv/envy"
	"github.com/katalvlaran/rentdiv/matrix"
)

// Allocation is the result of Solve.
type Allocation struct {
	// Assignment[agent] = item; a permutation of 0..n-1.
	Assignment []int

	// Prices[item] is the rent share charged for item. May be negative.
	Prices []float64

	// Subsidies[agent] = q[agent] ≥ 0.
	Subsidies []float64

	// Welfare is Σ Values[i][Assignment[i]].
	Welfare float64

	// Rent is the total rent the prices were derived for.
	Rent float64

	// Base is (Rent + Σ Subsidies)/n.
	Base float64

	// Values is a private copy of the valuation matrix.
	Values *matrix.Dense
}

// N returns the number of agents (and items).
func (a *Allocation) N() int { return len(a.Assignment) }

// ItemOf returns the item assigned to agent, or −1 if agent is out of range.
func (a *Allocation) ItemOf(agent int) int {
	if agent < 0 || agent >= len(a.Assignment) {
		return -1
	}

	return a.Assignment[agent]
}

// AgentOf returns the agent holding item, or −1.
func (a *Allocation) AgentOf(item int) int {
	for agent, it := range a.Assignment {
		if it == item {
			return agent
		}
	}

	return -1
}

// Utility returns value − price of agent's own item (NaN if out of range).
func (a *Allocation) Utility(agent int) float64 {
	item := a.ItemOf(agent)
	if item < 0 {
		return math.NaN()
	}

	return a.Values.Row(agent)[item] - a.Prices[item]
}

// EnvyToward returns how much more agent i would gain from j's bundle than from
// its own. Non-positive for every pair in an envy-free allocation.
func (a *Allocation) EnvyToward(i, j int) float64 {
	item := a.ItemOf(j)
	if item < 0 || a.ItemOf(i) < 0 {
		return math.NaN()
	}
	return (a.Values.Row(i)[item] - a.Prices[item]) - a.Utility(i)
}

// TotalPrice returns Σ Prices.
func (a *Allocation) TotalPrice() float64 {
	var s float64
	for _, p := range a.Prices {
		s += p
	}

	return s
}

// AssignmentMap returns the assignment as agent → item.
func (a *Allocation) AssignmentMap() map[int]int {
	m := make(map[int]int, len(a.Assignment))
	for agent, item := range a.Assignment {
		m[agent] = item
	}

	return m
}

// PricingMap returns the prices as item → price.
func (a *Allocation) PricingMap() map[int]float64 {
	m := make(map[int]float64, len(a.Prices))
	for item, p := range a.Prices {
		m[item] = p
	}

	return m
}

// Audit returns the post-price envy report.
func (a *Allocation) Audit() (envy.Report, error) {
	return envy.Audit(a.Values, a.Assignment, a.Prices)
}

// Verify checks, in order, that the assignment is a bijection, that prices sum
// to Rent within tol and that no agent envies another by more than tol.
func (a *Allocation) Verify(tol float64) error {
	if a.Values == nil {
		return fmt.Errorf("%w: no valuations", ErrNotBijection)
	}
	if err := assignment.ValidatePermutation(a.Assignment, a.Values.Rows()); err != nil {
		return fmt.Errorf("%w: %w", ErrNotBijection, err)
	}
	if len(a.Prices) != a.N() {
		return fmt.Errorf("%w: %d prices for %d items", ErrBudgetViolated, len(a.Prices), a.N())
	}
	// Written as !(≤) so a NaN total fails.
	if total := a.TotalPrice(); !(math.Abs(total-a.Rent) <= tol) {
		return fmt.Errorf("%w: Σ prices = %g, rent = %g", ErrBudgetViolated, total, a.Rent)
	}

	rep, err := a.Audit()
	if err != nil {
		return fmt.Errorf("rent: %w", err)
	}
	if !rep.EnvyFree(tol) {
		return fmt.Errorf("%w: agent %d envies agent %d by %g", ErrEnvy, rep.Agent, rep.Other, rep.MaxEnvy)
	}

	return nil
}
