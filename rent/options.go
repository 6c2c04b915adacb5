package rent

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/rentdiv/bellmanford"
)

// ErrUnknownAlgorithm indicates an unsupported AssignmentAlgorithm name.
var ErrUnknownAlgorithm = errors.New("rent: unknown assignment algorithm")

// AssignmentAlgorithm selects the phase-one solver.
type AssignmentAlgorithm int

const (
	// AssignHungarian uses assignment.Solve, O(n³).
	AssignHungarian AssignmentAlgorithm = iota

	// AssignExhaustive uses assignment.Exhaustive; n ≤ assignment.MaxExhaustive.
	AssignExhaustive
)

func (a AssignmentAlgorithm) String() string {
	switch a {
	case AssignHungarian:
		return "hungarian"
	case AssignExhaustive:
		return "exhaustive"
	default:
		return "AssignmentAlgorithm(" + strconv.Itoa(int(a)) + ")"
	}
}

// ParseAssignmentAlgorithm is the inverse of AssignmentAlgorithm.String.
func ParseAssignmentAlgorithm(s string) (AssignmentAlgorithm, error) {
	for _, a := range []AssignmentAlgorithm{AssignHungarian, AssignExhaustive} {
		if a.String() == s {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Options configures Solve.
type Options struct {
	Logger    *zap.Logger          // debug tracing; never nil after DefaultOptions
	Strategy  bellmanford.Strategy // subsidy algorithm
	Algorithm AssignmentAlgorithm  // assignment algorithm
	Epsilon   float64              // relative relaxation improvement threshold
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithLogger routes debug tracing to l. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Logger = l
	}
}

// WithStrategy selects how subsidies are computed.
func WithStrategy(s bellmanford.Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithAssignmentAlgorithm selects the assignment solver.
func WithAssignmentAlgorithm(a AssignmentAlgorithm) Option {
	return func(o *Options) {
		o.Algorithm = a
	}
}

// WithEpsilon sets the relative relaxation improvement threshold (see
// bellmanford.WithEpsilon).
// Panics with bellmanford.ErrBadEpsilon if eps < 0.
func WithEpsilon(eps float64) Option {
	if eps < 0 {
		panic(bellmanford.ErrBadEpsilon.Error())
	}

	return func(o *Options) {
		o.Epsilon = eps
	}
}

// DefaultOptions returns the Solve defaults: no logging, per-source subsidies,
// Hungarian assignment, bellmanford.DefaultEpsilon.
func DefaultOptions() Options {
	return Options{
		Logger:    zap.NewNop(),
		Strategy:  bellmanford.StrategyPerSource,
		Algorithm: AssignHungarian,
		Epsilon:   bellmanford.DefaultEpsilon,
	}
}
