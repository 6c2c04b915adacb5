// SPDX-License-Identifier: MIT

// Package bellmanford defines core types and configuration options for the
// longest-path relaxation.
//
// Options:
//
//	– Source:     index of the starting vertex (default 0).
//	– ReturnPath: if true, Longest returns the predecessor slice.
//	– Epsilon:    improvements ≤ Epsilon·n·max(1, max|w|) are ignored.
//	– Strategy:   how Subsidies computes the all-sources longest paths.
package bellmanford

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultEpsilon is the default relative improvement threshold. It is scaled
// by n·max(1, max|w|) before use, which keeps zero-weight cycles (ubiquitous
// when agents have identical valuations) from looking positive because of
// floating-point rounding at any magnitude.
const DefaultEpsilon = 1e-9

// Sentinel errors returned by the bellmanford implementation.
var (
	// ErrSourceOutOfRange indicates that the source vertex is not in 0..n-1.
	ErrSourceOutOfRange = errors.New("bellmanford: source vertex out of range")

	// ErrPositiveCycle indicates that relaxation still improved a distance
	// after n−1 passes, i.e. the graph contains a cycle of positive weight.
	ErrPositiveCycle = errors.New("bellmanford: positive-weight cycle detected")

	// ErrUnknownStrategy indicates an unsupported Strategy value.
	ErrUnknownStrategy = errors.New("bellmanford: unknown strategy")

	// ErrBadEpsilon indicates that Epsilon was set to a negative value.
	ErrBadEpsilon = errors.New("bellmanford: Epsilon must be non-negative")
)

// CycleError reports a positive-weight cycle found during relaxation.
//
// Cycle lists the vertices in edge order (Cycle[k] → Cycle[k+1], last → first);
// it is nil when no witness could be recovered (Floyd–Warshall strategy).
type CycleError struct {
	Cycle []int
	Gain  float64
}

func (e *CycleError) Error() string {
	if len(e.Cycle) == 0 {
		return ErrPositiveCycle.Error()
	}
	parts := make([]string, len(e.Cycle)+1)
	for k, v := range e.Cycle {
		parts[k] = strconv.Itoa(v)
	}
	parts[len(e.Cycle)] = parts[0]

	return fmt.Sprintf("%v: %s (gain %g)", ErrPositiveCycle, strings.Join(parts, "→"), e.Gain)
}

// Unwrap lets errors.Is(err, ErrPositiveCycle) match.
func (e *CycleError) Unwrap() error { return ErrPositiveCycle }

// Strategy selects the all-sources algorithm used by Subsidies.
type Strategy int

const (
	// StrategyPerSource runs one single-source relaxation per vertex.
	StrategyPerSource Strategy = iota

	// StrategySuperSink relaxes all subsidies at once towards an implicit zero sink.
	StrategySuperSink

	// StrategyFloydWarshall runs matrix.FloydWarshall on the negated weights.
	StrategyFloydWarshall
)

// String returns the strategy name used in logs and CLI flags.
func (s Strategy) String() string {
	switch s {
	case StrategyPerSource:
		return "per-source"
	case StrategySuperSink:
		return "super-sink"
	case StrategyFloydWarshall:
		return "floyd-warshall"
	default:
		return "Strategy(" + strconv.Itoa(int(s)) + ")"
	}
}

// ParseStrategy is the inverse of Strategy.String.
func ParseStrategy(s string) (Strategy, error) {
	for _, st := range []Strategy{StrategyPerSource, StrategySuperSink, StrategyFloydWarshall} {
		if st.String() == s {
			return st, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Options configures the behavior of Longest and Subsidies.
type Options struct {
	Source     int      // starting vertex for Longest
	ReturnPath bool     // whether Longest returns the predecessor slice
	Epsilon    float64  // minimum relative improvement counted as an update
	Strategy   Strategy // all-sources algorithm for Subsidies
}

// Option represents a functional option for configuring the relaxation.
type Option func(*Options)

// Source sets the starting vertex index for Longest.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithReturnPath enables generation of the predecessor slice in Longest.
// If not set, the predecessor slice is nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithEpsilon sets the relative improvement threshold. Negative values panic with
// ErrBadEpsilon: it is a programming error, not a data error.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			panic(ErrBadEpsilon.Error())
		}
		o.Epsilon = eps
	}
}

// WithStrategy selects the all-sources algorithm used by Subsidies.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Source:     0.
//   - ReturnPath: false.
//   - Epsilon:    DefaultEpsilon.
//   - Strategy:   StrategyPerSource.
func DefaultOptions() Options {
	return Options{
		Source:     0,
		ReturnPath: false,
		Epsilon:    DefaultEpsilon,
		Strategy:   StrategyPerSource,
	}
}
