package rent

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/rentdiv/assignment"
	"github.com/katalvlaran/rentdiv/bellmanford"
	"github.com/katalvlaran/rentdiv/envy"
	"github.com/katalvlaran/rentdiv/matrix"
)

// MaxMagnitude bounds |valuation| and |rent|. Envy weights are differences
// of valuations and subsidies are sums of them; beyond this bound they could
// overflow to ±Inf.
const MaxMagnitude = 1e300

// Solve computes an envy-free allocation of n items among n agents for the
// given total rent. valuations[i][j] is agent i's value for item j; the slices
// are copied and never retained.
//
// Validation order: empty input, ragged or non-square rows, non-finite or
// out-of-range valuations (first offending cell in row-major order),
// non-finite or out-of-range rent. Each failure is an *InvalidInputError;
// "out of range" means a magnitude above MaxMagnitude.
func Solve(valuations [][]float64, rent float64, opts ...Option) (*Allocation, error) {
	v, err := validate(valuations, rent)
	if err != nil {
		return nil, err
	}

	return solve(v, rent, opts)
}

// SolveMatrix is Solve for a matrix.Matrix. The matrix is copied.
func SolveMatrix(m matrix.Matrix, rent float64, opts ...Option) (*Allocation, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, invalid("valuation matrix is nil", -1, -1)
	}
	rows := make([][]float64, m.Rows())
	var err error
	for i := range rows {
		rows[i] = make([]float64, m.Cols())
		for j := range rows[i] {
			if rows[i][j], err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("rent: %w", err)
			}
		}
	}

	return Solve(rows, rent, opts...)
}

// validate checks valuations and rent and returns a private copy.
func validate(valuations [][]float64, rent float64) (*matrix.Dense, error) {
	n := len(valuations)
	if n == 0 {
		return nil, invalid("no agents", -1, -1)
	}
	for i, row := range valuations {
		if len(row) != n {
			return nil, invalid(fmt.Sprintf("row has %d values, want %d", len(row), n), i, -1)
		}
	}
	for i, row := range valuations {
		for j, x := range row {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, invalid(fmt.Sprintf("non-finite valuation %v", x), i, j)
			}
			if math.Abs(x) > MaxMagnitude {
				return nil, invalid(fmt.Sprintf("valuation %g exceeds ±%g", x, MaxMagnitude), i, j)
			}
		}
	}
	if math.IsNaN(rent) || math.IsInf(rent, 0) {
		return nil, invalid(fmt.Sprintf("non-finite rent %v", rent), -1, -1)
	}
	if math.Abs(rent) > MaxMagnitude {
		return nil, invalid(fmt.Sprintf("rent %g exceeds ±%g", rent, MaxMagnitude), -1, -1)
	}

	v, err := matrix.NewDenseFrom(valuations)
	if err != nil {
		return nil, fmt.Errorf("rent: %w", err)
	}

	return v, nil
}

func solve(v *matrix.Dense, rent float64, opts []Option) (*Allocation, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.Logger.With(zap.Int("n", v.Rows()))

	res, err := assign(v, cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	log.Debug("assignment",
		zap.Stringer("algorithm", cfg.Algorithm),
		zap.Ints("assignment", res.Assignment),
		zap.Float64("welfare", res.Welfare),
	)

	priced, err := price(v, res.Assignment, rent, cfg)
	if err != nil {
		if errors.Is(err, bellmanford.ErrPositiveCycle) {
			log.Warn("subsidy relaxation did not converge", zap.Error(err))
		}
		return nil, err
	}
	log.Debug("pricing",
		zap.Stringer("strategy", cfg.Strategy),
		zap.Float64s("subsidies", priced.Subsidies),
		zap.Float64("base", priced.Base),
		zap.Float64s("prices", priced.Prices),
	)

	return &Allocation{
		Assignment: res.Assignment,
		Prices:     priced.Prices,
		Subsidies:  priced.Subsidies,
		Welfare:    res.Welfare,
		Rent:       rent,
		Base:       priced.Base,
		Values:     v,
	}, nil
}

func assign(v *matrix.Dense, algo AssignmentAlgorithm) (assignment.Result, error) {
	switch algo {
	case AssignHungarian:
		return assignment.Solve(v)
	case AssignExhaustive:
		return assignment.Exhaustive(v)
	default:
		return assignment.Result{}, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, algo)
	}
}

// price runs the envy-pricing phase for an arbitrary assignment a. A positive
// envy cycle is reported as ErrInstability wrapping the *bellmanford.CycleError.
func price(v *matrix.Dense, a []int, rent float64, cfg Options) (envy.Result, error) {
	res, err := envy.Price(v, a, rent,
		bellmanford.WithStrategy(cfg.Strategy),
		bellmanford.WithEpsilon(cfg.Epsilon),
	)
	if errors.Is(err, bellmanford.ErrPositiveCycle) {
		return envy.Result{}, fmt.Errorf("%w: %w", ErrInstability, err)
	}

	return res, err
}
