package rent

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Solve and Allocation.Verify.
var (
	// ErrInvalidInput is matched by every *InvalidInputError.
	ErrInvalidInput = errors.New("rent: invalid input")

	// ErrInstability indicates that subsidy relaxation found a positive envy
	// cycle. With an optimal assignment this cannot happen; seeing it means the
	// assignment step or the arithmetic is broken.
	ErrInstability = errors.New("rent: subsidy relaxation did not converge")

	// ErrBudgetViolated indicates prices that do not sum to the rent.
	ErrBudgetViolated = errors.New("rent: prices do not sum to rent")

	// ErrEnvy indicates an agent strictly preferring another agent's bundle.
	ErrEnvy = errors.New("rent: allocation is not envy-free")

	// ErrNotBijection indicates an assignment that is not a permutation.
	ErrNotBijection = errors.New("rent: assignment is not a bijection")
)

// InvalidInputError describes rejected input. Row and Col locate the offending
// valuation when relevant and are −1 otherwise.
type InvalidInputError struct {
	Reason   string
	Row, Col int
}

func (e *InvalidInputError) Error() string {
	switch {
	case e.Row >= 0 && e.Col >= 0:
		return fmt.Sprintf("%v: %s at (%d,%d)", ErrInvalidInput, e.Reason, e.Row, e.Col)
	case e.Row >= 0:
		return fmt.Sprintf("%v: %s (row %d)", ErrInvalidInput, e.Reason, e.Row)
	default:
		return fmt.Sprintf("%v: %s", ErrInvalidInput, e.Reason)
	}
}

// Is reports ErrInvalidInput as a match.
func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

func invalid(reason string, row, col int) error {
	return &InvalidInputError{Reason: reason, Row: row, Col: col}
}
