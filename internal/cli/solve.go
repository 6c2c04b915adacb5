package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rentdiv/rent"
	"github.com/katalvlaran/rentdiv/report"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	Rent float64 // overrides the file's rent when the flag is set
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve <instance-file>",
		Short: "Solve one instance and print the allocation",
		Long: `Solve one rent-division instance and print who gets which room and
what each room costs.

Exit codes:
  0 - allocation found and verified
  1 - allocation failed verification
  2 - unreadable or invalid instance

Examples:
  rentdiv solve flat.yaml
  rentdiv solve flat.yaml --rent 1450 --format table`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var override *float64
			if cmd.Flags().Changed("rent") {
				override = &opts.Rent
			}
			return runSolve(cmd, opts, args[0], override)
		},
	}

	cmd.Flags().Float64Var(&opts.Rent, "rent", 0, "total rent (overrides the file)")

	return cmd
}

func runSolve(cmd *cobra.Command, opts *SolveOptions, path string, override *float64) error {
	f, r, err := LoadInstance(path, override)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot load instance", err)
	}

	alloc, err := rent.Solve(f.Valuations, r, opts.solve...)
	if err != nil {
		return solveExitError(err)
	}
	if err = writeAllocation(cmd.OutOrStdout(), opts.Format, alloc, f.Labels()); err != nil {
		return WrapExitError(ExitCommandError, "cannot write output", err)
	}
	if err = alloc.Verify(report.Tolerance); err != nil {
		return WrapExitError(ExitFailure, "verification failed", err)
	}

	return nil
}

// solveExitError maps rent.Solve errors to exit codes: bad input is a
// command error, anything else a failure.
func solveExitError(err error) error {
	if errors.Is(err, rent.ErrInvalidInput) {
		return WrapExitError(ExitCommandError, "invalid instance", err)
	}

	return WrapExitError(ExitFailure, "solve failed", err)
}
