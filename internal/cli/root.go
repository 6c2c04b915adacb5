package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/rentdiv/bellmanford"
	"github.com/katalvlaran/rentdiv/rent"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	Format    string // "text" | "table" | "yaml"
	Strategy  string // bellmanford.Strategy name
	Algorithm string // rent.AssignmentAlgorithm name

	logger *zap.Logger
	solve  []rent.Option
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "table", "yaml"}

// NewRootCommand creates the root command for the rentdiv CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "rentdiv",
		Short: "Envy-free rent division",
		Long: `rentdiv assigns n rooms to n housemates and splits a fixed rent so
that nobody prefers someone else's room at its price.

Instance files are YAML (or JSON):

  rent: 100
  agents: [Ann, Bob]       # optional
  items: [big, small]      # optional
  valuations:
    - [150, 0]
    - [140, 10]`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|table|yaml)")
	cmd.PersistentFlags().StringVar(&opts.Strategy, "strategy", bellmanford.StrategyPerSource.String(),
		"subsidy algorithm (per-source|super-sink|floyd-warshall)")
	cmd.PersistentFlags().StringVar(&opts.Algorithm, "assign", rent.AssignHungarian.String(),
		"assignment algorithm (hungarian|exhaustive)")

	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))
	cmd.AddCommand(NewScenariosCommand(opts))

	return cmd
}

// init validates global flags and builds the logger and solver options.
func (o *RootOptions) init() error {
	if !slices.Contains(ValidFormats, o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}
	strategy, err := bellmanford.ParseStrategy(o.Strategy)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --strategy", err)
	}
	algo, err := rent.ParseAssignmentAlgorithm(o.Algorithm)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --assign", err)
	}

	if o.logger, err = newLogger(o.Verbose); err != nil {
		return WrapExitError(ExitCommandError, "cannot build logger", err)
	}
	o.solve = []rent.Option{
		rent.WithLogger(o.logger),
		rent.WithStrategy(strategy),
		rent.WithAssignmentAlgorithm(algo),
	}

	return nil
}

// newLogger returns a development logger at debug level when verbose, and a
// console logger that only reports warnings otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true

	return cfg.Build()
}
