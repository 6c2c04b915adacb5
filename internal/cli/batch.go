package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rentdiv/batch"
	"github.com/katalvlaran/rentdiv/rent"
	"github.com/katalvlaran/rentdiv/report"
)

// BatchOptions holds flags for the batch command.
type BatchOptions struct {
	*RootOptions
	Workers  int
	FailFast bool
}

// batchEntry is one file's result in yaml output.
type batchEntry struct {
	File   string          `yaml:"file"`
	ID     string          `yaml:"id"`
	Error  string          `yaml:"error,omitempty"`
	Result *report.Summary `yaml:"result,omitempty"`
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "batch <instance-file>...",
		Short: "Solve many instances concurrently",
		Long: `Solve every instance file concurrently and print each allocation in
argument order. A failing instance does not stop the others unless
--fail-fast is set.

Exit codes:
  0 - every instance solved and verified
  1 - at least one allocation failed verification
  2 - at least one file was unreadable or invalid`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", 0, "max concurrent instances (default GOMAXPROCS)")
	cmd.Flags().BoolVar(&opts.FailFast, "fail-fast", false, "stop at the first failing instance")

	return cmd
}

func runBatch(cmd *cobra.Command, opts *BatchOptions, paths []string) error {
	if opts.Workers < 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid --workers %d", opts.Workers))
	}

	files := make([]InstanceFile, len(paths))
	instances := make([]batch.Instance, len(paths))
	for k, path := range paths {
		f, r, err := LoadInstance(path, nil)
		if err != nil {
			return WrapExitError(ExitCommandError, "cannot load instance", err)
		}
		files[k] = f
		instances[k] = batch.Instance{ID: path, Valuations: f.Valuations, Rent: r}
	}

	bopts := []batch.Option{
		batch.WithLogger(opts.logger),
		batch.WithSolveOptions(opts.solve...),
	}
	if opts.Workers > 0 {
		bopts = append(bopts, batch.WithWorkers(opts.Workers))
	}
	if opts.FailFast {
		bopts = append(bopts, batch.WithFailFast())
	}

	out, runErr := batch.Solve(cmd.Context(), instances, bopts...)

	code := ExitSuccess
	for k, o := range out {
		if o.Err == nil {
			if err := o.Allocation.Verify(report.Tolerance); err != nil {
				out[k].Err = err
			}
		}
		switch {
		case out[k].Err == nil:
		case errors.Is(out[k].Err, rent.ErrInvalidInput):
			code = ExitCommandError
		case code == ExitSuccess:
			code = ExitFailure
		}
	}

	if err := writeBatch(cmd.OutOrStdout(), opts.Format, paths, files, out); err != nil {
		return WrapExitError(ExitCommandError, "cannot write output", err)
	}

	switch {
	case runErr != nil && code == ExitSuccess:
		return WrapExitError(ExitFailure, "batch aborted", runErr)
	case code != ExitSuccess:
		return WrapExitError(code, "batch had failures", batch.Errors(out))
	default:
		return nil
	}
}

func writeBatch(w io.Writer, format string, paths []string, files []InstanceFile, out []batch.Outcome) error {
	if format == "yaml" {
		entries := make([]batchEntry, len(out))
		for k, o := range out {
			entries[k] = batchEntry{File: paths[k], ID: o.ID}
			if o.Err != nil {
				entries[k].Error = o.Err.Error()
				continue
			}
			s, err := report.Summarize(o.Allocation, files[k].Labels())
			if err != nil {
				return err
			}
			entries[k].Result = &s
		}
		return encodeYAML(w, entries)
	}

	for k, o := range out {
		if k > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "== %s ==\n", paths[k]); err != nil {
			return err
		}
		if o.Err != nil {
			if _, err := fmt.Fprintf(w, "error: %v\n", o.Err); err != nil {
				return err
			}
			continue
		}
		if err := writeAllocation(w, format, o.Allocation, files[k].Labels()); err != nil {
			return err
		}
	}

	return nil
}
