package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rentdiv/rent"
)

// ErrBadWorkers indicates a non-positive worker count.
var ErrBadWorkers = errors.New("batch: workers must be positive")

// Instance is one rent-division problem.
type Instance struct {
	ID         string
	Valuations [][]float64
	Rent       float64
}

// Outcome is the result for the Instance with the same index and ID.
type Outcome struct {
	ID         string
	Allocation *rent.Allocation
	Err        error
}

// Options configures Solve.
type Options struct {
	Workers  int           // max concurrent instances
	FailFast bool          // cancel remaining instances on the first failure
	Logger   *zap.Logger   // per-instance tracing
	Solve    []rent.Option // forwarded to rent.Solve
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithWorkers bounds concurrency. Panics with ErrBadWorkers if n ≤ 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(ErrBadWorkers.Error())
	}

	return func(o *Options) {
		o.Workers = n
	}
}

// WithFailFast makes the first instance error cancel the rest and be returned.
func WithFailFast() Option {
	return func(o *Options) {
		o.FailFast = true
	}
}

// WithLogger sets the batch logger; it is also passed to rent.Solve with an
// "instance" field.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Logger = l
	}
}

// WithSolveOptions forwards options to every rent.Solve call.
func WithSolveOptions(opts ...rent.Option) Option {
	return func(o *Options) {
		o.Solve = append(o.Solve, opts...)
	}
}

// DefaultOptions returns GOMAXPROCS workers, no fail-fast and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  zap.NewNop(),
	}
}

// Solve runs rent.Solve for every instance. Instances with an empty ID get a
// random UUID.
//
// The returned error is ctx.Err() if ctx ends before all instances ran, or the
// first instance error under WithFailFast; per-instance errors are otherwise
// only reported in Outcome.Err. Outcomes that never ran carry the context error.
func Solve(ctx context.Context, instances []Instance, opts ...Option) ([]Outcome, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	out := make([]Outcome, len(instances))
	for i, in := range instances {
		out[i].ID = in.ID
		if out[i].ID == "" {
			out[i].ID = uuid.NewString()
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i := range instances {
		i := i
		if gctx.Err() != nil {
			for k := i; k < len(instances); k++ {
				out[k].Err = gctx.Err()
			}
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				out[i].Err = err
				return nil
			}
			log := cfg.Logger.With(zap.String("instance", out[i].ID))
			solveOpts := make([]rent.Option, 0, len(cfg.Solve)+1)
			solveOpts = append(solveOpts, cfg.Solve...)
			solveOpts = append(solveOpts, rent.WithLogger(log))

			alloc, err := rent.Solve(instances[i].Valuations, instances[i].Rent, solveOpts...)
			out[i].Allocation, out[i].Err = alloc, err
			if err != nil {
				log.Debug("instance failed", zap.Error(err))
				if cfg.FailFast {
					return fmt.Errorf("batch: instance %s: %w", out[i].ID, err)
				}
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return out, err
	}

	return out, ctx.Err()
}

// Errors returns the per-instance errors joined, or nil.
func Errors(outcomes []Outcome) error {
	var errs []error
	for _, o := range outcomes {
		if o.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", o.ID, o.Err))
		}
	}

	return errors.Join(errs...)
}
