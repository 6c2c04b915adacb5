package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rentdiv/assignment"
	"github.com/katalvlaran/rentdiv/rent"
	"github.com/katalvlaran/rentdiv/report"
)

// scenario is a built-in instance with the properties its allocation must have.
type scenario struct {
	Name       string
	Valuations [][]float64
	Rent       float64
	Checks     []check
}

type check struct {
	Name string
	Fn   func(a *rent.Allocation) error
}

// CheckResult is one scenario property outcome.
type CheckResult struct {
	Scenario string `yaml:"scenario"`
	Check    string `yaml:"check"`
	Pass     bool   `yaml:"pass"`
	Error    string `yaml:"error,omitempty"`
}

// ScenariosResult holds every check outcome in run order.
type ScenariosResult struct {
	Results []CheckResult `yaml:"results"`
	Passed  int           `yaml:"passed"`
	Failed  int           `yaml:"failed"`
}

var commonChecks = []check{
	{"bijection", checkBijection},
	{"budget", checkBudget},
	{"envy-free", checkEnvyFree},
	{"subsidies non-negative", checkSubsidies},
}

func builtinScenarios() []scenario {
	return []scenario{
		{
			Name:       "A free-rider",
			Valuations: [][]float64{{150, 0}, {140, 10}},
			Rent:       100,
			Checks: append(commonChecks[:len(commonChecks):len(commonChecks)],
				check{"agent 1 is paid", func(a *rent.Allocation) error {
					if p := a.Prices[a.ItemOf(1)]; p >= 0 {
						return fmt.Errorf("agent 1 pays %g", p)
					}
					return nil
				}},
				check{"agent 0 pays over half", func(a *rent.Allocation) error {
					if p := a.Prices[a.ItemOf(0)]; p <= a.Rent/2 {
						return fmt.Errorf("agent 0 pays %g", p)
					}
					return nil
				}},
			),
		},
		{
			Name:       "B three rooms",
			Valuations: [][]float64{{35, 40, 25}, {35, 60, 40}, {25, 40, 20}},
			Rent:       100,
			Checks:     commonChecks,
		},
		{
			Name:       "C single agent",
			Valuations: [][]float64{{7}},
			Rent:       55,
			Checks: append(commonChecks[:len(commonChecks):len(commonChecks)],
				check{"whole rent on the only item", func(a *rent.Allocation) error {
					if a.ItemOf(0) != 0 || a.Prices[0] != a.Rent {
						return fmt.Errorf("assignment %v, prices %v", a.Assignment, a.Prices)
					}
					return nil
				}},
			),
		},
		{
			Name:       "D identical rows",
			Valuations: [][]float64{{10, 20, 30}, {10, 20, 30}, {10, 20, 30}},
			Rent:       60,
			Checks:     commonChecks,
		},
	}
}

func checkBijection(a *rent.Allocation) error {
	return assignment.ValidatePermutation(a.Assignment, a.N())
}

func checkBudget(a *rent.Allocation) error {
	if d := math.Abs(a.TotalPrice() - a.Rent); d > report.Tolerance {
		return fmt.Errorf("prices sum to %g, rent %g", a.TotalPrice(), a.Rent)
	}
	return nil
}

func checkEnvyFree(a *rent.Allocation) error {
	rep, err := a.Audit()
	if err != nil {
		return err
	}
	if !rep.EnvyFree(report.Tolerance) {
		return fmt.Errorf("agent %d envies agent %d by %g", rep.Agent, rep.Other, rep.MaxEnvy)
	}
	return nil
}

func checkSubsidies(a *rent.Allocation) error {
	for i, q := range a.Subsidies {
		if q < 0 {
			return fmt.Errorf("q[%d] = %g", i, q)
		}
	}
	return nil
}

// NewScenariosCommand creates the scenarios command.
func NewScenariosCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "Run the built-in scenarios and report PASS/FAIL per property",
		Long: `Run the built-in reference scenarios (free rider, three rooms, single
agent, identical valuations) and check every allocation property.

Exit codes:
  0 - all checks passed
  1 - one or more checks failed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := runScenarios(builtinScenarios(), rootOpts.solve)
			if err := writeScenarios(cmd.OutOrStdout(), rootOpts.Format, res); err != nil {
				return WrapExitError(ExitCommandError, "cannot write output", err)
			}
			if res.Failed > 0 {
				return NewExitError(ExitFailure, fmt.Sprintf("%d of %d checks failed", res.Failed, res.Failed+res.Passed))
			}
			return nil
		},
	}
}

func runScenarios(scenarios []scenario, opts []rent.Option) ScenariosResult {
	var res ScenariosResult
	for _, sc := range scenarios {
		alloc, err := rent.Solve(sc.Valuations, sc.Rent, opts...)
		for _, c := range sc.Checks {
			r := CheckResult{Scenario: sc.Name, Check: c.Name}
			if err == nil {
				err := c.Fn(alloc)
				r.Pass = err == nil
				if err != nil {
					r.Error = err.Error()
				}
			} else {
				r.Error = err.Error()
			}
			if r.Pass {
				res.Passed++
			} else {
				res.Failed++
			}
			res.Results = append(res.Results, r)
		}
	}

	return res
}

func writeScenarios(w io.Writer, format string, res ScenariosResult) error {
	if format == "yaml" {
		return encodeYAML(w, res)
	}

	for _, r := range res.Results {
		status := "PASS"
		if !r.Pass {
			status = "FAIL"
		}
		line := fmt.Sprintf("%s  %-16s  %s", status, r.Scenario, r.Check)
		if r.Error != "" {
			line += ": " + r.Error
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n%d passed, %d failed\n", res.Passed, res.Failed)

	return err
}
