// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/entres/candidates"
	"github.com/katalvlaran/entres/clustering"
	"github.com/katalvlaran/entres/config"
)

// strategyFlags override the configured strategy for one command.
type strategyFlags struct {
	method    string
	threshold float64
	side      string
	budget    int
	timeLimit string
	seed      int64
}

func (f *strategyFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.method, "method", "m", "", "clustering method (see 'entres methods')")
	fs.Float64VarP(&f.threshold, "threshold", "t", 0, "similarity threshold; pairs need score > threshold")
	fs.StringVar(&f.side, "preferred-side", "", "proposing side: dataset1, dataset2 or smaller")
	fs.IntVar(&f.budget, "move-budget", 0, "swap attempts for best-assignment (0 = automatic)")
	fs.StringVar(&f.timeLimit, "time-limit", "", "wall-clock limit for best-assignment, e.g. 30s")
	fs.Int64Var(&f.seed, "seed", 0, "random seed for best-assignment")
}

// apply copies the flags that were set onto a copy of cfg.
func (f *strategyFlags) apply(cmd *cobra.Command, cfg *config.Config) *config.Config {
	out := *cfg
	fs := cmd.Flags()
	if fs.Changed("method") {
		out.Method = f.method
	}
	if fs.Changed("threshold") {
		t := f.threshold
		out.Threshold = &t
	}
	if fs.Changed("preferred-side") {
		out.PreferredSide = f.side
	}
	if fs.Changed("move-budget") {
		out.MoveBudget = f.budget
	}
	if fs.Changed("time-limit") {
		out.TimeLimit = f.timeLimit
	}
	if fs.Changed("seed") {
		out.Seed = f.seed
	}

	return &out
}

// inputFlags locate and describe a candidate file.
type inputFlags struct {
	path  string
	dirty bool
	n1    int
	n2    int
}

func (f *inputFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.path, "input", "i", "", "candidate file (.json, .yaml, .msgpack, .csv)")
	fs.BoolVar(&f.dirty, "dirty", false, "CSV input is a single dataset")
	fs.IntVar(&f.n1, "dataset1-size", 0, "CSV input: dataset-1 size (0 = infer)")
	fs.IntVar(&f.n2, "dataset2-size", 0, "CSV input: dataset-2 size (0 = infer)")
	_ = cmd.MarkFlagRequired("input")
}

func (f *inputFlags) read() (*candidates.Pairs, error) {
	hint := candidates.Header{CleanClean: !f.dirty, Dataset1Size: f.n1, Dataset2Size: f.n2}
	set, err := candidates.ReadFile(f.path, hint)
	if err != nil {
		return nil, fmt.Errorf("read candidates: %w", err)
	}

	return set, nil
}

func newClusterCmd(a *app) *cobra.Command {
	var (
		sf  strategyFlags
		in  inputFlags
		out output
	)
	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Cluster a candidate file",
		Long: `Cluster a candidate file with one strategy and write the clusters.

The result carries the run id, method, threshold, clusters (dataset-2 ids
local to dataset 2), committed edge count and elapsed time.`,
		Example: `  entres cluster -i cands.json -m kiraly -t 0.5 -o out.json
  entres cluster -i cands.csv --dataset1-size 50 -m row-column --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := in.read()
			if err != nil {
				return err
			}
			cfg := sf.apply(cmd, a.cfg)
			if err = cfg.Validate(); err != nil {
				return err
			}
			s, err := cfg.Strategy(a.log)
			if err != nil {
				return err
			}

			res, err := s.Run(cmd.Context(), set)
			if errors.Is(err, clustering.ErrScenarioMismatch) {
				return fmt.Errorf("%w (use connected-components for dirty input)", err)
			}
			if err != nil {
				return err
			}

			return out.write(cmd.OutOrStdout(), res)
		},
	}
	sf.bind(cmd)
	in.bind(cmd)
	out.bind(cmd)

	return cmd
}
