// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/entres/builder"
	"github.com/katalvlaran/entres/candidates"
	"github.com/katalvlaran/entres/evaluation"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		n1, n2  int
		p       float64
		planted int
		noise   int
		seed    int64
		outPath string
		truth   string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic clean-clean candidate file",
		Long: `Write a synthetic clean-clean candidate file.

With --planted N the file holds a hidden perfect N x N matching scored in
[0.7, 1.0) plus --noise decoys per entity scored in [0, 0.6); --truth
writes the hidden matching. Without --planted every pair of an
--n1 x --n2 grid is kept with probability --p.`,
		Example: `  entres generate --planted 100 --noise 3 -o cands.json --truth truth.csv
  entres generate --n1 40 --n2 60 --p 0.1 --seed 7 -o cands.msgpack`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []builder.Option{builder.WithSeed(seed)}

			var (
				set *candidates.Pairs
				gt  []candidates.Pair
				err error
			)
			if planted > 0 {
				var pl builder.Planted
				pl, err = builder.PlantedMatching(planted, noise, opts...)
				set, gt = pl.Set, pl.Truth
			} else {
				if truth != "" {
					return errors.New("--truth needs --planted")
				}
				set, err = builder.RandomBipartite(n1, n2, p, opts...)
			}
			if err != nil {
				return err
			}

			if err = candidates.WriteFile(outPath, set); err != nil {
				return fmt.Errorf("write candidates: %w", err)
			}
			if truth != "" {
				g, err := evaluation.NewGroundTruth(true, gt)
				if err != nil {
					return err
				}
				if err = evaluation.WriteGroundTruth(truth, g); err != nil {
					return fmt.Errorf("write ground truth: %w", err)
				}
			}
			a.log.Info("generate: done", "output", outPath, "candidates", set.Len(),
				"dataset1", set.Dataset1Size(), "dataset2", set.Dataset2Size())

			return nil
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&n1, "n1", 100, "dataset-1 size")
	fs.IntVar(&n2, "n2", 100, "dataset-2 size")
	fs.Float64Var(&p, "p", 0.05, "pair probability")
	fs.IntVar(&planted, "planted", 0, "size of a planted matching (0 = random grid)")
	fs.IntVar(&noise, "noise", 3, "decoys per entity for --planted")
	fs.Int64Var(&seed, "seed", 1, "random seed")
	fs.StringVarP(&outPath, "output", "o", "", "candidate file to write")
	fs.StringVar(&truth, "truth", "", "ground-truth file to write (with --planted)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
