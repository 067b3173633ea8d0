// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/entres/clustering"
	"github.com/katalvlaran/entres/evaluation"
)

// evaluationResult is the output of 'entres evaluate'.
type evaluationResult struct {
	RunID      string                     `json:"run_id" yaml:"run_id"`
	Method     clustering.Method          `json:"method" yaml:"method"`
	Threshold  float64                    `json:"threshold" yaml:"threshold"`
	Candidates evaluation.CandidateReport `json:"candidates" yaml:"candidates"`
	Clusters   evaluation.Report          `json:"clusters" yaml:"clusters"`
}

func newEvaluateCmd(a *app) *cobra.Command {
	var (
		sf    strategyFlags
		in    inputFlags
		out   output
		truth string
	)
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Cluster a candidate file and score it against a ground truth",
		Long: `Cluster a candidate file, then report candidate-level pair completeness
and quality (PC/PQ) and cluster-level precision, recall and F-measure.

The ground truth is CSV "id1,id2" or JSON/YAML [{id1,id2}].`,
		Example: `  entres evaluate -i cands.json -g truth.csv -m best-match`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := in.read()
			if err != nil {
				return err
			}
			gt, err := evaluation.ReadGroundTruth(truth, set.CleanClean())
			if err != nil {
				return fmt.Errorf("read ground truth: %w", err)
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
			if err != nil {
				return err
			}
			cr, err := evaluation.EvaluateCandidates(set, gt)
			if err != nil {
				return err
			}
			r, err := evaluation.EvaluateClusters(res.Clusters, gt)
			if err != nil {
				return err
			}
			a.log.Info("evaluate: done", "run_id", res.RunID, "method", string(res.Method),
				"precision", r.Precision, "recall", r.Recall, "f_measure", r.FMeasure)

			return out.write(cmd.OutOrStdout(), evaluationResult{
				RunID:      res.RunID,
				Method:     res.Method,
				Threshold:  res.Threshold,
				Candidates: cr,
				Clusters:   r,
			})
		},
	}
	sf.bind(cmd)
	in.bind(cmd)
	out.bind(cmd)
	cmd.Flags().StringVarP(&truth, "ground-truth", "g", "", "ground-truth file (.csv, .json, .yaml, .msgpack)")
	_ = cmd.MarkFlagRequired("ground-truth")

	return cmd
}
