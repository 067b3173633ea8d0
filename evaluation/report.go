// SPDX-License-Identifier: MIT

package evaluation

import (
	"fmt"

	"github.com/katalvlaran/entres/candidates"
	"github.com/katalvlaran/entres/clustering"
)

// Report is the cluster-level quality of one clustering run.
type Report struct {
	DetectedDuplicates int     `json:"detected_duplicates" yaml:"detected_duplicates"`
	ExistingDuplicates int     `json:"existing_duplicates" yaml:"existing_duplicates"`
	TotalMatches       int     `json:"total_matches" yaml:"total_matches"`
	Clusters           int     `json:"clusters" yaml:"clusters"`
	Precision          float64 `json:"precision" yaml:"precision"`
	Recall             float64 `json:"recall" yaml:"recall"`
	FMeasure           float64 `json:"f_measure" yaml:"f_measure"`
}

// String renders the report on one line.
func (r Report) String() string {
	return fmt.Sprintf("clusters=%d matches=%d detected=%d/%d precision=%.4f recall=%.4f f1=%.4f",
		r.Clusters, r.TotalMatches, r.DetectedDuplicates, r.ExistingDuplicates,
		r.Precision, r.Recall, r.FMeasure)
}

// CandidateReport is the candidate-level quality of a candidate set.
type CandidateReport struct {
	Comparisons        int     `json:"comparisons" yaml:"comparisons"`
	DetectedDuplicates int     `json:"detected_duplicates" yaml:"detected_duplicates"`
	ExistingDuplicates int     `json:"existing_duplicates" yaml:"existing_duplicates"`
	Dataset1Entities   int     `json:"dataset1_entities" yaml:"dataset1_entities"`
	Dataset2Entities   int     `json:"dataset2_entities" yaml:"dataset2_entities"`
	PC                 float64 `json:"pc" yaml:"pc"`
	PQ                 float64 `json:"pq" yaml:"pq"`
	FMeasure           float64 `json:"f_measure" yaml:"f_measure"`
}

// String renders the report on one line.
func (r CandidateReport) String() string {
	return fmt.Sprintf("comparisons=%d detected=%d/%d pc=%.4f pq=%.4f f1=%.4f",
		r.Comparisons, r.DetectedDuplicates, r.ExistingDuplicates, r.PC, r.PQ, r.FMeasure)
}

// EvaluateClusters measures clusters against gt.
//
// Implementation:
//   - Stage 1: enumerate declared matches: D1×D2 for clean-clean clusters,
//     every unordered pair of D1 for dirty clusters.
//   - Stage 2: count distinct true pairs among them.
//   - Stage 3: precision, recall and their harmonic mean.
//
// Complexity: O(Σ |cluster|²).
func EvaluateClusters(clusters []clustering.Cluster, gt *GroundTruth) (Report, error) {
	if gt == nil {
		return Report{}, ErrNilGroundTruth
	}

	r := Report{ExistingDuplicates: gt.Len(), Clusters: len(clusters)}
	detected := make(map[candidates.Pair]struct{})
	hit := func(a, b int) {
		r.TotalMatches++
		if gt.Contains(a, b) {
			detected[gt.key(a, b)] = struct{}{}
		}
	}

	for i, c := range clusters {
		if len(c.D2) > 0 && !gt.cleanClean {
			return Report{}, fmt.Errorf("cluster %d has dataset-2 ids: %w", i, ErrScenarioMismatch)
		}
		if gt.cleanClean {
			for _, a := range c.D1 {
				for _, b := range c.D2 {
					hit(a, b)
				}
			}
			continue
		}
		for x := 0; x < len(c.D1); x++ {
			for y := x + 1; y < len(c.D1); y++ {
				hit(c.D1[x], c.D1[y])
			}
		}
	}

	r.DetectedDuplicates = len(detected)
	r.Precision = ratio(r.DetectedDuplicates, r.TotalMatches)
	r.Recall = ratio(r.DetectedDuplicates, r.ExistingDuplicates)
	r.FMeasure = harmonic(r.Precision, r.Recall)

	return r, nil
}

// EvaluateCandidates measures the candidate set itself: how many true
// pairs survived blocking (PC) and how dense they are among the
// comparisons (PQ).
func EvaluateCandidates(set candidates.CandidateSet, gt *GroundTruth) (CandidateReport, error) {
	if gt == nil {
		return CandidateReport{}, ErrNilGroundTruth
	}
	if set == nil {
		return CandidateReport{}, clustering.ErrNilCandidateSet
	}
	if set.CleanClean() != gt.cleanClean {
		return CandidateReport{}, ErrScenarioMismatch
	}

	r := CandidateReport{Comparisons: set.Len(), ExistingDuplicates: gt.Len()}
	detected := make(map[candidates.Pair]struct{})
	e1 := make(map[int]struct{})
	e2 := make(map[int]struct{})
	for c := range set.All() {
		if gt.Contains(c.ID1, c.ID2) {
			detected[gt.key(c.ID1, c.ID2)] = struct{}{}
		}
		e1[c.ID1] = struct{}{}
		if gt.cleanClean {
			e2[c.ID2] = struct{}{}
		} else {
			e1[c.ID2] = struct{}{}
		}
	}

	r.DetectedDuplicates = len(detected)
	r.Dataset1Entities, r.Dataset2Entities = len(e1), len(e2)
	r.PC = ratio(r.DetectedDuplicates, r.ExistingDuplicates)
	r.PQ = ratio(r.DetectedDuplicates, r.Comparisons)
	r.FMeasure = harmonic(r.PC, r.PQ)

	return r, nil
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}

	return float64(num) / float64(den)
}

func harmonic(p, r float64) float64 {
	if p <= 0 || r <= 0 {
		return 0
	}

	return 2 * p * r / (p + r)
}
