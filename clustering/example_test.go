// SPDX-License-Identifier: MIT

package clustering_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/entres/candidates"
	"github.com/katalvlaran/entres/clustering"
)

// ExampleNew clusters a small clean-clean set with two strategies.
// Connected components merge entity 1 with both partners 1 and 2, and
// that 1-vs-2 component is dropped; reciprocal best match keeps the
// mutual pair (1,1).
func ExampleNew() {
	set, _ := candidates.NewCleanClean(3, 3, []candidates.Candidate{
		{ID1: 0, ID2: 0, Score: 0.92},
		{ID1: 1, ID2: 1, Score: 0.81},
		{ID1: 1, ID2: 2, Score: 0.64},
		{ID1: 2, ID2: 2, Score: 0.35},
	})
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, m := range []clustering.Method{clustering.MethodConnectedComponents, clustering.MethodReciprocalBestMatch} {
		s, _ := clustering.New(m, clustering.WithThreshold(0.5), clustering.WithLogger(log))
		clusters, _ := s.Cluster(context.Background(), set)
		fmt.Printf("%s: %v\n", s.Method(), clusters)
	}

	// Output:
	// connected-components: [{[0] [0]}]
	// reciprocal-best-match: [{[0] [0]} {[1] [1]}]
}

// ExampleStrategy_Run shows run metadata next to the clusters.
func ExampleStrategy_Run() {
	set, _ := candidates.NewCleanClean(2, 2, []candidates.Candidate{
		{ID1: 0, ID2: 1, Score: 0.9},
		{ID1: 1, ID2: 0, Score: 0.8},
		{ID1: 1, ID2: 1, Score: 0.7},
	})
	s := clustering.MustNew(clustering.MethodKiraly,
		clustering.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	res, _ := s.Run(context.Background(), set)
	fmt.Println(s.Info())
	fmt.Println("config:", s.Config())
	fmt.Println("clusters:", res.Clusters, "edges:", res.Edges, "violations:", res.Violations)

	// Output:
	// KiralyMSMApprox Clustering: a 3/2 approximation of the Maximum Stable Marriage problem (suggested by Kiraly)
	// config: threshold=0.1, preferred_side=smaller
	// clusters: [{[0] [1]} {[1] [0]}] edges: 2 violations: 0
}
