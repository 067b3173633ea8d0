// SPDX-License-Identifier: MIT

package clustering

// PartitionBuilder converts the connected components of a run's
// similarity graph into Clusters.
type PartitionBuilder struct {
	// StrictOneToOne keeps only components with exactly one id on each
	// side. Ignored for dirty runs.
	StrictOneToOne bool
}

// Build splits every component of c's graph by the dataset limit.
//
// Implementation:
//   - Stage 1: take components (sorted, ordered by smallest id).
//   - Stage 2: clean-clean: ids < L go to D1, the rest to D2 as local ids;
//     dirty: the whole component goes to D1.
//   - Stage 3: drop non 1-1 components when StrictOneToOne is set.
//
// Complexity: O(N + E) plus the component sort.
func (b PartitionBuilder) Build(c *Context) []Cluster {
	comps := c.graph.ConnectedComponents()
	out := make([]Cluster, 0, len(comps))

	for _, comp := range comps {
		if !c.cleanClean {
			out = append(out, Cluster{D1: comp, D2: []int{}})
			continue
		}
		// comp is sorted, so a single cut point separates the sides.
		cut := 0
		for cut < len(comp) && comp[cut] < c.limit {
			cut++
		}
		if b.StrictOneToOne && (cut != 1 || len(comp)-cut != 1) {
			continue
		}
		d1 := comp[:cut:cut]
		d2 := make([]int, len(comp)-cut)
		for i, v := range comp[cut:] {
			d2[i] = c.Local(v)
		}
		out = append(out, Cluster{D1: d1, D2: d2})
	}

	return out
}
