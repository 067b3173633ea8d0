// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/entres/core"
)

// ExampleSimilarityGraph_ConnectedComponents links three entities in a chain
// and one separate pair; vertex 5 stays isolated and is not reported.
func ExampleSimilarityGraph_ConnectedComponents() {
	g, _ := core.NewSimilarityGraph(6)
	_ = g.AddEdge(0, 3)
	_ = g.AddEdge(3, 1)
	_ = g.AddEdge(2, 4)
	_ = g.AddEdge(2, 4) // duplicate, ignored

	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("components:", g.ConnectedComponents())

	// Output:
	// edges: 3
	// components: [[0 1 3] [2 4]]
}
