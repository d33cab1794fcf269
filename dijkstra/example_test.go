package dijkstra_test

import (
	"fmt"

	"github.com/AnacletoLAB/ensmallen-sub003/core"
	"github.com/AnacletoLAB/ensmallen-sub003/dijkstra"
)

// buildWeightedTriangle constructs an undirected, weighted triangle:
//
//	0 ——(1)—— 1
//	 \       /
//	 (5)   (2)
//	   \   /
//	     2
func buildWeightedTriangle() *core.CSR {
	g, _ := core.NewBuilder().
		AddWeightedEdge(0, 1, 1).
		AddWeightedEdge(1, 2, 2).
		AddWeightedEdge(0, 2, 5).
		Finalize()
	return g
}

// ExampleDijkstra shows weighted shortest paths on the triangle.
// Scenario:
//
//	Source: node 0
//
// Expected: distance to node 2 is 3 via 0→1→2, cheaper than the direct
// 5-weight edge.
func ExampleDijkstra() {
	g := buildWeightedTriangle()
	res, _ := dijkstra.Dijkstra(g, []core.NodeID{0})
	fmt.Printf("dist[2] = %.0f\n", res.Distances()[2])
	// Output: dist[2] = 3
}

// ExampleDijkstra_probabilities treats edge weights as traversal
// probabilities: the reported "distance" is the probability of the most
// likely path, accumulated in the log domain.
func ExampleDijkstra_probabilities() {
	g, _ := core.NewBuilder(core.WithDirected()).
		AddWeightedEdge(0, 1, 0.5).
		Finalize()
	res, _ := dijkstra.Dijkstra(g, []core.NodeID{0}, dijkstra.WithProbabilities())
	fmt.Printf("p[0] = %.2f, p[1] = %.2f\n", res.Distances()[0], res.Distances()[1])
	// Output: p[0] = 1.00, p[1] = 0.50
}

// ExampleEccentricity reports the weighted eccentricity of the triangle
// corner 0: the farthest node costs 3.
func ExampleEccentricity() {
	ecc, most, _ := dijkstra.Eccentricity(buildWeightedTriangle(), 0)
	fmt.Printf("eccentricity %.0f at node %d\n", ecc, most)
	// Output: eccentricity 3 at node 2
}
