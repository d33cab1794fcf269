package bfs_test

import (
	"fmt"

	"github.com/AnacletoLAB/ensmallen-sub003/bfs"
	"github.com/AnacletoLAB/ensmallen-sub003/core"
	"github.com/AnacletoLAB/ensmallen-sub003/gen"
)

// ExampleDistances shows a parallel BFS on a path graph.
// Scenario:
//
//	Graph: 0—1—2—3—4 (undirected, unweighted)
//	Source: node 0
//
// Expected: hop distances grow along the path; the farthest node
// realizes the eccentricity.
func ExampleDistances() {
	g, _ := gen.Path(5)
	res, _ := bfs.Distances(g, []core.NodeID{0})
	fmt.Println(res.Distances())
	fmt.Println("eccentricity:", res.Eccentricity())
	// Output:
	// [0 1 2 3 4]
	// eccentricity: 4
}

// ExampleShortestPathNodeIDs reconstructs one shortest path between two
// nodes of the path graph 0—1—2—3—4.
func ExampleShortestPathNodeIDs() {
	g, _ := gen.Path(5)
	path, _ := bfs.ShortestPathNodeIDs(g, 0, 4)
	fmt.Println(path)
	// Output: [0 1 2 3 4]
}

// ExampleGeneral_hyperNode treats two endpoints of a path as a single
// source set: every source sits at distance 0 simultaneously, so the
// middle node is the farthest point.
func ExampleGeneral_hyperNode() {
	g, _ := gen.Path(5)
	res, _ := bfs.General(g, []core.NodeID{0, 4})
	fmt.Println(res.Distances())
	// Output: [0 1 2 1 0]
}

// ExampleResult_MedianPoint finds the halfway node on the tree path
// from the source to the far end of the path graph.
func ExampleResult_MedianPoint() {
	g, _ := gen.Path(5)
	res, _ := bfs.Predecessors(g, []core.NodeID{0})
	mid, _ := res.MedianPoint(4)
	fmt.Println("median:", mid)
	// Output: median: 2
}
