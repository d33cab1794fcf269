package kpaths_test

import (
	"fmt"

	"github.com/AnacletoLAB/ensmallen-sub003/gen"
	"github.com/AnacletoLAB/ensmallen-sub003/kpaths"
)

// ExampleKShortestPaths enumerates paths between two leaves of a star.
// Scenario:
//
//	Graph: hub 0 with leaves 1, 2, 3 (undirected, unweighted)
//	Query: paths from leaf 1 to leaf 2, up to k = 5
//
// Expected: only one simple path exists regardless of k.
func ExampleKShortestPaths() {
	g, _ := gen.Star(4)
	paths, _ := kpaths.KShortestPaths(g, 1, 2, 5)
	fmt.Println(paths)
	// Output: [[1 0 2]]
}
