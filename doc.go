// Package ensmallen is a shortest-path and centrality toolkit for
// large, dense-identifier graphs — from parallel BFS primitives to
// HyperLogLog-sketched closeness approximation.
//
// 🚀 What is in the box?
//
//	A compact, concurrency-first library that brings together:
//		• Core contract: a read-only neighbor-access interface plus a CSR container
//		• Traversals: sequential and parallel layer-synchronous BFS, single- or multi-source
//		• Shortest paths: Dijkstra with plain or probability-weighted edges
//		• Path queries: reconstruction, median points, path counting, ancestor similarity
//		• Enumeration: bounded k-shortest-paths by hop count
//		• Diameter: four-sweep lower bounds refined exactly with iFUB
//		• Centrality: HyperBall total-distance, closeness and harmonic estimates
//
// ✨ Why this shape?
//
//   - Identifier-dense – nodes and edges are zero-based uint32 indexes,
//     so hot loops run on flat slices and compare-and-swap claims
//   - Checked in, unchecked out – every public entry point validates
//     and returns sentinel errors; internal cores assume clean input
//   - Deterministic under parallelism – worker scheduling never changes
//     a result, only how fast it arrives
//
// Everything is organized under focused subpackages:
//
//	core/      — Graph contract, CSR container, weight-domain guards
//	gen/       — small deterministic graph generators for tests & examples
//	bfs/       — breadth-first engines + the traversal result object
//	dijkstra/  — weighted engine, probability mode, result aggregates
//	kpaths/    — k-shortest-paths enumeration
//	diameter/  — four-sweep, iFUB, naive fallback, dispatch
//	hll/       — packed HyperLogLog cardinality sketches
//	hyperball/ — sketch-per-node centrality engine
//
// Quick ASCII example:
//
//	    0───1───2───3───4
//
//	a path of five nodes: BFS from 0 yields distances [0,1,2,3,4],
//	eccentricity 4, and diameter.Diameter reports 4.
//
//	go get github.com/AnacletoLAB/ensmallen-sub003
package ensmallen
