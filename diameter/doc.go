// Package diameter estimates and computes graph diameters on top of the
// bfs package.
//
// What
//
//   - FourSweep: four successive BFS runs yielding a diameter lower
//     bound and a low-eccentricity near-center node.
//   - IFUB: the iterative fringe upper bound method; exact diameter of
//     an undirected graph, refining the four-sweep bound over the outer
//     crown only.
//   - Naive: brute-force maximum over per-node eccentricities, one BFS
//     per node run in parallel; the fallback for directed graphs.
//   - Diameter: public dispatch. Edgeless graphs and, unless
//     WithIgnoreInfinity is set, disconnected graphs report +Inf
//     immediately; directed graphs use Naive; everything else IFUB.
//
// Crown refinement
//
//	After the four-sweep, a BFS from the near-center node splits the
//	graph: nodes within half the tentative diameter can never extend
//	it and are skipped. The remaining crown is processed in blocks of
//	equal center distance, farthest first; as soon as the bound reaches
//	twice the block distance the remaining blocks are provably unable
//	to improve it and the loop stops. On most real graphs the crown is
//	empty or exhausted after a handful of blocks.
//
// Errors
//
//	IFUB returns ErrDirectedGraph on directed graphs instead of
//	silently producing an under-estimate; callers must route those
//	through Naive (Diameter does this automatically).
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - FourSweep: four BFS traversals, O(V + E)
//   - IFUB:      O((V + E) * blocks processed); worst case O(V*(V+E))
//   - Naive:     O(V * (V + E))
package diameter
