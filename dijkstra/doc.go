// Package dijkstra computes weighted shortest paths from a single- or
// multi-source hyper-node over a core.Graph.
//
// What
//
//   - Dijkstra: classic minimum-first traversal over an indexed binary
//     min-heap pre-sized to the node count, with in-place decrease-key
//     relaxation (no lazy duplicates, each node queued at most once).
//   - Early termination on a single target (WithTarget) or once a whole
//     target set has been finalized (WithTargets).
//   - WithMaxDepth prunes relaxation with an unweighted BFS pre-pass: a
//     node beyond the hop bound is skipped even when a cheaper weighted
//     route exists. Deliberate approximation, not a bug.
//   - WithProbabilities treats weights as traversal probabilities in
//     (0, 1]: distances accumulate as d - ln(w), so smaller stays
//     closer, and the final vector is exponentiated back into [0, 1]
//     ("probability of reaching the node along the most likely path").
//   - Eccentricity: weighted eccentricity of one node.
//   - Result: distance vector, optional shortest-path tree, designated
//     target distance, eccentricity, total / log-total / harmonic-total
//     aggregates, and a point-at-distance walk along the tree.
//
// Preconditions
//
//	Weights must be strictly positive; probability runs additionally
//	require weights in (0, 1]. Both guards run before the engine and
//	surface the core sentinel errors. Source sets made only of
//	disconnected singletons short-circuit to a degenerate result with
//	+Inf (or zero-probability) distances.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
package dijkstra
