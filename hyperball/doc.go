// Package hyperball approximates per-node centralities by growing one
// HyperLogLog edge-reachability sketch per node, one hop per round,
// until a fixed point is reached (the HyperBall method).
//
// What
//
//   - Run: the callback-driven core. Each round replaces every node's
//     sketch with the union of its own and its neighbors' previous
//     sketches, then reports grown estimates to an UpdateFunc.
//   - TotalDistances: accumulates round * estimate-growth, an
//     approximate sum of hop distances to all reachable edges.
//   - Closeness: reciprocal of the total distance, 0 for isolated-ish
//     nodes.
//   - Harmonic: accumulates estimate-growth / round, robust to
//     unreachable regions.
//
// Round engine
//
//	Sketch arrays are double-buffered by round parity: a round reads
//	one buffer and writes the other, so neighbor sketches are never
//	observed mid-mutation. Nodes are claimed with per-worker atomic
//	cursors over contiguous ranges; a worker whose range runs out
//	steals from the next ranges in circular order. Rounds are separated
//	by a full barrier, and the engine stops after the first round in
//	which no sketch changed. On a connected graph that happens within
//	diameter+1 rounds, since a node's sketch can only grow while new
//	edge sources enter its hop radius.
//
// Accuracy
//
//	All estimates inherit the sketch error of the chosen precision
//	(about 1.04/sqrt(2^precision) relative standard error); the
//	centralities are approximations suited for ranking, not exact
//	counts. Results are deterministic for a given graph and
//	configuration regardless of worker scheduling.
//
// Complexity (V = |nodes|, E = |edges|, D = diameter, m = registers)
//
//   - Time:   O(D * (V + E) * m) worst case
//   - Memory: 2 sketches per node, 2*V*m*bits/8 bytes
package hyperball
