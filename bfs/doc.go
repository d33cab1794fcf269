// Package bfs provides breadth-first search over a core.Graph, with
// single- or multi-source roots ("hyper-node": every source sits at
// distance 0 simultaneously).
//
// What
//
//   - Distances: parallel, layer-synchronous BFS returning the per-node
//     distance vector, the eccentricity and some node of the last layer.
//   - Predecessors: the same frontier engine recording the predecessor
//     tree instead (a root is its own parent).
//   - General: the sequential FIFO variant computing distances plus,
//     optionally, predecessors, with early exit on a destination node.
//   - ShortestPathNodeIDs: one shortest path between two distinct nodes.
//   - Eccentricity: max finite distance from a node, via a full BFS.
//   - Result: derived queries over the finished traversal (k-th point on
//     a path, median point, path counting, successor/ancestor scans,
//     ancestor Jaccard similarity).
//
// Parallel engine
//
//	Within a round all workers expand disjoint frontier chunks; a
//	neighbor is claimed with a per-slot compare-and-swap, so the first
//	discoverer wins and every slot is written at most once. The relative
//	order in which two frontier nodes are processed is unspecified and
//	the results do not depend on it. The node reported as most distant
//	is an arbitrary member of the last populated layer; ties at the
//	final depth are broken arbitrarily.
//
// Depth limiting
//
//	WithMaxDepth(d) stops exploring beyond d hops. The dijkstra package
//	uses a depth-limited run as a pruning pre-pass; a node unreachable
//	within d unweighted hops stays excluded there even if reachable via
//	cheaper weighted edges.
//
// Errors
//
//	Checked entry points validate node ids and return structured errors
//	(core.ErrNodeOutOfRange, ErrSelfLoopPath, ErrUnreachableNode, ...).
//	The unexported cores assume validated input.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E) per traversal
//   - Memory: O(V) for the slot vector and frontiers
package bfs
