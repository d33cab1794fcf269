// Package core defines the graph contract shared by every engine in
// this module, plus a compact CSR container implementing it.
//
// What
//
//   - NodeID / EdgeID: dense, zero-based uint32 identifiers.
//   - NotPresent: the max-value sentinel for "no node / never reached",
//     used throughout distance and predecessor vectors.
//   - Graph: the read-only neighbor-access interface the traversal
//     engines (bfs, dijkstra, kpaths, diameter, hyperball) consume.
//   - CSR + Builder: an immutable compressed-sparse-row adjacency with
//     deterministic, ascending neighbor order and positional edge ids.
//
// Why
//
//	The engines never own node/edge tables, vocabularies or parsing;
//	they only need neighbor iteration, edge ids, weights and a few
//	weight-domain guards. Keeping that surface an interface lets a
//	richer container (or a test fixture) plug in without changes.
//
// Checked vs. unchecked
//
//	NeighborNodeIDs, OutgoingEdgeIDs, EdgeWeights and
//	IsDisconnectedSingleton assume a valid node id and will fault on
//	misuse (out-of-range slice access). Public entry points in the
//	algorithm packages validate ids via ValidateNodeID first and return
//	ErrNodeOutOfRange instead.
//
// Concurrency
//
//	A finalized CSR is immutable: all methods are safe for concurrent
//	use. The Builder is single-goroutine.
package core
