// Package core defines the dense-identifier graph contract consumed by
// every traversal engine in this module, together with a compact
// CSR-backed implementation suitable for tests and embedding.
package core

import (
	"errors"
	"math"
)

// NodeID is a dense, zero-based node identifier.
type NodeID = uint32

// EdgeID is a dense, zero-based edge identifier.
type EdgeID = uint32

// NotPresent is the sentinel value used in distance and predecessor
// vectors to denote "no such node" or "never reached". It is the maximum
// value of the identifier type.
const NotPresent NodeID = math.MaxUint32

// Sentinel errors shared by the checked entry points of this module.
var (
	// ErrNodeOutOfRange is returned when a node ID is not smaller than
	// the number of nodes in the graph.
	ErrNodeOutOfRange = errors.New("core: node id out of range")

	// ErrNoEdgeWeights is returned when a weighted operation is requested
	// on a graph that carries no edge weights.
	ErrNoEdgeWeights = errors.New("core: graph has no edge weights")

	// ErrNonPositiveWeight is returned when an operation requiring
	// strictly positive edge weights encounters a weight <= 0.
	ErrNonPositiveWeight = errors.New("core: edge weights must be positive")

	// ErrWeightNotProbability is returned when an operation interpreting
	// weights as traversal probabilities encounters a weight outside (0,1].
	ErrWeightNotProbability = errors.New("core: edge weights must lie in (0, 1]")
)

// Graph is the read-only neighbor-access contract required by the
// traversal engines. All methods are non-mutating and safe for
// concurrent use once the graph is finalized.
//
// NeighborNodeIDs, OutgoingEdgeIDs and EdgeWeights are unchecked: the
// caller guarantees src is a valid node ID. The three returned
// sequences are parallel (index-aligned) and their order, while
// implementation defined, is stable within a single traversal.
type Graph interface {
	// NumberOfNodes returns the total node count.
	NumberOfNodes() NodeID

	// NumberOfEdges returns the total stored edge count. For undirected
	// graphs each endpoint pair is stored in both directions and counted
	// twice, matching the adjacency the traversals actually walk.
	NumberOfEdges() EdgeID

	// Directed reports whether edges are one-way.
	Directed() bool

	// HasEdgeWeights reports whether per-edge weights are present.
	HasEdgeWeights() bool

	// ValidateNodeID bounds-checks id, returning it unchanged or
	// ErrNodeOutOfRange.
	ValidateNodeID(id NodeID) (NodeID, error)

	// NeighborNodeIDs returns the out-neighbors of src. Unchecked.
	NeighborNodeIDs(src NodeID) []NodeID

	// OutgoingEdgeIDs returns the outgoing edge ids of src, aligned with
	// NeighborNodeIDs(src). Unchecked.
	OutgoingEdgeIDs(src NodeID) []EdgeID

	// EdgeWeights returns the outgoing edge weights of src, aligned with
	// NeighborNodeIDs(src). Unchecked; only meaningful when
	// HasEdgeWeights reports true.
	EdgeWeights(src NodeID) []float32

	// IsDisconnectedSingleton reports whether node has neither outgoing
	// nor incoming edges. Unchecked.
	IsDisconnectedSingleton(node NodeID) bool

	// MustHavePositiveEdgeWeights fails with a descriptive error unless
	// the graph carries weights and every weight is strictly positive.
	MustHavePositiveEdgeWeights() error

	// MustHaveProbabilityEdgeWeights fails with a descriptive error
	// unless the graph carries weights and every weight lies in (0, 1].
	MustHaveProbabilityEdgeWeights() error
}
