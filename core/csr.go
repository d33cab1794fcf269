package core

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Builder sentinel errors.
var (
	// ErrBadWeight is returned by Finalize when an edge weight is NaN or
	// infinite.
	ErrBadWeight = errors.New("core: edge weight must be finite")

	// ErrMixedWeights is returned by Finalize when weighted and
	// unweighted edges were mixed in the same builder.
	ErrMixedWeights = errors.New("core: cannot mix weighted and unweighted edges")
)

// CSR is a compressed-sparse-row adjacency structure implementing Graph.
// It is immutable after Finalize and safe for concurrent reads.
//
// Outgoing edge ids are dense CSR positions: the k-th outgoing edge of
// node u has id offsets[u]+k. For undirected graphs every endpoint pair
// is stored in both directions, so the two orientations carry distinct
// edge ids.
type CSR struct {
	n        NodeID
	directed bool
	offsets  []uint32
	dst      []NodeID
	weights  []float32 // nil when unweighted
	inDeg    []uint32  // nil for undirected graphs
}

// NumberOfNodes returns the total node count.
func (g *CSR) NumberOfNodes() NodeID { return g.n }

// NumberOfEdges returns the total stored (directed) edge count.
func (g *CSR) NumberOfEdges() EdgeID { return EdgeID(len(g.dst)) }

// Directed reports whether edges are one-way.
func (g *CSR) Directed() bool { return g.directed }

// HasEdgeWeights reports whether per-edge weights are present.
func (g *CSR) HasEdgeWeights() bool { return g.weights != nil }

// ValidateNodeID bounds-checks id against the node count.
func (g *CSR) ValidateNodeID(id NodeID) (NodeID, error) {
	if id >= g.n {
		return NotPresent, fmt.Errorf("%w: %d not below %d", ErrNodeOutOfRange, id, g.n)
	}
	return id, nil
}

// NeighborNodeIDs returns the out-neighbors of src in ascending order.
// Unchecked: src must be a valid node id.
func (g *CSR) NeighborNodeIDs(src NodeID) []NodeID {
	return g.dst[g.offsets[src]:g.offsets[src+1]]
}

// OutgoingEdgeIDs returns the outgoing edge ids of src, aligned with
// NeighborNodeIDs(src). Unchecked.
func (g *CSR) OutgoingEdgeIDs(src NodeID) []EdgeID {
	lo, hi := g.offsets[src], g.offsets[src+1]
	ids := make([]EdgeID, 0, hi-lo)
	for e := lo; e < hi; e++ {
		ids = append(ids, EdgeID(e))
	}
	return ids
}

// EdgeWeights returns the outgoing edge weights of src, aligned with
// NeighborNodeIDs(src). Unchecked; nil when the graph is unweighted.
func (g *CSR) EdgeWeights(src NodeID) []float32 {
	if g.weights == nil {
		return nil
	}
	return g.weights[g.offsets[src]:g.offsets[src+1]]
}

// IsDisconnectedSingleton reports whether node has neither outgoing nor
// incoming edges. Unchecked.
func (g *CSR) IsDisconnectedSingleton(node NodeID) bool {
	if g.offsets[node+1] != g.offsets[node] {
		return false
	}
	if !g.directed {
		return true
	}
	return g.inDeg[node] == 0
}

// MustHavePositiveEdgeWeights fails unless the graph carries weights and
// every weight is strictly positive.
func (g *CSR) MustHavePositiveEdgeWeights() error {
	if g.weights == nil {
		return ErrNoEdgeWeights
	}
	for _, w := range g.weights {
		if w <= 0 {
			return fmt.Errorf("%w: found weight %v", ErrNonPositiveWeight, w)
		}
	}
	return nil
}

// MustHaveProbabilityEdgeWeights fails unless the graph carries weights
// and every weight lies in (0, 1].
func (g *CSR) MustHaveProbabilityEdgeWeights() error {
	if g.weights == nil {
		return ErrNoEdgeWeights
	}
	for _, w := range g.weights {
		if w <= 0 || w > 1 {
			return fmt.Errorf("%w: found weight %v", ErrWeightNotProbability, w)
		}
	}
	return nil
}

// builderEdge is one pending edge before finalization.
type builderEdge struct {
	src, dst NodeID
	weight   float32
}

// Builder accumulates edges and produces an immutable CSR.
// Node ids are implicit: adding an edge (u,v) ensures nodes 0..max(u,v)
// exist; EnsureNodes creates trailing isolated nodes explicitly.
type Builder struct {
	n        NodeID
	directed bool
	weighted bool
	sawPlain bool
	edges    []builderEdge
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithDirected makes all edges one-way.
func WithDirected() BuilderOption {
	return func(b *Builder) { b.directed = true }
}

// NewBuilder returns an empty Builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// EnsureNodes grows the node count to at least n, creating isolated
// nodes as needed.
func (b *Builder) EnsureNodes(n NodeID) *Builder {
	if n > b.n {
		b.n = n
	}
	return b
}

// AddEdge records an unweighted edge from u to v.
func (b *Builder) AddEdge(u, v NodeID) *Builder {
	b.sawPlain = true
	b.push(u, v, 0)
	return b
}

// AddWeightedEdge records a weighted edge from u to v.
func (b *Builder) AddWeightedEdge(u, v NodeID, w float32) *Builder {
	b.weighted = true
	b.push(u, v, w)
	return b
}

func (b *Builder) push(u, v NodeID, w float32) {
	if u >= b.n {
		b.n = u + 1
	}
	if v >= b.n {
		b.n = v + 1
	}
	b.edges = append(b.edges, builderEdge{src: u, dst: v, weight: w})
	if !b.directed && u != v {
		b.edges = append(b.edges, builderEdge{src: v, dst: u, weight: w})
	}
}

// Finalize sorts the accumulated edges into CSR form and returns the
// immutable graph. The Builder must not be reused afterwards.
func (b *Builder) Finalize() (*CSR, error) {
	if b.weighted && b.sawPlain {
		return nil, ErrMixedWeights
	}
	if b.weighted {
		for _, e := range b.edges {
			if math.IsNaN(float64(e.weight)) || math.IsInf(float64(e.weight), 0) {
				return nil, fmt.Errorf("%w: edge %d->%d has weight %v", ErrBadWeight, e.src, e.dst, e.weight)
			}
		}
	}

	// Stable order: by source, then destination. Gives deterministic
	// neighbor iteration and dense positional edge ids.
	sort.SliceStable(b.edges, func(i, j int) bool {
		if b.edges[i].src != b.edges[j].src {
			return b.edges[i].src < b.edges[j].src
		}
		return b.edges[i].dst < b.edges[j].dst
	})

	g := &CSR{
		n:        b.n,
		directed: b.directed,
		offsets:  make([]uint32, b.n+1),
		dst:      make([]NodeID, len(b.edges)),
	}
	if b.weighted {
		g.weights = make([]float32, len(b.edges))
	}
	if b.directed {
		g.inDeg = make([]uint32, b.n)
	}

	for i, e := range b.edges {
		g.offsets[e.src+1]++
		g.dst[i] = e.dst
		if g.weights != nil {
			g.weights[i] = e.weight
		}
		if g.inDeg != nil {
			g.inDeg[e.dst]++
		}
	}
	for i := NodeID(0); i < b.n; i++ {
		g.offsets[i+1] += g.offsets[i]
	}
	return g, nil
}
