// Package bfs implements single- and multi-source breadth-first search
// over a core.Graph, in sequential (queue-based) and parallel
// (frontier-based) variants.
package bfs

import (
	"fmt"

	"github.com/AnacletoLAB/ensmallen-sub003/core"
)

// General runs the sequential, queue-based BFS from the source
// hyper-node, computing the distance vector and, with WithPredecessors,
// the predecessor tree. With WithDestination the traversal stops the
// instant the destination is first reached; this is the variant used
// when a single shortest path must be reconstructed.
func General(g core.Graph, sources []core.NodeID, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(g, sources); err != nil {
		return nil, err
	}
	if o.Destination != core.NotPresent {
		if _, err := g.ValidateNodeID(o.Destination); err != nil {
			return nil, fmt.Errorf("destination: %w", err)
		}
	}
	return generalUnchecked(g, sources, o)
}

// generalUnchecked is the unchecked core of General: sources and the
// optional destination must already be validated.
func generalUnchecked(g core.Graph, sources []core.NodeID, o Options) (*Result, error) {
	n := g.NumberOfNodes()
	dist := newFilled(n, core.NotPresent)
	var preds []core.NodeID
	if o.ComputePredecessors {
		preds = newFilled(n, core.NotPresent)
	}

	res := &Result{distances: dist, predecessors: preds, mostDistant: sources[0]}
	queue := make([]core.NodeID, 0, len(sources))
	for _, src := range sources {
		if dist[src] != core.NotPresent {
			continue // duplicate source
		}
		dist[src] = 0
		if preds != nil {
			preds[src] = src
		}
		queue = append(queue, src)
	}

	for head := 0; head < len(queue); head++ {
		// cancellation check (once per dequeue)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		cur := queue[head]
		d := dist[cur]
		if d > res.eccentricity {
			res.eccentricity = d
			res.mostDistant = cur
		}
		if o.MaxDepth > 0 && d == o.MaxDepth {
			continue
		}
		for _, nbr := range g.NeighborNodeIDs(cur) {
			if dist[nbr] != core.NotPresent {
				continue
			}
			dist[nbr] = d + 1
			if preds != nil {
				preds[nbr] = cur
			}
			if nbr == o.Destination {
				res.eccentricity = d + 1
				res.mostDistant = nbr
				return res, nil
			}
			queue = append(queue, nbr)
		}
	}
	return res, nil
}

// ShortestPathNodeIDs returns the node ids of one shortest path from src
// to dst, endpoints included. Requesting a path from a node to itself is
// an error, never a zero-length path; an unreachable dst yields
// ErrUnreachableNode.
func ShortestPathNodeIDs(g core.Graph, src, dst core.NodeID, opts ...Option) ([]core.NodeID, error) {
	if src == dst {
		return nil, fmt.Errorf("%w: node %d", ErrSelfLoopPath, src)
	}
	res, err := General(g, []core.NodeID{src}, append(opts, WithDestination(dst), WithPredecessors())...)
	if err != nil {
		return nil, err
	}
	if res.distances[dst] == core.NotPresent {
		return nil, fmt.Errorf("%w: %d -> %d", ErrUnreachableNode, src, dst)
	}

	path := make([]core.NodeID, res.distances[dst]+1)
	cur := dst
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = cur
		cur = res.predecessors[cur]
	}
	return path, nil
}

// Eccentricity returns the eccentricity of node and some node realizing
// it, via a full parallel BFS. Expensive; intended for occasional
// queries, not tight loops.
func Eccentricity(g core.Graph, node core.NodeID, opts ...Option) (uint32, core.NodeID, error) {
	res, err := Distances(g, []core.NodeID{node}, opts...)
	if err != nil {
		return 0, core.NotPresent, err
	}
	return res.eccentricity, res.mostDistant, nil
}

// validate bounds-checks the graph handle and every source id.
func validate(g core.Graph, sources []core.NodeID) error {
	if g == nil {
		return ErrGraphNil
	}
	if len(sources) == 0 {
		return ErrNoSources
	}
	for _, src := range sources {
		if _, err := g.ValidateNodeID(src); err != nil {
			return err
		}
	}
	return nil
}

// newFilled allocates a vector of n slots all holding v.
func newFilled(n core.NodeID, v uint32) []uint32 {
	s := make([]uint32, n)
	for i := range s {
		s[i] = v
	}
	return s
}
