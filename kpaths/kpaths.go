// Package kpaths enumerates up to k distinct shortest-length paths
// between two nodes by breadth-first expansion over partial paths.
//
// The enumeration is breadth-first over paths, not nodes: a FIFO queue
// holds partial paths rooted at the source, and a per-node counter
// tracks how many paths have visited each node. A popped path ending in
// the destination is emitted and never extended; any other path is
// extended to all neighbors while its end node's counter has not
// exceeded k. The walk stops once the destination's counter reaches k.
//
// The counter cutoff bounds paths through each node rather than the
// number of completed paths, so dense graphs may keep more than k
// partial paths in flight before converging; the completed result is
// still capped at k. Paths are shortest by hop count, ties broken by
// discovery order; structurally identical paths reached through
// different expansion orders are only deduplicated as far as the
// counters naturally prevent them.
package kpaths

import (
	"context"
	"errors"
	"fmt"

	"github.com/AnacletoLAB/ensmallen-sub003/core"
)

// Sentinel errors for the enumerator.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("kpaths: graph is nil")

	// ErrBadK is returned when k is zero.
	ErrBadK = errors.New("kpaths: k must be positive")

	// ErrSelfLoopPath is returned when src equals dst: the minimum path
	// on a self-loop is not defined.
	ErrSelfLoopPath = errors.New("kpaths: minimum path on a self-loop is not defined")
)

// Option configures the enumeration.
type Option func(*options)

type options struct {
	ctx context.Context
}

// WithContext sets a custom context, checked once per popped path.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// KShortestPaths returns up to k paths from src to dst, each a sequence
// of node ids starting at src and ending at dst, ordered by discovery.
func KShortestPaths(g core.Graph, src, dst core.NodeID, k uint32, opts ...Option) ([][]core.NodeID, error) {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if k == 0 {
		return nil, ErrBadK
	}
	if src == dst {
		return nil, fmt.Errorf("%w: node %d", ErrSelfLoopPath, src)
	}
	if _, err := g.ValidateNodeID(src); err != nil {
		return nil, err
	}
	if _, err := g.ValidateNodeID(dst); err != nil {
		return nil, err
	}
	return kShortestPathsUnchecked(o.ctx, g, src, dst, k)
}

func kShortestPathsUnchecked(ctx context.Context, g core.Graph, src, dst core.NodeID, k uint32) ([][]core.NodeID, error) {
	counts := make([]uint32, g.NumberOfNodes())
	queue := [][]core.NodeID{{src}}
	var paths [][]core.NodeID

	for head := 0; head < len(queue) && counts[dst] < k; head++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		path := queue[head]
		last := path[len(path)-1]
		counts[last]++
		if last == dst {
			paths = append(paths, path)
			continue
		}
		if counts[last] > k {
			continue
		}
		for _, nbr := range g.NeighborNodeIDs(last) {
			extended := make([]core.NodeID, len(path)+1)
			copy(extended, path)
			extended[len(path)] = nbr
			queue = append(queue, extended)
		}
	}
	return paths, nil
}
