package dijkstra

import (
	"context"
	"errors"

	"github.com/AnacletoLAB/ensmallen-sub003/core"
)

// Sentinel errors for the Dijkstra engine and its result queries.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrNoSources is returned when the source hyper-node is empty.
	ErrNoSources = errors.New("dijkstra: at least one source node is required")

	// ErrPredecessorsNotComputed is returned by result queries needing
	// the predecessor vector when it was not requested.
	ErrPredecessorsNotComputed = errors.New("dijkstra: predecessors not computed")

	// ErrUnreachableNode is returned when no path exists to the
	// requested node.
	ErrUnreachableNode = errors.New("dijkstra: no path to the requested node")

	// ErrDistanceTooLarge is returned when a requested point-at-distance
	// exceeds the node's actual distance.
	ErrDistanceTooLarge = errors.New("dijkstra: requested distance exceeds the node distance")
)

// Option configures a Dijkstra run via functional arguments.
type Option func(*Options)

// Options holds parameters customizing a Dijkstra run.
type Options struct {
	// Ctx allows cancellation; it is checked periodically in the main
	// pop loop.
	Ctx context.Context

	// Target, if not NotPresent, stops the run the moment the node's
	// distance is finalized.
	Target core.NodeID

	// Targets, if non-empty, stops the run once every listed node has
	// been finalized.
	Targets []core.NodeID

	// ComputePredecessors records the shortest-path tree.
	ComputePredecessors bool

	// MaxDepth, if > 0, excludes nodes unreachable within this many
	// unweighted hops, via a BFS pre-pass. A node beyond the depth stays
	// excluded even if reachable through cheaper weighted edges; this is
	// a deliberate approximation.
	MaxDepth uint32

	// UseProbabilities interprets edge weights as traversal
	// probabilities in (0, 1]: distances accumulate as negative
	// log-probability and the final vector is exponentiated back into
	// [0, 1].
	UseProbabilities bool
}

// DefaultOptions returns Options with background context, no targets,
// no predecessor tracking, no depth bound and plain weight semantics.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Target: core.NotPresent,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTarget stops the run once dst is finalized and records its
// distance in the result.
func WithTarget(dst core.NodeID) Option {
	return func(o *Options) { o.Target = dst }
}

// WithTargets stops the run once every node in dsts has been finalized.
func WithTargets(dsts []core.NodeID) Option {
	return func(o *Options) { o.Targets = dsts }
}

// WithPredecessors makes the run record the shortest-path tree.
func WithPredecessors() Option {
	return func(o *Options) { o.ComputePredecessors = true }
}

// WithMaxDepth prunes relaxation to nodes within d unweighted hops of
// the source hyper-node. d == 0 disables the pruning.
func WithMaxDepth(d uint32) Option {
	return func(o *Options) { o.MaxDepth = d }
}

// WithProbabilities switches to probability weight semantics.
func WithProbabilities() Option {
	return func(o *Options) { o.UseProbabilities = true }
}
