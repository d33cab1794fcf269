package bfs

import (
	"context"
	"errors"

	"github.com/AnacletoLAB/ensmallen-sub003/core"
)

// Sentinel errors for BFS execution and result queries.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNoSources is returned when the source hyper-node is empty.
	ErrNoSources = errors.New("bfs: at least one source node is required")

	// ErrSelfLoopPath is returned when a shortest path from a node to
	// itself is requested: the minimum path on a self-loop is not defined.
	ErrSelfLoopPath = errors.New("bfs: minimum path on a self-loop is not defined")

	// ErrDistancesNotComputed is returned by result queries needing the
	// distance vector when it was not requested.
	ErrDistancesNotComputed = errors.New("bfs: distances not computed")

	// ErrPredecessorsNotComputed is returned by result queries needing
	// the predecessor vector when it was not requested.
	ErrPredecessorsNotComputed = errors.New("bfs: predecessors not computed")

	// ErrUnreachableNode is returned when no path exists to the
	// requested node.
	ErrUnreachableNode = errors.New("bfs: no path to the requested node")

	// ErrStepTooLarge is returned when a requested walk length exceeds
	// the tree eccentricity.
	ErrStepTooLarge = errors.New("bfs: step exceeds the tree eccentricity")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters customizing a BFS run.
type Options struct {
	// Ctx allows cancellation; it is checked at round boundaries in the
	// parallel engines and per dequeue in the sequential one.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this many hops.
	// 0 disables the limit.
	MaxDepth uint32

	// Destination, if not NotPresent, stops the traversal the moment the
	// node is first reached. Only honored by General.
	Destination core.NodeID

	// ComputePredecessors records the predecessor tree alongside the
	// distance vector in General.
	ComputePredecessors bool
}

// DefaultOptions returns Options with background context, no depth
// limit, no destination and no predecessor tracking.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Destination: core.NotPresent,
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

// WithMaxDepth limits the traversal to d hops from the source
// hyper-node. d == 0 disables the limit.
func WithMaxDepth(d uint32) Option {
	return func(o *Options) { o.MaxDepth = d }
}

// WithDestination stops General the instant dst is first reached.
func WithDestination(dst core.NodeID) Option {
	return func(o *Options) { o.Destination = dst }
}

// WithPredecessors makes General record the predecessor tree.
func WithPredecessors() Option {
	return func(o *Options) { o.ComputePredecessors = true }
}

// Result is the immutable outcome of a BFS traversal. At least one of
// the distance and predecessor vectors is always present.
type Result struct {
	distances    []uint32      // nil when not requested
	predecessors []core.NodeID // nil when not requested; a root points to itself
	eccentricity uint32
	mostDistant  core.NodeID
}

// HasDistances reports whether the distance vector was computed.
func (r *Result) HasDistances() bool { return r.distances != nil }

// HasPredecessors reports whether the predecessor vector was computed.
func (r *Result) HasPredecessors() bool { return r.predecessors != nil }

// Distances returns the per-node distance vector (core.NotPresent for
// unreached nodes). The slice is owned by the Result; treat as read-only.
func (r *Result) Distances() []uint32 { return r.distances }

// Predecessors returns the per-node predecessor vector (a node's own id
// for roots, core.NotPresent for unreached nodes). Treat as read-only.
func (r *Result) Predecessors() []core.NodeID { return r.predecessors }

// Eccentricity returns the maximum finite distance reached.
func (r *Result) Eccentricity() uint32 { return r.eccentricity }

// MostDistantNode returns some node realizing the eccentricity.
// Ties at the final depth are broken arbitrarily.
func (r *Result) MostDistantNode() core.NodeID { return r.mostDistant }
