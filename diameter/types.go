package diameter

import (
	"context"
	"errors"
)

// Sentinel errors for the diameter estimators.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("diameter: graph is nil")

	// ErrEmptyGraph is returned when the graph has no nodes.
	ErrEmptyGraph = errors.New("diameter: graph has no nodes")

	// ErrDirectedGraph is returned when the fast estimator is requested
	// on a directed graph; only the naive fallback supports those.
	ErrDirectedGraph = errors.New("diameter: the fast estimator supports undirected graphs only")
)

// Option configures diameter computation via functional arguments.
type Option func(*Options)

// Options holds parameters customizing a diameter run.
type Options struct {
	// Ctx allows cancellation; it is forwarded to every BFS the
	// estimators launch.
	Ctx context.Context

	// IgnoreInfinity makes Diameter report the largest finite
	// eccentricity on disconnected graphs instead of +Inf.
	IgnoreInfinity bool
}

// DefaultOptions returns Options with background context and strict
// infinity reporting.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithIgnoreInfinity skips the +Inf short-circuit on disconnected
// graphs and reports the largest finite eccentricity instead.
func WithIgnoreInfinity() Option {
	return func(o *Options) { o.IgnoreInfinity = true }
}
