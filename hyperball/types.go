package hyperball

import (
	"context"
	"errors"

	"github.com/AnacletoLAB/ensmallen-sub003/core"
)

// Sentinel errors for the centrality engine.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("hyperball: graph is nil")

	// ErrNilUpdate is returned by Run when no update callback is given.
	ErrNilUpdate = errors.New("hyperball: update callback is nil")
)

// UpdateFunc accumulates a per-node centrality contribution. It is
// invoked once for every node whose sketch grew during a round, with
// the new and previous cardinality estimates and the one-based round
// index. Calls for distinct nodes may happen concurrently; calls for
// the same node are separated by a round barrier.
type UpdateFunc func(node core.NodeID, current, previous float64, round uint32)

// Option configures the engine via functional arguments.
type Option func(*Options)

// Options holds parameters customizing a centrality run.
type Options struct {
	// Ctx allows cancellation; it is checked at round boundaries.
	Ctx context.Context

	// Precision is the sketch register-index width, 4 to 16. Higher
	// values trade memory for estimate accuracy.
	Precision uint8

	// Bits is the sketch register width, 5 or 6.
	Bits uint8
}

// DefaultOptions returns Options with background context and a
// 64-register, 6-bit sketch per node.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Precision: 6,
		Bits:      6,
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

// WithPrecision sets the sketch register-index width.
func WithPrecision(p uint8) Option {
	return func(o *Options) { o.Precision = p }
}

// WithBits sets the sketch register width.
func WithBits(b uint8) Option {
	return func(o *Options) { o.Bits = b }
}
