// Package gen builds small deterministic graphs (paths, cycles, stars,
// complete graphs, wheels, sparse random graphs) on top of core.Builder.
// It exists for tests, benchmarks and examples; real graphs arrive
// through whatever container implements core.Graph.
package gen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/AnacletoLAB/ensmallen-sub003/core"
)

// ErrTooFewNodes indicates that n is below the minimum for the requested
// topology.
var ErrTooFewNodes = errors.New("gen: too few nodes")

// WeightFn produces the weight of the edge u->v. Deterministic functions
// give deterministic graphs.
type WeightFn func(u, v core.NodeID) float32

// Option configures a generator.
type Option func(*config)

type config struct {
	directed bool
	weightFn WeightFn
}

// WithDirected emits one-way edges.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// WithWeightFn attaches weights produced by fn to every edge.
func WithWeightFn(fn WeightFn) Option {
	return func(c *config) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// UnitWeights is a WeightFn assigning weight 1 to every edge.
func UnitWeights(_, _ core.NodeID) float32 { return 1 }

func build(opts []Option) (*core.Builder, config) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	var bopts []core.BuilderOption
	if c.directed {
		bopts = append(bopts, core.WithDirected())
	}
	return core.NewBuilder(bopts...), c
}

func addEdge(b *core.Builder, c config, u, v core.NodeID) {
	if c.weightFn != nil {
		b.AddWeightedEdge(u, v, c.weightFn(u, v))
		return
	}
	b.AddEdge(u, v)
}

// Path builds the path graph P_n: edges i-1 -- i for i in 1..n-1.
func Path(n core.NodeID, opts ...Option) (*core.CSR, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: path needs n >= 2, got %d", ErrTooFewNodes, n)
	}
	b, c := build(opts)
	for i := core.NodeID(1); i < n; i++ {
		addEdge(b, c, i-1, i)
	}
	return b.Finalize()
}

// Cycle builds the cycle C_n: a path plus the closing edge n-1 -- 0.
func Cycle(n core.NodeID, opts ...Option) (*core.CSR, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: cycle needs n >= 3, got %d", ErrTooFewNodes, n)
	}
	b, c := build(opts)
	for i := core.NodeID(1); i < n; i++ {
		addEdge(b, c, i-1, i)
	}
	addEdge(b, c, n-1, 0)
	return b.Finalize()
}

// Star builds the star S_n: hub 0 connected to leaves 1..n-1.
func Star(n core.NodeID, opts ...Option) (*core.CSR, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: star needs n >= 2, got %d", ErrTooFewNodes, n)
	}
	b, c := build(opts)
	for i := core.NodeID(1); i < n; i++ {
		addEdge(b, c, 0, i)
	}
	return b.Finalize()
}

// Complete builds the complete graph K_n.
func Complete(n core.NodeID, opts ...Option) (*core.CSR, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: complete graph needs n >= 2, got %d", ErrTooFewNodes, n)
	}
	b, c := build(opts)
	for u := core.NodeID(0); u < n; u++ {
		for v := u + 1; v < n; v++ {
			addEdge(b, c, u, v)
			if c.directed {
				addEdge(b, c, v, u)
			}
		}
	}
	return b.Finalize()
}

// Wheel builds the wheel W_n: cycle 1..n-1 plus hub 0 joined to every
// rim node.
func Wheel(n core.NodeID, opts ...Option) (*core.CSR, error) {
	if n < 4 {
		return nil, fmt.Errorf("%w: wheel needs n >= 4, got %d", ErrTooFewNodes, n)
	}
	b, c := build(opts)
	for i := core.NodeID(1); i < n; i++ {
		addEdge(b, c, 0, i)
	}
	for i := core.NodeID(2); i < n; i++ {
		addEdge(b, c, i-1, i)
	}
	addEdge(b, c, n-1, 1)
	return b.Finalize()
}

// RandomSparse builds a graph with n nodes and up to m distinct random
// edges drawn with the given seed. Self-loops are skipped; duplicate
// draws are dropped, so the result may hold fewer than m edges.
func RandomSparse(n core.NodeID, m int, seed int64, opts ...Option) (*core.CSR, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: random graph needs n >= 2, got %d", ErrTooFewNodes, n)
	}
	b, c := build(opts)
	b.EnsureNodes(n)
	rng := rand.New(rand.NewSource(seed))
	seen := make(map[[2]core.NodeID]struct{}, m)
	for i := 0; i < m; i++ {
		u := core.NodeID(rng.Intn(int(n)))
		v := core.NodeID(rng.Intn(int(n)))
		if u == v {
			continue
		}
		key := [2]core.NodeID{u, v}
		if !c.directed && v < u {
			key = [2]core.NodeID{v, u}
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		addEdge(b, c, u, v)
	}
	return b.Finalize()
}
