package bfs

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/AnacletoLAB/ensmallen-sub003/core"
)

// Distances runs the layer-synchronous parallel BFS from the source
// hyper-node and returns the distance vector, the eccentricity and some
// node of the last populated layer.
func Distances(g core.Graph, sources []core.NodeID, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(g, sources); err != nil {
		return nil, err
	}
	return distancesUnchecked(g, sources, o)
}

// Predecessors runs the layer-synchronous parallel BFS recording the
// predecessor tree instead of distances. A source's predecessor is
// itself.
func Predecessors(g core.Graph, sources []core.NodeID, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(g, sources); err != nil {
		return nil, err
	}
	return predecessorsUnchecked(g, sources, o)
}

func distancesUnchecked(g core.Graph, sources []core.NodeID, o Options) (*Result, error) {
	dist := newFilled(g.NumberOfNodes(), core.NotPresent)
	frontier := seed(dist, sources, func(core.NodeID) uint32 { return 0 })

	ecc, most, err := expandRounds(g, o, frontier, dist,
		func(_ core.NodeID, round uint32) uint32 { return round })
	if err != nil {
		return nil, err
	}
	return &Result{distances: dist, eccentricity: ecc, mostDistant: most}, nil
}

func predecessorsUnchecked(g core.Graph, sources []core.NodeID, o Options) (*Result, error) {
	preds := newFilled(g.NumberOfNodes(), core.NotPresent)
	frontier := seed(preds, sources, func(src core.NodeID) uint32 { return src })

	ecc, most, err := expandRounds(g, o, frontier, preds,
		func(parent core.NodeID, _ uint32) uint32 { return parent })
	if err != nil {
		return nil, err
	}
	return &Result{predecessors: preds, eccentricity: ecc, mostDistant: most}, nil
}

// seed assigns every distinct source its root slot value and returns the
// deduplicated round-zero frontier.
func seed(slots []uint32, sources []core.NodeID, rootValue func(core.NodeID) uint32) []core.NodeID {
	frontier := make([]core.NodeID, 0, len(sources))
	for _, src := range sources {
		if slots[src] != core.NotPresent {
			continue
		}
		slots[src] = rootValue(src)
		frontier = append(frontier, src)
	}
	return frontier
}

// expandRounds drives the layer-synchronous rounds. Two frontier buffers
// alternate; within a round workers claim unvisited neighbors with a
// compare-and-swap on the slot array, so the first writer wins and the
// write itself happens exactly once per node.
func expandRounds(
	g core.Graph,
	o Options,
	frontier []core.NodeID,
	slots []uint32,
	value func(parent core.NodeID, round uint32) uint32,
) (uint32, core.NodeID, error) {
	var (
		ecc     uint32
		most    = frontier[0]
		workers = runtime.GOMAXPROCS(0)
	)
	for round := uint32(1); ; round++ {
		if o.MaxDepth > 0 && round > o.MaxDepth {
			break
		}
		// cancellation check at the round boundary
		select {
		case <-o.Ctx.Done():
			return 0, core.NotPresent, o.Ctx.Err()
		default:
		}

		next, err := expandFrontier(g, frontier, slots, workers, round, value)
		if err != nil {
			return 0, core.NotPresent, err
		}
		if len(next) == 0 {
			break
		}
		ecc = round
		most = next[0]
		frontier = next
	}
	return ecc, most, nil
}

// expandFrontier expands one layer in parallel. The frontier is split
// into contiguous chunks, one goroutine per chunk, each collecting its
// discoveries into a private buffer merged afterwards.
func expandFrontier(
	g core.Graph,
	frontier []core.NodeID,
	slots []uint32,
	workers int,
	round uint32,
	value func(parent core.NodeID, round uint32) uint32,
) ([]core.NodeID, error) {
	chunk := (len(frontier) + workers - 1) / workers
	chunks := (len(frontier) + chunk - 1) / chunk
	buffers := make([][]core.NodeID, chunks)

	var eg errgroup.Group
	for ci := 0; ci < chunks; ci++ {
		lo, hi := ci*chunk, (ci+1)*chunk
		if hi > len(frontier) {
			hi = len(frontier)
		}
		ci := ci
		part := frontier[lo:hi]
		eg.Go(func() error {
			var buf []core.NodeID
			for _, cur := range part {
				for _, nbr := range g.NeighborNodeIDs(cur) {
					if atomic.CompareAndSwapUint32(&slots[nbr], core.NotPresent, value(cur, round)) {
						buf = append(buf, nbr)
					}
				}
			}
			buffers[ci] = buf
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var next []core.NodeID
	for _, buf := range buffers {
		next = append(next, buf...)
	}
	return next, nil
}
