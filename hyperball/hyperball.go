package hyperball

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/AnacletoLAB/ensmallen-sub003/core"
	"github.com/AnacletoLAB/ensmallen-sub003/hll"
)

// Run grows a HyperLogLog edge-reachability sketch per node, one hop
// per round, until no sketch changes across an entire round. Each
// node's sketch starts from its own outgoing edge ids; at round r it is
// replaced by the union of its previous sketch and every neighbor's
// previous sketch, so after r rounds it approximates the set of edges
// leaving nodes within r hops. Whenever a sketch grows, update receives
// the new and old cardinality estimates together with the round index.
//
// The engine terminates after at most diameter+1 rounds on a connected
// graph. An unsupported precision/bits combination is reported as
// hll.ErrUnsupportedConfig.
func Run(g core.Graph, update UpdateFunc, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return ErrGraphNil
	}
	if update == nil {
		return ErrNilUpdate
	}
	n := g.NumberOfNodes()
	if n == 0 {
		// Nothing to converge; still surface configuration errors.
		_, err := hll.New(o.Precision, o.Bits)
		return err
	}

	// Double-buffered sketches indexed by round parity: round r reads
	// bufs[(r+1)%2] and writes bufs[r%2], so readers never observe a
	// sketch mid-mutation.
	var bufs [2][]*hll.Sketch
	bufs[0] = make([]*hll.Sketch, n)
	bufs[1] = make([]*hll.Sketch, n)
	for v := core.NodeID(0); v < n; v++ {
		s, err := hll.New(o.Precision, o.Bits)
		if err != nil {
			return err
		}
		for _, e := range g.OutgoingEdgeIDs(v) {
			s.Insert(uint64(e))
		}
		bufs[0][v] = s
		bufs[1][v] = s.Clone()
	}

	st := newRoundState(n)
	for round := uint32(1); ; round++ {
		if err := o.Ctx.Err(); err != nil {
			return err
		}
		read, write := bufs[(round+1)%2], bufs[round%2]
		st.reset()

		var eg errgroup.Group
		for w := 0; w < st.workers; w++ {
			w, round := w, round
			eg.Go(func() error {
				for {
					v, ok := st.claim(w)
					if !ok {
						return nil
					}
					grew, err := expand(g, read, write, v)
					if err != nil {
						return err
					}
					if grew {
						atomic.StoreUint32(&st.changed, 1)
						update(v, write[v].Estimate(), read[v].Estimate(), round)
					}
				}
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}
		if atomic.LoadUint32(&st.changed) == 0 {
			return nil
		}
	}
}

// expand recomputes node v's sketch from the read buffer into the write
// buffer and reports whether it grew. The union is built entirely in the
// write slot before comparison, so the read buffer stays untouched for
// concurrent readers.
func expand(g core.Graph, read, write []*hll.Sketch, v core.NodeID) (bool, error) {
	cur := write[v]
	if err := cur.CopyFrom(read[v]); err != nil {
		return false, err
	}
	for _, nbr := range g.NeighborNodeIDs(v) {
		if err := cur.Union(read[nbr]); err != nil {
			return false, err
		}
	}
	return !cur.Equal(read[v]), nil
}

// roundState coordinates one round of sketch expansion: every worker
// owns a contiguous node range and claims nodes from it with an atomic
// cursor; a worker whose range is exhausted steals from the next ranges
// in circular order, so uneven per-node costs do not idle workers.
type roundState struct {
	workers int
	starts  []uint32
	bounds  []uint32
	cursors []uint32 // atomic
	changed uint32   // atomic
}

func newRoundState(n core.NodeID) *roundState {
	workers := runtime.GOMAXPROCS(0)
	if workers > int(n) {
		workers = int(n)
	}
	st := &roundState{
		workers: workers,
		starts:  make([]uint32, workers),
		bounds:  make([]uint32, workers),
		cursors: make([]uint32, workers),
	}
	span := uint32(n) / uint32(workers)
	for w := 0; w < workers; w++ {
		st.starts[w] = span * uint32(w)
		st.bounds[w] = span * uint32(w+1)
	}
	// The last range absorbs the division remainder.
	st.bounds[workers-1] = uint32(n)
	return st
}

func (st *roundState) reset() {
	copy(st.cursors, st.starts)
	atomic.StoreUint32(&st.changed, 0)
}

// claim returns the next unprocessed node, preferring worker w's own
// range. It returns false once every range is exhausted.
func (st *roundState) claim(w int) (core.NodeID, bool) {
	for i := 0; i < st.workers; i++ {
		r := (w + i) % st.workers
		idx := atomic.AddUint32(&st.cursors[r], 1) - 1
		if idx < st.bounds[r] {
			return core.NodeID(idx), true
		}
	}
	return 0, false
}
