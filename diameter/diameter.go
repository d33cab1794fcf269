package diameter

import (
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/AnacletoLAB/ensmallen-sub003/bfs"
	"github.com/AnacletoLAB/ensmallen-sub003/core"
)

// FourSweep returns a lower bound on the graph diameter together with a
// low-eccentricity "near-center" node, using four successive BFS runs.
// The sweep starts from the maximum-out-degree node as the approximately
// most central seed.
func FourSweep(g core.Graph, opts ...Option) (uint32, core.NodeID, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return 0, core.NotPresent, ErrGraphNil
	}
	if g.NumberOfNodes() == 0 {
		return 0, core.NotPresent, ErrEmptyGraph
	}
	return fourSweepUnchecked(g, o)
}

func fourSweepUnchecked(g core.Graph, o Options) (uint32, core.NodeID, error) {
	_, first, err := bfs.Eccentricity(g, maxOutDegreeNode(g), bfs.WithContext(o.Ctx))
	if err != nil {
		return 0, core.NotPresent, err
	}

	bfs1, err := bfs.Predecessors(g, []core.NodeID{first}, bfs.WithContext(o.Ctx))
	if err != nil {
		return 0, core.NotPresent, err
	}
	second, err := bfs1.MedianPoint(bfs1.MostDistantNode())
	if err != nil {
		return 0, core.NotPresent, err
	}

	bfs2, err := bfs.Predecessors(g, []core.NodeID{second}, bfs.WithContext(o.Ctx))
	if err != nil {
		return 0, core.NotPresent, err
	}
	low, err := bfs2.MedianPoint(bfs2.MostDistantNode())
	if err != nil {
		return 0, core.NotPresent, err
	}

	lower := bfs1.Eccentricity()
	if e := bfs2.Eccentricity(); e > lower {
		lower = e
	}
	return lower, low, nil
}

// IFUB computes the exact diameter of an undirected graph with the
// iterative fringe upper bound method: a four-sweep lower bound followed
// by eccentricity refinement restricted to the outer crown, the nodes
// far enough from the center to still be able to extend the bound.
//
// On a disconnected graph IFUB explores the component of the
// maximum-out-degree node and reports that component's diameter.
func IFUB(g core.Graph, opts ...Option) (float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return 0, ErrGraphNil
	}
	if g.Directed() {
		return 0, ErrDirectedGraph
	}
	if g.NumberOfNodes() == 0 {
		return 0, ErrEmptyGraph
	}
	return ifubUnchecked(g, o)
}

func ifubUnchecked(g core.Graph, o Options) (float64, error) {
	if g.IsDisconnectedSingleton(maxOutDegreeNode(g)) {
		return 0, nil
	}
	tentative, low, err := fourSweepUnchecked(g, o)
	if err != nil {
		return 0, err
	}

	center, err := bfs.Distances(g, []core.NodeID{low}, bfs.WithContext(o.Ctx))
	if err != nil {
		return 0, err
	}
	dist := center.Distances()

	// Only nodes beyond half the tentative diameter can raise it.
	var crown []core.NodeID
	for v, d := range dist {
		if d != core.NotPresent && 2*uint64(d) > uint64(tentative) {
			crown = append(crown, core.NodeID(v))
		}
	}
	if len(crown) == 0 {
		return float64(tentative), nil
	}

	sort.Slice(crown, func(i, j int) bool { return dist[crown[i]] > dist[crown[j]] })

	// Walk the crown in blocks of equal distance from the center. Once
	// the bound reaches twice the block distance no remaining node can
	// improve it.
	for lo := 0; lo < len(crown); {
		blockDist := dist[crown[lo]]
		if uint64(tentative) >= 2*uint64(blockDist) {
			break
		}
		hi := lo
		for hi < len(crown) && dist[crown[hi]] == blockDist {
			hi++
		}
		best, err := blockEccentricity(g, crown[lo:hi], o)
		if err != nil {
			return 0, err
		}
		if best > tentative {
			tentative = best
		}
		lo = hi
	}
	return float64(tentative), nil
}

// blockEccentricity returns the largest eccentricity among the block
// nodes, computing them concurrently.
func blockEccentricity(g core.Graph, block []core.NodeID, o Options) (uint32, error) {
	eccs := make([]uint32, len(block))
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, node := range block {
		i, node := i, node
		eg.Go(func() error {
			e, _, err := bfs.Eccentricity(g, node, bfs.WithContext(o.Ctx))
			if err != nil {
				return err
			}
			eccs[i] = e
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	var best uint32
	for _, e := range eccs {
		if e > best {
			best = e
		}
	}
	return best, nil
}

// Naive computes the diameter as the brute-force maximum over per-node
// eccentricities, one BFS per node, run in parallel. When
// ignoreInfinity is false a node that cannot reach the whole graph
// makes the diameter +Inf.
func Naive(g core.Graph, ignoreInfinity bool, opts ...Option) (float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return 0, ErrGraphNil
	}
	if g.NumberOfNodes() == 0 {
		return 0, ErrEmptyGraph
	}
	return naiveUnchecked(g, ignoreInfinity, o)
}

func naiveUnchecked(g core.Graph, ignoreInfinity bool, o Options) (float64, error) {
	var (
		n            = int(g.NumberOfNodes())
		workers      = runtime.GOMAXPROCS(0)
		chunk        = (n + workers - 1) / workers
		maxes        = make([]uint32, workers)
		disconnected = make([]bool, workers)
		eg           errgroup.Group
	)
	for ci := 0; ci < workers; ci++ {
		lo, hi := ci*chunk, (ci+1)*chunk
		if lo >= n {
			break
		}
		if hi > n {
			hi = n
		}
		ci, lo, hi := ci, lo, hi
		eg.Go(func() error {
			for v := core.NodeID(lo); v < core.NodeID(hi); v++ {
				res, err := bfs.Distances(g, []core.NodeID{v}, bfs.WithContext(o.Ctx))
				if err != nil {
					return err
				}
				reached := 0
				for _, d := range res.Distances() {
					if d != core.NotPresent {
						reached++
					}
				}
				if reached < n {
					disconnected[ci] = true
				}
				if e := res.Eccentricity(); e > maxes[ci] {
					maxes[ci] = e
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	var diameter uint32
	for ci := range maxes {
		if !ignoreInfinity && disconnected[ci] {
			return math.Inf(1), nil
		}
		if maxes[ci] > diameter {
			diameter = maxes[ci]
		}
	}
	return float64(diameter), nil
}

// Diameter is the public dispatch entry point. Edgeless graphs, and
// disconnected graphs when infinities are not ignored, report +Inf
// immediately; directed graphs fall back to Naive; everything else uses
// IFUB.
func Diameter(g core.Graph, opts ...Option) (float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return 0, ErrGraphNil
	}
	if g.NumberOfNodes() == 0 {
		return 0, ErrEmptyGraph
	}
	if g.NumberOfEdges() == 0 {
		return math.Inf(1), nil
	}
	if g.Directed() {
		return naiveUnchecked(g, o.IgnoreInfinity, o)
	}
	if !o.IgnoreInfinity {
		conn, err := connected(g, o)
		if err != nil {
			return 0, err
		}
		if !conn {
			return math.Inf(1), nil
		}
	}
	return ifubUnchecked(g, o)
}

// connected reports whether a single BFS from node 0 reaches the whole
// graph. Only meaningful on undirected graphs.
func connected(g core.Graph, o Options) (bool, error) {
	res, err := bfs.Distances(g, []core.NodeID{0}, bfs.WithContext(o.Ctx))
	if err != nil {
		return false, err
	}
	for _, d := range res.Distances() {
		if d == core.NotPresent {
			return false, nil
		}
	}
	return true, nil
}

// maxOutDegreeNode returns the node with the largest out-degree,
// breaking ties toward the smallest id.
func maxOutDegreeNode(g core.Graph) core.NodeID {
	var (
		best    core.NodeID
		bestDeg = -1
	)
	for v := core.NodeID(0); v < g.NumberOfNodes(); v++ {
		if deg := len(g.NeighborNodeIDs(v)); deg > bestDeg {
			best, bestDeg = v, deg
		}
	}
	return best
}
