// Package dijkstra implements single- and multi-source weighted
// shortest paths over a core.Graph, with plain or probability weight
// semantics.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/AnacletoLAB/ensmallen-sub003/bfs"
	"github.com/AnacletoLAB/ensmallen-sub003/core"
)

// Dijkstra computes shortest distances from the source hyper-node to
// every reachable node. The graph must carry strictly positive edge
// weights; with WithProbabilities the weights must lie in (0, 1] and
// distances accumulate as negative log-probability, so the shortest
// path is the highest-probability path.
func Dijkstra(g core.Graph, sources []core.NodeID, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	for _, src := range sources {
		if _, err := g.ValidateNodeID(src); err != nil {
			return nil, err
		}
	}
	if o.Target != core.NotPresent {
		if _, err := g.ValidateNodeID(o.Target); err != nil {
			return nil, fmt.Errorf("target: %w", err)
		}
	}
	for _, dst := range o.Targets {
		if _, err := g.ValidateNodeID(dst); err != nil {
			return nil, fmt.Errorf("targets: %w", err)
		}
	}
	if o.UseProbabilities {
		if err := g.MustHaveProbabilityEdgeWeights(); err != nil {
			return nil, err
		}
	} else {
		if err := g.MustHavePositiveEdgeWeights(); err != nil {
			return nil, err
		}
	}
	return dijkstraUnchecked(g, sources, o)
}

// Eccentricity returns the weighted eccentricity of node and some node
// realizing it. WithProbabilities requires weights in (0, 1].
func Eccentricity(g core.Graph, node core.NodeID, opts ...Option) (float32, core.NodeID, error) {
	res, err := Dijkstra(g, []core.NodeID{node}, opts...)
	if err != nil {
		return 0, core.NotPresent, err
	}
	return res.eccentricity, res.mostDistant, nil
}

// dijkstraUnchecked is the unchecked engine core: sources, targets and
// the weight domain must already be validated.
func dijkstraUnchecked(g core.Graph, sources []core.NodeID, o Options) (*Result, error) {
	// Fully-isolated source sets short-circuit to a degenerate result
	// instead of running the heap uselessly.
	allIsolated := true
	for _, src := range sources {
		if !g.IsDisconnectedSingleton(src) {
			allIsolated = false
			break
		}
	}
	if allIsolated {
		return degenerateResult(g.NumberOfNodes(), sources, o), nil
	}

	// Depth-bounded pruning pre-pass: nodes unreachable within MaxDepth
	// unweighted hops are excluded from relaxation entirely.
	var allowed []uint32
	if o.MaxDepth > 0 {
		pre, err := bfs.Distances(g, sources, bfs.WithMaxDepth(o.MaxDepth), bfs.WithContext(o.Ctx))
		if err != nil {
			return nil, err
		}
		allowed = pre.Distances()
	}

	n := g.NumberOfNodes()
	q := newNodeQueue(n)
	var preds []core.NodeID
	if o.ComputePredecessors {
		preds = make([]core.NodeID, n)
		for i := range preds {
			preds[i] = core.NotPresent
		}
	}
	for _, src := range sources {
		q.push(src, 0)
		if preds != nil {
			preds[src] = src
		}
	}

	var remaining map[core.NodeID]struct{}
	if len(o.Targets) > 0 {
		remaining = make(map[core.NodeID]struct{}, len(o.Targets))
		for _, dst := range o.Targets {
			remaining[dst] = struct{}{}
		}
	}

	var (
		ecc       float32
		most      = sources[0]
		rawTotal  float64 // sum of finalized distances in the run's accumulation domain
		probTotal float64 // probability-domain sum, probability mode only
		harmonic  float64
		dstDist   float32
		hasDst    bool
	)
	for {
		node, d, ok := q.pop()
		if !ok {
			break
		}
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		if d > ecc {
			ecc = d
			most = node
		}
		rawTotal += float64(d)
		if o.UseProbabilities {
			probTotal += math.Exp(-float64(d))
		}
		if d > 0 {
			harmonic += 1 / float64(d)
		}

		if node == o.Target {
			dstDist = d
			hasDst = true
			break
		}
		if remaining != nil {
			delete(remaining, node)
			if len(remaining) == 0 {
				break
			}
		}

		nbrs := g.NeighborNodeIDs(node)
		wts := g.EdgeWeights(node)
		for i, nbr := range nbrs {
			if allowed != nil && allowed[nbr] == core.NotPresent {
				continue
			}
			var nd float32
			if o.UseProbabilities {
				nd = d - float32(math.Log(float64(wts[i])))
			} else {
				nd = d + wts[i]
			}
			if q.push(nbr, nd) && preds != nil {
				preds[nbr] = node
			}
		}
	}

	res := &Result{
		distances:     q.dist,
		predecessors:  preds,
		mostDistant:   most,
		hasDstNode:    hasDst,
		probabilities: o.UseProbabilities,
	}
	res.totalHarmonicDistance = float32(harmonic)
	if o.UseProbabilities {
		// Convert every recorded negative-log-probability back into a
		// [0,1] probability; unreached nodes (+Inf) map to zero.
		for i := range res.distances {
			res.distances[i] = float32(math.Exp(-float64(res.distances[i])))
		}
		res.eccentricity = float32(math.Exp(-float64(ecc)))
		res.totalDistance = float32(probTotal)
		res.logTotalDistance = float32(rawTotal)
		if hasDst {
			res.dstNodeDistance = float32(math.Exp(-float64(dstDist)))
		}
	} else {
		res.eccentricity = ecc
		res.totalDistance = float32(rawTotal)
		res.logTotalDistance = float32(math.Log(rawTotal))
		if hasDst {
			res.dstNodeDistance = dstDist
		}
	}
	return res, nil
}

// degenerateResult covers source sets made only of disconnected
// singletons: every distance is +Inf (zero probability), sources sit at
// distance zero (probability one).
func degenerateResult(n core.NodeID, sources []core.NodeID, o Options) *Result {
	dist := make([]float32, n)
	unreached, reached := inf, float32(0)
	if o.UseProbabilities {
		unreached, reached = 0, 1
	}
	for i := range dist {
		dist[i] = unreached
	}
	for _, src := range sources {
		dist[src] = reached
	}
	var preds []core.NodeID
	if o.ComputePredecessors {
		preds = make([]core.NodeID, n)
		for i := range preds {
			preds[i] = core.NotPresent
		}
		for _, src := range sources {
			preds[src] = src
		}
	}
	res := &Result{
		distances:     dist,
		predecessors:  preds,
		eccentricity:  reached,
		mostDistant:   sources[0],
		probabilities: o.UseProbabilities,
	}
	if o.UseProbabilities {
		res.totalDistance = float32(len(sources))
	} else {
		res.logTotalDistance = float32(math.Log(0))
	}
	return res
}
