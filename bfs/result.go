package bfs

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/AnacletoLAB/ensmallen-sub003/core"
)

// DistanceFromNodeID returns the distance from the source hyper-node to
// node, or core.NotPresent if node was never reached.
func (r *Result) DistanceFromNodeID(node core.NodeID) (uint32, error) {
	if r.distances == nil {
		return 0, ErrDistancesNotComputed
	}
	if err := r.checkNode(node, len(r.distances)); err != nil {
		return 0, err
	}
	return r.distances[node], nil
}

// ParentFromNodeID returns the predecessor of node in the BFS tree. A
// root is its own parent; an unreached node has core.NotPresent.
func (r *Result) ParentFromNodeID(node core.NodeID) (core.NodeID, error) {
	if r.predecessors == nil {
		return core.NotPresent, ErrPredecessorsNotComputed
	}
	if err := r.checkNode(node, len(r.predecessors)); err != nil {
		return core.NotPresent, err
	}
	return r.predecessors[node], nil
}

// KthPointOnShortestPath walks k predecessor steps back from dst and
// returns the node reached. Errors if no path exists to dst or if k
// exceeds the tree eccentricity.
func (r *Result) KthPointOnShortestPath(dst core.NodeID, k uint32) (core.NodeID, error) {
	if r.predecessors == nil {
		return core.NotPresent, ErrPredecessorsNotComputed
	}
	if err := r.checkNode(dst, len(r.predecessors)); err != nil {
		return core.NotPresent, err
	}
	if r.predecessors[dst] == core.NotPresent {
		return core.NotPresent, fmt.Errorf("%w: node %d", ErrUnreachableNode, dst)
	}
	if k > r.eccentricity {
		return core.NotPresent, fmt.Errorf("%w: k=%d, eccentricity=%d", ErrStepTooLarge, k, r.eccentricity)
	}
	cur := dst
	for step := uint32(0); step < k; step++ {
		cur = r.predecessors[cur]
	}
	return cur, nil
}

// MedianPoint returns the node halfway along the tree path to dst,
// rounding toward the source side.
func (r *Result) MedianPoint(dst core.NodeID) (core.NodeID, error) {
	d, err := r.pathLength(dst)
	if err != nil {
		return core.NotPresent, err
	}
	return r.KthPointOnShortestPath(dst, d/2)
}

// pathLength is the tree distance of dst: read from the distance vector
// when present, otherwise counted by climbing the predecessor chain.
func (r *Result) pathLength(dst core.NodeID) (uint32, error) {
	if r.distances != nil {
		d, err := r.DistanceFromNodeID(dst)
		if err != nil {
			return 0, err
		}
		if d == core.NotPresent {
			return 0, fmt.Errorf("%w: node %d", ErrUnreachableNode, dst)
		}
		return d, nil
	}
	chain, err := r.PredecessorsFromNodeID(dst)
	if err != nil {
		return 0, err
	}
	return uint32(len(chain) - 1), nil
}

// NumberOfShortestPaths counts the nodes reachable through the tree,
// i.e. the nodes whose predecessor pointer is set.
func (r *Result) NumberOfShortestPaths() (uint32, error) {
	if r.predecessors == nil {
		return 0, ErrPredecessorsNotComputed
	}
	var count uint32
	for _, p := range r.predecessors {
		if p != core.NotPresent {
			count++
		}
	}
	return count, nil
}

// NumberOfShortestPathsFromNodeID counts the shortest paths passing
// through node. A root counts one additional path for itself.
func (r *Result) NumberOfShortestPathsFromNodeID(node core.NodeID) (uint32, error) {
	succ, err := r.SuccessorsFromNodeID(node)
	if err != nil {
		return 0, err
	}
	count := uint32(len(succ))
	if r.predecessors[node] == node {
		count++
	}
	return count, nil
}

// SuccessorsFromNodeID returns every node whose predecessor chain passes
// through src. The scan over all nodes is parallelized; a climb succeeds
// on reaching src and fails on the sentinel or on a root other than src.
func (r *Result) SuccessorsFromNodeID(src core.NodeID) ([]core.NodeID, error) {
	if r.predecessors == nil {
		return nil, ErrPredecessorsNotComputed
	}
	if err := r.checkNode(src, len(r.predecessors)); err != nil {
		return nil, err
	}

	var (
		n       = len(r.predecessors)
		workers = runtime.GOMAXPROCS(0)
		chunk   = (n + workers - 1) / workers
		buffers = make([][]core.NodeID, workers)
		eg      errgroup.Group
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
			var buf []core.NodeID
			for v := core.NodeID(lo); v < core.NodeID(hi); v++ {
				if r.climbReaches(v, src) {
					buf = append(buf, v)
				}
			}
			buffers[ci] = buf
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var succ []core.NodeID
	for _, buf := range buffers {
		succ = append(succ, buf...)
	}
	return succ, nil
}

// climbReaches reports whether the predecessor chain of v reaches src.
func (r *Result) climbReaches(v, src core.NodeID) bool {
	for cur := v; ; {
		if cur == src {
			return true
		}
		p := r.predecessors[cur]
		if p == core.NotPresent || p == cur {
			return false
		}
		cur = p
	}
}

// PredecessorsFromNodeID returns the ancestor chain of src up to its
// root, src included, ordered from src toward the root.
func (r *Result) PredecessorsFromNodeID(src core.NodeID) ([]core.NodeID, error) {
	if r.predecessors == nil {
		return nil, ErrPredecessorsNotComputed
	}
	if err := r.checkNode(src, len(r.predecessors)); err != nil {
		return nil, err
	}
	if r.predecessors[src] == core.NotPresent {
		return nil, fmt.Errorf("%w: node %d", ErrUnreachableNode, src)
	}
	chain := []core.NodeID{src}
	for cur := src; r.predecessors[cur] != cur; {
		cur = r.predecessors[cur]
		chain = append(chain, cur)
	}
	return chain, nil
}

// SharedAncestorsSize counts the common root-side prefix of the two
// ancestor chains: both chains are compared from the root forward.
// Chains with different roots share a prefix of zero; that is accepted
// behavior, not validated.
func (r *Result) SharedAncestorsSize(a, b core.NodeID) (uint32, error) {
	ca, cb, err := r.ancestorPair(a, b)
	if err != nil {
		return 0, err
	}
	return commonRootPrefix(ca, cb), nil
}

// AncestorsJaccardIndex returns the Jaccard similarity of the two
// ancestor chains, where the intersection is the common root-side
// prefix.
func (r *Result) AncestorsJaccardIndex(a, b core.NodeID) (float64, error) {
	ca, cb, err := r.ancestorPair(a, b)
	if err != nil {
		return 0, err
	}
	shared := commonRootPrefix(ca, cb)
	union := uint32(len(ca)+len(cb)) - shared
	if union == 0 {
		return 0, nil
	}
	return float64(shared) / float64(union), nil
}

func (r *Result) ancestorPair(a, b core.NodeID) ([]core.NodeID, []core.NodeID, error) {
	ca, err := r.PredecessorsFromNodeID(a)
	if err != nil {
		return nil, nil, err
	}
	cb, err := r.PredecessorsFromNodeID(b)
	if err != nil {
		return nil, nil, err
	}
	return ca, cb, nil
}

// commonRootPrefix counts matching entries walking both chains from
// their root ends forward.
func commonRootPrefix(a, b []core.NodeID) uint32 {
	var shared uint32
	i, j := len(a)-1, len(b)-1
	for i >= 0 && j >= 0 && a[i] == b[j] {
		shared++
		i--
		j--
	}
	return shared
}

func (r *Result) checkNode(node core.NodeID, n int) error {
	if int(node) >= n {
		return fmt.Errorf("%w: %d not below %d", core.ErrNodeOutOfRange, node, n)
	}
	return nil
}
