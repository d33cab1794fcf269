package dijkstra

import (
	"fmt"

	"github.com/AnacletoLAB/ensmallen-sub003/core"
)

// Result is the immutable outcome of one Dijkstra run. Distances are
// plain accumulated weights, or probabilities in [0, 1] when the run
// used probability semantics (zero marks an unreachable node there; in
// plain mode the marker is +Inf).
type Result struct {
	distances             []float32
	predecessors          []core.NodeID // nil when not requested; a root points to itself
	dstNodeDistance       float32
	hasDstNode            bool
	eccentricity          float32
	mostDistant           core.NodeID
	totalDistance         float32
	logTotalDistance      float32
	totalHarmonicDistance float32
	probabilities         bool
}

// Distances returns the per-node distance vector. The slice is owned by
// the Result; treat as read-only.
func (r *Result) Distances() []float32 { return r.distances }

// HasPredecessors reports whether the shortest-path tree was recorded.
func (r *Result) HasPredecessors() bool { return r.predecessors != nil }

// Predecessors returns the per-node predecessor vector, or nil when not
// requested. Treat as read-only.
func (r *Result) Predecessors() []core.NodeID { return r.predecessors }

// DstNodeDistance returns the distance recorded for the single
// designated target, if one was given and reached.
func (r *Result) DstNodeDistance() (float32, bool) { return r.dstNodeDistance, r.hasDstNode }

// Eccentricity returns the maximum finalized distance. In probability
// mode this is the smallest finalized probability.
func (r *Result) Eccentricity() float32 { return r.eccentricity }

// MostDistantNode returns some node realizing the eccentricity.
func (r *Result) MostDistantNode() core.NodeID { return r.mostDistant }

// TotalDistance returns the sum of finalized distances, in the domain
// the run reported distances in.
func (r *Result) TotalDistance() float32 { return r.totalDistance }

// LogTotalDistance returns ln(TotalDistance) for plain runs, or the
// pre-exponentiation log-domain sum for probability runs.
func (r *Result) LogTotalDistance() float32 { return r.logTotalDistance }

// TotalHarmonicDistance returns the sum of reciprocals of the positive
// finalized log-domain distances.
func (r *Result) TotalHarmonicDistance() float32 { return r.totalHarmonicDistance }

// UsedProbabilities reports whether the run interpreted weights as
// probabilities.
func (r *Result) UsedProbabilities() bool { return r.probabilities }

// unreachable reports whether node carries the run's unreached marker.
func (r *Result) unreachable(node core.NodeID) bool {
	if r.probabilities {
		return r.distances[node] == 0
	}
	return r.distances[node] == inf
}

// PointAtGivenDistanceOnShortestPath walks the shortest-path tree from
// dst toward the source while the running distance stays at or beyond
// the requested one, returning the first node before it drops below.
// Errors if dst is unreachable or the requested distance exceeds dst's
// actual distance.
func (r *Result) PointAtGivenDistanceOnShortestPath(dst core.NodeID, distance float32) (core.NodeID, error) {
	if r.predecessors == nil {
		return core.NotPresent, ErrPredecessorsNotComputed
	}
	if int(dst) >= len(r.distances) {
		return core.NotPresent, fmt.Errorf("%w: %d not below %d", core.ErrNodeOutOfRange, dst, len(r.distances))
	}
	if r.unreachable(dst) {
		return core.NotPresent, fmt.Errorf("%w: node %d", ErrUnreachableNode, dst)
	}
	if r.farther(distance, r.distances[dst]) {
		return core.NotPresent, fmt.Errorf("%w: want %v, node %d sits at %v",
			ErrDistanceTooLarge, distance, dst, r.distances[dst])
	}
	cur := dst
	for !r.farther(distance, r.distances[cur]) {
		p := r.predecessors[cur]
		if p == core.NotPresent || p == cur {
			break
		}
		cur = p
	}
	return cur, nil
}

// farther reports whether a is strictly farther from the source than b,
// accounting for the inverted ordering of probability-domain distances
// (a smaller probability means a more distant node).
func (r *Result) farther(a, b float32) bool {
	if r.probabilities {
		return a < b
	}
	return a > b
}
