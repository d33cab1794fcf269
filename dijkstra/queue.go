package dijkstra

import (
	"math"

	"github.com/AnacletoLAB/ensmallen-sub003/core"
)

// inf is the tentative distance of a node never relaxed.
var inf = float32(math.Inf(1))

// nodeQueue is an indexed binary min-heap keyed by tentative distance,
// pre-sized to the node count. Unlike a lazy heap it holds each node at
// most once: push relaxes the key in place (decrease-key) when the node
// is already queued.
type nodeQueue struct {
	dist []float32     // tentative distance per node, +Inf when never relaxed
	heap []core.NodeID // heap of queued node ids
	pos  []int32       // heap position per node, -1 when not queued
}

func newNodeQueue(n core.NodeID) *nodeQueue {
	q := &nodeQueue{
		dist: make([]float32, n),
		heap: make([]core.NodeID, 0, n),
		pos:  make([]int32, n),
	}
	for i := range q.dist {
		q.dist[i] = inf
		q.pos[i] = -1
	}
	return q
}

// push relaxes node to distance d. A strictly larger or equal d is
// ignored; an improvement either inserts the node or decreases its key.
func (q *nodeQueue) push(node core.NodeID, d float32) bool {
	if d >= q.dist[node] {
		return false
	}
	q.dist[node] = d
	if q.pos[node] < 0 {
		q.pos[node] = int32(len(q.heap))
		q.heap = append(q.heap, node)
	}
	q.siftUp(int(q.pos[node]))
	return true
}

// pop removes and returns the minimum-distance queued node.
func (q *nodeQueue) pop() (core.NodeID, float32, bool) {
	if len(q.heap) == 0 {
		return core.NotPresent, inf, false
	}
	top := q.heap[0]
	last := len(q.heap) - 1
	q.swap(0, last)
	q.heap = q.heap[:last]
	q.pos[top] = -1
	if last > 0 {
		q.siftDown(0)
	}
	return top, q.dist[top], true
}

func (q *nodeQueue) less(i, j int) bool {
	return q.dist[q.heap[i]] < q.dist[q.heap[j]]
}

func (q *nodeQueue) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.pos[q.heap[i]] = int32(i)
	q.pos[q.heap[j]] = int32(j)
}

func (q *nodeQueue) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			return
		}
		q.swap(i, parent)
		i = parent
	}
}

func (q *nodeQueue) siftDown(i int) {
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < len(q.heap) && q.less(left, smallest) {
			smallest = left
		}
		if right < len(q.heap) && q.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		q.swap(i, smallest)
		i = smallest
	}
}
