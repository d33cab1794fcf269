package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnacletoLAB/ensmallen-sub003/bfs"
	"github.com/AnacletoLAB/ensmallen-sub003/core"
	"github.com/AnacletoLAB/ensmallen-sub003/gen"
)

// tree builds the predecessor BFS of P7 rooted at node 0.
func tree(t *testing.T) *bfs.Result {
	t.Helper()
	g, err := gen.Path(7)
	require.NoError(t, err)
	res, err := bfs.General(g, []core.NodeID{0}, bfs.WithPredecessors())
	require.NoError(t, err)
	return res
}

func TestResult_MissingVectors(t *testing.T) {
	g, err := gen.Path(3)
	require.NoError(t, err)

	distOnly, err := bfs.Distances(g, []core.NodeID{0})
	require.NoError(t, err)
	_, err = distOnly.ParentFromNodeID(1)
	assert.ErrorIs(t, err, bfs.ErrPredecessorsNotComputed)
	_, err = distOnly.SuccessorsFromNodeID(0)
	assert.ErrorIs(t, err, bfs.ErrPredecessorsNotComputed)

	predOnly, err := bfs.Predecessors(g, []core.NodeID{0})
	require.NoError(t, err)
	_, err = predOnly.DistanceFromNodeID(1)
	assert.ErrorIs(t, err, bfs.ErrDistancesNotComputed)
}

func TestKthPointOnShortestPath(t *testing.T) {
	res := tree(t)

	point, err := res.KthPointOnShortestPath(6, 0)
	require.NoError(t, err)
	assert.Equal(t, core.NodeID(6), point)

	point, err = res.KthPointOnShortestPath(6, 4)
	require.NoError(t, err)
	assert.Equal(t, core.NodeID(2), point)

	_, err = res.KthPointOnShortestPath(6, 7)
	assert.ErrorIs(t, err, bfs.ErrStepTooLarge)
}

func TestKthPointOnShortestPath_Unreachable(t *testing.T) {
	g, err := core.NewBuilder().AddEdge(0, 1).EnsureNodes(3).Finalize()
	require.NoError(t, err)
	res, err := bfs.General(g, []core.NodeID{0}, bfs.WithPredecessors())
	require.NoError(t, err)
	_, err = res.KthPointOnShortestPath(2, 0)
	assert.ErrorIs(t, err, bfs.ErrUnreachableNode)
}

func TestMedianPoint(t *testing.T) {
	res := tree(t)
	// Node 6 is at distance 6; three steps back sits node 3.
	median, err := res.MedianPoint(6)
	require.NoError(t, err)
	assert.Equal(t, core.NodeID(3), median)

	// Odd distance rounds toward the source.
	median, err = res.MedianPoint(5)
	require.NoError(t, err)
	assert.Equal(t, core.NodeID(3), median)
}

func TestNumberOfShortestPaths(t *testing.T) {
	res := tree(t)
	count, err := res.NumberOfShortestPaths()
	require.NoError(t, err)
	assert.Equal(t, uint32(7), count)

	// Through node 3: successors {3,4,5,6}; 3 is not the root.
	count, err = res.NumberOfShortestPathsFromNodeID(3)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), count)

	// Through the root: every node, plus one for the root itself.
	count, err = res.NumberOfShortestPathsFromNodeID(0)
	require.NoError(t, err)
	assert.Equal(t, uint32(8), count)
}

func TestSuccessorsFromNodeID(t *testing.T) {
	res := tree(t)
	succ, err := res.SuccessorsFromNodeID(4)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{4, 5, 6}, succ)
}

func TestPredecessorsFromNodeID(t *testing.T) {
	res := tree(t)
	chain, err := res.PredecessorsFromNodeID(4)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{4, 3, 2, 1, 0}, chain)

	chain, err = res.PredecessorsFromNodeID(0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0}, chain)
}

func TestSharedAncestorsAndJaccard(t *testing.T) {
	// Star-with-tails: 0 is the hub, chains 0-1-2 and 0-3-4.
	g, err := core.NewBuilder().
		AddEdge(0, 1).
		AddEdge(1, 2).
		AddEdge(0, 3).
		AddEdge(3, 4).
		Finalize()
	require.NoError(t, err)
	res, err := bfs.General(g, []core.NodeID{0}, bfs.WithPredecessors())
	require.NoError(t, err)

	// Chains from the root: [2,1,0] and [4,3,0] share only the root.
	shared, err := res.SharedAncestorsSize(2, 4)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), shared)

	jaccard, err := res.AncestorsJaccardIndex(2, 4)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/5.0, jaccard, 1e-12)

	// A node against one of its own ancestors: full chain shared.
	shared, err = res.SharedAncestorsSize(2, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), shared)

	jaccard, err = res.AncestorsJaccardIndex(2, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, jaccard, 1e-12)
}
