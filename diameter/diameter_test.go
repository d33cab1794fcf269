package diameter_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnacletoLAB/ensmallen-sub003/core"
	"github.com/AnacletoLAB/ensmallen-sub003/diameter"
	"github.com/AnacletoLAB/ensmallen-sub003/gen"
)

// twoComponents builds P4 (0-1-2-3) plus a detached edge 4-5. The
// maximum-degree node sits in the larger component, so IFUB explores it.
func twoComponents(t *testing.T) *core.CSR {
	t.Helper()
	g, err := core.NewBuilder().
		AddEdge(0, 1).
		AddEdge(1, 2).
		AddEdge(2, 3).
		AddEdge(4, 5).
		Finalize()
	require.NoError(t, err)
	return g
}

// ------------------------------------------------------------------------
// Validation
// ------------------------------------------------------------------------

func TestDiameter_NilGraph(t *testing.T) {
	_, err := diameter.Diameter(nil)
	assert.ErrorIs(t, err, diameter.ErrGraphNil)

	_, err = diameter.IFUB(nil)
	assert.ErrorIs(t, err, diameter.ErrGraphNil)

	_, err = diameter.Naive(nil, false)
	assert.ErrorIs(t, err, diameter.ErrGraphNil)

	_, _, err = diameter.FourSweep(nil)
	assert.ErrorIs(t, err, diameter.ErrGraphNil)
}

func TestDiameter_EmptyGraph(t *testing.T) {
	g, err := core.NewBuilder().Finalize()
	require.NoError(t, err)
	_, err = diameter.Diameter(g)
	assert.ErrorIs(t, err, diameter.ErrEmptyGraph)
}

func TestIFUB_DirectedRejected(t *testing.T) {
	g, err := gen.Path(4, gen.WithDirected())
	require.NoError(t, err)
	_, err = diameter.IFUB(g)
	assert.ErrorIs(t, err, diameter.ErrDirectedGraph)
}

func TestDiameter_CancelledContext(t *testing.T) {
	g, err := gen.Path(5)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = diameter.Diameter(g, diameter.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// ------------------------------------------------------------------------
// Degenerate graphs
// ------------------------------------------------------------------------

func TestDiameter_EdgelessIsInfinite(t *testing.T) {
	g, err := core.NewBuilder().EnsureNodes(4).Finalize()
	require.NoError(t, err)
	d, err := diameter.Diameter(g)
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))
}

func TestIFUB_EdgelessIsZero(t *testing.T) {
	g, err := core.NewBuilder().EnsureNodes(4).Finalize()
	require.NoError(t, err)
	d, err := diameter.IFUB(g)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

// ------------------------------------------------------------------------
// Concrete small graphs
// ------------------------------------------------------------------------

func TestDiameter_PathGraphP5(t *testing.T) {
	g, err := gen.Path(5)
	require.NoError(t, err)
	d, err := diameter.Diameter(g)
	require.NoError(t, err)
	assert.Equal(t, 4.0, d)
}

func TestDiameter_SmallGraphs(t *testing.T) {
	complete, err := gen.Complete(5)
	require.NoError(t, err)
	path, err := gen.Path(6)
	require.NoError(t, err)
	star, err := gen.Star(4)
	require.NoError(t, err)
	cycle, err := gen.Cycle(6)
	require.NoError(t, err)

	for _, tc := range []struct {
		name string
		g    *core.CSR
		want float64
	}{
		{"complete K5", complete, 1},
		{"path P6", path, 5},
		{"star S4", star, 2},
		{"cycle C6", cycle, 3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, err := diameter.Diameter(tc.g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, d)
		})
	}
}

// ------------------------------------------------------------------------
// Disconnected graphs
// ------------------------------------------------------------------------

func TestDiameter_DisconnectedIsInfinite(t *testing.T) {
	d, err := diameter.Diameter(twoComponents(t))
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))
}

func TestDiameter_DisconnectedIgnoringInfinity(t *testing.T) {
	d, err := diameter.Diameter(twoComponents(t), diameter.WithIgnoreInfinity())
	require.NoError(t, err)
	assert.Equal(t, 3.0, d)
}

func TestNaive_DisconnectedIsInfinite(t *testing.T) {
	d, err := diameter.Naive(twoComponents(t), false)
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))
}

// ------------------------------------------------------------------------
// IFUB / Naive agreement
// ------------------------------------------------------------------------

func TestIFUB_AgreesWithNaive(t *testing.T) {
	complete, err := gen.Complete(5)
	require.NoError(t, err)
	path, err := gen.Path(6)
	require.NoError(t, err)
	cycle, err := gen.Cycle(7)
	require.NoError(t, err)
	wheel, err := gen.Wheel(8)
	require.NoError(t, err)

	for _, tc := range []struct {
		name string
		g    *core.CSR
	}{
		{"complete K5", complete},
		{"path P6", path},
		{"cycle C7", cycle},
		{"wheel W8", wheel},
		{"two components", twoComponents(t)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			fast, err := diameter.IFUB(tc.g)
			require.NoError(t, err)
			naive, err := diameter.Naive(tc.g, true)
			require.NoError(t, err)
			assert.Equal(t, naive, fast)
		})
	}
}

// ------------------------------------------------------------------------
// Four-sweep soundness
// ------------------------------------------------------------------------

func TestFourSweep_LowerBoundSoundness(t *testing.T) {
	path, err := gen.Path(5)
	require.NoError(t, err)
	cycle, err := gen.Cycle(6)
	require.NoError(t, err)
	star, err := gen.Star(6)
	require.NoError(t, err)
	wheel, err := gen.Wheel(7)
	require.NoError(t, err)
	sparse, err := gen.RandomSparse(40, 120, 11)
	require.NoError(t, err)

	for _, tc := range []struct {
		name string
		g    *core.CSR
	}{
		{"path P5", path},
		{"cycle C6", cycle},
		{"star S6", star},
		{"wheel W7", wheel},
		{"random sparse", sparse},
	} {
		t.Run(tc.name, func(t *testing.T) {
			lower, low, err := diameter.FourSweep(tc.g)
			require.NoError(t, err)
			naive, err := diameter.Naive(tc.g, true)
			require.NoError(t, err)
			assert.LessOrEqual(t, float64(lower), naive)
			assert.Less(t, low, tc.g.NumberOfNodes())
		})
	}
}

func TestFourSweep_PathGraphIsTight(t *testing.T) {
	g, err := gen.Path(5)
	require.NoError(t, err)
	lower, _, err := diameter.FourSweep(g)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), lower)
}

// ------------------------------------------------------------------------
// Directed fallback
// ------------------------------------------------------------------------

func TestDiameter_DirectedUsesNaive(t *testing.T) {
	g, err := gen.Path(3, gen.WithDirected())
	require.NoError(t, err)

	d, err := diameter.Diameter(g)
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))

	d, err = diameter.Diameter(g, diameter.WithIgnoreInfinity())
	require.NoError(t, err)
	assert.Equal(t, 2.0, d)
}
