package hll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnacletoLAB/ensmallen-sub003/hll"
)

func mustSketch(t *testing.T, precision, bits uint8) *hll.Sketch {
	t.Helper()
	s, err := hll.New(precision, bits)
	require.NoError(t, err)
	return s
}

// ------------------------------------------------------------------------
// Configuration registry
// ------------------------------------------------------------------------

func TestNew_SupportedConfigurations(t *testing.T) {
	for _, precision := range []uint8{4, 8, 12, 16} {
		for _, bits := range []uint8{5, 6} {
			s, err := hll.New(precision, bits)
			require.NoError(t, err)
			assert.Equal(t, precision, s.Precision())
			assert.Equal(t, bits, s.Bits())
			assert.Equal(t, uint32(1)<<precision, s.NumRegisters())
		}
	}
}

func TestNew_UnsupportedConfigurations(t *testing.T) {
	for _, tc := range []struct{ precision, bits uint8 }{
		{3, 6}, {17, 6}, {0, 6}, {12, 4}, {12, 7}, {12, 0},
	} {
		_, err := hll.New(tc.precision, tc.bits)
		assert.ErrorIs(t, err, hll.ErrUnsupportedConfig)
	}
}

// ------------------------------------------------------------------------
// Insert and Estimate
// ------------------------------------------------------------------------

func TestEstimate_EmptyIsZero(t *testing.T) {
	assert.Equal(t, 0.0, mustSketch(t, 12, 6).Estimate())
}

func TestEstimate_SmallRangeLinearCounting(t *testing.T) {
	s := mustSketch(t, 12, 6)
	for item := uint64(0); item < 3; item++ {
		s.Insert(item)
	}
	assert.InDelta(t, 3, s.Estimate(), 0.5)
}

func TestEstimate_WithinTolerance(t *testing.T) {
	s := mustSketch(t, 12, 6)
	for item := uint64(0); item < 10000; item++ {
		s.Insert(item)
	}
	assert.InEpsilon(t, 10000, s.Estimate(), 0.05)
}

func TestEstimate_FiveBitRegisters(t *testing.T) {
	s := mustSketch(t, 8, 5)
	for item := uint64(0); item < 1000; item++ {
		s.Insert(item)
	}
	assert.InEpsilon(t, 1000, s.Estimate(), 0.2)
}

func TestEstimate_GrowsWithDistinctItems(t *testing.T) {
	s := mustSketch(t, 12, 6)
	var prev float64
	for _, checkpoint := range []uint64{10, 100, 1000, 5000} {
		for item := uint64(0); item < checkpoint; item++ {
			s.Insert(item)
		}
		est := s.Estimate()
		assert.Greater(t, est, prev)
		prev = est
	}
}

func TestInsert_DuplicatesAreIdempotent(t *testing.T) {
	a, b := mustSketch(t, 10, 6), mustSketch(t, 10, 6)
	for item := uint64(0); item < 100; item++ {
		a.Insert(item)
		b.Insert(item)
		b.Insert(item)
	}
	assert.True(t, a.Equal(b))
}

// ------------------------------------------------------------------------
// Union, Clone, Equal
// ------------------------------------------------------------------------

func TestUnion_ActsAsSetUnion(t *testing.T) {
	evens, odds, all := mustSketch(t, 12, 6), mustSketch(t, 12, 6), mustSketch(t, 12, 6)
	for item := uint64(0); item < 2000; item++ {
		all.Insert(item)
		if item%2 == 0 {
			evens.Insert(item)
		} else {
			odds.Insert(item)
		}
	}
	require.NoError(t, evens.Union(odds))
	assert.True(t, evens.Equal(all))
}

func TestUnion_IsCommutative(t *testing.T) {
	a, b := mustSketch(t, 10, 5), mustSketch(t, 10, 5)
	for item := uint64(0); item < 500; item++ {
		a.Insert(item)
		b.Insert(item + 250)
	}
	ab, ba := a.Clone(), b.Clone()
	require.NoError(t, ab.Union(b))
	require.NoError(t, ba.Union(a))
	assert.True(t, ab.Equal(ba))
}

func TestUnion_WithSubsetIsFixedPoint(t *testing.T) {
	whole, part := mustSketch(t, 12, 6), mustSketch(t, 12, 6)
	for item := uint64(0); item < 1000; item++ {
		whole.Insert(item)
		if item < 300 {
			part.Insert(item)
		}
	}
	merged := whole.Clone()
	require.NoError(t, merged.Union(part))
	assert.True(t, merged.Equal(whole))
}

func TestUnion_MismatchedConfigurations(t *testing.T) {
	s := mustSketch(t, 12, 6)
	assert.ErrorIs(t, s.Union(mustSketch(t, 11, 6)), hll.ErrMismatchedSketches)
	assert.ErrorIs(t, s.Union(mustSketch(t, 12, 5)), hll.ErrMismatchedSketches)
	assert.ErrorIs(t, s.Union(nil), hll.ErrMismatchedSketches)
}

func TestClone_IsIndependent(t *testing.T) {
	s := mustSketch(t, 10, 6)
	for item := uint64(0); item < 100; item++ {
		s.Insert(item)
	}
	c := s.Clone()
	require.True(t, c.Equal(s))

	for item := uint64(100_000); item < 100_020; item++ {
		s.Insert(item)
	}
	assert.False(t, c.Equal(s))
}

func TestCopyFrom_OverwritesRegisters(t *testing.T) {
	src, dst := mustSketch(t, 10, 6), mustSketch(t, 10, 6)
	for item := uint64(0); item < 100; item++ {
		src.Insert(item)
	}
	dst.Insert(42)
	require.NoError(t, dst.CopyFrom(src))
	assert.True(t, dst.Equal(src))

	assert.ErrorIs(t, dst.CopyFrom(mustSketch(t, 11, 6)), hll.ErrMismatchedSketches)
}

func TestEqual_DifferentConfigurations(t *testing.T) {
	assert.False(t, mustSketch(t, 12, 6).Equal(mustSketch(t, 12, 5)))
	assert.False(t, mustSketch(t, 12, 6).Equal(nil))
}
