package hll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmersketch/cardinality/mixer"
)

func TestNewRejectsPrecisionOutOfRange(t *testing.T) {
	_, err := New(3, mixer.WangMix)
	assert.Error(t, err)
	_, err = New(19, mixer.WangMix)
	assert.Error(t, err)
}

func TestNewAcceptsBoundaryPrecisions(t *testing.T) {
	_, err := New(4, mixer.WangMix)
	assert.NoError(t, err)
	_, err = New(18, mixer.WangMix)
	assert.NoError(t, err)
}

func TestNewRejectsNilMixer(t *testing.T) {
	_, err := New(10, nil)
	assert.Error(t, err)
}

func TestEmptySketchCardinalityIsZero(t *testing.T) {
	s, err := New(10, mixer.WangMix)
	require.NoError(t, err)

	est, err := s.Cardinality()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), est)
	assert.Equal(t, uint64(0), s.ErtlCardinality())
}

func TestAddIsIdempotentForSameItem(t *testing.T) {
	s, err := New(12, mixer.WangMix)
	require.NoError(t, err)
	for i := 0; i < 1000; i++ {
		s.Add(42)
	}
	assert.Equal(t, 1, len(s.sparseList))
}

func TestRepeatedSingleItemGivesCardinalityOne(t *testing.T) {
	s, err := New(8, mixer.WangMix)
	require.NoError(t, err)
	for i := 0; i < 1000000; i++ {
		s.Add(7)
	}
	est, err := s.Cardinality()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), est)
	assert.Equal(t, uint64(1), s.ErtlCardinality())
}

func TestSparseStaysSparseBelowThousandInserts(t *testing.T) {
	s, err := New(12, mixer.WangMix)
	require.NoError(t, err)
	for i := uint64(0); i < 1000; i++ {
		s.Add(i)
	}
	assert.True(t, s.IsSparse())

	est, err := s.Cardinality()
	require.NoError(t, err)
	assert.InDelta(t, 1000, est, 30)
}

func TestDenseSwitchOnLargeInsertVolume(t *testing.T) {
	s, err := New(12, mixer.WangMix)
	require.NoError(t, err)
	for i := uint64(0); i < 100000; i++ {
		s.Add(i)
	}
	assert.False(t, s.IsSparse())

	est, err := s.Cardinality()
	require.NoError(t, err)
	assert.InDelta(t, 100000, est, 3000)

	ertlEst := s.ErtlCardinality()
	assert.InDelta(t, 100000, ertlEst, 3000)
}

func TestSwitchToDenseHappensExactlyAtThreshold(t *testing.T) {
	s, err := New(6, mixer.WangMix) // m=64, threshold at m/4=16
	require.NoError(t, err)

	threshold := (1 << 6) / sparseToDenseDivisor

	for i := uint64(0); i < uint64(threshold); i++ {
		s.Add(i)
	}
	assert.True(t, s.IsSparse(), "must still be sparse at exactly the threshold count")

	s.Add(uint64(threshold))
	assert.False(t, s.IsSparse(), "must switch to dense the instant the list exceeds the threshold")
}

func TestAddBatchMatchesSequentialAdd(t *testing.T) {
	s1, err := New(10, mixer.WangMix)
	require.NoError(t, err)
	s2, err := New(10, mixer.WangMix)
	require.NoError(t, err)

	items := make([]uint64, 500)
	for i := range items {
		items[i] = uint64(i)
	}

	for _, v := range items {
		s1.Add(v)
	}
	s2.AddBatch(items)

	assert.Equal(t, s1.sparseList, s2.sparseList)
	assert.Equal(t, s1.dense, s2.dense)
}

func TestResetReturnsToEmptySparseState(t *testing.T) {
	s, err := New(10, mixer.WangMix)
	require.NoError(t, err)
	for i := uint64(0); i < 100000; i++ {
		s.Add(i)
	}
	require.False(t, s.IsSparse())

	s.Reset()
	assert.True(t, s.IsSparse())
	est, err := s.Cardinality()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), est)
}

func TestMillionItemEstimateWithinOnePercentBothEstimators(t *testing.T) {
	s, err := New(14, mixer.Murmur3Mix)
	require.NoError(t, err)
	for i := uint64(0); i < 1000000; i++ {
		s.Add(i)
	}

	est, err := s.Cardinality()
	require.NoError(t, err)
	assert.InDelta(t, 1000000, float64(est), 10000)

	ertlEst := s.ErtlCardinality()
	assert.InDelta(t, 1000000, float64(ertlEst), 10000)
}
