package segments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intercityline/booking-backend/internal/apperrors"
)

func TestNewIndex(t *testing.T) {
	t.Run("valid route", func(t *testing.T) {
		ix, err := NewIndex([]int64{10, 20, 30, 40})
		require.NoError(t, err)
		assert.Equal(t, 4, ix.NumStops())
		assert.Equal(t, 3, ix.NumElementary())
	})

	t.Run("too few stops", func(t *testing.T) {
		_, err := NewIndex([]int64{10})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidRoute))
	})

	t.Run("duplicate stop", func(t *testing.T) {
		_, err := NewIndex([]int64{10, 20, 10})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidRoute))
	})
}

func TestIndex_Elementary(t *testing.T) {
	ix, err := NewIndex([]int64{10, 20, 30})
	require.NoError(t, err)

	assert.Equal(t, []Segment{
		{FromStopID: 10, ToStopID: 20},
		{FromStopID: 20, ToStopID: 30},
	}, ix.Elementary())
}

func TestIndex_Pairs(t *testing.T) {
	ix, err := NewIndex([]int64{10, 20, 30, 40})
	require.NoError(t, err)

	pairs := ix.Pairs()
	// N stops yield N*(N-1)/2 composite pairs.
	assert.Len(t, pairs, 6)
	assert.Equal(t, []Segment{
		{FromStopID: 10, ToStopID: 20},
		{FromStopID: 10, ToStopID: 30},
		{FromStopID: 10, ToStopID: 40},
		{FromStopID: 20, ToStopID: 30},
		{FromStopID: 20, ToStopID: 40},
		{FromStopID: 30, ToStopID: 40},
	}, pairs)
}

func TestIndex_Contains(t *testing.T) {
	ix, err := NewIndex([]int64{10, 20, 30})
	require.NoError(t, err)

	assert.True(t, ix.Contains(10, 30))
	assert.True(t, ix.Contains(20, 30))
	assert.False(t, ix.Contains(30, 10), "reversed direction")
	assert.False(t, ix.Contains(10, 10), "same stop")
	assert.False(t, ix.Contains(10, 99), "unknown stop")
}

func TestIndex_SpanRanks(t *testing.T) {
	ix, err := NewIndex([]int64{10, 20, 30, 40})
	require.NoError(t, err)

	t.Run("full route", func(t *testing.T) {
		ranks, err := ix.SpanRanks(10, 40)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2}, ranks)
	})

	t.Run("inner pair", func(t *testing.T) {
		ranks, err := ix.SpanRanks(20, 30)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, ranks)
	})

	t.Run("unknown stop", func(t *testing.T) {
		_, err := ix.SpanRanks(10, 99)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})

	t.Run("reversed direction", func(t *testing.T) {
		_, err := ix.SpanRanks(30, 10)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidRoute))
	})
}
