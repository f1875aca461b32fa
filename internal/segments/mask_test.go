package segments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intercityline/booking-backend/internal/apperrors"
)

func TestFullMask(t *testing.T) {
	m := FullMask(3)
	assert.Equal(t, 3, m.Count())
	assert.Equal(t, []int64{0, 1, 2}, m.Ranks())
	assert.False(t, m.Has(3), "rank beyond width")
}

func TestMaskFromRanks(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		m, err := MaskFromRanks(5, []int64{0, 2, 4})
		require.NoError(t, err)
		assert.Equal(t, []int64{0, 2, 4}, m.Ranks())
		assert.True(t, m.Has(2))
		assert.False(t, m.Has(1))
	})

	t.Run("empty set is fully booked", func(t *testing.T) {
		m, err := MaskFromRanks(5, []int64{})
		require.NoError(t, err)
		assert.Equal(t, 0, m.Count())
	})

	t.Run("out of range rank", func(t *testing.T) {
		_, err := MaskFromRanks(3, []int64{0, 3})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindStaleState))
	})
}

func TestMask_WideRoute(t *testing.T) {
	// More elementary segments than one word holds.
	m := FullMask(70)
	assert.Equal(t, 70, m.Count())
	assert.True(t, m.Has(69))

	require.NoError(t, m.Remove([]int{64, 69}))
	assert.False(t, m.Has(64))
	assert.False(t, m.Has(69))
	assert.True(t, m.Has(63))
}

func TestMask_Covers(t *testing.T) {
	m, err := MaskFromRanks(4, []int64{1, 2, 3})
	require.NoError(t, err)

	assert.True(t, m.Covers([]int{1, 2}))
	assert.True(t, m.Covers(nil))
	assert.False(t, m.Covers([]int{0, 1}), "rank 0 already consumed")
}

func TestMask_Remove(t *testing.T) {
	t.Run("clears exactly the given ranks", func(t *testing.T) {
		m := FullMask(4)
		require.NoError(t, m.Remove([]int{1, 2}))
		assert.Equal(t, []int64{0, 3}, m.Ranks())
	})

	t.Run("overlap fails and leaves the mask unchanged", func(t *testing.T) {
		m := FullMask(4)
		require.NoError(t, m.Remove([]int{1}))

		err := m.Remove([]int{0, 1})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
		assert.Equal(t, []int64{0, 2, 3}, m.Ranks(), "failed removal must not consume rank 0")
	})

	t.Run("disjoint spans both succeed", func(t *testing.T) {
		m := FullMask(3)
		require.NoError(t, m.Remove([]int{0}))
		require.NoError(t, m.Remove([]int{2}))
		assert.Equal(t, []int64{1}, m.Ranks())
	})
}
