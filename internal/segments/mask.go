package segments

import (
	"sort"

	"github.com/intercityline/booking-backend/internal/apperrors"
)

const wordBits = 64

// Mask is a fixed-width bitset over elementary-segment ranks. Bit k set
// means the seat is still free between stop k and stop k+1. The width is
// the route's elementary-segment count, so routes of any length are
// addressed without the digit-collision problem of positional encodings.
type Mask struct {
	words []uint64
	size  int
}

// NewMask returns an empty mask sized for n elementary segments.
func NewMask(n int) Mask {
	return Mask{words: make([]uint64, (n+wordBits-1)/wordBits), size: n}
}

// FullMask returns a mask with every rank 0..n-1 set.
func FullMask(n int) Mask {
	m := NewMask(n)
	for r := 0; r < n; r++ {
		m.words[r/wordBits] |= 1 << uint(r%wordBits)
	}
	return m
}

// MaskFromRanks rebuilds a mask from the persisted rank set. Ranks outside
// 0..n-1 are rejected so a stale row cannot silently widen a route.
func MaskFromRanks(n int, ranks []int64) (Mask, error) {
	m := NewMask(n)
	for _, r := range ranks {
		if r < 0 || int(r) >= n {
			return Mask{}, apperrors.New(apperrors.KindStaleState,
				"segment rank %d out of range for %d elementary segments", r, n)
		}
		m.words[r/wordBits] |= 1 << uint(r%wordBits)
	}
	return m, nil
}

// Size returns the number of addressable ranks.
func (m Mask) Size() int {
	return m.size
}

// Has reports whether rank is still free.
func (m Mask) Has(rank int) bool {
	if rank < 0 || rank >= m.size {
		return false
	}
	return m.words[rank/wordBits]&(1<<uint(rank%wordBits)) != 0
}

// Covers reports whether every given rank is still free.
func (m Mask) Covers(ranks []int) bool {
	for _, r := range ranks {
		if !m.Has(r) {
			return false
		}
	}
	return true
}

// Remove clears exactly the given ranks, failing with Conflict if any of
// them is already gone. The receiver is unchanged on failure.
func (m *Mask) Remove(ranks []int) error {
	for _, r := range ranks {
		if !m.Has(r) {
			return apperrors.New(apperrors.KindConflict,
				"segment %d is no longer available", r)
		}
	}
	for _, r := range ranks {
		m.words[r/wordBits] &^= 1 << uint(r%wordBits)
	}
	return nil
}

// Ranks returns the remaining free ranks in ascending order, in the shape
// the seat repository persists (BIGINT[]).
func (m Mask) Ranks() []int64 {
	out := make([]int64, 0, m.size)
	for r := 0; r < m.size; r++ {
		if m.Has(r) {
			out = append(out, int64(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Count returns the number of free ranks.
func (m Mask) Count() int {
	n := 0
	for r := 0; r < m.size; r++ {
		if m.Has(r) {
			n++
		}
	}
	return n
}
