package segments

// CoveredPairs filters pairs down to those the mask still covers in full,
// preserving input order. A pair not on the route is skipped.
func (ix *Index) CoveredPairs(m Mask, pairs []Segment) []Segment {
	out := make([]Segment, 0, len(pairs))
	for _, p := range pairs {
		ranks, err := ix.SpanRanks(p.FromStopID, p.ToStopID)
		if err != nil {
			continue
		}
		if m.Covers(ranks) {
			out = append(out, p)
		}
	}
	return out
}

// LostPairs returns the pairs a seat stops covering when the booked ranks
// are consumed: exactly the aggregate rows that must be decremented. A pair
// is lost when the seat covered its whole span before the booking and the
// span overlaps the booked range. Decrementing only the exact-match pair
// would leave overlapping aggregates counting a seat that is gone.
func (ix *Index) LostPairs(before Mask, bookedRanks []int, pairs []Segment) []Segment {
	after := before
	after.words = make([]uint64, len(before.words))
	copy(after.words, before.words)
	for _, r := range bookedRanks {
		after.words[r/wordBits] &^= 1 << uint(r%wordBits)
	}

	out := make([]Segment, 0, len(pairs))
	for _, p := range pairs {
		ranks, err := ix.SpanRanks(p.FromStopID, p.ToStopID)
		if err != nil {
			continue
		}
		if before.Covers(ranks) && !after.Covers(ranks) {
			out = append(out, p)
		}
	}
	return out
}
