package segments

import (
	"github.com/intercityline/booking-backend/internal/apperrors"
)

// Segment is an ordered (origin, destination) stop pair on a route.
type Segment struct {
	FromStopID int64
	ToStopID   int64
}

// Index holds the ordered stop list of a route and resolves stop pairs to
// elementary-segment ranks. Rank k is the span between stop k and stop k+1.
type Index struct {
	stops []int64
	pos   map[int64]int
}

// NewIndex builds an Index from route stop IDs in ascending order of the
// route's "order" column. Routes with fewer than two stops, or with a stop
// appearing twice, cannot back a departure.
func NewIndex(orderedStopIDs []int64) (*Index, error) {
	if len(orderedStopIDs) < 2 {
		return nil, apperrors.New(apperrors.KindInvalidRoute,
			"route has %d stops, at least 2 required", len(orderedStopIDs))
	}

	pos := make(map[int64]int, len(orderedStopIDs))
	for i, id := range orderedStopIDs {
		if _, dup := pos[id]; dup {
			return nil, apperrors.New(apperrors.KindInvalidRoute,
				"stop %d appears more than once on the route", id)
		}
		pos[id] = i
	}

	stops := make([]int64, len(orderedStopIDs))
	copy(stops, orderedStopIDs)

	return &Index{stops: stops, pos: pos}, nil
}

// NumElementary returns the number of elementary segments (N-1 for N stops).
func (ix *Index) NumElementary() int {
	return len(ix.stops) - 1
}

// NumStops returns the number of stops on the route.
func (ix *Index) NumStops() int {
	return len(ix.stops)
}

// Elementary returns the adjacent-stop segments in route order.
func (ix *Index) Elementary() []Segment {
	out := make([]Segment, 0, ix.NumElementary())
	for i := 0; i+1 < len(ix.stops); i++ {
		out = append(out, Segment{FromStopID: ix.stops[i], ToStopID: ix.stops[i+1]})
	}
	return out
}

// Pairs returns every composite (origin, destination) pair with the origin
// preceding the destination, ascending by origin order then destination
// order. For N stops that is N*(N-1)/2 pairs.
func (ix *Index) Pairs() []Segment {
	n := len(ix.stops)
	out := make([]Segment, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Segment{FromStopID: ix.stops[i], ToStopID: ix.stops[j]})
		}
	}
	return out
}

// Contains reports whether (fromStopID, toStopID) is a valid pair on the
// route, origin preceding destination.
func (ix *Index) Contains(fromStopID, toStopID int64) bool {
	from, ok := ix.pos[fromStopID]
	if !ok {
		return false
	}
	to, ok := ix.pos[toStopID]
	if !ok {
		return false
	}
	return from < to
}

// SpanRanks resolves a stop pair to the elementary-segment ranks it spans:
// the half-open range [pos(from), pos(to)) over adjacent stops.
func (ix *Index) SpanRanks(fromStopID, toStopID int64) ([]int, error) {
	from, ok := ix.pos[fromStopID]
	if !ok {
		return nil, apperrors.New(apperrors.KindNotFound,
			"stop %d is not on the route", fromStopID)
	}
	to, ok := ix.pos[toStopID]
	if !ok {
		return nil, apperrors.New(apperrors.KindNotFound,
			"stop %d is not on the route", toStopID)
	}
	if from >= to {
		return nil, apperrors.New(apperrors.KindInvalidRoute,
			"origin stop %d does not precede destination stop %d", fromStopID, toStopID)
	}

	ranks := make([]int, 0, to-from)
	for r := from; r < to; r++ {
		ranks = append(ranks, r)
	}
	return ranks, nil
}
