package models

// SeatStatus is the per-seat state reported for one (origin, destination)
// pair in the seat layout view.
type SeatStatus string

const (
	SeatStatusAvailable SeatStatus = "available"
	SeatStatusOccupied  SeatStatus = "occupied"
	SeatStatusBlocked   SeatStatus = "blocked"
)

// Seat is one physical seat of a departure. Available is nil for seats that
// were never offered for sale (blocked in the chosen layout); otherwise it
// holds the elementary-segment ranks the seat is still free for.
type Seat struct {
	ID          int64        `json:"id" db:"id"`
	DepartureID int64        `json:"departure_id" db:"departure_id"`
	SeatNum     int          `json:"seat_num" db:"seat_num"`
	Available   SegmentRanks `json:"available" db:"available_segments"`
}

// Active reports whether the seat was offered for sale at all.
func (s *Seat) Active() bool {
	return s.Available != nil
}

// SeatLayoutEntry is one row of the seat layout view for a stop pair.
type SeatLayoutEntry struct {
	SeatNumber int        `json:"seat_number"`
	Status     SeatStatus `json:"status"`
}
