package models

// Availability is the denormalized free-seat count for one sellable
// (origin, destination) pair of a departure. Its count must always equal
// the number of active seats whose encoding still contains every elementary
// segment between the two stops.
type Availability struct {
	ID              int64 `json:"id" db:"id"`
	DepartureID     int64 `json:"departure_id" db:"departure_id"`
	DepartureStopID int64 `json:"departure_stop_id" db:"departure_stop_id"`
	ArrivalStopID   int64 `json:"arrival_stop_id" db:"arrival_stop_id"`
	Seats           int   `json:"seats" db:"seats"`
}
