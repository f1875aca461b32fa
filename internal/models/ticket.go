package models

import "time"

// Ticket is the immutable record of one sale. It references its seat and
// departure but is only removed by a forced departure deletion.
type Ticket struct {
	ID              int64     `json:"id" db:"id"`
	DepartureID     int64     `json:"departure_id" db:"departure_id"`
	SeatID          int64     `json:"seat_id" db:"seat_id"`
	PassengerID     int64     `json:"passenger_id" db:"passenger_id"`
	DepartureStopID int64     `json:"departure_stop_id" db:"departure_stop_id"`
	ArrivalStopID   int64     `json:"arrival_stop_id" db:"arrival_stop_id"`
	Reference       string    `json:"reference" db:"reference"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// BookSeatRequest is the payload for selling one seat over a stop pair.
type BookSeatRequest struct {
	SeatNum         int     `json:"seat_num" binding:"required"`
	DepartureStopID int64   `json:"departure_stop_id" binding:"required"`
	ArrivalStopID   int64   `json:"arrival_stop_id" binding:"required"`
	PassengerName   string  `json:"passenger_name" binding:"required"`
	PassengerPhone  *string `json:"passenger_phone"`
	PassengerEmail  *string `json:"passenger_email" binding:"omitempty,email"`
}
