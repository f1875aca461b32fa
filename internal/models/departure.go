package models

import "time"

// Layout variants selectable for a departure. The seat count is fixed per
// variant; unknown variants are rejected before any row is written.
const (
	LayoutVariantNeoplan = 1
	LayoutVariantTravego = 2
)

var layoutSeatCounts = map[int]int{
	LayoutVariantNeoplan: 46,
	LayoutVariantTravego: 48,
}

// SeatCountForLayout resolves a layout variant to its total seat count.
func SeatCountForLayout(variant int) (int, bool) {
	count, ok := layoutSeatCounts[variant]
	return count, ok
}

// Departure is one scheduled run of a route on a date, selling under a
// price list with a fixed bus layout. It exclusively owns its seat rows and
// availability rows; tickets reference it but survive independently.
type Departure struct {
	ID            int64     `json:"id" db:"id"`
	RouteID       int64     `json:"route_id" db:"route_id"`
	PricelistID   int64     `json:"pricelist_id" db:"pricelist_id"`
	Date          time.Time `json:"date" db:"date"`
	LayoutVariant int       `json:"layout_variant" db:"layout_variant"`
	SeatCount     int       `json:"seat_count" db:"seat_count"`
}

// CreateDepartureRequest is the payload for scheduling a departure.
// ActiveSeats lists the seat numbers offered for sale; all other numbers in
// the layout become permanently closed placeholder seats.
type CreateDepartureRequest struct {
	RouteID       int64  `json:"route_id" binding:"required"`
	PricelistID   int64  `json:"pricelist_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	LayoutVariant int    `json:"layout_variant" binding:"required"`
	ActiveSeats   []int  `json:"active_seats"`
}
