package models

// Pricelist is a named set of per-pair fares a departure sells under.
type Pricelist struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Price is the fare for one (origin, destination) stop pair. Only pairs with
// a price row are sellable on departures using the price list.
type Price struct {
	ID              int64   `json:"id" db:"id"`
	PricelistID     int64   `json:"pricelist_id" db:"pricelist_id"`
	DepartureStopID int64   `json:"departure_stop_id" db:"departure_stop_id"`
	ArrivalStopID   int64   `json:"arrival_stop_id" db:"arrival_stop_id"`
	Price           float64 `json:"price" db:"price"`
}

// PriceWithStops is a price joined with its stop names for listing.
type PriceWithStops struct {
	Price
	DepartureStopName string `json:"departure_stop_name" db:"departure_stop_name"`
	ArrivalStopName   string `json:"arrival_stop_name" db:"arrival_stop_name"`
}

// CreatePricelistRequest is the payload for creating a price list.
type CreatePricelistRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreatePriceRequest is the payload for creating or updating a price.
type CreatePriceRequest struct {
	PricelistID     int64   `json:"pricelist_id" binding:"required"`
	DepartureStopID int64   `json:"departure_stop_id" binding:"required"`
	ArrivalStopID   int64   `json:"arrival_stop_id" binding:"required"`
	Price           float64 `json:"price" binding:"required,gt=0"`
}
