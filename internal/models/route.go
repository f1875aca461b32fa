package models

// Route is an ordered sequence of stops a bus runs along.
type Route struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// RouteStop is one stop on a route. Order is unique per route and strictly
// increasing along the direction of travel.
type RouteStop struct {
	ID            int64   `json:"id" db:"id"`
	RouteID       int64   `json:"route_id" db:"route_id"`
	StopID        int64   `json:"stop_id" db:"stop_id"`
	Order         int     `json:"order" db:"stop_order"`
	ArrivalTime   *string `json:"arrival_time,omitempty" db:"arrival_time"`
	DepartureTime *string `json:"departure_time,omitempty" db:"departure_time"`
}

// CreateRouteRequest is the payload for creating a route.
type CreateRouteRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateRouteStopRequest adds or updates a stop on a route.
type CreateRouteStopRequest struct {
	StopID        int64   `json:"stop_id" binding:"required"`
	Order         int     `json:"order" binding:"required"`
	ArrivalTime   *string `json:"arrival_time"`
	DepartureTime *string `json:"departure_time"`
}
