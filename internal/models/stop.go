package models

// Stop is a named boarding point referenced by routes and prices.
type Stop struct {
	ID       int64  `json:"id" db:"id"`
	StopName string `json:"stop_name" db:"stop_name"`
}

// CreateStopRequest is the payload for creating or renaming a stop.
type CreateStopRequest struct {
	StopName string `json:"stop_name" binding:"required"`
}
