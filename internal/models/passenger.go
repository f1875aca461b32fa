package models

// Passenger is the person a ticket was sold to.
type Passenger struct {
	ID    int64   `json:"id" db:"id"`
	Name  string  `json:"name" db:"name"`
	Phone *string `json:"phone,omitempty" db:"phone"`
	Email *string `json:"email,omitempty" db:"email"`
}

// CreatePassengerRequest is the payload for registering a passenger.
type CreatePassengerRequest struct {
	Name  string  `json:"name" binding:"required"`
	Phone *string `json:"phone"`
	Email *string `json:"email" binding:"omitempty,email"`
}
