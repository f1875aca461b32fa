package models

// ReportFilters narrows the sales report. All fields are optional and
// combined with AND.
type ReportFilters struct {
	StartDate       *string `json:"start_date"`
	EndDate         *string `json:"end_date"`
	RouteID         *int64  `json:"route_id"`
	DepartureID     *int64  `json:"departure_id"`
	DepartureStopID *int64  `json:"departure_stop_id"`
	ArrivalStopID   *int64  `json:"arrival_stop_id"`
}

// ReportSummary totals the filtered ticket set.
type ReportSummary struct {
	TotalTickets int     `json:"total_tickets" db:"total_tickets"`
	TotalSales   float64 `json:"total_sales" db:"total_sales"`
}

// ReportTicket is one sold ticket joined with its route, stop and price
// context for reporting.
type ReportTicket struct {
	TicketID          int64   `json:"ticket_id" db:"ticket_id"`
	DepartureID       int64   `json:"departure_id" db:"departure_id"`
	SeatNum           int     `json:"seat_num" db:"seat_num"`
	Price             float64 `json:"price" db:"price"`
	PassengerName     *string `json:"passenger_name,omitempty" db:"passenger_name"`
	PassengerPhone    *string `json:"passenger_phone,omitempty" db:"passenger_phone"`
	PassengerEmail    *string `json:"passenger_email,omitempty" db:"passenger_email"`
	DepartureDate     string  `json:"departure_date" db:"departure_date"`
	RouteName         string  `json:"route_name" db:"route_name"`
	DepartureStopName *string `json:"departure_stop_name,omitempty" db:"departure_stop_name"`
	ArrivalStopName   *string `json:"arrival_stop_name,omitempty" db:"arrival_stop_name"`
}

// Report is the sales report response: a summary plus ticket details.
type Report struct {
	Summary ReportSummary  `json:"summary"`
	Tickets []ReportTicket `json:"tickets"`
}
