package database

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/intercityline/booking-backend/internal/models"
)

// ReportRepository builds the sales report from sold tickets joined with
// their route, stop and price context.
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func reportConditions(filters *models.ReportFilters) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}

	add := func(cond string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filters.StartDate != nil {
		add("d.date >= $%d", *filters.StartDate)
	}
	if filters.EndDate != nil {
		add("d.date <= $%d", *filters.EndDate)
	}
	if filters.RouteID != nil {
		add("r.id = $%d", *filters.RouteID)
	}
	if filters.DepartureID != nil {
		add("t.departure_id = $%d", *filters.DepartureID)
	}
	if filters.DepartureStopID != nil {
		add("t.departure_stop_id = $%d", *filters.DepartureStopID)
	}
	if filters.ArrivalStopID != nil {
		add("t.arrival_stop_id = $%d", *filters.ArrivalStopID)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// Build returns the summary and ticket details matching the filters.
func (r *ReportRepository) Build(filters *models.ReportFilters) (*models.Report, error) {
	where, args := reportConditions(filters)

	summaryQuery := fmt.Sprintf(`
		SELECT COUNT(*) AS total_tickets,
		       COALESCE(SUM(pr.price), 0) AS total_sales
		FROM ticket t
		JOIN departure d ON t.departure_id = d.id
		JOIN route r ON d.route_id = r.id
		JOIN prices pr ON pr.pricelist_id = d.pricelist_id
		              AND pr.departure_stop_id = t.departure_stop_id
		              AND pr.arrival_stop_id = t.arrival_stop_id
		%s
	`, where)

	var summary models.ReportSummary
	if err := r.db.Get(&summary, summaryQuery, args...); err != nil {
		return nil, err
	}

	detailsQuery := fmt.Sprintf(`
		SELECT t.id AS ticket_id,
		       t.departure_id,
		       s.seat_num,
		       pr.price,
		       p.name AS passenger_name,
		       p.phone AS passenger_phone,
		       p.email AS passenger_email,
		       to_char(d.date, 'YYYY-MM-DD') AS departure_date,
		       r.name AS route_name,
		       ds.stop_name AS departure_stop_name,
		       ars.stop_name AS arrival_stop_name
		FROM ticket t
		JOIN departure d ON t.departure_id = d.id
		JOIN route r ON d.route_id = r.id
		JOIN seat s ON t.seat_id = s.id
		LEFT JOIN passenger p ON t.passenger_id = p.id
		LEFT JOIN stop ds ON ds.id = t.departure_stop_id
		LEFT JOIN stop ars ON ars.id = t.arrival_stop_id
		JOIN prices pr ON pr.pricelist_id = d.pricelist_id
		              AND pr.departure_stop_id = t.departure_stop_id
		              AND pr.arrival_stop_id = t.arrival_stop_id
		%s
		ORDER BY d.date DESC, t.id ASC
	`, where)

	tickets := []models.ReportTicket{}
	if err := r.db.Select(&tickets, detailsQuery, args...); err != nil {
		return nil, err
	}

	return &models.Report{Summary: summary, Tickets: tickets}, nil
}
