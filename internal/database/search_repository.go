package database

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/intercityline/booking-backend/internal/models"
)

// SearchRepository answers the public trip-search queries over the
// availability aggregates. Read-only; no consistency obligations.
type SearchRepository struct {
	db *sqlx.DB
}

// NewSearchRepository creates a new SearchRepository.
func NewSearchRepository(db *sqlx.DB) *SearchRepository {
	return &SearchRepository{db: db}
}

// DepartureStops returns the stops one can currently depart from: origins
// of at least one aggregate row with free seats.
func (r *SearchRepository) DepartureStops() ([]models.Stop, error) {
	stops := []models.Stop{}
	err := r.db.Select(&stops, `
		SELECT DISTINCT s.id, s.stop_name
		FROM available a
		JOIN stop s ON s.id = a.departure_stop_id
		WHERE a.seats > 0
		ORDER BY s.id ASC
	`)
	return stops, err
}

// ArrivalStops returns the stops reachable from an origin with free seats.
func (r *SearchRepository) ArrivalStops(departureStopID int64) ([]models.Stop, error) {
	stops := []models.Stop{}
	err := r.db.Select(&stops, `
		SELECT DISTINCT s.id, s.stop_name
		FROM available a
		JOIN stop s ON s.id = a.arrival_stop_id
		WHERE a.departure_stop_id = $1 AND a.seats > 0
		ORDER BY s.id ASC
	`, departureStopID)
	return stops, err
}

// Dates returns the departure dates on which the pair is sellable with free
// seats, ascending.
func (r *SearchRepository) Dates(departureStopID, arrivalStopID int64) ([]time.Time, error) {
	dates := []time.Time{}
	err := r.db.Select(&dates, `
		SELECT DISTINCT d.date
		FROM departure d
		JOIN available a ON a.departure_id = d.id
		WHERE a.departure_stop_id = $1 AND a.arrival_stop_id = $2 AND a.seats > 0
		ORDER BY d.date ASC
	`, departureStopID, arrivalStopID)
	return dates, err
}
