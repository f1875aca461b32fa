package database

import (
	"github.com/jmoiron/sqlx"

	"github.com/intercityline/booking-backend/internal/apperrors"
	"github.com/intercityline/booking-backend/internal/models"
)

// RouteRepository handles database operations for routes and their ordered
// stop lists.
type RouteRepository struct {
	db *sqlx.DB
}

// NewRouteRepository creates a new RouteRepository.
func NewRouteRepository(db *sqlx.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

// List returns all routes ordered by ID.
func (r *RouteRepository) List() ([]models.Route, error) {
	routes := []models.Route{}
	err := r.db.Select(&routes, `SELECT id, name FROM route ORDER BY id ASC`)
	return routes, err
}

// GetByID returns one route.
func (r *RouteRepository) GetByID(id int64) (*models.Route, error) {
	var route models.Route
	err := r.db.Get(&route, `SELECT id, name FROM route WHERE id = $1`, id)
	if IsNoRows(err) {
		return nil, apperrors.New(apperrors.KindNotFound, "route %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &route, nil
}

// Create inserts a route.
func (r *RouteRepository) Create(name string) (*models.Route, error) {
	route := &models.Route{Name: name}
	err := r.db.QueryRow(
		`INSERT INTO route (name) VALUES ($1) RETURNING id`, name,
	).Scan(&route.ID)
	if err != nil {
		return nil, err
	}
	return route, nil
}

// Delete removes a route and its stop list.
func (r *RouteRepository) Delete(id int64) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM routestop WHERE route_id = $1`, id); err != nil {
		return err
	}
	result, err := tx.Exec(`DELETE FROM route WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.New(apperrors.KindNotFound, "route %d not found", id)
	}
	return tx.Commit()
}

// GetStops returns the stops of a route ascending by order.
func (r *RouteRepository) GetStops(routeID int64) ([]models.RouteStop, error) {
	stops := []models.RouteStop{}
	err := r.db.Select(&stops, `
		SELECT id, route_id, stop_id, stop_order, arrival_time, departure_time
		FROM routestop
		WHERE route_id = $1
		ORDER BY stop_order ASC
	`, routeID)
	return stops, err
}

// OrderedStopIDs returns the stop IDs of a route ascending by order. This
// is the input of the segment deriver.
func (r *RouteRepository) OrderedStopIDs(routeID int64) ([]int64, error) {
	ids := []int64{}
	err := r.db.Select(&ids, `
		SELECT stop_id FROM routestop
		WHERE route_id = $1
		ORDER BY stop_order ASC
	`, routeID)
	return ids, err
}

// AddStop appends a stop to a route.
func (r *RouteRepository) AddStop(routeID int64, req *models.CreateRouteStopRequest) (*models.RouteStop, error) {
	stop := &models.RouteStop{
		RouteID:       routeID,
		StopID:        req.StopID,
		Order:         req.Order,
		ArrivalTime:   req.ArrivalTime,
		DepartureTime: req.DepartureTime,
	}
	err := r.db.QueryRow(`
		INSERT INTO routestop (route_id, stop_id, stop_order, arrival_time, departure_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, routeID, req.StopID, req.Order, req.ArrivalTime, req.DepartureTime).Scan(&stop.ID)
	if err != nil {
		return nil, err
	}
	return stop, nil
}

// UpdateStop updates one stop of a route.
func (r *RouteRepository) UpdateStop(routeID, routeStopID int64, req *models.CreateRouteStopRequest) (*models.RouteStop, error) {
	result, err := r.db.Exec(`
		UPDATE routestop
		SET stop_id = $3, stop_order = $4, arrival_time = $5, departure_time = $6
		WHERE id = $1 AND route_id = $2
	`, routeStopID, routeID, req.StopID, req.Order, req.ArrivalTime, req.DepartureTime)
	if err != nil {
		return nil, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperrors.New(apperrors.KindNotFound,
			"route stop %d not found on route %d", routeStopID, routeID)
	}
	return &models.RouteStop{
		ID:            routeStopID,
		RouteID:       routeID,
		StopID:        req.StopID,
		Order:         req.Order,
		ArrivalTime:   req.ArrivalTime,
		DepartureTime: req.DepartureTime,
	}, nil
}

// DeleteStop removes one stop from a route.
func (r *RouteRepository) DeleteStop(routeID, routeStopID int64) error {
	result, err := r.db.Exec(
		`DELETE FROM routestop WHERE id = $1 AND route_id = $2`, routeStopID, routeID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.New(apperrors.KindNotFound,
			"route stop %d not found on route %d", routeStopID, routeID)
	}
	return nil
}
