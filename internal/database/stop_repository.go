package database

import (
	"github.com/jmoiron/sqlx"

	"github.com/intercityline/booking-backend/internal/apperrors"
	"github.com/intercityline/booking-backend/internal/models"
)

// StopRepository handles database operations for the stop table.
type StopRepository struct {
	db *sqlx.DB
}

// NewStopRepository creates a new StopRepository.
func NewStopRepository(db *sqlx.DB) *StopRepository {
	return &StopRepository{db: db}
}

// List returns all stops ordered by ID.
func (r *StopRepository) List() ([]models.Stop, error) {
	stops := []models.Stop{}
	err := r.db.Select(&stops, `SELECT id, stop_name FROM stop ORDER BY id ASC`)
	return stops, err
}

// GetByID returns one stop.
func (r *StopRepository) GetByID(id int64) (*models.Stop, error) {
	var stop models.Stop
	err := r.db.Get(&stop, `SELECT id, stop_name FROM stop WHERE id = $1`, id)
	if IsNoRows(err) {
		return nil, apperrors.New(apperrors.KindNotFound, "stop %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &stop, nil
}

// Create inserts a stop and returns it with its assigned ID.
func (r *StopRepository) Create(name string) (*models.Stop, error) {
	stop := &models.Stop{StopName: name}
	err := r.db.QueryRow(
		`INSERT INTO stop (stop_name) VALUES ($1) RETURNING id`, name,
	).Scan(&stop.ID)
	if err != nil {
		return nil, err
	}
	return stop, nil
}

// Update renames a stop.
func (r *StopRepository) Update(id int64, name string) (*models.Stop, error) {
	result, err := r.db.Exec(`UPDATE stop SET stop_name = $2 WHERE id = $1`, id, name)
	if err != nil {
		return nil, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperrors.New(apperrors.KindNotFound, "stop %d not found", id)
	}
	return &models.Stop{ID: id, StopName: name}, nil
}

// Delete removes a stop.
func (r *StopRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM stop WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.New(apperrors.KindNotFound, "stop %d not found", id)
	}
	return nil
}
