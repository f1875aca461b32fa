package database

import (
	"github.com/jmoiron/sqlx"

	"github.com/intercityline/booking-backend/internal/apperrors"
	"github.com/intercityline/booking-backend/internal/models"
)

// AvailabilityRepository handles the denormalized free-seat counts per
// (departure, origin, destination) pair.
type AvailabilityRepository struct {
	db *sqlx.DB
}

// NewAvailabilityRepository creates a new AvailabilityRepository.
func NewAvailabilityRepository(db *sqlx.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// GetByDeparture returns the availability rows of a departure ascending by
// origin then destination.
func (r *AvailabilityRepository) GetByDeparture(departureID int64) ([]models.Availability, error) {
	rows := []models.Availability{}
	err := r.db.Select(&rows, `
		SELECT id, departure_id, departure_stop_id, arrival_stop_id, seats
		FROM available
		WHERE departure_id = $1
		ORDER BY departure_stop_id ASC, arrival_stop_id ASC
	`, departureID)
	return rows, err
}

// GetByDepartureTx is GetByDeparture inside a transaction, so the booking
// transactor decrements against the same snapshot it locked the seat in.
func (r *AvailabilityRepository) GetByDepartureTx(tx *sqlx.Tx, departureID int64) ([]models.Availability, error) {
	rows := []models.Availability{}
	err := tx.Select(&rows, `
		SELECT id, departure_id, departure_stop_id, arrival_stop_id, seats
		FROM available
		WHERE departure_id = $1
		ORDER BY departure_stop_id ASC, arrival_stop_id ASC
	`, departureID)
	return rows, err
}

// InsertTx inserts one aggregate row inside the given transaction.
func (r *AvailabilityRepository) InsertTx(tx *sqlx.Tx, row *models.Availability) error {
	return tx.QueryRow(`
		INSERT INTO available (departure_id, departure_stop_id, arrival_stop_id, seats)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, row.DepartureID, row.DepartureStopID, row.ArrivalStopID, row.Seats).Scan(&row.ID)
}

// DecrementTx subtracts one free seat from the aggregate row of a pair.
// A zero count can only be hit when the aggregate drifted from the seat
// rows, so that surfaces as StaleState rather than going negative.
func (r *AvailabilityRepository) DecrementTx(tx *sqlx.Tx, departureID, fromStopID, toStopID int64) error {
	result, err := tx.Exec(`
		UPDATE available
		SET seats = seats - 1
		WHERE departure_id = $1 AND departure_stop_id = $2 AND arrival_stop_id = $3
		  AND seats > 0
	`, departureID, fromStopID, toStopID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.New(apperrors.KindStaleState,
			"availability for departure %d pair (%d,%d) is out of sync",
			departureID, fromStopID, toStopID)
	}
	return nil
}

// DeleteByDepartureTx removes all aggregate rows of a departure inside the
// given transaction.
func (r *AvailabilityRepository) DeleteByDepartureTx(tx *sqlx.Tx, departureID int64) error {
	_, err := tx.Exec(`DELETE FROM available WHERE departure_id = $1`, departureID)
	return err
}
