package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/intercityline/booking-backend/internal/apperrors"
	"github.com/intercityline/booking-backend/internal/models"
)

// SeatRepository handles database operations for per-departure seat rows
// and their segment availability encoding.
type SeatRepository struct {
	db *sqlx.DB
}

// NewSeatRepository creates a new SeatRepository.
func NewSeatRepository(db *sqlx.DB) *SeatRepository {
	return &SeatRepository{db: db}
}

// GetByDeparture returns every seat of a departure ordered by seat number.
func (r *SeatRepository) GetByDeparture(departureID int64) ([]models.Seat, error) {
	seats := []models.Seat{}
	err := r.db.Select(&seats, `
		SELECT id, departure_id, seat_num, available_segments
		FROM seat
		WHERE departure_id = $1
		ORDER BY seat_num ASC
	`, departureID)
	return seats, err
}

// GetForUpdateTx locks and returns one seat by (departure, seat number).
// The row lock excludes a concurrent booking from validating against stale
// availability.
func (r *SeatRepository) GetForUpdateTx(tx *sqlx.Tx, departureID int64, seatNum int) (*models.Seat, error) {
	var seat models.Seat
	err := tx.Get(&seat, `
		SELECT id, departure_id, seat_num, available_segments
		FROM seat
		WHERE departure_id = $1 AND seat_num = $2
		FOR UPDATE
	`, departureID, seatNum)
	if IsNoRows(err) {
		return nil, apperrors.New(apperrors.KindNotFound,
			"seat %d not found on departure %d", seatNum, departureID)
	}
	if err != nil {
		return nil, err
	}
	return &seat, nil
}

// InsertBatchTx inserts the given seats inside the given transaction.
func (r *SeatRepository) InsertBatchTx(tx *sqlx.Tx, seats []models.Seat) error {
	query := `
		INSERT INTO seat (departure_id, seat_num, available_segments)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	for i := range seats {
		err := tx.QueryRow(query,
			seats[i].DepartureID, seats[i].SeatNum, seats[i].Available,
		).Scan(&seats[i].ID)
		if err != nil {
			return fmt.Errorf("failed to insert seat %d: %w", seats[i].SeatNum, err)
		}
	}
	return nil
}

// UpdateAvailabilityTx rewrites a seat's availability encoding inside the
// given transaction. The caller must hold the row lock.
func (r *SeatRepository) UpdateAvailabilityTx(tx *sqlx.Tx, seatID int64, ranks models.SegmentRanks) error {
	result, err := tx.Exec(
		`UPDATE seat SET available_segments = $2 WHERE id = $1`, seatID, ranks)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.New(apperrors.KindNotFound, "seat %d not found", seatID)
	}
	return nil
}

// DeleteByDepartureTx removes all seats of a departure inside the given
// transaction.
func (r *SeatRepository) DeleteByDepartureTx(tx *sqlx.Tx, departureID int64) error {
	_, err := tx.Exec(`DELETE FROM seat WHERE departure_id = $1`, departureID)
	return err
}
