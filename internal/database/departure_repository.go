package database

import (
	"github.com/jmoiron/sqlx"

	"github.com/intercityline/booking-backend/internal/apperrors"
	"github.com/intercityline/booking-backend/internal/models"
)

// DepartureRepository handles database operations for the departure table.
// All writes run inside a caller-owned transaction so the lifecycle manager
// can keep departure, seat and availability rows consistent.
type DepartureRepository struct {
	db *sqlx.DB
}

// NewDepartureRepository creates a new DepartureRepository.
func NewDepartureRepository(db *sqlx.DB) *DepartureRepository {
	return &DepartureRepository{db: db}
}

// List returns all departures ordered by date then ID.
func (r *DepartureRepository) List() ([]models.Departure, error) {
	departures := []models.Departure{}
	err := r.db.Select(&departures, `
		SELECT id, route_id, pricelist_id, date, layout_variant, seat_count
		FROM departure
		ORDER BY date ASC, id ASC
	`)
	return departures, err
}

// GetByID returns one departure.
func (r *DepartureRepository) GetByID(id int64) (*models.Departure, error) {
	var departure models.Departure
	err := r.db.Get(&departure, `
		SELECT id, route_id, pricelist_id, date, layout_variant, seat_count
		FROM departure
		WHERE id = $1
	`, id)
	if IsNoRows(err) {
		return nil, apperrors.New(apperrors.KindNotFound, "departure %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &departure, nil
}

// CreateTx inserts a departure inside the given transaction.
func (r *DepartureRepository) CreateTx(tx *sqlx.Tx, departure *models.Departure) error {
	return tx.QueryRow(`
		INSERT INTO departure (route_id, pricelist_id, date, layout_variant, seat_count)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, departure.RouteID, departure.PricelistID, departure.Date,
		departure.LayoutVariant, departure.SeatCount,
	).Scan(&departure.ID)
}

// UpdateTx rewrites a departure row inside the given transaction.
func (r *DepartureRepository) UpdateTx(tx *sqlx.Tx, departure *models.Departure) error {
	result, err := tx.Exec(`
		UPDATE departure
		SET route_id = $2, pricelist_id = $3, date = $4, layout_variant = $5, seat_count = $6
		WHERE id = $1
	`, departure.ID, departure.RouteID, departure.PricelistID,
		departure.Date, departure.LayoutVariant, departure.SeatCount)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.New(apperrors.KindNotFound, "departure %d not found", departure.ID)
	}
	return nil
}

// DeleteTx removes a departure row inside the given transaction. Seats,
// availability rows and tickets must already be gone.
func (r *DepartureRepository) DeleteTx(tx *sqlx.Tx, id int64) error {
	result, err := tx.Exec(`DELETE FROM departure WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.New(apperrors.KindNotFound, "departure %d not found", id)
	}
	return nil
}
