package database

import (
	"github.com/jmoiron/sqlx"

	"github.com/intercityline/booking-backend/internal/apperrors"
	"github.com/intercityline/booking-backend/internal/models"
)

// PassengerRepository handles database operations for passengers.
type PassengerRepository struct {
	db *sqlx.DB
}

// NewPassengerRepository creates a new PassengerRepository.
func NewPassengerRepository(db *sqlx.DB) *PassengerRepository {
	return &PassengerRepository{db: db}
}

// List returns all passengers ordered by ID.
func (r *PassengerRepository) List() ([]models.Passenger, error) {
	passengers := []models.Passenger{}
	err := r.db.Select(&passengers,
		`SELECT id, name, phone, email FROM passenger ORDER BY id ASC`)
	return passengers, err
}

// GetByID returns one passenger.
func (r *PassengerRepository) GetByID(id int64) (*models.Passenger, error) {
	var passenger models.Passenger
	err := r.db.Get(&passenger,
		`SELECT id, name, phone, email FROM passenger WHERE id = $1`, id)
	if IsNoRows(err) {
		return nil, apperrors.New(apperrors.KindNotFound, "passenger %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &passenger, nil
}

// Create inserts a passenger.
func (r *PassengerRepository) Create(req *models.CreatePassengerRequest) (*models.Passenger, error) {
	passenger := &models.Passenger{Name: req.Name, Phone: req.Phone, Email: req.Email}
	err := r.db.QueryRow(`
		INSERT INTO passenger (name, phone, email)
		VALUES ($1, $2, $3)
		RETURNING id
	`, req.Name, req.Phone, req.Email).Scan(&passenger.ID)
	if err != nil {
		return nil, err
	}
	return passenger, nil
}

// CreateTx inserts a passenger inside the given transaction, so the sale
// record and its passenger commit or roll back together.
func (r *PassengerRepository) CreateTx(tx *sqlx.Tx, passenger *models.Passenger) error {
	return tx.QueryRow(`
		INSERT INTO passenger (name, phone, email)
		VALUES ($1, $2, $3)
		RETURNING id
	`, passenger.Name, passenger.Phone, passenger.Email).Scan(&passenger.ID)
}
