package database

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/intercityline/booking-backend/internal/apperrors"
	"github.com/intercityline/booking-backend/internal/models"
)

// TicketRepository handles database operations for sold tickets.
type TicketRepository struct {
	db *sqlx.DB
}

// NewTicketRepository creates a new TicketRepository.
func NewTicketRepository(db *sqlx.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// GetByID returns one ticket.
func (r *TicketRepository) GetByID(id int64) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.Get(&ticket, `
		SELECT id, departure_id, seat_id, passenger_id,
		       departure_stop_id, arrival_stop_id, reference, created_at
		FROM ticket
		WHERE id = $1
	`, id)
	if IsNoRows(err) {
		return nil, apperrors.New(apperrors.KindNotFound, "ticket %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// ListByDeparture returns all tickets of a departure.
func (r *TicketRepository) ListByDeparture(departureID int64) ([]models.Ticket, error) {
	tickets := []models.Ticket{}
	err := r.db.Select(&tickets, `
		SELECT id, departure_id, seat_id, passenger_id,
		       departure_stop_id, arrival_stop_id, reference, created_at
		FROM ticket
		WHERE departure_id = $1
		ORDER BY id ASC
	`, departureID)
	return tickets, err
}

// CountByDeparture returns how many tickets were sold for a departure.
func (r *TicketRepository) CountByDeparture(departureID int64) (int, error) {
	var count int
	err := r.db.Get(&count,
		`SELECT COUNT(*) FROM ticket WHERE departure_id = $1`, departureID)
	return count, err
}

// CreateTx inserts a ticket inside the given transaction. A fresh booking
// reference is assigned when the ticket has none.
func (r *TicketRepository) CreateTx(tx *sqlx.Tx, ticket *models.Ticket) error {
	if ticket.Reference == "" {
		ticket.Reference = uuid.New().String()
	}
	return tx.QueryRow(`
		INSERT INTO ticket (departure_id, seat_id, passenger_id,
			departure_stop_id, arrival_stop_id, reference)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, ticket.DepartureID, ticket.SeatID, ticket.PassengerID,
		ticket.DepartureStopID, ticket.ArrivalStopID, ticket.Reference,
	).Scan(&ticket.ID, &ticket.CreatedAt)
}

// DeleteByDepartureTx removes all tickets of a departure inside the given
// transaction. Only the forced departure deletion goes through here.
func (r *TicketRepository) DeleteByDepartureTx(tx *sqlx.Tx, departureID int64) error {
	_, err := tx.Exec(`DELETE FROM ticket WHERE departure_id = $1`, departureID)
	return err
}
