package database

import (
	"github.com/jmoiron/sqlx"

	"github.com/intercityline/booking-backend/internal/apperrors"
	"github.com/intercityline/booking-backend/internal/models"
)

// PricelistRepository handles database operations for price lists and their
// per-pair prices.
type PricelistRepository struct {
	db *sqlx.DB
}

// NewPricelistRepository creates a new PricelistRepository.
func NewPricelistRepository(db *sqlx.DB) *PricelistRepository {
	return &PricelistRepository{db: db}
}

// List returns all price lists ordered by ID.
func (r *PricelistRepository) List() ([]models.Pricelist, error) {
	lists := []models.Pricelist{}
	err := r.db.Select(&lists, `SELECT id, name FROM pricelist ORDER BY id ASC`)
	return lists, err
}

// GetByID returns one price list.
func (r *PricelistRepository) GetByID(id int64) (*models.Pricelist, error) {
	var list models.Pricelist
	err := r.db.Get(&list, `SELECT id, name FROM pricelist WHERE id = $1`, id)
	if IsNoRows(err) {
		return nil, apperrors.New(apperrors.KindNotFound, "price list %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// Create inserts a price list.
func (r *PricelistRepository) Create(name string) (*models.Pricelist, error) {
	list := &models.Pricelist{Name: name}
	err := r.db.QueryRow(
		`INSERT INTO pricelist (name) VALUES ($1) RETURNING id`, name,
	).Scan(&list.ID)
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Delete removes a price list and its prices.
func (r *PricelistRepository) Delete(id int64) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM prices WHERE pricelist_id = $1`, id); err != nil {
		return err
	}
	result, err := tx.Exec(`DELETE FROM pricelist WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.New(apperrors.KindNotFound, "price list %d not found", id)
	}
	return tx.Commit()
}

// ListPrices returns the prices of a price list joined with stop names.
func (r *PricelistRepository) ListPrices(pricelistID int64) ([]models.PriceWithStops, error) {
	prices := []models.PriceWithStops{}
	err := r.db.Select(&prices, `
		SELECT p.id, p.pricelist_id, p.departure_stop_id, p.arrival_stop_id, p.price,
		       s1.stop_name AS departure_stop_name,
		       s2.stop_name AS arrival_stop_name
		FROM prices p
		JOIN stop s1 ON p.departure_stop_id = s1.id
		JOIN stop s2 ON p.arrival_stop_id = s2.id
		WHERE p.pricelist_id = $1
		ORDER BY p.id ASC
	`, pricelistID)
	return prices, err
}

// PricedPairs returns the (origin, destination) pairs that carry a price on
// the list. Only these pairs become availability rows.
func (r *PricelistRepository) PricedPairs(pricelistID int64) ([]models.Price, error) {
	prices := []models.Price{}
	err := r.db.Select(&prices, `
		SELECT id, pricelist_id, departure_stop_id, arrival_stop_id, price
		FROM prices
		WHERE pricelist_id = $1
		ORDER BY departure_stop_id ASC, arrival_stop_id ASC
	`, pricelistID)
	return prices, err
}

// CreatePrice inserts a price row.
func (r *PricelistRepository) CreatePrice(req *models.CreatePriceRequest) (*models.Price, error) {
	price := &models.Price{
		PricelistID:     req.PricelistID,
		DepartureStopID: req.DepartureStopID,
		ArrivalStopID:   req.ArrivalStopID,
		Price:           req.Price,
	}
	err := r.db.QueryRow(`
		INSERT INTO prices (pricelist_id, departure_stop_id, arrival_stop_id, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, req.PricelistID, req.DepartureStopID, req.ArrivalStopID, req.Price).Scan(&price.ID)
	if err != nil {
		return nil, err
	}
	return price, nil
}

// UpdatePrice updates a price row.
func (r *PricelistRepository) UpdatePrice(priceID int64, req *models.CreatePriceRequest) (*models.Price, error) {
	result, err := r.db.Exec(`
		UPDATE prices
		SET pricelist_id = $2, departure_stop_id = $3, arrival_stop_id = $4, price = $5
		WHERE id = $1
	`, priceID, req.PricelistID, req.DepartureStopID, req.ArrivalStopID, req.Price)
	if err != nil {
		return nil, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperrors.New(apperrors.KindNotFound, "price %d not found", priceID)
	}
	return &models.Price{
		ID:              priceID,
		PricelistID:     req.PricelistID,
		DepartureStopID: req.DepartureStopID,
		ArrivalStopID:   req.ArrivalStopID,
		Price:           req.Price,
	}, nil
}

// DeletePrice removes a price row.
func (r *PricelistRepository) DeletePrice(priceID int64) error {
	result, err := r.db.Exec(`DELETE FROM prices WHERE id = $1`, priceID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperrors.New(apperrors.KindNotFound, "price %d not found", priceID)
	}
	return nil
}
