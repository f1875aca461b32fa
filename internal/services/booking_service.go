package services

import (
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/intercityline/booking-backend/internal/apperrors"
	"github.com/intercityline/booking-backend/internal/database"
	"github.com/intercityline/booking-backend/internal/models"
	"github.com/intercityline/booking-backend/internal/segments"
	"github.com/intercityline/booking-backend/pkg/validator"
)

// BookingService is the booking transactor: it sells one seat over one
// stop pair, keeping the seat encoding, the sale record and the
// availability aggregates consistent inside a single transaction.
type BookingService struct {
	db               *sqlx.DB
	departureRepo    *database.DepartureRepository
	routeRepo        *database.RouteRepository
	seatRepo         *database.SeatRepository
	availabilityRepo *database.AvailabilityRepository
	ticketRepo       *database.TicketRepository
	passengerRepo    *database.PassengerRepository
	phoneValidator   *validator.PhoneValidator
	logger           *logrus.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	db *sqlx.DB,
	departureRepo *database.DepartureRepository,
	routeRepo *database.RouteRepository,
	seatRepo *database.SeatRepository,
	availabilityRepo *database.AvailabilityRepository,
	ticketRepo *database.TicketRepository,
	passengerRepo *database.PassengerRepository,
	phoneValidator *validator.PhoneValidator,
	logger *logrus.Logger,
) *BookingService {
	return &BookingService{
		db:               db,
		departureRepo:    departureRepo,
		routeRepo:        routeRepo,
		seatRepo:         seatRepo,
		availabilityRepo: availabilityRepo,
		ticketRepo:       ticketRepo,
		passengerRepo:    passengerRepo,
		phoneValidator:   phoneValidator,
		logger:           logger,
	}
}

// BookSeat sells one seat for the requested stop pair. The whole attempt
// commits or rolls back together: seat consumption, passenger, ticket and
// aggregate decrements. Lock contention surfaces as retryable StaleState.
func (s *BookingService) BookSeat(departureID int64, req *models.BookSeatRequest) (*models.Ticket, error) {
	departure, err := s.departureRepo.GetByID(departureID)
	if err != nil {
		return nil, err
	}

	stopIDs, err := s.routeRepo.OrderedStopIDs(departure.RouteID)
	if err != nil {
		return nil, err
	}
	index, err := segments.NewIndex(stopIDs)
	if err != nil {
		return nil, err
	}
	bookedRanks, err := index.SpanRanks(req.DepartureStopID, req.ArrivalStopID)
	if err != nil {
		return nil, err
	}

	phone := req.PassengerPhone
	if phone != nil && *phone != "" {
		normalized, err := s.phoneValidator.Normalize(*phone)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.KindValidation,
				"passenger phone %q is not valid", *phone)
		}
		phone = &normalized
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	seat, err := s.seatRepo.GetForUpdateTx(tx, departureID, req.SeatNum)
	if err != nil {
		return nil, s.translate(err)
	}
	if !seat.Active() {
		return nil, apperrors.New(apperrors.KindConflict,
			"seat %d is not offered for sale on departure %d", req.SeatNum, departureID)
	}

	mask, err := segments.MaskFromRanks(index.NumElementary(), seat.Available)
	if err != nil {
		return nil, err
	}
	if !mask.Covers(bookedRanks) {
		return nil, apperrors.New(apperrors.KindConflict,
			"seat %d is already booked between stops %d and %d",
			req.SeatNum, req.DepartureStopID, req.ArrivalStopID)
	}

	aggregate, err := s.availabilityRepo.GetByDepartureTx(tx, departureID)
	if err != nil {
		return nil, s.translate(err)
	}
	pairs := make([]segments.Segment, 0, len(aggregate))
	for _, row := range aggregate {
		pairs = append(pairs, segments.Segment{
			FromStopID: row.DepartureStopID,
			ToStopID:   row.ArrivalStopID,
		})
	}
	lost := index.LostPairs(mask, bookedRanks, pairs)

	if err := mask.Remove(bookedRanks); err != nil {
		return nil, err
	}
	if err := s.seatRepo.UpdateAvailabilityTx(tx, seat.ID, models.SegmentRanks(mask.Ranks())); err != nil {
		return nil, s.translate(err)
	}

	passenger := &models.Passenger{
		Name:  req.PassengerName,
		Phone: phone,
		Email: req.PassengerEmail,
	}
	if err := s.passengerRepo.CreateTx(tx, passenger); err != nil {
		return nil, s.translate(err)
	}

	ticket := &models.Ticket{
		DepartureID:     departureID,
		SeatID:          seat.ID,
		PassengerID:     passenger.ID,
		DepartureStopID: req.DepartureStopID,
		ArrivalStopID:   req.ArrivalStopID,
	}
	if err := s.ticketRepo.CreateTx(tx, ticket); err != nil {
		return nil, s.translate(err)
	}

	for _, pair := range lost {
		if err := s.availabilityRepo.DecrementTx(tx, departureID, pair.FromStopID, pair.ToStopID); err != nil {
			return nil, s.translate(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, s.translate(err)
	}

	s.logger.WithFields(logrus.Fields{
		"departure_id": departureID,
		"seat_num":     req.SeatNum,
		"from_stop":    req.DepartureStopID,
		"to_stop":      req.ArrivalStopID,
		"reference":    ticket.Reference,
	}).Info("Ticket sold")

	return ticket, nil
}

// SeatLayout reports every seat of the departure with its status for the
// requested stop pair.
func (s *BookingService) SeatLayout(departureID, fromStopID, toStopID int64) ([]models.SeatLayoutEntry, error) {
	departure, err := s.departureRepo.GetByID(departureID)
	if err != nil {
		return nil, err
	}

	stopIDs, err := s.routeRepo.OrderedStopIDs(departure.RouteID)
	if err != nil {
		return nil, err
	}
	index, err := segments.NewIndex(stopIDs)
	if err != nil {
		return nil, err
	}
	ranks, err := index.SpanRanks(fromStopID, toStopID)
	if err != nil {
		return nil, err
	}

	seats, err := s.seatRepo.GetByDeparture(departureID)
	if err != nil {
		return nil, err
	}

	layout := make([]models.SeatLayoutEntry, 0, len(seats))
	for _, seat := range seats {
		entry := models.SeatLayoutEntry{SeatNumber: seat.SeatNum, Status: models.SeatStatusBlocked}
		if seat.Active() {
			mask, err := segments.MaskFromRanks(index.NumElementary(), seat.Available)
			if err != nil {
				return nil, err
			}
			if mask.Covers(ranks) {
				entry.Status = models.SeatStatusAvailable
			} else {
				entry.Status = models.SeatStatusOccupied
			}
		}
		layout = append(layout, entry)
	}
	return layout, nil
}

// translate maps store-level lock contention onto the retryable kind.
func (s *BookingService) translate(err error) error {
	if database.IsLockContention(err) {
		return apperrors.Wrap(err, apperrors.KindStaleState,
			"concurrent modification detected, retry the booking")
	}
	return err
}
