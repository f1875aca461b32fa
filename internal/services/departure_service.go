package services

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/intercityline/booking-backend/internal/apperrors"
	"github.com/intercityline/booking-backend/internal/database"
	"github.com/intercityline/booking-backend/internal/models"
	"github.com/intercityline/booking-backend/internal/segments"
)

// DepartureService is the departure lifecycle manager. Creating or editing
// a departure derives the route's segments, lays out the seats and computes
// the availability aggregates in one transaction; deleting cascades the
// owned rows.
type DepartureService struct {
	db               *sqlx.DB
	departureRepo    *database.DepartureRepository
	routeRepo        *database.RouteRepository
	pricelistRepo    *database.PricelistRepository
	seatRepo         *database.SeatRepository
	availabilityRepo *database.AvailabilityRepository
	ticketRepo       *database.TicketRepository
	logger           *logrus.Logger
}

// NewDepartureService creates a new DepartureService.
func NewDepartureService(
	db *sqlx.DB,
	departureRepo *database.DepartureRepository,
	routeRepo *database.RouteRepository,
	pricelistRepo *database.PricelistRepository,
	seatRepo *database.SeatRepository,
	availabilityRepo *database.AvailabilityRepository,
	ticketRepo *database.TicketRepository,
	logger *logrus.Logger,
) *DepartureService {
	return &DepartureService{
		db:               db,
		departureRepo:    departureRepo,
		routeRepo:        routeRepo,
		pricelistRepo:    pricelistRepo,
		seatRepo:         seatRepo,
		availabilityRepo: availabilityRepo,
		ticketRepo:       ticketRepo,
		logger:           logger,
	}
}

// inventoryPlan is everything derived up front for one departure: the
// segment index, the seat rows to insert and the aggregate rows to insert.
type inventoryPlan struct {
	index     *segments.Index
	seatCount int
	seats     []models.Seat
	aggregate []models.Availability
}

// planInventory derives the full inventory for a departure. No side
// effects; every failure aborts before any row is written.
func (s *DepartureService) planInventory(routeID, pricelistID int64, layoutVariant int, activeSeats []int) (*inventoryPlan, error) {
	seatCount, ok := models.SeatCountForLayout(layoutVariant)
	if !ok {
		return nil, apperrors.New(apperrors.KindUnknownLayoutVariant,
			"layout variant %d is not known", layoutVariant)
	}

	stopIDs, err := s.routeRepo.OrderedStopIDs(routeID)
	if err != nil {
		return nil, err
	}
	index, err := segments.NewIndex(stopIDs)
	if err != nil {
		return nil, err
	}

	active := make(map[int]bool, len(activeSeats))
	for _, num := range activeSeats {
		if num < 1 || num > seatCount {
			return nil, apperrors.New(apperrors.KindConflict,
				"active seat %d is outside the layout (1..%d)", num, seatCount)
		}
		active[num] = true
	}

	prices, err := s.pricelistRepo.PricedPairs(pricelistID)
	if err != nil {
		return nil, err
	}

	return &inventoryPlan{
		index:     index,
		seatCount: seatCount,
		seats:     buildSeats(seatCount, active, index.NumElementary()),
		aggregate: buildAggregates(index, prices, len(active)),
	}, nil
}

// buildSeats produces one seat row per number 1..seatCount. Active seats
// start free on every elementary segment; all others get the NULL sentinel
// and can never be sold, no matter what the aggregates say.
func buildSeats(seatCount int, active map[int]bool, numElementary int) []models.Seat {
	seats := make([]models.Seat, 0, seatCount)
	for num := 1; num <= seatCount; num++ {
		seat := models.Seat{SeatNum: num}
		if active[num] {
			seat.Available = models.SegmentRanks(segments.FullMask(numElementary).Ranks())
		}
		seats = append(seats, seat)
	}
	return seats
}

// buildAggregates produces one availability row per priced pair that lies
// on the route in travel direction. Pairs without a price, or off the
// route, are skipped silently. On a fresh layout every active seat covers
// every segment, so each row starts at the active-seat count.
func buildAggregates(index *segments.Index, prices []models.Price, activeCount int) []models.Availability {
	rows := make([]models.Availability, 0, len(prices))
	for _, price := range prices {
		if !index.Contains(price.DepartureStopID, price.ArrivalStopID) {
			continue
		}
		rows = append(rows, models.Availability{
			DepartureStopID: price.DepartureStopID,
			ArrivalStopID:   price.ArrivalStopID,
			Seats:           activeCount,
		})
	}
	return rows
}

// Create schedules a departure: derive segments, generate seats, compute
// aggregates, all inside one transaction. Any failure leaves no rows.
func (s *DepartureService) Create(req *models.CreateDepartureRequest) (*models.Departure, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindValidation,
			"date %q is not in YYYY-MM-DD form", req.Date)
	}

	plan, err := s.planInventory(req.RouteID, req.PricelistID, req.LayoutVariant, req.ActiveSeats)
	if err != nil {
		return nil, err
	}

	departure := &models.Departure{
		RouteID:       req.RouteID,
		PricelistID:   req.PricelistID,
		Date:          date,
		LayoutVariant: req.LayoutVariant,
		SeatCount:     plan.seatCount,
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := s.departureRepo.CreateTx(tx, departure); err != nil {
		return nil, err
	}
	if err := s.writeInventoryTx(tx, departure.ID, plan); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"departure_id": departure.ID,
		"route_id":     departure.RouteID,
		"seat_count":   plan.seatCount,
		"active_seats": len(req.ActiveSeats),
		"aggregates":   len(plan.aggregate),
	}).Info("Departure created")

	return departure, nil
}

// Edit rebuilds a departure's seats and aggregates for a new active-seat
// set (and optionally new route, price list, date or layout). Editing is
// refused once any ticket exists: a flat recount would detach the
// aggregates from sold seats.
func (s *DepartureService) Edit(departureID int64, req *models.CreateDepartureRequest) (*models.Departure, error) {
	departure, err := s.departureRepo.GetByID(departureID)
	if err != nil {
		return nil, err
	}

	sold, err := s.ticketRepo.CountByDeparture(departureID)
	if err != nil {
		return nil, err
	}
	if sold > 0 {
		return nil, apperrors.New(apperrors.KindConflict,
			"departure %d has %d sold tickets, seats cannot be edited", departureID, sold)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindValidation,
			"date %q is not in YYYY-MM-DD form", req.Date)
	}

	plan, err := s.planInventory(req.RouteID, req.PricelistID, req.LayoutVariant, req.ActiveSeats)
	if err != nil {
		return nil, err
	}

	departure.RouteID = req.RouteID
	departure.PricelistID = req.PricelistID
	departure.Date = date
	departure.LayoutVariant = req.LayoutVariant
	departure.SeatCount = plan.seatCount

	tx, err := s.db.Beginx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := s.departureRepo.UpdateTx(tx, departure); err != nil {
		return nil, err
	}
	if err := s.seatRepo.DeleteByDepartureTx(tx, departureID); err != nil {
		return nil, err
	}
	if err := s.availabilityRepo.DeleteByDepartureTx(tx, departureID); err != nil {
		return nil, err
	}
	if err := s.writeInventoryTx(tx, departureID, plan); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"departure_id": departureID,
		"active_seats": len(req.ActiveSeats),
	}).Info("Departure inventory rebuilt")

	return departure, nil
}

// Delete removes a departure. With tickets sold it fails Conflict unless
// force is set, in which case tickets, seats and aggregates cascade before
// the departure row goes.
func (s *DepartureService) Delete(departureID int64, force bool) error {
	if _, err := s.departureRepo.GetByID(departureID); err != nil {
		return err
	}

	sold, err := s.ticketRepo.CountByDeparture(departureID)
	if err != nil {
		return err
	}
	if sold > 0 && !force {
		return apperrors.New(apperrors.KindConflict,
			"departure %d has %d sold tickets, pass force to delete", departureID, sold)
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.ticketRepo.DeleteByDepartureTx(tx, departureID); err != nil {
		return err
	}
	if err := s.seatRepo.DeleteByDepartureTx(tx, departureID); err != nil {
		return err
	}
	if err := s.availabilityRepo.DeleteByDepartureTx(tx, departureID); err != nil {
		return err
	}
	if err := s.departureRepo.DeleteTx(tx, departureID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"departure_id": departureID,
		"force":        force,
		"tickets_sold": sold,
	}).Info("Departure deleted")

	return nil
}

// writeInventoryTx persists a plan's seat and aggregate rows.
func (s *DepartureService) writeInventoryTx(tx *sqlx.Tx, departureID int64, plan *inventoryPlan) error {
	for i := range plan.seats {
		plan.seats[i].DepartureID = departureID
	}
	if err := s.seatRepo.InsertBatchTx(tx, plan.seats); err != nil {
		return err
	}
	for i := range plan.aggregate {
		plan.aggregate[i].DepartureID = departureID
		if err := s.availabilityRepo.InsertTx(tx, &plan.aggregate[i]); err != nil {
			return err
		}
	}
	return nil
}
