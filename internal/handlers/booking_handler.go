package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/intercityline/booking-backend/internal/database"
	"github.com/intercityline/booking-backend/internal/models"
	"github.com/intercityline/booking-backend/internal/services"
)

// BookingHandler handles ticket sale HTTP requests.
type BookingHandler struct {
	bookingService *services.BookingService
	ticketRepo     *database.TicketRepository
	logger         *logrus.Logger
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(
	bookingService *services.BookingService,
	ticketRepo *database.TicketRepository,
	logger *logrus.Logger,
) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		ticketRepo:     ticketRepo,
		logger:         logger,
	}
}

// Book handles POST /api/v1/departures/:id/tickets
func (h *BookingHandler) Book(c *gin.Context) {
	departureID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req models.BookSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	ticket, err := h.bookingService.BookSeat(departureID, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// ListByDeparture handles GET /api/v1/departures/:id/tickets
func (h *BookingHandler) ListByDeparture(c *gin.Context) {
	departureID, ok := paramID(c, "id")
	if !ok {
		return
	}
	tickets, err := h.ticketRepo.ListByDeparture(departureID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// Get handles GET /api/v1/tickets/:id
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ticket, err := h.ticketRepo.GetByID(id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}
