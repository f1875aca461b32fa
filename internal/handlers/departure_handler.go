package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/intercityline/booking-backend/internal/database"
	"github.com/intercityline/booking-backend/internal/models"
	"github.com/intercityline/booking-backend/internal/services"
)

// DepartureHandler handles departure lifecycle and inventory-view HTTP
// requests.
type DepartureHandler struct {
	departureService *services.DepartureService
	bookingService   *services.BookingService
	departureRepo    *database.DepartureRepository
	availabilityRepo *database.AvailabilityRepository
	logger           *logrus.Logger
}

// NewDepartureHandler creates a new departure handler.
func NewDepartureHandler(
	departureService *services.DepartureService,
	bookingService *services.BookingService,
	departureRepo *database.DepartureRepository,
	availabilityRepo *database.AvailabilityRepository,
	logger *logrus.Logger,
) *DepartureHandler {
	return &DepartureHandler{
		departureService: departureService,
		bookingService:   bookingService,
		departureRepo:    departureRepo,
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// List handles GET /api/v1/departures
func (h *DepartureHandler) List(c *gin.Context) {
	departures, err := h.departureRepo.List()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, departures)
}

// Get handles GET /api/v1/departures/:id
func (h *DepartureHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	departure, err := h.departureRepo.GetByID(id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, departure)
}

// Create handles POST /api/v1/departures
func (h *DepartureHandler) Create(c *gin.Context) {
	var req models.CreateDepartureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	departure, err := h.departureService.Create(&req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, departure)
}

// Update handles PUT /api/v1/departures/:id
func (h *DepartureHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req models.CreateDepartureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	departure, err := h.departureService.Edit(id, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, departure)
}

// Delete handles DELETE /api/v1/departures/:id?force=true
func (h *DepartureHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	force := c.Query("force") == "true"
	if err := h.departureService.Delete(id, force); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SeatLayout handles GET /api/v1/departures/:id/seats?from=&to=
func (h *DepartureHandler) SeatLayout(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	from, ok := queryID(c, "from")
	if !ok {
		return
	}
	to, ok := queryID(c, "to")
	if !ok {
		return
	}
	layout, err := h.bookingService.SeatLayout(id, from, to)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, layout)
}

// Availability handles GET /api/v1/departures/:id/availability
func (h *DepartureHandler) Availability(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if _, err := h.departureRepo.GetByID(id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	rows, err := h.availabilityRepo.GetByDeparture(id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
