package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/intercityline/booking-backend/internal/database"
	"github.com/intercityline/booking-backend/internal/models"
)

// PassengerHandler handles passenger HTTP requests.
type PassengerHandler struct {
	passengerRepo *database.PassengerRepository
	logger        *logrus.Logger
}

// NewPassengerHandler creates a new passenger handler.
func NewPassengerHandler(passengerRepo *database.PassengerRepository, logger *logrus.Logger) *PassengerHandler {
	return &PassengerHandler{passengerRepo: passengerRepo, logger: logger}
}

// List handles GET /api/v1/passengers
func (h *PassengerHandler) List(c *gin.Context) {
	passengers, err := h.passengerRepo.List()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, passengers)
}

// Get handles GET /api/v1/passengers/:id
func (h *PassengerHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	passenger, err := h.passengerRepo.GetByID(id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, passenger)
}

// Create handles POST /api/v1/passengers
func (h *PassengerHandler) Create(c *gin.Context) {
	var req models.CreatePassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	passenger, err := h.passengerRepo.Create(&req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, passenger)
}
