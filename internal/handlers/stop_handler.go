package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/intercityline/booking-backend/internal/database"
	"github.com/intercityline/booking-backend/internal/models"
)

// StopHandler handles stop-related HTTP requests.
type StopHandler struct {
	stopRepo *database.StopRepository
	logger   *logrus.Logger
}

// NewStopHandler creates a new stop handler.
func NewStopHandler(stopRepo *database.StopRepository, logger *logrus.Logger) *StopHandler {
	return &StopHandler{stopRepo: stopRepo, logger: logger}
}

// List handles GET /api/v1/stops
func (h *StopHandler) List(c *gin.Context) {
	stops, err := h.stopRepo.List()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stops)
}

// Get handles GET /api/v1/stops/:id
func (h *StopHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	stop, err := h.stopRepo.GetByID(id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stop)
}

// Create handles POST /api/v1/stops
func (h *StopHandler) Create(c *gin.Context) {
	var req models.CreateStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	stop, err := h.stopRepo.Create(req.StopName)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, stop)
}

// Update handles PUT /api/v1/stops/:id
func (h *StopHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req models.CreateStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	stop, err := h.stopRepo.Update(id, req.StopName)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stop)
}

// Delete handles DELETE /api/v1/stops/:id
func (h *StopHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.stopRepo.Delete(id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
