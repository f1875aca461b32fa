package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/intercityline/booking-backend/internal/database"
	"github.com/intercityline/booking-backend/internal/models"
)

// PricelistHandler handles price list and price HTTP requests.
type PricelistHandler struct {
	pricelistRepo *database.PricelistRepository
	logger        *logrus.Logger
}

// NewPricelistHandler creates a new price list handler.
func NewPricelistHandler(pricelistRepo *database.PricelistRepository, logger *logrus.Logger) *PricelistHandler {
	return &PricelistHandler{pricelistRepo: pricelistRepo, logger: logger}
}

// List handles GET /api/v1/pricelists
func (h *PricelistHandler) List(c *gin.Context) {
	lists, err := h.pricelistRepo.List()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, lists)
}

// Get handles GET /api/v1/pricelists/:id
func (h *PricelistHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	list, err := h.pricelistRepo.GetByID(id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Create handles POST /api/v1/pricelists
func (h *PricelistHandler) Create(c *gin.Context) {
	var req models.CreatePricelistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	list, err := h.pricelistRepo.Create(req.Name)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, list)
}

// Delete handles DELETE /api/v1/pricelists/:id
func (h *PricelistHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.pricelistRepo.Delete(id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPrices handles GET /api/v1/pricelists/:id/prices
func (h *PricelistHandler) ListPrices(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if _, err := h.pricelistRepo.GetByID(id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	prices, err := h.pricelistRepo.ListPrices(id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, prices)
}

// CreatePrice handles POST /api/v1/prices
func (h *PricelistHandler) CreatePrice(c *gin.Context) {
	var req models.CreatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if _, err := h.pricelistRepo.GetByID(req.PricelistID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	price, err := h.pricelistRepo.CreatePrice(&req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, price)
}

// UpdatePrice handles PUT /api/v1/prices/:id
func (h *PricelistHandler) UpdatePrice(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req models.CreatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	price, err := h.pricelistRepo.UpdatePrice(id, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, price)
}

// DeletePrice handles DELETE /api/v1/prices/:id
func (h *PricelistHandler) DeletePrice(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.pricelistRepo.DeletePrice(id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
