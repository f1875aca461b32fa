package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/intercityline/booking-backend/internal/database"
	"github.com/intercityline/booking-backend/internal/models"
)

// RouteHandler handles route and route-stop HTTP requests.
type RouteHandler struct {
	routeRepo *database.RouteRepository
	logger    *logrus.Logger
}

// NewRouteHandler creates a new route handler.
func NewRouteHandler(routeRepo *database.RouteRepository, logger *logrus.Logger) *RouteHandler {
	return &RouteHandler{routeRepo: routeRepo, logger: logger}
}

// List handles GET /api/v1/routes
func (h *RouteHandler) List(c *gin.Context) {
	routes, err := h.routeRepo.List()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, routes)
}

// RouteDetail is a route joined with its ordered stop list.
type RouteDetail struct {
	models.Route
	Stops []models.RouteStop `json:"stops"`
}

// Get handles GET /api/v1/routes/:id
func (h *RouteHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	route, err := h.routeRepo.GetByID(id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	stops, err := h.routeRepo.GetStops(id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, RouteDetail{Route: *route, Stops: stops})
}

// Create handles POST /api/v1/routes
func (h *RouteHandler) Create(c *gin.Context) {
	var req models.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	route, err := h.routeRepo.Create(req.Name)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, route)
}

// Delete handles DELETE /api/v1/routes/:id
func (h *RouteHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.routeRepo.Delete(id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddStop handles POST /api/v1/routes/:id/stops
func (h *RouteHandler) AddStop(c *gin.Context) {
	routeID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req models.CreateRouteStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if _, err := h.routeRepo.GetByID(routeID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	stop, err := h.routeRepo.AddStop(routeID, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, stop)
}

// UpdateStop handles PUT /api/v1/routes/:id/stops/:stopId
func (h *RouteHandler) UpdateStop(c *gin.Context) {
	routeID, ok := paramID(c, "id")
	if !ok {
		return
	}
	routeStopID, ok := paramID(c, "stopId")
	if !ok {
		return
	}
	var req models.CreateRouteStopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	stop, err := h.routeRepo.UpdateStop(routeID, routeStopID, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stop)
}

// DeleteStop handles DELETE /api/v1/routes/:id/stops/:stopId
func (h *RouteHandler) DeleteStop(c *gin.Context) {
	routeID, ok := paramID(c, "id")
	if !ok {
		return
	}
	routeStopID, ok := paramID(c, "stopId")
	if !ok {
		return
	}
	if err := h.routeRepo.DeleteStop(routeID, routeStopID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
