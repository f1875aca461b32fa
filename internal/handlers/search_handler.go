package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/intercityline/booking-backend/internal/database"
)

// SearchHandler handles the public trip-search HTTP requests.
type SearchHandler struct {
	searchRepo *database.SearchRepository
	logger     *logrus.Logger
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(searchRepo *database.SearchRepository, logger *logrus.Logger) *SearchHandler {
	return &SearchHandler{searchRepo: searchRepo, logger: logger}
}

// DepartureStops handles GET /api/v1/search/departure-stops
func (h *SearchHandler) DepartureStops(c *gin.Context) {
	stops, err := h.searchRepo.DepartureStops()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stops)
}

// ArrivalStops handles GET /api/v1/search/arrival-stops?from=
func (h *SearchHandler) ArrivalStops(c *gin.Context) {
	from, ok := queryID(c, "from")
	if !ok {
		return
	}
	stops, err := h.searchRepo.ArrivalStops(from)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stops)
}

// Dates handles GET /api/v1/search/dates?from=&to=
func (h *SearchHandler) Dates(c *gin.Context) {
	from, ok := queryID(c, "from")
	if !ok {
		return
	}
	to, ok := queryID(c, "to")
	if !ok {
		return
	}
	dates, err := h.searchRepo.Dates(from, to)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	formatted := make([]string, 0, len(dates))
	for _, d := range dates {
		formatted = append(formatted, d.Format("2006-01-02"))
	}
	c.JSON(http.StatusOK, formatted)
}
