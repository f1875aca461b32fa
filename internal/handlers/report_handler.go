package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/intercityline/booking-backend/internal/database"
	"github.com/intercityline/booking-backend/internal/models"
)

// ReportHandler handles the sales report HTTP requests.
type ReportHandler struct {
	reportRepo *database.ReportRepository
	logger     *logrus.Logger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportRepo *database.ReportRepository, logger *logrus.Logger) *ReportHandler {
	return &ReportHandler{reportRepo: reportRepo, logger: logger}
}

func optionalString(c *gin.Context, name string) *string {
	if v := c.Query(name); v != "" {
		return &v
	}
	return nil
}

func optionalInt64(c *gin.Context, name string) (*int64, bool) {
	v := c.Query(name)
	if v == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "Invalid " + name + " query parameter",
		})
		return nil, false
	}
	return &id, true
}

// Build handles GET /api/v1/reports/sales
func (h *ReportHandler) Build(c *gin.Context) {
	filters := &models.ReportFilters{
		StartDate: optionalString(c, "start_date"),
		EndDate:   optionalString(c, "end_date"),
	}

	var ok bool
	if filters.RouteID, ok = optionalInt64(c, "route_id"); !ok {
		return
	}
	if filters.DepartureID, ok = optionalInt64(c, "departure_id"); !ok {
		return
	}
	if filters.DepartureStopID, ok = optionalInt64(c, "departure_stop_id"); !ok {
		return
	}
	if filters.ArrivalStopID, ok = optionalInt64(c, "arrival_stop_id"); !ok {
		return
	}

	report, err := h.reportRepo.Build(filters)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
