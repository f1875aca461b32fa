package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/intercityline/booking-backend/internal/apperrors"
)

// ErrorResponse is the JSON shape of every error reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// statusForKind maps the error taxonomy onto HTTP statuses. StaleState gets
// 409 like Conflict, but clients may retry it.
func statusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindInvalidRoute, apperrors.KindUnknownLayoutVariant, apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict, apperrors.KindStaleState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error taxonomy reply. Unclassified errors are
// logged and reported as a generic internal error, never echoed to the
// client.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	kind := apperrors.KindOf(err)
	status := statusForKind(kind)

	if status == http.StatusInternalServerError {
		logger.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"error":  err.Error(),
		}).Error("Request failed")
		c.JSON(status, ErrorResponse{
			Error:   string(apperrors.KindInternal),
			Message: "Internal server error",
		})
		return
	}

	c.JSON(status, ErrorResponse{Error: string(kind), Message: err.Error()})
}

// respondBindError reports a malformed or incomplete request body.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation_error",
		Message: "Invalid request body: " + err.Error(),
	})
}

// paramID parses a numeric path parameter. The bool result is false when
// the parameter is missing or not a number; the reply is already written.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "Invalid " + name + " parameter",
		})
		return 0, false
	}
	return id, true
}

// queryID parses a required numeric query parameter.
func queryID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "Missing or invalid " + name + " query parameter",
		})
		return 0, false
	}
	return id, true
}
