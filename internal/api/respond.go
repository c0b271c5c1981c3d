package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetflow-backend/internal/fleet"
)

// dateLayout is the wire format for date-only fields.
const dateLayout = "2006-01-02"

// ok writes the success envelope.
func ok(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"data": data})
}

// fail writes the error envelope.
func fail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}

// failErr maps a coordinator error onto an HTTP status and writes the
// error envelope. Typed domain errors keep their message; anything else is
// reported as an internal error.
func failErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, fleet.ErrValidation):
		fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, fleet.ErrReferential):
		fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, fleet.ErrInvalidTransition), errors.Is(err, fleet.ErrConflict):
		fail(c, http.StatusConflict, err.Error())
	default:
		fail(c, http.StatusInternalServerError, "internal error")
	}
}

// parseDate parses a date-only field, empty meaning "unset".
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}
