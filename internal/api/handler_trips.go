package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createTripRequest struct {
	VehicleID   int64   `json:"vehicle_id" binding:"required"`
	DriverID    int64   `json:"driver_id" binding:"required"`
	CargoWeight float64 `json:"cargo_weight" binding:"required"`
}

type completeTripRequest struct {
	EndOdometer float64 `json:"end_odometer" binding:"required"`
}

// ListTrips handles GET /api/trips.
func (h *Handler) ListTrips(c *gin.Context) {
	trips, err := h.store.ListTrips(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to retrieve trips")
		return
	}
	ok(c, http.StatusOK, trips)
}

// GetTrip handles GET /api/trips/:id.
func (h *Handler) GetTrip(c *gin.Context) {
	id, errp := pathID(c)
	if errp != nil {
		return
	}
	trip, err := h.store.GetTrip(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusNotFound, "trip not found")
		return
	}
	ok(c, http.StatusOK, trip)
}

// CreateTrip handles POST /api/trips. The trip is created as a Draft.
func (h *Handler) CreateTrip(c *gin.Context) {
	var req createTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	trip, err := h.coord.CreateTrip(c.Request.Context(), req.VehicleID, req.DriverID, req.CargoWeight)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, trip)
}

// DispatchTrip handles PUT /api/trips/:id/dispatch.
func (h *Handler) DispatchTrip(c *gin.Context) {
	id, errp := pathID(c)
	if errp != nil {
		return
	}
	trip, err := h.coord.DispatchTrip(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, trip)
}

// CompleteTrip handles PUT /api/trips/:id/complete.
func (h *Handler) CompleteTrip(c *gin.Context) {
	id, errp := pathID(c)
	if errp != nil {
		return
	}
	var req completeTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	trip, err := h.coord.CompleteTrip(c.Request.Context(), id, req.EndOdometer)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, trip)
}

// CancelTrip handles PUT /api/trips/:id/cancel.
func (h *Handler) CancelTrip(c *gin.Context) {
	id, errp := pathID(c)
	if errp != nil {
		return
	}
	trip, err := h.coord.CancelTrip(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, trip)
}
