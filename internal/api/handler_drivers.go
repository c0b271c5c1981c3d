package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetflow-backend/internal/fleet"
	"fleetflow-backend/internal/model"
)

type createDriverRequest struct {
	Name               string   `json:"name" binding:"required"`
	LicenseExpiry      string   `json:"license_expiry" binding:"required"`
	SafetyScore        *float64 `json:"safety_score"`
	TripCompletionRate *float64 `json:"trip_completion_rate"`
}

type updateDriverRequest struct {
	Name               *string  `json:"name"`
	LicenseExpiry      *string  `json:"license_expiry"`
	SafetyScore        *float64 `json:"safety_score"`
	TripCompletionRate *float64 `json:"trip_completion_rate"`
}

// ListDrivers handles GET /api/drivers.
func (h *Handler) ListDrivers(c *gin.Context) {
	drivers, err := h.store.ListDrivers(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to retrieve drivers")
		return
	}
	ok(c, http.StatusOK, drivers)
}

// GetDriver handles GET /api/drivers/:id.
func (h *Handler) GetDriver(c *gin.Context) {
	id, errp := pathID(c)
	if errp != nil {
		return
	}
	driver, err := h.store.GetDriver(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusNotFound, "driver not found")
		return
	}
	ok(c, http.StatusOK, driver)
}

// CreateDriver handles POST /api/drivers.
func (h *Handler) CreateDriver(c *gin.Context) {
	var req createDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	expiry, err := parseDate(req.LicenseExpiry)
	if err != nil {
		fail(c, http.StatusBadRequest, "license_expiry must be YYYY-MM-DD")
		return
	}

	driver := &model.Driver{
		Name:               req.Name,
		LicenseExpiry:      expiry,
		SafetyScore:        100,
		TripCompletionRate: 100,
	}
	if req.SafetyScore != nil {
		driver.SafetyScore = *req.SafetyScore
	}
	if req.TripCompletionRate != nil {
		driver.TripCompletionRate = *req.TripCompletionRate
	}

	if err := h.coord.EnrollDriver(c.Request.Context(), driver); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, driver)
}

// UpdateDriver handles PUT /api/drivers/:id.
func (h *Handler) UpdateDriver(c *gin.Context) {
	id, errp := pathID(c)
	if errp != nil {
		return
	}
	var req updateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	upd := fleet.DriverUpdate{
		Name:               req.Name,
		SafetyScore:        req.SafetyScore,
		TripCompletionRate: req.TripCompletionRate,
	}
	if req.LicenseExpiry != nil {
		expiry, err := time.Parse(dateLayout, *req.LicenseExpiry)
		if err != nil {
			fail(c, http.StatusBadRequest, "license_expiry must be YYYY-MM-DD")
			return
		}
		upd.LicenseExpiry = &expiry
	}

	driver, err := h.coord.UpdateDriver(c.Request.Context(), id, upd)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, driver)
}

// SuspendDriver handles PUT /api/drivers/:id/suspend.
func (h *Handler) SuspendDriver(c *gin.Context) {
	id, errp := pathID(c)
	if errp != nil {
		return
	}
	driver, err := h.coord.SuspendDriver(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, driver)
}

// ReinstateDriver handles PUT /api/drivers/:id/reinstate.
func (h *Handler) ReinstateDriver(c *gin.Context) {
	id, errp := pathID(c)
	if errp != nil {
		return
	}
	driver, err := h.coord.ReinstateDriver(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, driver)
}

// DeleteDriver handles DELETE /api/drivers/:id.
func (h *Handler) DeleteDriver(c *gin.Context) {
	id, errp := pathID(c)
	if errp != nil {
		return
	}
	if err := h.coord.RemoveDriver(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, nil)
}
