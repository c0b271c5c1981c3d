package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fleetflow-backend/internal/model"
)

type createMaintenanceRequest struct {
	VehicleID   int64   `json:"vehicle_id" binding:"required"`
	ServiceType string  `json:"service_type" binding:"required"`
	Cost        float64 `json:"cost"`
	Date        string  `json:"date"`
	Notes       string  `json:"notes"`
}

// ListMaintenanceLogs handles GET /api/maintenance?vehicle_id=N.
func (h *Handler) ListMaintenanceLogs(c *gin.Context) {
	vehicleID, errp := queryVehicleID(c)
	if errp != nil {
		return
	}
	logs, err := h.store.ListMaintenanceLogs(c.Request.Context(), vehicleID)
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to retrieve maintenance logs")
		return
	}
	ok(c, http.StatusOK, logs)
}

// CreateMaintenanceLog handles POST /api/maintenance. The vehicle is
// forced In Shop as a side effect.
func (h *Handler) CreateMaintenanceLog(c *gin.Context) {
	var req createMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		fail(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	entry := &model.MaintenanceLog{
		VehicleID:   req.VehicleID,
		ServiceType: req.ServiceType,
		Cost:        req.Cost,
		Date:        date,
		Notes:       req.Notes,
	}
	if err := h.coord.RecordMaintenance(c.Request.Context(), entry); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, entry)
}

// queryVehicleID parses the optional vehicle_id query parameter, writing
// the error response itself. Zero means no filter.
func queryVehicleID(c *gin.Context) (int64, error) {
	raw := c.Query("vehicle_id")
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid vehicle_id")
		return 0, err
	}
	return id, nil
}
