package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fleetflow-backend/internal/fleet"
	"fleetflow-backend/internal/model"
)

type createVehicleRequest struct {
	Name                string   `json:"name" binding:"required"`
	LicensePlate        string   `json:"license_plate" binding:"required"`
	MaxCapacity         float64  `json:"max_capacity" binding:"required"`
	Odometer            float64  `json:"odometer"`
	AcquisitionCost     *float64 `json:"acquisition_cost"`
	NextServiceOdometer *float64 `json:"next_service_odometer"`
}

type updateVehicleRequest struct {
	Name                *string  `json:"name"`
	LicensePlate        *string  `json:"license_plate"`
	MaxCapacity         *float64 `json:"max_capacity"`
	AcquisitionCost     *float64 `json:"acquisition_cost"`
	NextServiceOdometer *float64 `json:"next_service_odometer"`
}

// ListVehicles handles GET /api/vehicles.
func (h *Handler) ListVehicles(c *gin.Context) {
	vehicles, err := h.store.ListVehicles(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to retrieve vehicles")
		return
	}
	ok(c, http.StatusOK, vehicles)
}

// GetVehicle handles GET /api/vehicles/:id.
func (h *Handler) GetVehicle(c *gin.Context) {
	id, errp := pathID(c)
	if errp != nil {
		return
	}
	vehicle, err := h.store.GetVehicle(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusNotFound, "vehicle not found")
		return
	}
	ok(c, http.StatusOK, vehicle)
}

// CreateVehicle handles POST /api/vehicles.
func (h *Handler) CreateVehicle(c *gin.Context) {
	var req createVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	vehicle := &model.Vehicle{
		Name:                req.Name,
		LicensePlate:        req.LicensePlate,
		MaxCapacity:         req.MaxCapacity,
		Odometer:            req.Odometer,
		AcquisitionCost:     req.AcquisitionCost,
		NextServiceOdometer: req.NextServiceOdometer,
	}
	if err := h.coord.EnrollVehicle(c.Request.Context(), vehicle); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, vehicle)
}

// UpdateVehicle handles PUT /api/vehicles/:id.
func (h *Handler) UpdateVehicle(c *gin.Context) {
	id, errp := pathID(c)
	if errp != nil {
		return
	}
	var req updateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	vehicle, err := h.coord.UpdateVehicle(c.Request.Context(), id, fleet.VehicleUpdate{
		Name:                req.Name,
		LicensePlate:        req.LicensePlate,
		MaxCapacity:         req.MaxCapacity,
		AcquisitionCost:     req.AcquisitionCost,
		NextServiceOdometer: req.NextServiceOdometer,
	})
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, vehicle)
}

// RetireVehicle handles PUT /api/vehicles/:id/retire.
func (h *Handler) RetireVehicle(c *gin.Context) {
	id, errp := pathID(c)
	if errp != nil {
		return
	}
	vehicle, err := h.coord.RetireVehicle(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, vehicle)
}

// CompleteVehicleService handles PUT /api/vehicles/:id/service-complete.
func (h *Handler) CompleteVehicleService(c *gin.Context) {
	id, errp := pathID(c)
	if errp != nil {
		return
	}
	vehicle, err := h.coord.CompleteMaintenance(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, vehicle)
}

// DeleteVehicle handles DELETE /api/vehicles/:id.
func (h *Handler) DeleteVehicle(c *gin.Context) {
	id, errp := pathID(c)
	if errp != nil {
		return
	}
	if err := h.coord.DecommissionVehicle(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, nil)
}

// pathID parses the :id path parameter, writing the error response itself.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid id")
		return 0, err
	}
	return id, nil
}
