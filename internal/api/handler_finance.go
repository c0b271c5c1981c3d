package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetflow-backend/internal/model"
)

type createFuelLogRequest struct {
	VehicleID int64   `json:"vehicle_id" binding:"required"`
	Liters    float64 `json:"liters" binding:"required"`
	Cost      float64 `json:"cost"`
	Date      string  `json:"date"`
}

type createExpenseRequest struct {
	VehicleID int64   `json:"vehicle_id" binding:"required"`
	Category  string  `json:"category" binding:"required"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date"`
	Notes     string  `json:"notes"`
}

// ListFuelLogs handles GET /api/fuel?vehicle_id=N.
func (h *Handler) ListFuelLogs(c *gin.Context) {
	vehicleID, errp := queryVehicleID(c)
	if errp != nil {
		return
	}
	logs, err := h.store.ListFuelLogs(c.Request.Context(), vehicleID)
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to retrieve fuel logs")
		return
	}
	ok(c, http.StatusOK, logs)
}

// CreateFuelLog handles POST /api/fuel.
func (h *Handler) CreateFuelLog(c *gin.Context) {
	var req createFuelLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		fail(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	entry := &model.FuelLog{
		VehicleID: req.VehicleID,
		Liters:    req.Liters,
		Cost:      req.Cost,
		Date:      date,
	}
	if err := h.coord.RecordFuel(c.Request.Context(), entry); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, entry)
}

// ListExpenses handles GET /api/expenses?vehicle_id=N.
func (h *Handler) ListExpenses(c *gin.Context) {
	vehicleID, errp := queryVehicleID(c)
	if errp != nil {
		return
	}
	expenses, err := h.store.ListExpenses(c.Request.Context(), vehicleID)
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to retrieve expenses")
		return
	}
	ok(c, http.StatusOK, expenses)
}

// CreateExpense handles POST /api/expenses.
func (h *Handler) CreateExpense(c *gin.Context) {
	var req createExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		fail(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	entry := &model.Expense{
		VehicleID: req.VehicleID,
		Category:  req.Category,
		Amount:    req.Amount,
		Date:      date,
		Notes:     req.Notes,
	}
	if err := h.coord.RecordExpense(c.Request.Context(), entry); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, entry)
}
