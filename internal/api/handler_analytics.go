package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetflow-backend/internal/analytics"
)

// GetDashboard handles GET /api/analytics/dashboard.
func (h *Handler) GetDashboard(c *gin.Context) {
	dashboard, err := analytics.ComputeDashboard(c.Request.Context(), h.store.DB())
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to compute dashboard analytics")
		return
	}
	ok(c, http.StatusOK, dashboard)
}
