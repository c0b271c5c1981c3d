package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListAuditLogs handles GET /audit/logs, newest first. Manager only.
func (h *Handler) ListAuditLogs(c *gin.Context) {
	logs, err := h.store.ListAuditLogs(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to retrieve audit logs")
		return
	}
	ok(c, http.StatusOK, logs)
}
