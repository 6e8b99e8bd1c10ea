package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/fittrack/internal/service/diagnostics"
)

// SystemHandler serves the root, liveness and diagnostics routes.
type SystemHandler struct {
	diagnostics diagnostics.Reporter
}

// NewSystemHandler constructs the system HTTP adapter.
func NewSystemHandler(reporter diagnostics.Reporter) *SystemHandler {
	return &SystemHandler{diagnostics: reporter}
}

// Root handles GET /.
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "FitTrack backend running"})
}

// Health handles GET /healthz.
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Diagnostics handles GET /test.
func (h *SystemHandler) Diagnostics(c *gin.Context) {
	c.JSON(http.StatusOK, h.diagnostics.Report(c.Request.Context()))
}
