package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gym_admin/internal/stats"
)

type statsHandler struct {
	svc    *stats.Service
	logger *zap.Logger
}

func newStatsHandler(svc *stats.Service, logger *zap.Logger) *statsHandler {
	return &statsHandler{svc: svc, logger: logger}
}

// dashboard handles GET /stats/dashboard.
func (h *statsHandler) dashboard(c *gin.Context) {
	d, err := h.svc.Dashboard()
	if err != nil {
		h.logger.Error("failed to compute dashboard stats", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
