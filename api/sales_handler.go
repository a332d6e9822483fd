package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gym_admin/internal/sales"
	"gym_admin/internal/session"
)

// salesHandler holds the sales service and implements the POS endpoints.
type salesHandler struct {
	svc    *sales.Service
	sess   session.Session
	logger *zap.Logger
}

func newSalesHandler(svc *sales.Service, sess session.Session, logger *zap.Logger) *salesHandler {
	return &salesHandler{svc: svc, sess: sess, logger: logger}
}

// create handles POST /sales.
func (h *salesHandler) create(c *gin.Context) {
	var req sales.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		respondBadBody(c)
		return
	}
	receipt, err := h.svc.Create(req)
	if err != nil {
		h.logger.Error("failed to create sale", zap.Error(err), zap.String("sede_id", req.SedeID))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, receipt)
}

// search handles GET /sales with client/sede filters and metadata.
func (h *salesHandler) search(c *gin.Context) {
	sedeID := c.Query("sede_id")
	if sedeID == "" && !h.sess.SeesAllSedes() {
		sedeID = h.sess.SedeID
	}
	results, metadata, err := h.svc.Search(c.Query("client_id"), sedeID)
	if err != nil {
		h.logger.Error("error searching sales",
			zap.String("client_filter", c.Query("client_id")),
			zap.String("sede_filter", sedeID),
			zap.Error(err),
		)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results, "metadata": metadata})
}

func (h *salesHandler) get(c *gin.Context) {
	sale, err := h.svc.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sale)
}
