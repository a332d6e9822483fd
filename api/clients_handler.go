package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gym_admin/internal/clients"
	"gym_admin/internal/session"
)

// clientsHandler implements the HTTP handlers for client management.
type clientsHandler struct {
	svc    *clients.Service
	sess   session.Session
	logger *zap.Logger
}

func newClientsHandler(svc *clients.Service, sess session.Session, logger *zap.Logger) *clientsHandler {
	return &clientsHandler{svc: svc, sess: sess, logger: logger}
}

func (h *clientsHandler) create(c *gin.Context) {
	var in clients.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		respondBadBody(c)
		return
	}
	created, err := h.svc.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *clientsHandler) list(c *gin.Context) {
	sedeID := c.Query("sede_id")
	if sedeID == "" && !h.sess.SeesAllSedes() {
		sedeID = h.sess.SedeID
	}
	results, err := h.svc.Search(c.Query("q"), sedeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *clientsHandler) get(c *gin.Context) {
	cl, err := h.svc.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (h *clientsHandler) update(c *gin.Context) {
	var in clients.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadBody(c)
		return
	}
	updated, err := h.svc.Update(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *clientsHandler) deactivate(c *gin.Context) {
	cl, err := h.svc.Deactivate(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (h *clientsHandler) remove(c *gin.Context) {
	if !h.sess.CanDelete() {
		c.JSON(http.StatusForbidden, gin.H{"error": "solo un administrador puede eliminar"})
		return
	}
	if err := h.svc.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
