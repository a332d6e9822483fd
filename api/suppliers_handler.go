package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gym_admin/internal/session"
	"gym_admin/internal/suppliers"
)

type suppliersHandler struct {
	svc  *suppliers.Service
	sess session.Session
}

func newSuppliersHandler(svc *suppliers.Service, sess session.Session) *suppliersHandler {
	return &suppliersHandler{svc: svc, sess: sess}
}

func (h *suppliersHandler) create(c *gin.Context) {
	var in suppliers.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadBody(c)
		return
	}
	s, err := h.svc.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *suppliersHandler) list(c *gin.Context) {
	results, err := h.svc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *suppliersHandler) get(c *gin.Context) {
	s, err := h.svc.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *suppliersHandler) update(c *gin.Context) {
	var in suppliers.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadBody(c)
		return
	}
	s, err := h.svc.Update(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *suppliersHandler) remove(c *gin.Context) {
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
