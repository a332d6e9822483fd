package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gym_admin/internal/memberships"
	"gym_admin/internal/session"
)

type membershipsHandler struct {
	svc  *memberships.Service
	sess session.Session
}

func newMembershipsHandler(svc *memberships.Service, sess session.Session) *membershipsHandler {
	return &membershipsHandler{svc: svc, sess: sess}
}

func (h *membershipsHandler) create(c *gin.Context) {
	var in memberships.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadBody(c)
		return
	}
	m, err := h.svc.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *membershipsHandler) list(c *gin.Context) {
	onlyActive := c.Query("active") == "true"
	results, err := h.svc.List(onlyActive)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *membershipsHandler) get(c *gin.Context) {
	m, err := h.svc.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *membershipsHandler) update(c *gin.Context) {
	var in memberships.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadBody(c)
		return
	}
	m, err := h.svc.Update(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *membershipsHandler) remove(c *gin.Context) {
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
