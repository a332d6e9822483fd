package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gym_admin/internal/equipment"
	"gym_admin/internal/session"
)

type equipmentHandler struct {
	svc  *equipment.Service
	sess session.Session
}

func newEquipmentHandler(svc *equipment.Service, sess session.Session) *equipmentHandler {
	return &equipmentHandler{svc: svc, sess: sess}
}

func (h *equipmentHandler) create(c *gin.Context) {
	var in equipment.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadBody(c)
		return
	}
	a, err := h.svc.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *equipmentHandler) list(c *gin.Context) {
	sedeID := c.Query("sede_id")
	if sedeID == "" && !h.sess.SeesAllSedes() {
		sedeID = h.sess.SedeID
	}
	results, err := h.svc.List(sedeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *equipmentHandler) get(c *gin.Context) {
	a, err := h.svc.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *equipmentHandler) update(c *gin.Context) {
	var in equipment.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadBody(c)
		return
	}
	a, err := h.svc.Update(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *equipmentHandler) remove(c *gin.Context) {
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
