package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gym_admin/internal/session"
	"gym_admin/internal/venues"
)

type venuesHandler struct {
	svc  *venues.Service
	sess session.Session
}

func newVenuesHandler(svc *venues.Service, sess session.Session) *venuesHandler {
	return &venuesHandler{svc: svc, sess: sess}
}

func (h *venuesHandler) createSede(c *gin.Context) {
	var in venues.SedeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadBody(c)
		return
	}
	s, err := h.svc.CreateSede(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *venuesHandler) listSedes(c *gin.Context) {
	results, err := h.svc.ListSedes()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *venuesHandler) getSede(c *gin.Context) {
	s, err := h.svc.GetSede(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *venuesHandler) updateSede(c *gin.Context) {
	var in venues.SedeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadBody(c)
		return
	}
	s, err := h.svc.UpdateSede(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *venuesHandler) removeSede(c *gin.Context) {
	if !h.sess.CanDelete() {
		c.JSON(http.StatusForbidden, gin.H{"error": "solo un administrador puede eliminar"})
		return
	}
	if err := h.svc.DeleteSede(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *venuesHandler) createEspacio(c *gin.Context) {
	var in venues.EspacioInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadBody(c)
		return
	}
	e, err := h.svc.CreateEspacio(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *venuesHandler) listEspacios(c *gin.Context) {
	results, err := h.svc.ListEspacios(c.Query("sede_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *venuesHandler) getEspacio(c *gin.Context) {
	e, err := h.svc.GetEspacio(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *venuesHandler) updateEspacio(c *gin.Context) {
	var in venues.EspacioInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadBody(c)
		return
	}
	e, err := h.svc.UpdateEspacio(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *venuesHandler) removeEspacio(c *gin.Context) {
	if !h.sess.CanDelete() {
		c.JSON(http.StatusForbidden, gin.H{"error": "solo un administrador puede eliminar"})
		return
	}
	if err := h.svc.DeleteEspacio(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
