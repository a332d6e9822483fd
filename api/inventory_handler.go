package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gym_admin/internal/inventory"
	"gym_admin/internal/session"
)

type inventoryHandler struct {
	svc  *inventory.Service
	sess session.Session
}

func newInventoryHandler(svc *inventory.Service, sess session.Session) *inventoryHandler {
	return &inventoryHandler{svc: svc, sess: sess}
}

func (h *inventoryHandler) create(c *gin.Context) {
	var in inventory.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadBody(c)
		return
	}
	if in.SedeID == "" {
		in.SedeID = h.sess.SedeID
	}
	r, err := h.svc.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *inventoryHandler) list(c *gin.Context) {
	sedeID := c.Query("sede_id")
	if sedeID == "" && !h.sess.SeesAllSedes() {
		sedeID = h.sess.SedeID
	}
	results, err := h.svc.List(c.Query("product_id"), sedeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *inventoryHandler) get(c *gin.Context) {
	r, err := h.svc.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// remove always answers 409: movements are immutable.
func (h *inventoryHandler) remove(c *gin.Context) {
	respondError(c, h.svc.Delete(c.Param("id")))
}
