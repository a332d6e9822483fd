package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gym_admin/internal/catalog"
	"gym_admin/internal/session"
)

type catalogHandler struct {
	svc  *catalog.Service
	sess session.Session
}

func newCatalogHandler(svc *catalog.Service, sess session.Session) *catalogHandler {
	return &catalogHandler{svc: svc, sess: sess}
}

func (h *catalogHandler) createProduct(c *gin.Context) {
	var in catalog.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadBody(c)
		return
	}
	p, err := h.svc.CreateProduct(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *catalogHandler) searchProducts(c *gin.Context) {
	results, err := h.svc.SearchProducts(c.Query("q"), c.Query("category_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *catalogHandler) getProduct(c *gin.Context) {
	p, err := h.svc.GetProduct(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *catalogHandler) updateProduct(c *gin.Context) {
	var in catalog.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBadBody(c)
		return
	}
	p, err := h.svc.UpdateProduct(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *catalogHandler) removeProduct(c *gin.Context) {
	if !h.sess.CanDelete() {
		c.JSON(http.StatusForbidden, gin.H{"error": "solo un administrador puede eliminar"})
		return
	}
	if err := h.svc.DeleteProduct(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *catalogHandler) createCategory(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}
	cat, err := h.svc.CreateCategory(req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *catalogHandler) listCategories(c *gin.Context) {
	results, err := h.svc.ListCategories()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *catalogHandler) getCategory(c *gin.Context) {
	cat, err := h.svc.GetCategory(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *catalogHandler) updateCategory(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}
	cat, err := h.svc.UpdateCategory(c.Param("id"), req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *catalogHandler) removeCategory(c *gin.Context) {
	if !h.sess.CanDelete() {
		c.JSON(http.StatusForbidden, gin.H{"error": "solo un administrador puede eliminar"})
		return
	}
	if err := h.svc.DeleteCategory(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
