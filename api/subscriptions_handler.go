package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gym_admin/internal/payments"
	"gym_admin/internal/subscriptions"
)

type subscriptionsHandler struct {
	svc    *subscriptions.Service
	logger *zap.Logger
}

func newSubscriptionsHandler(svc *subscriptions.Service, logger *zap.Logger) *subscriptionsHandler {
	return &subscriptionsHandler{svc: svc, logger: logger}
}

// subscribe handles POST /subscriptions.
func (h *subscriptionsHandler) subscribe(c *gin.Context) {
	var in subscriptions.SubscribeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("failed to bind JSON request", zap.Error(err))
		respondBadBody(c)
		return
	}
	sub, err := h.svc.Subscribe(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (h *subscriptionsHandler) get(c *gin.Context) {
	sub, err := h.svc.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// renew handles POST /subscriptions/:id/renew.
func (h *subscriptionsHandler) renew(c *gin.Context) {
	var req struct {
		PaymentMethod payments.Method `json:"payment_method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}
	sub, err := h.svc.Renew(c.Param("id"), req.PaymentMethod)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// cancel handles POST /subscriptions/:id/cancel. No body.
func (h *subscriptionsHandler) cancel(c *gin.Context) {
	sub, err := h.svc.Cancel(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// history handles GET /clients/:id/subscriptions.
func (h *subscriptionsHandler) history(c *gin.Context) {
	history, err := h.svc.HistoryFor(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": history})
}

// membershipView handles GET /clients/:id/membership, the classified view
// the client detail screen renders.
func (h *subscriptionsHandler) membershipView(c *gin.Context) {
	view, err := h.svc.ViewFor(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
