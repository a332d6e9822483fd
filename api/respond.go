package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gym_admin/internal/apperr"
	"gym_admin/internal/catalog"
	"gym_admin/internal/clients"
	"gym_admin/internal/equipment"
	"gym_admin/internal/inventory"
	"gym_admin/internal/memberships"
	"gym_admin/internal/payments"
	"gym_admin/internal/sales"
	"gym_admin/internal/subscriptions"
	"gym_admin/internal/suppliers"
	"gym_admin/internal/venues"
)

var notFoundErrs = []error{
	clients.ErrNotFound,
	catalog.ErrNotFound,
	memberships.ErrNotFound,
	subscriptions.ErrNotFound,
	sales.ErrNotFound,
	venues.ErrNotFound,
	suppliers.ErrNotFound,
	equipment.ErrNotFound,
	inventory.ErrNotFound,
}

var conflictErrs = []error{
	catalog.ErrCategoryInUse,
	catalog.ErrInsufficientStock,
	venues.ErrSedeHasEspacios,
	inventory.ErrImmutable,
	subscriptions.ErrAlreadyCancelled,
}

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// respondError maps a service error to the response shape the UI expects:
// per-field validation maps inline, everything else a single message.
func respondError(c *gin.Context, err error) {
	if fields, ok := apperr.AsFieldErrors(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
		return
	}
	switch {
	case isAny(err, notFoundErrs):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case isAny(err, conflictErrs):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, payments.ErrInvalidMethod):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func respondBadBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
}
