package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gym_admin/internal/catalog"
	"gym_admin/internal/clients"
	"gym_admin/internal/equipment"
	"gym_admin/internal/inventory"
	"gym_admin/internal/memberships"
	"gym_admin/internal/sales"
	"gym_admin/internal/session"
	"gym_admin/internal/stats"
	"gym_admin/internal/subscriptions"
	"gym_admin/internal/suppliers"
	"gym_admin/internal/venues"
)

// InitRoutes registers every admin endpoint on the given Gin engine with a
// default admin session and a production logger.
func InitRoutes(e *gin.Engine) {
	logger, _ := zap.NewProduction()
	sess := session.Session{UserID: "admin", Name: "Administrador", Role: session.RoleAdmin}
	InitRoutesWithSession(e, sess, logger)
}

// InitRoutesWithSession wires storages, services and handlers, then binds
// each HTTP method and path. The session decides default venue filters and
// who may delete.
func InitRoutesWithSession(e *gin.Engine, sess session.Session, logger *zap.Logger) {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	// Inicialización de storages y servicios
	catalogSvc := catalog.NewService(catalog.NewLocalStorage(), logger)
	clientSvc := clients.NewService(clients.NewLocalStorage(), logger)
	membershipSvc := memberships.NewService(memberships.NewLocalStorage(), logger)
	subStorage := subscriptions.NewLocalStorage()
	subSvc := subscriptions.NewService(subStorage, membershipSvc, clientSvc, logger)
	saleSvc := sales.NewService(sales.NewLocalStorage(), catalogSvc, clientSvc, logger)
	venueSvc := venues.NewService(venues.NewLocalStorage(), logger)
	supplierSvc := suppliers.NewService(suppliers.NewLocalStorage(), logger)
	equipmentSvc := equipment.NewService(equipment.NewLocalStorage(), venueSvc, logger)
	inventorySvc := inventory.NewService(inventory.NewLocalStorage(), catalogSvc, logger)
	statsSvc := stats.NewService(clientSvc, subStorage, saleSvc, catalogSvc, logger)

	clientsH := newClientsHandler(clientSvc, sess, logger)
	membershipsH := newMembershipsHandler(membershipSvc, sess)
	subscriptionsH := newSubscriptionsHandler(subSvc, logger)
	salesH := newSalesHandler(saleSvc, sess, logger)
	catalogH := newCatalogHandler(catalogSvc, sess)
	inventoryH := newInventoryHandler(inventorySvc, sess)
	venuesH := newVenuesHandler(venueSvc, sess)
	suppliersH := newSuppliersHandler(supplierSvc, sess)
	equipmentH := newEquipmentHandler(equipmentSvc, sess)
	statsH := newStatsHandler(statsSvc, logger)

	e.POST("/clients", clientsH.create)
	e.GET("/clients", clientsH.list)
	e.GET("/clients/:id", clientsH.get)
	e.PUT("/clients/:id", clientsH.update)
	e.PATCH("/clients/:id/deactivate", clientsH.deactivate)
	e.DELETE("/clients/:id", clientsH.remove)
	e.GET("/clients/:id/membership", subscriptionsH.membershipView)
	e.GET("/clients/:id/subscriptions", subscriptionsH.history)

	e.POST("/memberships", membershipsH.create)
	e.GET("/memberships", membershipsH.list)
	e.GET("/memberships/:id", membershipsH.get)
	e.PUT("/memberships/:id", membershipsH.update)
	e.DELETE("/memberships/:id", membershipsH.remove)

	e.POST("/subscriptions", subscriptionsH.subscribe)
	e.GET("/subscriptions/:id", subscriptionsH.get)
	e.POST("/subscriptions/:id/renew", subscriptionsH.renew)
	e.POST("/subscriptions/:id/cancel", subscriptionsH.cancel)

	e.POST("/sales", salesH.create)
	e.GET("/sales", salesH.search)
	e.GET("/sales/:id", salesH.get)

	e.POST("/products", catalogH.createProduct)
	e.GET("/products", catalogH.searchProducts)
	e.GET("/products/:id", catalogH.getProduct)
	e.PUT("/products/:id", catalogH.updateProduct)
	e.DELETE("/products/:id", catalogH.removeProduct)

	e.POST("/categories", catalogH.createCategory)
	e.GET("/categories", catalogH.listCategories)
	e.GET("/categories/:id", catalogH.getCategory)
	e.PUT("/categories/:id", catalogH.updateCategory)
	e.DELETE("/categories/:id", catalogH.removeCategory)

	e.POST("/inventory", inventoryH.create)
	e.GET("/inventory", inventoryH.list)
	e.GET("/inventory/:id", inventoryH.get)
	e.DELETE("/inventory/:id", inventoryH.remove)

	e.POST("/sedes", venuesH.createSede)
	e.GET("/sedes", venuesH.listSedes)
	e.GET("/sedes/:id", venuesH.getSede)
	e.PUT("/sedes/:id", venuesH.updateSede)
	e.DELETE("/sedes/:id", venuesH.removeSede)

	e.POST("/espacios", venuesH.createEspacio)
	e.GET("/espacios", venuesH.listEspacios)
	e.GET("/espacios/:id", venuesH.getEspacio)
	e.PUT("/espacios/:id", venuesH.updateEspacio)
	e.DELETE("/espacios/:id", venuesH.removeEspacio)

	e.POST("/suppliers", suppliersH.create)
	e.GET("/suppliers", suppliersH.list)
	e.GET("/suppliers/:id", suppliersH.get)
	e.PUT("/suppliers/:id", suppliersH.update)
	e.DELETE("/suppliers/:id", suppliersH.remove)

	e.POST("/equipment", equipmentH.create)
	e.GET("/equipment", equipmentH.list)
	e.GET("/equipment/:id", equipmentH.get)
	e.PUT("/equipment/:id", equipmentH.update)
	e.DELETE("/equipment/:id", equipmentH.remove)

	e.GET("/stats/dashboard", statsH.dashboard)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}
