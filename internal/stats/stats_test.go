package stats

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"gym_admin/internal/catalog"
	"gym_admin/internal/clients"
	"gym_admin/internal/sales"
	"gym_admin/internal/subscriptions"
)

func TestDashboard(t *testing.T) {
	logger := zaptest.NewLogger(t)
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	clientSvc := clients.NewService(clients.NewLocalStorage(), logger)
	catalogSvc := catalog.NewService(catalog.NewLocalStorage(), logger)
	saleSvc := sales.NewService(sales.NewLocalStorage(), catalogSvc, clientSvc, logger)
	subStorage := subscriptions.NewLocalStorage()

	// Dos clientes, uno dado de baja.
	active, err := clientSvc.Create(clients.Input{FirstName: "Ana", LastName: "Gómez", Document: "301"})
	require.NoError(t, err)
	inactive, err := clientSvc.Create(clients.Input{FirstName: "Bruno", LastName: "Paz", Document: "302"})
	require.NoError(t, err)
	_, err = clientSvc.Deactivate(inactive.ID)
	require.NoError(t, err)

	// Tres suscripciones: una con margen, una por vencer, una expirada.
	for i, sub := range []*subscriptions.Subscription{
		{ID: "s1", ClientID: active.ID, Status: subscriptions.StatusActive, EndDate: now.AddDate(0, 0, 60)},
		{ID: "s2", ClientID: active.ID, Status: subscriptions.StatusActive, EndDate: now.AddDate(0, 0, 3)},
		{ID: "s3", ClientID: active.ID, Status: subscriptions.StatusExpired, EndDate: now.AddDate(0, 0, -5)},
	} {
		sub.CreatedAt = now.Add(time.Duration(i) * time.Minute)
		require.NoError(t, subStorage.Set(sub))
	}

	// Un producto por debajo del mínimo y una venta de hoy.
	cat, err := catalogSvc.CreateCategory("Suplementos", "")
	require.NoError(t, err)
	low, err := catalogSvc.CreateProduct(catalog.ProductInput{
		Code: "A001", Name: "Proteína", CategoryID: cat.ID,
		SalePrice: decimal.RequireFromString("100"), Stock: 2, MinStock: 5,
	})
	require.NoError(t, err)
	_, err = saleSvc.Create(sales.Request{
		SedeID:        "sede-1",
		PaymentMethod: "cash",
		Lines:         []sales.RequestLine{{ProductID: low.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	svc := NewService(clientSvc, subStorage, saleSvc, catalogSvc, logger)
	svc.now = func() time.Time { return now }

	d, err := svc.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, 1, d.ActiveClients)
	assert.Equal(t, 2, d.ActiveSubscriptions)
	assert.Equal(t, 1, d.ExpiringWithin7Days)
	assert.Equal(t, 1, d.LowStockProducts)
	assert.Equal(t, now, d.GeneratedAt)
}

func TestDashboard_SaleTotalsWindow(t *testing.T) {
	logger := zaptest.NewLogger(t)
	clientSvc := clients.NewService(clients.NewLocalStorage(), logger)
	catalogSvc := catalog.NewService(catalog.NewLocalStorage(), logger)
	saleSvc := sales.NewService(sales.NewLocalStorage(), catalogSvc, clientSvc, logger)

	cat, err := catalogSvc.CreateCategory("Bebidas", "")
	require.NoError(t, err)
	p, err := catalogSvc.CreateProduct(catalog.ProductInput{
		Code: "B001", Name: "Agua", CategoryID: cat.ID,
		SalePrice: decimal.RequireFromString("50"), Stock: 10,
	})
	require.NoError(t, err)
	_, err = saleSvc.Create(sales.Request{
		SedeID:        "sede-1",
		PaymentMethod: "card",
		Lines:         []sales.RequestLine{{ProductID: p.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	svc := NewService(clientSvc, subscriptions.NewLocalStorage(), saleSvc, catalogSvc, logger)

	// La venta se registró recién: entra en el total de hoy y el del mes.
	d, err := svc.Dashboard()
	require.NoError(t, err)
	assert.True(t, d.SalesTotalToday.Equal(decimal.RequireFromString("100")), "today = %s", d.SalesTotalToday)
	assert.True(t, d.SalesTotalThisMonth.Equal(decimal.RequireFromString("100")), "month = %s", d.SalesTotalThisMonth)
}
