package sales

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"gym_admin/internal/apperr"
	"gym_admin/internal/catalog"
	"gym_admin/internal/clients"
	"gym_admin/internal/payments"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestService(t *testing.T) (*Service, *catalog.Service, *catalog.Product, *clients.Client) {
	t.Helper()
	logger := zaptest.NewLogger(t)

	catalogSvc := catalog.NewService(catalog.NewLocalStorage(), logger)
	cat, err := catalogSvc.CreateCategory("Suplementos", "")
	require.NoError(t, err)
	p, err := catalogSvc.CreateProduct(catalog.ProductInput{
		Code: "A001", Name: "Proteína", CategoryID: cat.ID,
		SalePrice: dec("100"), Stock: 10, MinStock: 2,
	})
	require.NoError(t, err)

	clientSvc := clients.NewService(clients.NewLocalStorage(), logger)
	cl, err := clientSvc.Create(clients.Input{FirstName: "Ana", LastName: "Gómez", Document: "30111222"})
	require.NoError(t, err)

	svc := NewService(NewLocalStorage(), catalogSvc, clientSvc, logger)
	return svc, catalogSvc, p, cl
}

func TestCreate_RegistersSaleAndDecrementsStock(t *testing.T) {
	svc, catalogSvc, p, cl := newTestService(t)

	receipt, err := svc.Create(Request{
		ClientID:      cl.ID,
		SedeID:        "sede-1",
		PaymentMethod: payments.Cash,
		Lines: []RequestLine{
			{ProductID: p.ID, Quantity: 2, Discount: dec("10")},
		},
		GlobalDiscount: dec("20"),
		Notes:          "promo agosto",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.SaleID)
	assert.True(t, receipt.Total.Equal(dec("170")), "total = %s", receipt.Total)

	updated, err := catalogSvc.GetProduct(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, updated.Stock)

	sale, err := svc.Get(receipt.SaleID)
	require.NoError(t, err)
	assert.Equal(t, cl.ID, sale.ClientID)
	require.Len(t, sale.Lines, 1)
	assert.Equal(t, "A001", sale.Lines[0].Code, "line keeps the product snapshot")
	assert.True(t, sale.Lines[0].UnitPrice.Equal(dec("100")))
}

func TestCreate_FieldValidation(t *testing.T) {
	svc, _, p, _ := newTestService(t)

	_, err := svc.Create(Request{})
	fields, ok := apperr.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fields, "sede_id")
	assert.Contains(t, fields, "payment_method")
	assert.Contains(t, fields, "lines")

	_, err = svc.Create(Request{
		SedeID:        "sede-1",
		PaymentMethod: payments.Cash,
		Lines:         []RequestLine{{ProductID: p.ID, Quantity: 99}},
	})
	fields, ok = apperr.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fields, "lines[0].quantity", "quantity above stock is a field error")

	_, err = svc.Create(Request{
		SedeID:        "sede-1",
		PaymentMethod: payments.Cash,
		Lines:         []RequestLine{{ProductID: "nope", Quantity: 1}},
	})
	fields, ok = apperr.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fields, "lines[0].product_id")

	_, err = svc.Create(Request{
		SedeID:        "sede-1",
		PaymentMethod: payments.Cash,
		ClientID:      "nope",
		Lines:         []RequestLine{{ProductID: p.ID, Quantity: 1}},
	})
	fields, ok = apperr.AsFieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fields, "client_id")
}

func TestCreate_NothingMutatesOnValidationFailure(t *testing.T) {
	svc, catalogSvc, p, _ := newTestService(t)

	_, err := svc.Create(Request{
		SedeID:        "sede-1",
		PaymentMethod: payments.Cash,
		Lines: []RequestLine{
			{ProductID: p.ID, Quantity: 2},
			{ProductID: p.ID, Quantity: 99}, // stock insuficiente
		},
	})
	require.Error(t, err)

	got, err := catalogSvc.GetProduct(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Stock, "stock untouched when the request is rejected")

	all, _, err := svc.Search("", "")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSearch_FiltersAndMetadata(t *testing.T) {
	svc, _, p, cl := newTestService(t)

	mk := func(clientID, sede string, method payments.Method, qty int) {
		_, err := svc.Create(Request{
			ClientID: clientID, SedeID: sede, PaymentMethod: method,
			Lines: []RequestLine{{ProductID: p.ID, Quantity: qty}},
		})
		require.NoError(t, err)
	}
	mk(cl.ID, "sede-1", payments.Cash, 1)  // 100
	mk(cl.ID, "sede-2", payments.Card, 2)  // 200
	mk("", "sede-1", payments.Transfer, 1) // 100

	results, metadata, err := svc.Search("", "")
	require.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Equal(t, 3, metadata.Quantity)
	assert.Equal(t, 1, metadata.Cash)
	assert.Equal(t, 1, metadata.Card)
	assert.Equal(t, 1, metadata.Transfer)
	assert.True(t, metadata.TotalAmount.Equal(dec("400")), "total = %s", metadata.TotalAmount)

	results, metadata, err = svc.Search(cl.ID, "")
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, 2, metadata.Quantity)

	results, _, err = svc.Search("", "sede-2")
	require.NoError(t, err)
	assert.Len(t, results, 1)
}
