package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"gym_admin/internal/apperr"
)

func newTestService(t *testing.T) (*Service, *Category) {
	t.Helper()
	svc := NewService(NewLocalStorage(), zaptest.NewLogger(t))
	cat, err := svc.CreateCategory("Bebidas", "isotónicas y aguas")
	require.NoError(t, err)
	return svc, cat
}

func TestCreateProduct(t *testing.T) {
	svc, cat := newTestService(t)

	p, err := svc.CreateProduct(ProductInput{
		Code: "B010", Name: "Agua 500ml", CategoryID: cat.ID,
		SalePrice: decimal.RequireFromString("1200"),
		CostPrice: decimal.RequireFromString("700"),
		Stock:     24, MinStock: 6,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.True(t, p.Active)

	t.Run("missing fields come back as a field map", func(t *testing.T) {
		_, err := svc.CreateProduct(ProductInput{CategoryID: cat.ID})
		fields, ok := apperr.AsFieldErrors(err)
		require.True(t, ok)
		assert.Contains(t, fields, "code")
		assert.Contains(t, fields, "name")
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := svc.CreateProduct(ProductInput{Code: "X", Name: "X", CategoryID: "nope"})
		fields, ok := apperr.AsFieldErrors(err)
		require.True(t, ok)
		assert.Contains(t, fields, "category_id")
	})
}

func TestAdjustStock(t *testing.T) {
	svc, cat := newTestService(t)
	p, err := svc.CreateProduct(ProductInput{
		Code: "B010", Name: "Agua", CategoryID: cat.ID, Stock: 5, MinStock: 2,
	})
	require.NoError(t, err)

	updated, err := svc.AdjustStock(p.ID, -3)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Stock)

	_, err = svc.AdjustStock(p.ID, -5)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	got, err := svc.GetProduct(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Stock, "rejected adjustment must not mutate")

	_, err = svc.AdjustStock("nope", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLowStockProducts(t *testing.T) {
	svc, cat := newTestService(t)
	_, err := svc.CreateProduct(ProductInput{Code: "A", Name: "A", CategoryID: cat.ID, Stock: 10, MinStock: 2})
	require.NoError(t, err)
	low, err := svc.CreateProduct(ProductInput{Code: "B", Name: "B", CategoryID: cat.ID, Stock: 1, MinStock: 2})
	require.NoError(t, err)

	result, err := svc.LowStockProducts()
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, low.ID, result[0].ID)
}

func TestSearchProducts(t *testing.T) {
	svc, cat := newTestService(t)
	other, err := svc.CreateCategory("Accesorios", "")
	require.NoError(t, err)
	_, err = svc.CreateProduct(ProductInput{Code: "A001", Name: "Agua con gas", CategoryID: cat.ID})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ProductInput{Code: "C001", Name: "Cinturón", CategoryID: other.ID})
	require.NoError(t, err)

	byText, err := svc.SearchProducts("agua", "")
	require.NoError(t, err)
	assert.Len(t, byText, 1)

	byCategory, err := svc.SearchProducts("", other.ID)
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)

	byCode, err := svc.SearchProducts("c001", "")
	require.NoError(t, err)
	assert.Len(t, byCode, 1)
}

func TestDeleteCategory_RejectedWhileInUse(t *testing.T) {
	svc, cat := newTestService(t)
	p, err := svc.CreateProduct(ProductInput{Code: "A", Name: "A", CategoryID: cat.ID})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteCategory(cat.ID), ErrCategoryInUse)

	require.NoError(t, svc.DeleteProduct(p.ID))
	assert.NoError(t, svc.DeleteCategory(cat.ID))
}
