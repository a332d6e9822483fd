package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gym_admin/internal/apperr"
)

// ErrInsufficientStock is returned when a stock adjustment would leave a
// product with negative stock.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrCategoryInUse is returned when deleting a category that still has products.
var ErrCategoryInUse = errors.New("category has products")

// Service provides product and category management on a Storage backend.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// NewService creates a new catalog Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Service{storage: storage, logger: logger}
}

// ProductInput carries the editable fields of a product.
type ProductInput struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	CategoryID string          `json:"category_id"`
	SupplierID string          `json:"supplier_id"`
	SalePrice  decimal.Decimal `json:"sale_price"`
	CostPrice  decimal.Decimal `json:"cost_price"`
	Stock      int             `json:"stock"`
	MinStock   int             `json:"min_stock"`
}

// Validate devuelve errores por campo, con la misma forma que consume la UI.
func (in *ProductInput) Validate() map[string]string {
	fieldErrs := map[string]string{}
	if strings.TrimSpace(in.Code) == "" {
		fieldErrs["code"] = "el código es obligatorio"
	}
	if strings.TrimSpace(in.Name) == "" {
		fieldErrs["name"] = "el nombre es obligatorio"
	}
	if in.SalePrice.IsNegative() {
		fieldErrs["sale_price"] = "el precio no puede ser negativo"
	}
	if in.CostPrice.IsNegative() {
		fieldErrs["cost_price"] = "el costo no puede ser negativo"
	}
	if in.Stock < 0 {
		fieldErrs["stock"] = "el stock no puede ser negativo"
	}
	if in.MinStock < 0 {
		fieldErrs["min_stock"] = "el stock mínimo no puede ser negativo"
	}
	return fieldErrs
}

// CreateProduct validates the input, checks the category exists and stores
// a new product.
func (s *Service) CreateProduct(in ProductInput) (*Product, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return nil, apperr.FieldErrors(errs)
	}
	if _, err := s.storage.ReadCategory(in.CategoryID); err != nil {
		return nil, apperr.FieldErrors{"category_id": "la categoría no existe"}
	}

	now := time.Now()
	p := &Product{
		ID:         uuid.NewString(),
		Code:       in.Code,
		Name:       in.Name,
		CategoryID: in.CategoryID,
		SupplierID: in.SupplierID,
		SalePrice:  in.SalePrice,
		CostPrice:  in.CostPrice,
		Stock:      in.Stock,
		MinStock:   in.MinStock,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.storage.SetProduct(p); err != nil {
		s.logger.Error("failed to save product", zap.String("product_id", p.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	s.logger.Info("product created", zap.String("product_id", p.ID), zap.String("code", p.Code))
	return p, nil
}

// UpdateProduct overwrites the editable fields of an existing product.
func (s *Service) UpdateProduct(id string, in ProductInput) (*Product, error) {
	p, err := s.storage.ReadProduct(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if errs := in.Validate(); len(errs) > 0 {
		return nil, apperr.FieldErrors(errs)
	}
	if _, err := s.storage.ReadCategory(in.CategoryID); err != nil {
		return nil, apperr.FieldErrors{"category_id": "la categoría no existe"}
	}

	p.Code = in.Code
	p.Name = in.Name
	p.CategoryID = in.CategoryID
	p.SupplierID = in.SupplierID
	p.SalePrice = in.SalePrice
	p.CostPrice = in.CostPrice
	p.Stock = in.Stock
	p.MinStock = in.MinStock
	p.UpdatedAt = time.Now()
	if err := s.storage.SetProduct(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProduct returns a single product by ID.
func (s *Service) GetProduct(id string) (*Product, error) {
	return s.storage.ReadProduct(id)
}

// SearchProducts filters the catalog by free text (code or name) and category.
func (s *Service) SearchProducts(query, categoryID string) ([]*Product, error) {
	all, err := s.storage.AllProducts()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	q := strings.ToLower(strings.TrimSpace(query))
	filtered := make([]*Product, 0)
	for _, p := range all {
		if categoryID != "" && p.CategoryID != categoryID {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) && !strings.Contains(strings.ToLower(p.Code), q) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

// DeleteProduct removes a product unconditionally.
func (s *Service) DeleteProduct(id string) error {
	return s.storage.DeleteProduct(id)
}

// AdjustStock applies a signed delta to a product's stock. A delta that
// would leave negative stock is rejected without mutating the product.
func (s *Service) AdjustStock(productID string, delta int) (*Product, error) {
	p, err := s.storage.ReadProduct(productID)
	if err != nil {
		return nil, ErrNotFound
	}
	if p.Stock+delta < 0 {
		return nil, fmt.Errorf("%w: product %s has %d, requested %d", ErrInsufficientStock, p.Code, p.Stock, -delta)
	}
	p.Stock += delta
	p.UpdatedAt = time.Now()
	if err := s.storage.SetProduct(p); err != nil {
		return nil, err
	}
	if p.LowStock() {
		s.logger.Warn("product below minimum stock", zap.String("product_id", p.ID), zap.Int("stock", p.Stock), zap.Int("min_stock", p.MinStock))
	}
	return p, nil
}

// LowStockProducts lists products at or below their minimum, para las
// tarjetas del dashboard.
func (s *Service) LowStockProducts() ([]*Product, error) {
	all, err := s.storage.AllProducts()
	if err != nil {
		return nil, err
	}
	low := make([]*Product, 0)
	for _, p := range all {
		if p.Active && p.LowStock() {
			low = append(low, p)
		}
	}
	return low, nil
}

// CreateCategory stores a new category.
func (s *Service) CreateCategory(name, description string) (*Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperr.FieldErrors{"name": "el nombre es obligatorio"}
	}
	c := &Category{ID: uuid.NewString(), Name: name, Description: description}
	if err := s.storage.SetCategory(c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetCategory returns a single category by ID.
func (s *Service) GetCategory(id string) (*Category, error) {
	return s.storage.ReadCategory(id)
}

// ListCategories returns every category.
func (s *Service) ListCategories() ([]*Category, error) {
	return s.storage.AllCategories()
}

// UpdateCategory overwrites a category's fields.
func (s *Service) UpdateCategory(id, name, description string) (*Category, error) {
	c, err := s.storage.ReadCategory(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if strings.TrimSpace(name) == "" {
		return nil, apperr.FieldErrors{"name": "el nombre es obligatorio"}
	}
	c.Name = name
	c.Description = description
	if err := s.storage.SetCategory(c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory removes a category, rejecting the delete while products
// still reference it.
func (s *Service) DeleteCategory(id string) error {
	all, err := s.storage.AllProducts()
	if err != nil {
		return err
	}
	for _, p := range all {
		if p.CategoryID == id {
			return ErrCategoryInUse
		}
	}
	return s.storage.DeleteCategory(id)
}
