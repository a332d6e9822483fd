package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a sellable item with its current stock level.
type Product struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	CategoryID string          `json:"category_id"`
	SupplierID string          `json:"supplier_id,omitempty"`
	SalePrice  decimal.Decimal `json:"sale_price"`
	CostPrice  decimal.Decimal `json:"cost_price"`
	Stock      int             `json:"stock"`
	MinStock   int             `json:"min_stock"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Category agrupa productos para filtros y reportes.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// LowStock reports whether the product is at or below its minimum.
func (p *Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
