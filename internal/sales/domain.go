package sales

import (
	"time"

	"github.com/shopspring/decimal"

	"gym_admin/internal/payments"
)

// SaleLine is one product entry inside a registered sale, with the price
// snapshot taken at sale time.
type SaleLine struct {
	ProductID string          `json:"product_id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Discount  decimal.Decimal `json:"discount"`
}

// Subtotal is unitPrice×quantity − discount for this line.
func (l SaleLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))).Sub(l.Discount)
}

// Sale represents a completed point-of-sale transaction.
type Sale struct {
	ID             string          `json:"id"`
	ClientID       string          `json:"client_id,omitempty"`
	SedeID         string          `json:"sede_id"`
	PaymentMethod  payments.Method `json:"payment_method"`
	Lines          []SaleLine      `json:"lines"`
	GlobalDiscount decimal.Decimal `json:"global_discount"`
	Total          decimal.Decimal `json:"total"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// RequestLine is one line of an incoming sale request.
type RequestLine struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Discount  decimal.Decimal `json:"discount"`
}

// Request is the payload submitted by the POS screen. El cliente es
// opcional (venta a consumidor final).
type Request struct {
	ClientID       string          `json:"client_id"`
	SedeID         string          `json:"sede_id"`
	PaymentMethod  payments.Method `json:"payment_method"`
	Lines          []RequestLine   `json:"lines"`
	GlobalDiscount decimal.Decimal `json:"global_discount"`
	Notes          string          `json:"notes"`
}

// Receipt is the acknowledgement returned after a successful sale.
type Receipt struct {
	SaleID    string          `json:"sale_id"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}
