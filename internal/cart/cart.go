// Package cart mantiene el estado de una venta en curso en la pantalla de
// POS: líneas de productos, descuentos y totales. Todo es estado local de
// una sola goroutine; recién al confirmar se habla con el backend.
package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"gym_admin/internal/payments"
	"gym_admin/internal/sales"
)

// ErrLineNotFound is returned when an operation references a product that
// has no line in the cart.
var ErrLineNotFound = errors.New("product not in cart")

// ErrQuantityExceedsStock is returned when a quantity update asks for more
// units than the line's available stock.
var ErrQuantityExceedsStock = errors.New("quantity exceeds available stock")

// ErrNegativeDiscount is returned when a discount update carries a
// negative value.
var ErrNegativeDiscount = errors.New("discount cannot be negative")

// ErrCartEmpty is returned when submitting a cart with no lines.
var ErrCartEmpty = errors.New("cart is empty")

// ErrNoVenue is returned when submitting without a selected sede.
var ErrNoVenue = errors.New("no sede selected")

// ErrInsufficientPayment is returned when a cash sale is submitted with
// less money tendered than the total.
var ErrInsufficientPayment = errors.New("amount tendered is less than total")

// ErrSubmitting is returned when the cart is mutated while a submission is
// in flight. Es el equivalente a deshabilitar los controles en la UI.
var ErrSubmitting = errors.New("submission in progress")

// Status is the lifecycle state of the cart.
type Status string

const (
	StatusEmpty      Status = "empty"
	StatusPopulating Status = "populating"
	StatusSubmitting Status = "submitting"
)

// ProductInfo is the snapshot taken from the catalog when a product is
// added: price and stock as they were at add time.
type ProductInfo struct {
	ID             string
	Code           string
	Name           string
	UnitPrice      decimal.Decimal
	AvailableStock int
}

// Line is one product entry in the in-progress sale.
type Line struct {
	ProductID      string          `json:"product_id"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Quantity       int             `json:"quantity"`
	Discount       decimal.Decimal `json:"discount"`
	AvailableStock int             `json:"available_stock"`
}

// Subtotal is unitPrice×quantity − discount for this line.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))).Sub(l.Discount)
}

// Submitter sends a finished sale request to the backend. Both the resty
// client and the in-process sales service satisfy it.
type Submitter interface {
	SubmitSale(ctx context.Context, req sales.Request) (*sales.Receipt, error)
}

// Cart holds the lines and auxiliary fields of a single in-progress sale.
// It keeps at most one line per product, in insertion order.
type Cart struct {
	lines []Line

	ClientID       string
	GlobalDiscount decimal.Decimal
	Notes          string
	AmountTendered decimal.Decimal

	submitting bool
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{
		GlobalDiscount: decimal.Zero,
		AmountTendered: decimal.Zero,
	}
}

// Status reports the cart's lifecycle state.
func (c *Cart) Status() Status {
	switch {
	case c.submitting:
		return StatusSubmitting
	case len(c.lines) == 0:
		return StatusEmpty
	default:
		return StatusPopulating
	}
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) find(productID string) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem adds one unit of the product. If a line already exists its
// quantity is incremented; when the increment would exceed the line's
// available stock nothing changes and a user-facing warning is returned
// instead of an error.
func (c *Cart) AddItem(p ProductInfo) (warning string, err error) {
	if c.submitting {
		return "", ErrSubmitting
	}
	if i := c.find(p.ID); i >= 0 {
		if c.lines[i].Quantity+1 > c.lines[i].AvailableStock {
			return fmt.Sprintf("no hay más stock de %s (disponible: %d)", c.lines[i].Name, c.lines[i].AvailableStock), nil
		}
		c.lines[i].Quantity++
		return "", nil
	}
	if p.AvailableStock < 1 {
		return fmt.Sprintf("no hay stock de %s", p.Name), nil
	}
	c.lines = append(c.lines, Line{
		ProductID:      p.ID,
		Code:           p.Code,
		Name:           p.Name,
		UnitPrice:      p.UnitPrice,
		Quantity:       1,
		Discount:       decimal.Zero,
		AvailableStock: p.AvailableStock,
	})
	return "", nil
}

// UpdateQuantity sets a line's quantity. A quantity above the available
// stock is rejected without mutating the line; zero or less removes the
// line.
func (c *Cart) UpdateQuantity(productID string, quantity int) error {
	if c.submitting {
		return ErrSubmitting
	}
	i := c.find(productID)
	if i < 0 {
		return ErrLineNotFound
	}
	if quantity > c.lines[i].AvailableStock {
		return fmt.Errorf("%w: %s (disponible: %d)", ErrQuantityExceedsStock, c.lines[i].Name, c.lines[i].AvailableStock)
	}
	if quantity <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return nil
	}
	c.lines[i].Quantity = quantity
	return nil
}

// UpdateDiscount overwrites a line's discount. Negative values are rejected.
func (c *Cart) UpdateDiscount(productID string, discount decimal.Decimal) error {
	if c.submitting {
		return ErrSubmitting
	}
	if discount.IsNegative() {
		return ErrNegativeDiscount
	}
	i := c.find(productID)
	if i < 0 {
		return ErrLineNotFound
	}
	c.lines[i].Discount = discount
	return nil
}

// RemoveItem removes the product's line. Removing an absent product is a
// no-op.
func (c *Cart) RemoveItem(productID string) {
	if c.submitting {
		return
	}
	if i := c.find(productID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// Clear empties the cart and resets the auxiliary sale fields.
func (c *Cart) Clear() {
	c.lines = nil
	c.ClientID = ""
	c.GlobalDiscount = decimal.Zero
	c.Notes = ""
	c.AmountTendered = decimal.Zero
}

// Subtotal is the sum of (unitPrice×quantity − discount) across lines.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Total is the subtotal minus the global discount. No tiene piso en cero:
// un descuento mayor al subtotal da un total negativo.
func (c *Cart) Total() decimal.Decimal {
	return c.Subtotal().Sub(c.GlobalDiscount)
}

// ChangeDue is the amount tendered minus the total. A negative change
// means the payment does not cover the sale.
func (c *Cart) ChangeDue() decimal.Decimal {
	return c.AmountTendered.Sub(c.Total())
}

// Submit validates the sale, sends it through the submitter and, on
// success, clears the cart. On failure the lines and auxiliary fields are
// preserved so the user can correct and resubmit.
func (c *Cart) Submit(ctx context.Context, backend Submitter, sedeID string, method payments.Method) (*sales.Receipt, error) {
	if c.submitting {
		return nil, ErrSubmitting
	}
	if len(c.lines) == 0 {
		return nil, ErrCartEmpty
	}
	if sedeID == "" {
		return nil, ErrNoVenue
	}
	if !payments.Valid(method) {
		return nil, payments.ErrInvalidMethod
	}
	if method == payments.Cash && c.ChangeDue().IsNegative() {
		return nil, fmt.Errorf("%w: faltan %s", ErrInsufficientPayment, c.ChangeDue().Neg().String())
	}

	req := sales.Request{
		ClientID:       c.ClientID,
		SedeID:         sedeID,
		PaymentMethod:  method,
		GlobalDiscount: c.GlobalDiscount,
		Notes:          c.Notes,
	}
	for _, l := range c.lines {
		req.Lines = append(req.Lines, sales.RequestLine{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Discount:  l.Discount,
		})
	}

	c.submitting = true
	receipt, err := backend.SubmitSale(ctx, req)
	c.submitting = false
	if err != nil {
		return nil, err
	}
	c.Clear()
	return receipt, nil
}
