// Package payments define los medios de pago aceptados en ventas y
// suscripciones.
package payments

import "errors"

// Method is a payment method accepted at the POS and for subscriptions.
type Method string

const (
	Cash     Method = "cash"
	Card     Method = "card"
	Transfer Method = "transfer"
)

// ErrInvalidMethod is returned when a payment method is not one of the
// accepted values.
var ErrInvalidMethod = errors.New("invalid payment method")

// Valid reports whether m is an accepted payment method.
func Valid(m Method) bool {
	switch m {
	case Cash, Card, Transfer:
		return true
	}
	return false
}
