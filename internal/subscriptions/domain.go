package subscriptions

import (
	"time"

	"github.com/shopspring/decimal"

	"gym_admin/internal/payments"
)

// Status is the backend-owned state of a subscription.
type Status string

const (
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

// Subscription is a client's enrollment in a membership plan.
type Subscription struct {
	ID              string          `json:"id"`
	ClientID        string          `json:"client_id"`
	MembershipID    string          `json:"membership_id"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date"`
	PricePaid       decimal.Decimal `json:"price_paid"`
	PaymentMethod   payments.Method `json:"payment_method"`
	Status          Status          `json:"status"`
	SedeID          string          `json:"sede_id"`
	AllowsAllVenues bool            `json:"allows_all_venues"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// DaysRemaining is the number of whole days until EndDate, counted from
// now. It is negative once the end date has passed.
func (s *Subscription) DaysRemaining(now time.Time) int {
	return int(s.EndDate.Sub(now).Hours() / 24)
}
