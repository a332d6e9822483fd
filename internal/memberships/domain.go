package memberships

import (
	"time"

	"github.com/shopspring/decimal"
)

// Membership is a plan definition (membresía): what a client can buy,
// as opposed to a Subscription, which is a client's enrollment instance.
type Membership struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	DurationDays    int             `json:"duration_days"`
	Price           decimal.Decimal `json:"price"`
	AllowsAllVenues bool            `json:"allows_all_venues"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
