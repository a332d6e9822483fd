// Package stats arma los agregados de las tarjetas del dashboard. Es solo
// lectura: consulta a los demás servicios y no guarda nada propio.
package stats

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gym_admin/internal/catalog"
	"gym_admin/internal/clients"
	"gym_admin/internal/sales"
	"gym_admin/internal/subscriptions"
)

// Dashboard holds the aggregate counts and sums the home screen shows.
type Dashboard struct {
	ActiveClients       int             `json:"active_clients"`
	ActiveSubscriptions int             `json:"active_subscriptions"`
	ExpiringWithin7Days int             `json:"expiring_within_7_days"`
	SalesTotalToday     decimal.Decimal `json:"sales_total_today"`
	SalesTotalThisMonth decimal.Decimal `json:"sales_total_this_month"`
	LowStockProducts    int             `json:"low_stock_products"`
	GeneratedAt         time.Time       `json:"generated_at"`
}

// Service computes dashboard aggregates from the other services.
type Service struct {
	clients       *clients.Service
	subscriptions subscriptions.Storage
	sales         *sales.Service
	catalog       *catalog.Service
	logger        *zap.Logger
	now           func() time.Time
}

// NewService creates a new stats Service.
func NewService(clientSvc *clients.Service, subStorage subscriptions.Storage, saleSvc *sales.Service, catalogSvc *catalog.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Service{
		clients:       clientSvc,
		subscriptions: subStorage,
		sales:         saleSvc,
		catalog:       catalogSvc,
		logger:        logger,
		now:           time.Now,
	}
}

// Dashboard computes every card in one pass.
func (s *Service) Dashboard() (*Dashboard, error) {
	now := s.now()
	d := &Dashboard{
		SalesTotalToday:     decimal.Zero,
		SalesTotalThisMonth: decimal.Zero,
		GeneratedAt:         now,
	}

	allClients, err := s.clients.Search("", "")
	if err != nil {
		return nil, err
	}
	for _, c := range allClients {
		if c.Active {
			d.ActiveClients++
		}
	}

	subs, err := s.subscriptions.GetAll()
	if err != nil {
		return nil, err
	}
	for _, sub := range subs {
		if sub.Status != subscriptions.StatusActive {
			continue
		}
		d.ActiveSubscriptions++
		if days := sub.DaysRemaining(now); days >= 0 && days <= 7 {
			d.ExpiringWithin7Days++
		}
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if d.SalesTotalToday, err = s.sales.TotalBetween(startOfDay, now.Add(time.Second)); err != nil {
		return nil, err
	}
	if d.SalesTotalThisMonth, err = s.sales.TotalBetween(startOfMonth, now.Add(time.Second)); err != nil {
		return nil, err
	}

	low, err := s.catalog.LowStockProducts()
	if err != nil {
		return nil, err
	}
	d.LowStockProducts = len(low)

	return d, nil
}
