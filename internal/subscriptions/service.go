package subscriptions

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gym_admin/internal/apperr"
	"gym_admin/internal/clients"
	"gym_admin/internal/memberships"
	"gym_admin/internal/payments"
)

// Service provides subscription lifecycle operations on a Storage backend.
// Plan data comes from the memberships service and client references are
// validated against the clients service.
type Service struct {
	storage     Storage
	memberships *memberships.Service
	clients     *clients.Service
	logger      *zap.Logger
	now         func() time.Time
}

// NewService creates a new subscriptions Service.
func NewService(storage Storage, membershipSvc *memberships.Service, clientSvc *clients.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Service{
		storage:     storage,
		memberships: membershipSvc,
		clients:     clientSvc,
		logger:      logger,
		now:         time.Now,
	}
}

// SubscribeInput carries the fields of a new enrollment.
type SubscribeInput struct {
	ClientID      string          `json:"client_id"`
	MembershipID  string          `json:"membership_id"`
	StartDate     time.Time       `json:"start_date"`
	PaymentMethod payments.Method `json:"payment_method"`
	SedeID        string          `json:"sede_id"`
	Notes         string          `json:"notes"`
}

// Subscribe enrolls a client in a plan. The end date is the start date plus
// the plan's duration in days; the price charged is the plan's price at
// enrollment time.
func (s *Service) Subscribe(in SubscribeInput) (*Subscription, error) {
	errs := apperr.FieldErrors{}
	if in.ClientID == "" {
		errs["client_id"] = "el cliente es obligatorio"
	}
	if in.MembershipID == "" {
		errs["membership_id"] = "la membresía es obligatoria"
	}
	if in.StartDate.IsZero() {
		errs["start_date"] = "la fecha de inicio es obligatoria"
	}
	if !payments.Valid(in.PaymentMethod) {
		errs["payment_method"] = "medio de pago inválido"
	}
	if len(errs) > 0 {
		return nil, errs
	}

	if _, err := s.clients.Get(in.ClientID); err != nil {
		return nil, apperr.FieldErrors{"client_id": "el cliente no existe"}
	}
	plan, err := s.memberships.Get(in.MembershipID)
	if err != nil {
		return nil, apperr.FieldErrors{"membership_id": "la membresía no existe"}
	}

	now := s.now()
	sub := &Subscription{
		ID:              uuid.NewString(),
		ClientID:        in.ClientID,
		MembershipID:    in.MembershipID,
		StartDate:       in.StartDate,
		EndDate:         in.StartDate.AddDate(0, 0, plan.DurationDays),
		PricePaid:       plan.Price,
		PaymentMethod:   in.PaymentMethod,
		Status:          StatusActive,
		SedeID:          in.SedeID,
		AllowsAllVenues: plan.AllowsAllVenues,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.storage.Set(sub); err != nil {
		s.logger.Error("failed to save subscription", zap.String("subscription_id", sub.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to save subscription: %w", err)
	}
	s.logger.Info("client subscribed",
		zap.String("subscription_id", sub.ID),
		zap.String("client_id", sub.ClientID),
		zap.String("membership_id", sub.MembershipID),
		zap.Time("end_date", sub.EndDate),
	)
	return sub, nil
}

// Renew extends a subscription by its plan's duration and re-activates it.
// An expired subscription restarts from today; an active one extends from
// its current end date.
func (s *Service) Renew(id string, method payments.Method) (*Subscription, error) {
	sub, err := s.storage.Read(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if !payments.Valid(method) {
		return nil, payments.ErrInvalidMethod
	}
	plan, err := s.memberships.Get(sub.MembershipID)
	if err != nil {
		return nil, fmt.Errorf("membership for subscription %s: %w", id, err)
	}

	now := s.now()
	base := sub.EndDate
	if base.Before(now) {
		base = now
	}
	sub.StartDate = base
	sub.EndDate = base.AddDate(0, 0, plan.DurationDays)
	sub.PricePaid = plan.Price
	sub.PaymentMethod = method
	sub.Status = StatusActive
	sub.UpdatedAt = now
	if err := s.storage.Set(sub); err != nil {
		return nil, err
	}
	s.logger.Info("subscription renewed", zap.String("subscription_id", sub.ID), zap.Time("end_date", sub.EndDate))
	return sub, nil
}

// Cancel marks a subscription cancelled. Cancelling twice is rejected.
func (s *Service) Cancel(id string) (*Subscription, error) {
	sub, err := s.storage.Read(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if sub.Status == StatusCancelled {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyCancelled, id)
	}
	sub.Status = StatusCancelled
	sub.UpdatedAt = s.now()
	if err := s.storage.Set(sub); err != nil {
		return nil, err
	}
	s.logger.Info("subscription cancelled", zap.String("subscription_id", sub.ID))
	return sub, nil
}

// Get returns a single subscription by ID.
func (s *Service) Get(id string) (*Subscription, error) {
	return s.storage.Read(id)
}

// HistoryFor returns every subscription of a client, newest first. Status
// is reported as stored; an overdue record still flagged active stays
// active until ExpireOverdue runs, and the view bands it urgent.
func (s *Service) HistoryFor(clientID string) ([]*Subscription, error) {
	all, err := s.storage.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve subscriptions: %w", err)
	}
	history := make([]*Subscription, 0)
	for _, sub := range all {
		if sub.ClientID == clientID {
			history = append(history, sub)
		}
	}
	return history, nil
}

// ExpireOverdue flags every active subscription whose end date has passed
// as expired and returns how many were updated.
func (s *Service) ExpireOverdue() (int, error) {
	all, err := s.storage.GetAll()
	if err != nil {
		return 0, err
	}
	now := s.now()
	expired := 0
	for _, sub := range all {
		if sub.Status != StatusActive || !sub.EndDate.Before(now) {
			continue
		}
		sub.Status = StatusExpired
		sub.UpdatedAt = now
		if err := s.storage.Set(sub); err != nil {
			return expired, err
		}
		expired++
	}
	if expired > 0 {
		s.logger.Info("overdue subscriptions expired", zap.Int("count", expired))
	}
	return expired, nil
}

// ViewFor classifies a client's history into the membership view the
// detail screen renders.
func (s *Service) ViewFor(clientID string) (View, error) {
	history, err := s.HistoryFor(clientID)
	if err != nil {
		return View{}, err
	}
	return Classify(history, s.now()), nil
}
