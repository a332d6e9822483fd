package memberships

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gym_admin/internal/apperr"
)

// Service provides membership plan management on a Storage backend.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// NewService creates a new memberships Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Service{storage: storage, logger: logger}
}

// Input carries the editable fields of a membership plan.
type Input struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	DurationDays    int             `json:"duration_days"`
	Price           decimal.Decimal `json:"price"`
	AllowsAllVenues bool            `json:"allows_all_venues"`
}

func (in *Input) validate() apperr.FieldErrors {
	errs := apperr.FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "el nombre es obligatorio"
	}
	if in.DurationDays <= 0 {
		errs["duration_days"] = "la duración debe ser mayor a cero"
	}
	if in.Price.IsNegative() {
		errs["price"] = "el precio no puede ser negativo"
	}
	return errs
}

// Create validates and stores a new membership plan.
func (s *Service) Create(in Input) (*Membership, error) {
	if errs := in.validate(); len(errs) > 0 {
		return nil, errs
	}
	now := time.Now()
	m := &Membership{
		ID:              uuid.NewString(),
		Name:            in.Name,
		Description:     in.Description,
		DurationDays:    in.DurationDays,
		Price:           in.Price,
		AllowsAllVenues: in.AllowsAllVenues,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.storage.Set(m); err != nil {
		s.logger.Error("failed to save membership", zap.String("membership_id", m.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to save membership: %w", err)
	}
	s.logger.Info("membership created", zap.String("membership_id", m.ID), zap.String("name", m.Name))
	return m, nil
}

// Update overwrites the editable fields of an existing plan.
func (s *Service) Update(id string, in Input) (*Membership, error) {
	m, err := s.storage.Read(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if errs := in.validate(); len(errs) > 0 {
		return nil, errs
	}
	m.Name = in.Name
	m.Description = in.Description
	m.DurationDays = in.DurationDays
	m.Price = in.Price
	m.AllowsAllVenues = in.AllowsAllVenues
	m.UpdatedAt = time.Now()
	if err := s.storage.Set(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Get returns a single membership plan by ID.
func (s *Service) Get(id string) (*Membership, error) {
	return s.storage.Read(id)
}

// List returns every membership plan, optionally only active ones.
func (s *Service) List(onlyActive bool) ([]*Membership, error) {
	all, err := s.storage.GetAll()
	if err != nil {
		return nil, err
	}
	if !onlyActive {
		return all, nil
	}
	filtered := make([]*Membership, 0, len(all))
	for _, m := range all {
		if m.Active {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

// Delete removes a plan permanently.
func (s *Service) Delete(id string) error {
	return s.storage.Delete(id)
}
