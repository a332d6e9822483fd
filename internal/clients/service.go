package clients

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gym_admin/internal/apperr"
)

// Service provides client management operations on a Storage backend.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// NewService creates a new clients Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Service{storage: storage, logger: logger}
}

// Input carries the editable fields of a client.
type Input struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Document  string `json:"document"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	SedeID    string `json:"sede_id"`
}

func (in *Input) validate() apperr.FieldErrors {
	errs := apperr.FieldErrors{}
	if strings.TrimSpace(in.FirstName) == "" {
		errs["first_name"] = "el nombre es obligatorio"
	}
	if strings.TrimSpace(in.LastName) == "" {
		errs["last_name"] = "el apellido es obligatorio"
	}
	if strings.TrimSpace(in.Document) == "" {
		errs["document"] = "el documento es obligatorio"
	}
	if in.Email != "" && !strings.Contains(in.Email, "@") {
		errs["email"] = "el email no es válido"
	}
	return errs
}

// Create validates and stores a new client. The document must be unique.
func (s *Service) Create(in Input) (*Client, error) {
	if errs := in.validate(); len(errs) > 0 {
		return nil, errs
	}
	all, err := s.storage.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve clients: %w", err)
	}
	for _, c := range all {
		if c.Document == in.Document {
			return nil, apperr.FieldErrors{"document": "ya existe un cliente con ese documento"}
		}
	}

	now := time.Now()
	c := &Client{
		ID:        uuid.NewString(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Document:  in.Document,
		Email:     in.Email,
		Phone:     in.Phone,
		SedeID:    in.SedeID,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.storage.Set(c); err != nil {
		s.logger.Error("failed to save client", zap.String("client_id", c.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to save client: %w", err)
	}
	s.logger.Info("client created", zap.String("client_id", c.ID), zap.String("document", c.Document))
	return c, nil
}

// Update overwrites the editable fields of an existing client.
func (s *Service) Update(id string, in Input) (*Client, error) {
	c, err := s.storage.Read(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if errs := in.validate(); len(errs) > 0 {
		return nil, errs
	}
	c.FirstName = in.FirstName
	c.LastName = in.LastName
	c.Document = in.Document
	c.Email = in.Email
	c.Phone = in.Phone
	c.SedeID = in.SedeID
	c.UpdatedAt = time.Now()
	if err := s.storage.Set(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns a single client by ID.
func (s *Service) Get(id string) (*Client, error) {
	return s.storage.Read(id)
}

// Search filters clients by free text (name or document) and sede.
func (s *Service) Search(query, sedeID string) ([]*Client, error) {
	all, err := s.storage.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve clients: %w", err)
	}
	q := strings.ToLower(strings.TrimSpace(query))
	filtered := make([]*Client, 0)
	for _, c := range all {
		if sedeID != "" && c.SedeID != sedeID {
			continue
		}
		if q != "" {
			name := strings.ToLower(c.FirstName + " " + c.LastName)
			if !strings.Contains(name, q) && !strings.Contains(c.Document, q) {
				continue
			}
		}
		filtered = append(filtered, c)
	}
	return filtered, nil
}

// Deactivate marks a client inactive without removing its history.
func (s *Service) Deactivate(id string) (*Client, error) {
	c, err := s.storage.Read(id)
	if err != nil {
		return nil, ErrNotFound
	}
	c.Active = false
	c.UpdatedAt = time.Now()
	if err := s.storage.Set(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a client permanently.
func (s *Service) Delete(id string) error {
	return s.storage.Delete(id)
}
