package venues

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gym_admin/internal/apperr"
)

// ErrSedeHasEspacios is returned when deleting a sede that still has spaces.
var ErrSedeHasEspacios = errors.New("sede has espacios")

// Service provides sede and espacio management on a Storage backend.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// NewService creates a new venues Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Service{storage: storage, logger: logger}
}

// SedeInput carries the editable fields of a sede.
type SedeInput struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// EspacioInput carries the editable fields of an espacio.
type EspacioInput struct {
	SedeID   string `json:"sede_id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// CreateSede validates and stores a new venue.
func (s *Service) CreateSede(in SedeInput) (*Sede, error) {
	errs := apperr.FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "el nombre es obligatorio"
	}
	if strings.TrimSpace(in.Address) == "" {
		errs["address"] = "la dirección es obligatoria"
	}
	if len(errs) > 0 {
		return nil, errs
	}
	sede := &Sede{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if err := s.storage.SetSede(sede); err != nil {
		s.logger.Error("failed to save sede", zap.String("sede_id", sede.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to save sede: %w", err)
	}
	s.logger.Info("sede created", zap.String("sede_id", sede.ID), zap.String("name", sede.Name))
	return sede, nil
}

// UpdateSede overwrites the editable fields of a venue.
func (s *Service) UpdateSede(id string, in SedeInput) (*Sede, error) {
	sede, err := s.storage.ReadSede(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperr.FieldErrors{"name": "el nombre es obligatorio"}
	}
	sede.Name = in.Name
	sede.Address = in.Address
	sede.Phone = in.Phone
	if err := s.storage.SetSede(sede); err != nil {
		return nil, err
	}
	return sede, nil
}

// GetSede returns a single venue by ID.
func (s *Service) GetSede(id string) (*Sede, error) {
	return s.storage.ReadSede(id)
}

// ListSedes returns every venue.
func (s *Service) ListSedes() ([]*Sede, error) {
	return s.storage.AllSedes()
}

// DeleteSede removes a venue, rejected while espacios still reference it.
func (s *Service) DeleteSede(id string) error {
	all, err := s.storage.AllEspacios()
	if err != nil {
		return err
	}
	for _, e := range all {
		if e.SedeID == id {
			return ErrSedeHasEspacios
		}
	}
	return s.storage.DeleteSede(id)
}

// CreateEspacio validates the parent sede and stores a new space.
func (s *Service) CreateEspacio(in EspacioInput) (*Espacio, error) {
	errs := apperr.FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "el nombre es obligatorio"
	}
	if in.Capacity <= 0 {
		errs["capacity"] = "la capacidad debe ser mayor a cero"
	}
	if len(errs) > 0 {
		return nil, errs
	}
	if _, err := s.storage.ReadSede(in.SedeID); err != nil {
		return nil, apperr.FieldErrors{"sede_id": "la sede no existe"}
	}
	e := &Espacio{
		ID:        uuid.NewString(),
		SedeID:    in.SedeID,
		Name:      in.Name,
		Capacity:  in.Capacity,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if err := s.storage.SetEspacio(e); err != nil {
		return nil, fmt.Errorf("failed to save espacio: %w", err)
	}
	return e, nil
}

// UpdateEspacio overwrites the editable fields of a space.
func (s *Service) UpdateEspacio(id string, in EspacioInput) (*Espacio, error) {
	e, err := s.storage.ReadEspacio(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if in.Capacity <= 0 {
		return nil, apperr.FieldErrors{"capacity": "la capacidad debe ser mayor a cero"}
	}
	e.Name = in.Name
	e.Capacity = in.Capacity
	if err := s.storage.SetEspacio(e); err != nil {
		return nil, err
	}
	return e, nil
}

// GetEspacio returns a single space by ID.
func (s *Service) GetEspacio(id string) (*Espacio, error) {
	return s.storage.ReadEspacio(id)
}

// ListEspacios returns the spaces of a sede, or all of them if sedeID is empty.
func (s *Service) ListEspacios(sedeID string) ([]*Espacio, error) {
	all, err := s.storage.AllEspacios()
	if err != nil {
		return nil, err
	}
	if sedeID == "" {
		return all, nil
	}
	filtered := make([]*Espacio, 0)
	for _, e := range all {
		if e.SedeID == sedeID {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// DeleteEspacio removes a space permanently.
func (s *Service) DeleteEspacio(id string) error {
	return s.storage.DeleteEspacio(id)
}
