// Package suppliers maneja el ABM de proveedores.
package suppliers

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gym_admin/internal/apperr"
)

// ErrNotFound is returned when a supplier with the given ID is not found.
var ErrNotFound = errors.New("supplier not found")

// ErrEmptyID is returned when trying to store a supplier with an empty ID.
var ErrEmptyID = errors.New("empty supplier ID")

// Supplier represents a product or equipment provider.
type Supplier struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// Storage is the main interface for the suppliers storage layer.
type Storage interface {
	Set(s *Supplier) error
	Read(id string) (*Supplier, error)
	GetAll() ([]*Supplier, error)
	Delete(id string) error
}

// LocalStorage provides an in-memory implementation for storing suppliers.
type LocalStorage struct {
	mu sync.RWMutex
	m  map[string]*Supplier
}

// NewLocalStorage instantiates a new LocalStorage for suppliers.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{m: map[string]*Supplier{}}
}

func (l *LocalStorage) Set(s *Supplier) error {
	if s.ID == "" {
		return ErrEmptyID
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m[s.ID] = s
	return nil
}

func (l *LocalStorage) Read(id string) (*Supplier, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, ok := l.m[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (l *LocalStorage) GetAll() ([]*Supplier, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Supplier, 0, len(l.m))
	for _, s := range l.m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (l *LocalStorage) Delete(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.m[id]; !ok {
		return ErrNotFound
	}
	delete(l.m, id)
	return nil
}

// Service provides supplier management on a Storage backend.
type Service struct {
	storage Storage
	logger  *zap.Logger
}

// NewService creates a new suppliers Service.
func NewService(storage Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Service{storage: storage, logger: logger}
}

// Input carries the editable fields of a supplier.
type Input struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Create validates and stores a new supplier.
func (s *Service) Create(in Input) (*Supplier, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperr.FieldErrors{"name": "el nombre es obligatorio"}
	}
	sup := &Supplier{
		ID:        uuid.NewString(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Email:     in.Email,
		Phone:     in.Phone,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if err := s.storage.Set(sup); err != nil {
		s.logger.Error("failed to save supplier", zap.String("supplier_id", sup.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to save supplier: %w", err)
	}
	return sup, nil
}

// Update overwrites the editable fields of an existing supplier.
func (s *Service) Update(id string, in Input) (*Supplier, error) {
	sup, err := s.storage.Read(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperr.FieldErrors{"name": "el nombre es obligatorio"}
	}
	sup.Name = in.Name
	sup.TaxID = in.TaxID
	sup.Email = in.Email
	sup.Phone = in.Phone
	if err := s.storage.Set(sup); err != nil {
		return nil, err
	}
	return sup, nil
}

// Get returns a single supplier by ID.
func (s *Service) Get(id string) (*Supplier, error) {
	return s.storage.Read(id)
}

// List returns every supplier.
func (s *Service) List() ([]*Supplier, error) {
	return s.storage.GetAll()
}

// Delete removes a supplier permanently.
func (s *Service) Delete(id string) error {
	return s.storage.Delete(id)
}
