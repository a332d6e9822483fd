// Package inventory registra movimientos de stock (entradas, salidas y
// ajustes). Los movimientos son inmutables: se crean y se listan, nunca se
// editan ni se borran.
package inventory

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gym_admin/internal/apperr"
	"gym_admin/internal/catalog"
)

// ErrNotFound is returned when a movement with the given ID is not found.
var ErrNotFound = errors.New("inventory record not found")

// ErrEmptyID is returned when trying to store a record with an empty ID.
var ErrEmptyID = errors.New("empty record ID")

// ErrImmutable is returned on any attempt to delete a movement.
var ErrImmutable = errors.New("inventory records cannot be deleted")

// MovementType classifies an inventory record.
type MovementType string

const (
	TypeEntry      MovementType = "entry"
	TypeExit       MovementType = "exit"
	TypeAdjustment MovementType = "adjustment"
)

// Record is a single stock movement for a product at a sede. Quantity is
// signed only for adjustments; entries and exits carry positive quantities.
type Record struct {
	ID        string       `json:"id"`
	ProductID string       `json:"product_id"`
	Type      MovementType `json:"type"`
	Quantity  int          `json:"quantity"`
	Reason    string       `json:"reason,omitempty"`
	SedeID    string       `json:"sede_id"`
	CreatedAt time.Time    `json:"created_at"`
}

// Storage is the main interface for the inventory storage layer.
type Storage interface {
	Set(r *Record) error
	Read(id string) (*Record, error)
	GetAll() ([]*Record, error)
}

// LocalStorage provides an in-memory implementation for storing movements.
type LocalStorage struct {
	mu sync.RWMutex
	m  map[string]*Record
}

// NewLocalStorage instantiates a new LocalStorage for inventory records.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{m: map[string]*Record{}}
}

func (l *LocalStorage) Set(r *Record) error {
	if r.ID == "" {
		return ErrEmptyID
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m[r.ID] = r
	return nil
}

func (l *LocalStorage) Read(id string) (*Record, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	r, ok := l.m[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

// GetAll retrieves every movement, newest first.
func (l *LocalStorage) GetAll() ([]*Record, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Record, 0, len(l.m))
	for _, r := range l.m {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Service records stock movements and applies them to the catalog.
type Service struct {
	storage Storage
	catalog *catalog.Service
	logger  *zap.Logger
}

// NewService creates a new inventory Service.
func NewService(storage Storage, catalogSvc *catalog.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Service{storage: storage, catalog: catalogSvc, logger: logger}
}

// Input carries the fields of a new movement.
type Input struct {
	ProductID string       `json:"product_id"`
	Type      MovementType `json:"type"`
	Quantity  int          `json:"quantity"`
	Reason    string       `json:"reason"`
	SedeID    string       `json:"sede_id"`
}

// Create validates the movement, applies the stock delta to the product and
// stores the record. An exit larger than the available stock is rejected
// before anything mutates.
func (s *Service) Create(in Input) (*Record, error) {
	errs := apperr.FieldErrors{}
	switch in.Type {
	case TypeEntry, TypeExit:
		if in.Quantity <= 0 {
			errs["quantity"] = "la cantidad debe ser mayor a cero"
		}
	case TypeAdjustment:
		if in.Quantity == 0 {
			errs["quantity"] = "el ajuste no puede ser cero"
		}
	default:
		errs["type"] = "tipo de movimiento inválido"
	}
	if len(errs) > 0 {
		return nil, errs
	}

	delta := in.Quantity
	if in.Type == TypeExit {
		delta = -in.Quantity
	}
	if _, err := s.catalog.AdjustStock(in.ProductID, delta); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, apperr.FieldErrors{"product_id": "el producto no existe"}
		}
		return nil, err
	}

	r := &Record{
		ID:        uuid.NewString(),
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		SedeID:    in.SedeID,
		CreatedAt: time.Now(),
	}
	if err := s.storage.Set(r); err != nil {
		s.logger.Error("failed to save inventory record", zap.String("record_id", r.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to save inventory record: %w", err)
	}
	s.logger.Info("inventory movement recorded",
		zap.String("record_id", r.ID),
		zap.String("product_id", r.ProductID),
		zap.String("type", string(r.Type)),
		zap.Int("quantity", r.Quantity),
	)
	return r, nil
}

// Get returns a single movement by ID.
func (s *Service) Get(id string) (*Record, error) {
	return s.storage.Read(id)
}

// List returns movements filtered by product and/or sede.
func (s *Service) List(productID, sedeID string) ([]*Record, error) {
	all, err := s.storage.GetAll()
	if err != nil {
		return nil, err
	}
	filtered := make([]*Record, 0, len(all))
	for _, r := range all {
		if productID != "" && r.ProductID != productID {
			continue
		}
		if sedeID != "" && r.SedeID != sedeID {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered, nil
}

// Delete always fails: movements are the audit trail.
func (s *Service) Delete(string) error {
	return ErrImmutable
}
