// Package equipment maneja los activos/máquinas de cada sede.
package equipment

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gym_admin/internal/apperr"
	"gym_admin/internal/venues"
)

// ErrNotFound is returned when an asset with the given ID is not found.
var ErrNotFound = errors.New("equipment not found")

// ErrEmptyID is returned when trying to store an asset with an empty ID.
var ErrEmptyID = errors.New("empty equipment ID")

// Condition describes the physical state of an asset.
type Condition string

const (
	ConditionNew         Condition = "new"
	ConditionGood        Condition = "good"
	ConditionMaintenance Condition = "maintenance"
	ConditionRetired     Condition = "retired"
)

func validCondition(c Condition) bool {
	switch c {
	case ConditionNew, ConditionGood, ConditionMaintenance, ConditionRetired:
		return true
	}
	return false
}

// Asset is a tracked piece of gym equipment assigned to a sede and,
// optionally, to an espacio inside it.
type Asset struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	SerialNumber  string          `json:"serial_number,omitempty"`
	SedeID        string          `json:"sede_id"`
	EspacioID     string          `json:"espacio_id,omitempty"`
	SupplierID    string          `json:"supplier_id,omitempty"`
	PurchaseDate  time.Time       `json:"purchase_date"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Condition     Condition       `json:"condition"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Storage is the main interface for the equipment storage layer.
type Storage interface {
	Set(a *Asset) error
	Read(id string) (*Asset, error)
	GetAll() ([]*Asset, error)
	Delete(id string) error
}

// LocalStorage provides an in-memory implementation for storing assets.
type LocalStorage struct {
	mu sync.RWMutex
	m  map[string]*Asset
}

// NewLocalStorage instantiates a new LocalStorage for equipment assets.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{m: map[string]*Asset{}}
}

func (l *LocalStorage) Set(a *Asset) error {
	if a.ID == "" {
		return ErrEmptyID
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m[a.ID] = a
	return nil
}

func (l *LocalStorage) Read(id string) (*Asset, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	a, ok := l.m[id]
	if !ok {
		return nil, ErrNotFound
	}
	return a, nil
}

func (l *LocalStorage) GetAll() ([]*Asset, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Asset, 0, len(l.m))
	for _, a := range l.m {
		out = append(out, a)
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

// Service provides equipment asset management. It validates venue
// references through the venues service.
type Service struct {
	storage Storage
	venues  *venues.Service
	logger  *zap.Logger
}

// NewService creates a new equipment Service.
func NewService(storage Storage, venueSvc *venues.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Service{storage: storage, venues: venueSvc, logger: logger}
}

// Input carries the editable fields of an asset.
type Input struct {
	Name          string          `json:"name"`
	SerialNumber  string          `json:"serial_number"`
	SedeID        string          `json:"sede_id"`
	EspacioID     string          `json:"espacio_id"`
	SupplierID    string          `json:"supplier_id"`
	PurchaseDate  time.Time       `json:"purchase_date"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Condition     Condition       `json:"condition"`
}

func (s *Service) validate(in Input) apperr.FieldErrors {
	errs := apperr.FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "el nombre es obligatorio"
	}
	if in.PurchasePrice.IsNegative() {
		errs["purchase_price"] = "el precio no puede ser negativo"
	}
	if in.Condition != "" && !validCondition(in.Condition) {
		errs["condition"] = "estado inválido"
	}
	if _, err := s.venues.GetSede(in.SedeID); err != nil {
		errs["sede_id"] = "la sede no existe"
	}
	if in.EspacioID != "" {
		if _, err := s.venues.GetEspacio(in.EspacioID); err != nil {
			errs["espacio_id"] = "el espacio no existe"
		}
	}
	return errs
}

// Create validates and stores a new asset.
func (s *Service) Create(in Input) (*Asset, error) {
	if errs := s.validate(in); len(errs) > 0 {
		return nil, errs
	}
	cond := in.Condition
	if cond == "" {
		cond = ConditionGood
	}
	a := &Asset{
		ID:            uuid.NewString(),
		Name:          in.Name,
		SerialNumber:  in.SerialNumber,
		SedeID:        in.SedeID,
		EspacioID:     in.EspacioID,
		SupplierID:    in.SupplierID,
		PurchaseDate:  in.PurchaseDate,
		PurchasePrice: in.PurchasePrice,
		Condition:     cond,
		Active:        true,
		CreatedAt:     time.Now(),
	}
	if err := s.storage.Set(a); err != nil {
		s.logger.Error("failed to save asset", zap.String("asset_id", a.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to save asset: %w", err)
	}
	return a, nil
}

// Update overwrites the editable fields of an existing asset.
func (s *Service) Update(id string, in Input) (*Asset, error) {
	a, err := s.storage.Read(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if errs := s.validate(in); len(errs) > 0 {
		return nil, errs
	}
	a.Name = in.Name
	a.SerialNumber = in.SerialNumber
	a.SedeID = in.SedeID
	a.EspacioID = in.EspacioID
	a.SupplierID = in.SupplierID
	a.PurchaseDate = in.PurchaseDate
	a.PurchasePrice = in.PurchasePrice
	if in.Condition != "" {
		a.Condition = in.Condition
	}
	if err := s.storage.Set(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Get returns a single asset by ID.
func (s *Service) Get(id string) (*Asset, error) {
	return s.storage.Read(id)
}

// List returns the assets of a sede, or all of them if sedeID is empty.
func (s *Service) List(sedeID string) ([]*Asset, error) {
	all, err := s.storage.GetAll()
	if err != nil {
		return nil, err
	}
	if sedeID == "" {
		return all, nil
	}
	filtered := make([]*Asset, 0)
	for _, a := range all {
		if a.SedeID == sedeID {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// Delete removes an asset permanently.
func (s *Service) Delete(id string) error {
	return s.storage.Delete(id)
}
