package venues

import (
	"errors"
	"sort"
	"sync"
)

// ErrNotFound is returned when a sede or espacio is not found.
var ErrNotFound = errors.New("not found")

// ErrEmptyID is returned when trying to store a record with an empty ID.
var ErrEmptyID = errors.New("empty ID")

// Storage is the main interface for the venues storage layer.
type Storage interface {
	SetSede(s *Sede) error
	ReadSede(id string) (*Sede, error)
	AllSedes() ([]*Sede, error)
	DeleteSede(id string) error

	SetEspacio(e *Espacio) error
	ReadEspacio(id string) (*Espacio, error)
	AllEspacios() ([]*Espacio, error)
	DeleteEspacio(id string) error
}

// LocalStorage provides an in-memory implementation for venues.
type LocalStorage struct {
	mu       sync.RWMutex
	sedes    map[string]*Sede
	espacios map[string]*Espacio
}

// NewLocalStorage instantiates a new LocalStorage with empty maps.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{
		sedes:    map[string]*Sede{},
		espacios: map[string]*Espacio{},
	}
}

func (l *LocalStorage) SetSede(s *Sede) error {
	if s.ID == "" {
		return ErrEmptyID
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sedes[s.ID] = s
	return nil
}

func (l *LocalStorage) ReadSede(id string) (*Sede, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, ok := l.sedes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

func (l *LocalStorage) AllSedes() ([]*Sede, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Sede, 0, len(l.sedes))
	for _, s := range l.sedes {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (l *LocalStorage) DeleteSede(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.sedes[id]; !ok {
		return ErrNotFound
	}
	delete(l.sedes, id)
	return nil
}

func (l *LocalStorage) SetEspacio(e *Espacio) error {
	if e.ID == "" {
		return ErrEmptyID
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.espacios[e.ID] = e
	return nil
}

func (l *LocalStorage) ReadEspacio(id string) (*Espacio, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	e, ok := l.espacios[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}

func (l *LocalStorage) AllEspacios() ([]*Espacio, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Espacio, 0, len(l.espacios))
	for _, e := range l.espacios {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (l *LocalStorage) DeleteEspacio(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.espacios[id]; !ok {
		return ErrNotFound
	}
	delete(l.espacios, id)
	return nil
}
