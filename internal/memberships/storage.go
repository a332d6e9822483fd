package memberships

import (
	"errors"
	"sort"
	"sync"
)

// ErrNotFound is returned when a membership with the given ID is not found.
var ErrNotFound = errors.New("membership not found")

// ErrEmptyID is returned when trying to store a membership with an empty ID.
var ErrEmptyID = errors.New("empty membership ID")

// Storage is the main interface for the memberships storage layer.
type Storage interface {
	Set(m *Membership) error
	Read(id string) (*Membership, error)
	GetAll() ([]*Membership, error)
	Delete(id string) error
}

// LocalStorage provides an in-memory implementation for storing memberships.
type LocalStorage struct {
	mu sync.RWMutex
	m  map[string]*Membership
}

// NewLocalStorage instantiates a new LocalStorage for memberships.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{m: map[string]*Membership{}}
}

func (l *LocalStorage) Set(m *Membership) error {
	if m.ID == "" {
		return ErrEmptyID
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m[m.ID] = m
	return nil
}

func (l *LocalStorage) Read(id string) (*Membership, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	m, ok := l.m[id]
	if !ok {
		return nil, ErrNotFound
	}
	return m, nil
}

func (l *LocalStorage) GetAll() ([]*Membership, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Membership, 0, len(l.m))
	for _, m := range l.m {
		out = append(out, m)
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
