package clients

import (
	"errors"
	"sort"
	"sync"
)

// ErrNotFound is returned when a client with the given ID is not found.
var ErrNotFound = errors.New("client not found")

// ErrEmptyID is returned when trying to store a client with an empty ID.
var ErrEmptyID = errors.New("empty client ID")

// Storage is the main interface for the clients storage layer.
type Storage interface {
	Set(c *Client) error
	Read(id string) (*Client, error)
	GetAll() ([]*Client, error)
	Delete(id string) error
}

// LocalStorage provides an in-memory implementation for storing clients.
type LocalStorage struct {
	mu sync.RWMutex
	m  map[string]*Client
}

// NewLocalStorage instantiates a new LocalStorage for clients with an empty map.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{m: map[string]*Client{}}
}

func (l *LocalStorage) Set(c *Client) error {
	if c.ID == "" {
		return ErrEmptyID
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m[c.ID] = c
	return nil
}

// Read retrieves a client by ID. Returns ErrNotFound if absent.
func (l *LocalStorage) Read(id string) (*Client, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.m[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

// GetAll retrieves every client ordered by last name.
func (l *LocalStorage) GetAll() ([]*Client, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Client, 0, len(l.m))
	for _, c := range l.m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastName < out[j].LastName })
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
