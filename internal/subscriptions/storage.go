package subscriptions

import (
	"errors"
	"sort"
	"sync"
)

// ErrNotFound is returned when a subscription with the given ID is not found.
var ErrNotFound = errors.New("subscription not found")

// ErrEmptyID is returned when trying to store a subscription with an empty ID.
var ErrEmptyID = errors.New("empty subscription ID")

// ErrAlreadyCancelled is returned when cancelling a cancelled subscription.
var ErrAlreadyCancelled = errors.New("subscription already cancelled")

// Storage is the main interface for the subscriptions storage layer.
type Storage interface {
	Set(s *Subscription) error
	Read(id string) (*Subscription, error)
	GetAll() ([]*Subscription, error)
}

// LocalStorage provides an in-memory implementation for storing subscriptions.
type LocalStorage struct {
	mu sync.RWMutex
	m  map[string]*Subscription
}

// NewLocalStorage instantiates a new LocalStorage for subscriptions.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{m: map[string]*Subscription{}}
}

func (l *LocalStorage) Set(s *Subscription) error {
	if s.ID == "" {
		return ErrEmptyID
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m[s.ID] = s
	return nil
}

func (l *LocalStorage) Read(id string) (*Subscription, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, ok := l.m[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// GetAll retrieves every subscription, newest first, so the first match in
// a client's history is the most recent record.
func (l *LocalStorage) GetAll() ([]*Subscription, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Subscription, 0, len(l.m))
	for _, s := range l.m {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
