package catalog

import (
	"errors"
	"sort"
	"sync"
)

// ErrNotFound is returned when a product or category is not found.
var ErrNotFound = errors.New("not found")

// ErrEmptyID is returned when trying to store a record with an empty ID.
var ErrEmptyID = errors.New("empty ID")

// Storage is the main interface for the catalog storage layer.
type Storage interface {
	SetProduct(p *Product) error
	ReadProduct(id string) (*Product, error)
	AllProducts() ([]*Product, error)
	DeleteProduct(id string) error

	SetCategory(c *Category) error
	ReadCategory(id string) (*Category, error)
	AllCategories() ([]*Category, error)
	DeleteCategory(id string) error
}

// LocalStorage provides an in-memory implementation for the catalog.
type LocalStorage struct {
	mu         sync.RWMutex
	products   map[string]*Product
	categories map[string]*Category
}

// NewLocalStorage instantiates a new LocalStorage with empty maps.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{
		products:   map[string]*Product{},
		categories: map[string]*Category{},
	}
}

func (l *LocalStorage) SetProduct(p *Product) error {
	if p.ID == "" {
		return ErrEmptyID
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.products[p.ID] = p
	return nil
}

func (l *LocalStorage) ReadProduct(id string) (*Product, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

// AllProducts retrieves every product ordered by code so listings are stable.
func (l *LocalStorage) AllProducts() ([]*Product, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Product, 0, len(l.products))
	for _, p := range l.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (l *LocalStorage) DeleteProduct(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.products[id]; !ok {
		return ErrNotFound
	}
	delete(l.products, id)
	return nil
}

func (l *LocalStorage) SetCategory(c *Category) error {
	if c.ID == "" {
		return ErrEmptyID
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.categories[c.ID] = c
	return nil
}

func (l *LocalStorage) ReadCategory(id string) (*Category, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

func (l *LocalStorage) AllCategories() ([]*Category, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]*Category, 0, len(l.categories))
	for _, c := range l.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (l *LocalStorage) DeleteCategory(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.categories[id]; !ok {
		return ErrNotFound
	}
	delete(l.categories, id)
	return nil
}
