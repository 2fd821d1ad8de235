// Package memory implements the store over plain maps, the backend the
// dashboard runs with by default. All state is lost on process exit.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"admybrand-insights/internal/core/domain"
	"admybrand-insights/internal/core/port"
	"admybrand-insights/internal/seed"
)

// Store keeps one map per entity collection, keyed by id. A single RWMutex
// guards every call, making each CRUD operation an atomic read-modify-write
// under concurrent handlers.
type Store struct {
	mu        sync.RWMutex
	users     map[string]domain.User
	campaigns map[string]domain.Campaign
	products  map[string]domain.Product
	orders    map[string]domain.Order
	metrics   domain.Metrics
}

// NewStore returns a store pre-populated with the demo dataset.
func NewStore() *Store {
	s := NewEmptyStore()
	// create calls on a memory store never fail
	_ = seed.Apply(context.Background(), s)
	return s
}

// NewEmptyStore returns a store without seed data.
func NewEmptyStore() *Store {
	return &Store{
		users:     make(map[string]domain.User),
		campaigns: make(map[string]domain.Campaign),
		products:  make(map[string]domain.Product),
		orders:    make(map[string]domain.Order),
		metrics:   domain.Metrics{ID: uuid.NewString(), Date: time.Now().UTC()},
	}
}

var _ port.Store = (*Store)(nil)

// User methods

func (s *Store) GetUser(_ context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateUser(_ context.Context, payload domain.InsertUser) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := payload.NewUser(uuid.NewString())
	s.users[u.ID] = u
	return &u, nil
}

// Campaign methods

func (s *Store) GetCampaigns(_ context.Context) ([]domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		out = append(out, c)
	}
	return out, nil
}

func (s *Store) GetCampaign(_ context.Context, id string) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *Store) CreateCampaign(_ context.Context, payload domain.InsertCampaign) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := payload.NewCampaign(uuid.NewString(), time.Now().UTC())
	s.campaigns[c.ID] = c
	return &c, nil
}

func (s *Store) UpdateCampaign(_ context.Context, id string, patch domain.CampaignPatch) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[id]
	if !ok {
		return nil, nil
	}
	c = patch.Apply(c, time.Now().UTC())
	s.campaigns[id] = c
	return &c, nil
}

func (s *Store) DeleteCampaign(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.campaigns[id]; !ok {
		return false, nil
	}
	delete(s.campaigns, id)
	return true, nil
}

// Product methods

func (s *Store) GetProducts(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *Store) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *Store) CreateProduct(_ context.Context, payload domain.InsertProduct) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := payload.NewProduct(uuid.NewString(), time.Now().UTC())
	s.products[p.ID] = p
	return &p, nil
}

func (s *Store) UpdateProduct(_ context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	p = patch.Apply(p, time.Now().UTC())
	s.products[id] = p
	return &p, nil
}

func (s *Store) DeleteProduct(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return false, nil
	}
	delete(s.products, id)
	return true, nil
}

// Order methods

func (s *Store) GetOrders(_ context.Context) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	return out, nil
}

func (s *Store) GetOrder(_ context.Context, id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (s *Store) CreateOrder(_ context.Context, payload domain.InsertOrder) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := payload.NewOrder(uuid.NewString(), time.Now().UTC())
	s.orders[o.ID] = o
	return &o, nil
}

func (s *Store) UpdateOrder(_ context.Context, id string, patch domain.OrderPatch) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	o = patch.Apply(o)
	s.orders[id] = o
	return &o, nil
}

func (s *Store) DeleteOrder(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return false, nil
	}
	delete(s.orders, id)
	return true, nil
}

// Metrics methods

func (s *Store) GetMetrics(_ context.Context) (*domain.Metrics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m := s.metrics
	return &m, nil
}

func (s *Store) UpdateMetrics(_ context.Context, patch domain.MetricsPatch) (*domain.Metrics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics = patch.Apply(s.metrics, time.Now().UTC())
	m := s.metrics
	return &m, nil
}
