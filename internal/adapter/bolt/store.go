// Package bolt implements the store on a bbolt file, mirroring the browser
// local-storage variant of the dashboard: each collection is one JSON array
// kept under a fixed key, rewritten whole on every mutation.
package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"admybrand-insights/internal/core/domain"
	"admybrand-insights/internal/core/port"
	"admybrand-insights/internal/seed"
)

// Fixed storage keys, identical to the local-storage client variant.
const (
	keyCampaigns = "admybrand_campaigns"
	keyOrders    = "admybrand_orders"
	keyProducts  = "admybrand_products"
	keyMetrics   = "admybrand_metrics"
	keyUsers     = "admybrand_users"
)

var bucketName = []byte("admybrand")

// Store persists dashboard entities in a single-bucket bbolt database.
// bbolt serialises writers, so each CRUD call is atomic.
type Store struct {
	db *bolt.DB
}

var _ port.Store = (*Store)(nil)

// Open opens (or creates) the database at path. A fresh database is seeded
// with the demo dataset; an existing one keeps its contents.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt store: %w", err)
	}

	var fresh bool
	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}
		if b.Get([]byte(keyMetrics)) == nil {
			fresh = true
			m := domain.Metrics{ID: uuid.NewString(), Date: time.Now().UTC()}
			raw, err := json.Marshal(m)
			if err != nil {
				return err
			}
			return b.Put([]byte(keyMetrics), raw)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init bolt store: %w", err)
	}

	s := &Store{db: db}
	if fresh {
		if err := seed.Apply(context.Background(), s); err != nil {
			db.Close()
			return nil, fmt.Errorf("seed bolt store: %w", err)
		}
	}
	return s, nil
}

// Close releases the underlying database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// loadList decodes the JSON array stored under key. A missing or undecodable
// value is treated as an empty collection, matching the local-storage client.
func loadList[T any](tx *bolt.Tx, key string) []T {
	raw := tx.Bucket(bucketName).Get([]byte(key))
	if raw == nil {
		return nil
	}
	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	return list
}

func saveList[T any](tx *bolt.Tx, key string, list []T) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return tx.Bucket(bucketName).Put([]byte(key), raw)
}

// Revival: timestamp fields that come back zero from an older or partial
// snapshot fall back to "now"; nullable fields stay null.

func reviveCampaign(c domain.Campaign, now time.Time) domain.Campaign {
	if c.StartDate.IsZero() {
		c.StartDate = now
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}
	return c
}

func reviveProduct(p domain.Product, now time.Time) domain.Product {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	return p
}

func reviveOrder(o domain.Order, now time.Time) domain.Order {
	if o.Date.IsZero() {
		o.Date = now
	}
	return o
}

func campaigns(tx *bolt.Tx) []domain.Campaign {
	list := loadList[domain.Campaign](tx, keyCampaigns)
	now := time.Now().UTC()
	for i := range list {
		list[i] = reviveCampaign(list[i], now)
	}
	return list
}

func products(tx *bolt.Tx) []domain.Product {
	list := loadList[domain.Product](tx, keyProducts)
	now := time.Now().UTC()
	for i := range list {
		list[i] = reviveProduct(list[i], now)
	}
	return list
}

func orders(tx *bolt.Tx) []domain.Order {
	list := loadList[domain.Order](tx, keyOrders)
	now := time.Now().UTC()
	for i := range list {
		list[i] = reviveOrder(list[i], now)
	}
	return list
}

// User methods

func (s *Store) GetUser(_ context.Context, id string) (*domain.User, error) {
	var out *domain.User
	err := s.db.View(func(tx *bolt.Tx) error {
		for _, u := range loadList[domain.User](tx, keyUsers) {
			if u.ID == id {
				u := u
				out = &u
				break
			}
		}
		return nil
	})
	return out, err
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	var out *domain.User
	err := s.db.View(func(tx *bolt.Tx) error {
		for _, u := range loadList[domain.User](tx, keyUsers) {
			if u.Username == username {
				u := u
				out = &u
				break
			}
		}
		return nil
	})
	return out, err
}

func (s *Store) CreateUser(_ context.Context, payload domain.InsertUser) (*domain.User, error) {
	u := payload.NewUser(uuid.NewString())
	err := s.db.Update(func(tx *bolt.Tx) error {
		return saveList(tx, keyUsers, append(loadList[domain.User](tx, keyUsers), u))
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Campaign methods

func (s *Store) GetCampaigns(_ context.Context) ([]domain.Campaign, error) {
	out := make([]domain.Campaign, 0)
	err := s.db.View(func(tx *bolt.Tx) error {
		out = append(out, campaigns(tx)...)
		return nil
	})
	return out, err
}

func (s *Store) GetCampaign(_ context.Context, id string) (*domain.Campaign, error) {
	var out *domain.Campaign
	err := s.db.View(func(tx *bolt.Tx) error {
		for _, c := range campaigns(tx) {
			if c.ID == id {
				c := c
				out = &c
				break
			}
		}
		return nil
	})
	return out, err
}

func (s *Store) CreateCampaign(_ context.Context, payload domain.InsertCampaign) (*domain.Campaign, error) {
	c := payload.NewCampaign(uuid.NewString(), time.Now().UTC())
	err := s.db.Update(func(tx *bolt.Tx) error {
		return saveList(tx, keyCampaigns, append(campaigns(tx), c))
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) UpdateCampaign(_ context.Context, id string, patch domain.CampaignPatch) (*domain.Campaign, error) {
	var out *domain.Campaign
	err := s.db.Update(func(tx *bolt.Tx) error {
		list := campaigns(tx)
		for i, c := range list {
			if c.ID == id {
				list[i] = patch.Apply(c, time.Now().UTC())
				out = &list[i]
				return saveList(tx, keyCampaigns, list)
			}
		}
		return nil
	})
	return out, err
}

func (s *Store) DeleteCampaign(_ context.Context, id string) (bool, error) {
	var deleted bool
	err := s.db.Update(func(tx *bolt.Tx) error {
		list := campaigns(tx)
		for i, c := range list {
			if c.ID == id {
				deleted = true
				return saveList(tx, keyCampaigns, append(list[:i], list[i+1:]...))
			}
		}
		return nil
	})
	return deleted, err
}

// Product methods

func (s *Store) GetProducts(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0)
	err := s.db.View(func(tx *bolt.Tx) error {
		out = append(out, products(tx)...)
		return nil
	})
	return out, err
}

func (s *Store) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	var out *domain.Product
	err := s.db.View(func(tx *bolt.Tx) error {
		for _, p := range products(tx) {
			if p.ID == id {
				p := p
				out = &p
				break
			}
		}
		return nil
	})
	return out, err
}

func (s *Store) CreateProduct(_ context.Context, payload domain.InsertProduct) (*domain.Product, error) {
	p := payload.NewProduct(uuid.NewString(), time.Now().UTC())
	err := s.db.Update(func(tx *bolt.Tx) error {
		return saveList(tx, keyProducts, append(products(tx), p))
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) UpdateProduct(_ context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	var out *domain.Product
	err := s.db.Update(func(tx *bolt.Tx) error {
		list := products(tx)
		for i, p := range list {
			if p.ID == id {
				list[i] = patch.Apply(p, time.Now().UTC())
				out = &list[i]
				return saveList(tx, keyProducts, list)
			}
		}
		return nil
	})
	return out, err
}

func (s *Store) DeleteProduct(_ context.Context, id string) (bool, error) {
	var deleted bool
	err := s.db.Update(func(tx *bolt.Tx) error {
		list := products(tx)
		for i, p := range list {
			if p.ID == id {
				deleted = true
				return saveList(tx, keyProducts, append(list[:i], list[i+1:]...))
			}
		}
		return nil
	})
	return deleted, err
}

// Order methods

func (s *Store) GetOrders(_ context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0)
	err := s.db.View(func(tx *bolt.Tx) error {
		out = append(out, orders(tx)...)
		return nil
	})
	return out, err
}

func (s *Store) GetOrder(_ context.Context, id string) (*domain.Order, error) {
	var out *domain.Order
	err := s.db.View(func(tx *bolt.Tx) error {
		for _, o := range orders(tx) {
			if o.ID == id {
				o := o
				out = &o
				break
			}
		}
		return nil
	})
	return out, err
}

func (s *Store) CreateOrder(_ context.Context, payload domain.InsertOrder) (*domain.Order, error) {
	o := payload.NewOrder(uuid.NewString(), time.Now().UTC())
	err := s.db.Update(func(tx *bolt.Tx) error {
		return saveList(tx, keyOrders, append(orders(tx), o))
	})
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *Store) UpdateOrder(_ context.Context, id string, patch domain.OrderPatch) (*domain.Order, error) {
	var out *domain.Order
	err := s.db.Update(func(tx *bolt.Tx) error {
		list := orders(tx)
		for i, o := range list {
			if o.ID == id {
				list[i] = patch.Apply(o)
				out = &list[i]
				return saveList(tx, keyOrders, list)
			}
		}
		return nil
	})
	return out, err
}

func (s *Store) DeleteOrder(_ context.Context, id string) (bool, error) {
	var deleted bool
	err := s.db.Update(func(tx *bolt.Tx) error {
		list := orders(tx)
		for i, o := range list {
			if o.ID == id {
				deleted = true
				return saveList(tx, keyOrders, append(list[:i], list[i+1:]...))
			}
		}
		return nil
	})
	return deleted, err
}

// Metrics methods

func (s *Store) GetMetrics(_ context.Context) (*domain.Metrics, error) {
	var out domain.Metrics
	err := s.db.View(func(tx *bolt.Tx) error {
		out = loadMetrics(tx)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store) UpdateMetrics(_ context.Context, patch domain.MetricsPatch) (*domain.Metrics, error) {
	var out domain.Metrics
	err := s.db.Update(func(tx *bolt.Tx) error {
		out = patch.Apply(loadMetrics(tx), time.Now().UTC())
		raw, err := json.Marshal(out)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketName).Put([]byte(keyMetrics), raw)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func loadMetrics(tx *bolt.Tx) domain.Metrics {
	var m domain.Metrics
	if raw := tx.Bucket(bucketName).Get([]byte(keyMetrics)); raw != nil {
		_ = json.Unmarshal(raw, &m)
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Date.IsZero() {
		m.Date = time.Now().UTC()
	}
	return m
}
