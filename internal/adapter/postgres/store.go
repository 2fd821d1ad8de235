// Package postgres implements the store on PostgreSQL using pgxpool. Patch
// updates are read-merge-write inside a transaction with a row lock, so the
// merge semantics match the in-memory driver exactly.
package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"admybrand-insights/internal/core/domain"
	"admybrand-insights/internal/core/port"
)

// Store is the PostgreSQL-backed store.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore returns a store over the given pool. The schema must already be
// migrated.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

var _ port.Store = (*Store)(nil)

type scanner interface {
	Scan(dest ...any) error
}

// Decimal columns are selected with ::text casts and parsed in Go, keeping
// values exact end to end.

const selectCampaign = `SELECT id, name, platform, budget::text, spent::text, conversions, ctr::text, status, start_date, end_date, created_at, updated_at FROM campaigns`

func scanCampaign(row scanner) (domain.Campaign, error) {
	var (
		c                  domain.Campaign
		budget, spent, ctr string
	)
	err := row.Scan(&c.ID, &c.Name, &c.Platform, &budget, &spent, &c.Conversions, &ctr, &c.Status, &c.StartDate, &c.EndDate, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return c, err
	}
	if c.Budget, err = decimal.NewFromString(budget); err != nil {
		return c, err
	}
	if c.Spent, err = decimal.NewFromString(spent); err != nil {
		return c, err
	}
	c.CTR, err = decimal.NewFromString(ctr)
	return c, err
}

func (s *Store) insertCampaign(ctx context.Context, tx pgx.Tx, c domain.Campaign) error {
	_, err := tx.Exec(ctx, `INSERT INTO campaigns (id, name, platform, budget, spent, conversions, ctr, status, start_date, end_date, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		c.ID, c.Name, c.Platform, c.Budget.String(), c.Spent.String(), c.Conversions, c.CTR.String(), c.Status, c.StartDate, c.EndDate, c.CreatedAt, c.UpdatedAt)
	return err
}

func (s *Store) GetCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := s.pool.Query(ctx, selectCampaign)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

func (s *Store) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := scanCampaign(s.pool.QueryRow(ctx, selectCampaign+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) CreateCampaign(ctx context.Context, payload domain.InsertCampaign) (*domain.Campaign, error) {
	c := payload.NewCampaign(uuid.NewString(), time.Now().UTC())
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)
	if err = s.insertCampaign(ctx, tx, c); err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) UpdateCampaign(ctx context.Context, id string, patch domain.CampaignPatch) (*domain.Campaign, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	c, err := scanCampaign(tx.QueryRow(ctx, selectCampaign+` WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c = patch.Apply(c, time.Now().UTC())
	_, err = tx.Exec(ctx, `UPDATE campaigns SET name=$2, platform=$3, budget=$4, spent=$5, conversions=$6, ctr=$7, status=$8, start_date=$9, end_date=$10, updated_at=$11 WHERE id=$1`,
		c.ID, c.Name, c.Platform, c.Budget.String(), c.Spent.String(), c.Conversions, c.CTR.String(), c.Status, c.StartDate, c.EndDate, c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) DeleteCampaign(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

const selectProduct = `SELECT id, name, category, price::text, stock, sku, description, status, rating::text, sales, image, created_at, updated_at FROM products`

func scanProduct(row scanner) (domain.Product, error) {
	var (
		p      domain.Product
		price  string
		rating *string
	)
	err := row.Scan(&p.ID, &p.Name, &p.Category, &price, &p.Stock, &p.SKU, &p.Description, &p.Status, &rating, &p.Sales, &p.Image, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return p, err
	}
	if p.Price, err = decimal.NewFromString(price); err != nil {
		return p, err
	}
	if rating != nil {
		r, err := decimal.NewFromString(*rating)
		if err != nil {
			return p, err
		}
		p.Rating = &r
	}
	return p, nil
}

func (s *Store) GetProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.pool.Query(ctx, selectProduct)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Product, error) {
		return scanProduct(row)
	})
}

func (s *Store) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	p, err := scanProduct(s.pool.QueryRow(ctx, selectProduct+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) CreateProduct(ctx context.Context, payload domain.InsertProduct) (*domain.Product, error) {
	p := payload.NewProduct(uuid.NewString(), time.Now().UTC())
	var rating *string
	if p.Rating != nil {
		r := p.Rating.String()
		rating = &r
	}
	_, err := s.pool.Exec(ctx, `INSERT INTO products (id, name, category, price, stock, sku, description, status, rating, sales, image, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		p.ID, p.Name, p.Category, p.Price.String(), p.Stock, p.SKU, p.Description, p.Status, rating, p.Sales, p.Image, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	p, err := scanProduct(tx.QueryRow(ctx, selectProduct+` WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p = patch.Apply(p, time.Now().UTC())
	var rating *string
	if p.Rating != nil {
		r := p.Rating.String()
		rating = &r
	}
	_, err = tx.Exec(ctx, `UPDATE products SET name=$2, category=$3, price=$4, stock=$5, sku=$6, description=$7, status=$8, rating=$9, sales=$10, image=$11, updated_at=$12 WHERE id=$1`,
		p.ID, p.Name, p.Category, p.Price.String(), p.Stock, p.SKU, p.Description, p.Status, rating, p.Sales, p.Image, p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

const selectOrder = `SELECT id, customer, email, product, amount::text, status, tracking, date FROM orders`

func scanOrder(row scanner) (domain.Order, error) {
	var (
		o      domain.Order
		amount string
	)
	err := row.Scan(&o.ID, &o.Customer, &o.Email, &o.Product, &amount, &o.Status, &o.Tracking, &o.Date)
	if err != nil {
		return o, err
	}
	o.Amount, err = decimal.NewFromString(amount)
	return o, err
}

func (s *Store) GetOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := s.pool.Query(ctx, selectOrder)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Order, error) {
		return scanOrder(row)
	})
}

func (s *Store) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	o, err := scanOrder(s.pool.QueryRow(ctx, selectOrder+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *Store) CreateOrder(ctx context.Context, payload domain.InsertOrder) (*domain.Order, error) {
	o := payload.NewOrder(uuid.NewString(), time.Now().UTC())
	_, err := s.pool.Exec(ctx, `INSERT INTO orders (id, customer, email, product, amount, status, tracking, date)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		o.ID, o.Customer, o.Email, o.Product, o.Amount.String(), o.Status, o.Tracking, o.Date)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *Store) UpdateOrder(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	o, err := scanOrder(tx.QueryRow(ctx, selectOrder+` WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	o = patch.Apply(o)
	_, err = tx.Exec(ctx, `UPDATE orders SET customer=$2, email=$3, product=$4, amount=$5, status=$6, tracking=$7 WHERE id=$1`,
		o.ID, o.Customer, o.Email, o.Product, o.Amount.String(), o.Status, o.Tracking)
	if err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *Store) DeleteOrder(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// User methods

func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := s.pool.QueryRow(ctx, `SELECT id, username, password FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.Username, &u.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := s.pool.QueryRow(ctx, `SELECT id, username, password FROM users WHERE username = $1`, username).
		Scan(&u.ID, &u.Username, &u.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, payload domain.InsertUser) (*domain.User, error) {
	u := payload.NewUser(uuid.NewString())
	_, err := s.pool.Exec(ctx, `INSERT INTO users (id, username, password) VALUES ($1,$2,$3)`, u.ID, u.Username, u.Password)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Metrics methods

const selectMetrics = `SELECT id, total_revenue::text, total_users, conversions, growth_rate::text, date FROM metrics`

func scanMetrics(row scanner) (domain.Metrics, error) {
	var (
		m                   domain.Metrics
		revenue, growthRate string
	)
	err := row.Scan(&m.ID, &revenue, &m.TotalUsers, &m.Conversions, &growthRate, &m.Date)
	if err != nil {
		return m, err
	}
	if m.TotalRevenue, err = decimal.NewFromString(revenue); err != nil {
		return m, err
	}
	m.GrowthRate, err = decimal.NewFromString(growthRate)
	return m, err
}

// GetMetrics returns the single metrics row, materialising a zeroed one on
// first access so the singleton always exists.
func (s *Store) GetMetrics(ctx context.Context) (*domain.Metrics, error) {
	m, err := scanMetrics(s.pool.QueryRow(ctx, selectMetrics+` LIMIT 1`))
	if errors.Is(err, pgx.ErrNoRows) {
		return s.initMetrics(ctx)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) UpdateMetrics(ctx context.Context, patch domain.MetricsPatch) (*domain.Metrics, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	m, err := scanMetrics(tx.QueryRow(ctx, selectMetrics+` LIMIT 1 FOR UPDATE`))
	if errors.Is(err, pgx.ErrNoRows) {
		m = domain.Metrics{ID: uuid.NewString()}
		m = patch.Apply(m, time.Now().UTC())
		_, err = tx.Exec(ctx, `INSERT INTO metrics (id, total_revenue, total_users, conversions, growth_rate, date) VALUES ($1,$2,$3,$4,$5,$6)`,
			m.ID, m.TotalRevenue.String(), m.TotalUsers, m.Conversions, m.GrowthRate.String(), m.Date)
		if err != nil {
			return nil, err
		}
		if err = tx.Commit(ctx); err != nil {
			return nil, err
		}
		return &m, nil
	}
	if err != nil {
		return nil, err
	}
	m = patch.Apply(m, time.Now().UTC())
	_, err = tx.Exec(ctx, `UPDATE metrics SET total_revenue=$2, total_users=$3, conversions=$4, growth_rate=$5, date=$6 WHERE id=$1`,
		m.ID, m.TotalRevenue.String(), m.TotalUsers, m.Conversions, m.GrowthRate.String(), m.Date)
	if err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) initMetrics(ctx context.Context) (*domain.Metrics, error) {
	m := domain.Metrics{ID: uuid.NewString(), Date: time.Now().UTC()}
	_, err := s.pool.Exec(ctx, `INSERT INTO metrics (id, total_revenue, total_users, conversions, growth_rate, date) VALUES ($1,$2,$3,$4,$5,$6)`,
		m.ID, m.TotalRevenue.String(), m.TotalUsers, m.Conversions, m.GrowthRate.String(), m.Date)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
