package bolt

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	bbolt "go.etcd.io/bbolt"

	"admybrand-insights/internal/core/domain"
)

func openTempStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "admybrand.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func dec(t *testing.T, v string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(v)
	require.NoError(t, err)
	return d
}

func ptr[T any](v T) *T {
	return &v
}

// TestFreshStoreIsSeeded verifies a new database file receives the demo
// dataset.
func TestFreshStoreIsSeeded(t *testing.T) {
	ctx := context.Background()
	s, _ := openTempStore(t)

	campaigns, err := s.GetCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, campaigns, 3)

	products, err := s.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)

	orders, err := s.GetOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)

	metrics, err := s.GetMetrics(ctx)
	require.NoError(t, err)
	require.Equal(t, "32499.93", metrics.TotalRevenue.String())
}

// TestReopenKeepsData writes through one store instance and reads the same
// rows back through a second one on the same file.
func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "admybrand.db")

	s, err := Open(path)
	require.NoError(t, err)
	created, err := s.CreateCampaign(ctx, domain.InsertCampaign{
		Name:     "Persisted",
		Platform: "YouTube",
		Budget:   dec(t, "750.00"),
	})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	fetched, err := s.GetCampaign(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.Equal(t, "Persisted", fetched.Name)
	require.Equal(t, "750.00", fetched.Budget.String())
	require.Equal(t, created.CreatedAt.Unix(), fetched.CreatedAt.Unix())

	// seed must not run again on a populated file
	campaigns, err := s.GetCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, campaigns, 4)
}

// TestTimestampRevival plants a snapshot with missing timestamp fields and
// checks they come back as "now" while nullable fields stay null.
func TestTimestampRevival(t *testing.T) {
	ctx := context.Background()
	s, _ := openTempStore(t)

	raw := []byte(`[{"id":"legacy-1","name":"Old Snapshot","platform":"Google Ads","budget":"100.00","spent":"0","conversions":0,"ctr":"0","status":"active"}]`)
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(keyCampaigns), raw)
	})
	require.NoError(t, err)

	before := time.Now().UTC().Add(-time.Second)
	c, err := s.GetCampaign(ctx, "legacy-1")
	require.NoError(t, err)
	require.NotNil(t, c)
	require.True(t, c.StartDate.After(before))
	require.True(t, c.CreatedAt.After(before))
	require.True(t, c.UpdatedAt.After(before))
	require.Nil(t, c.EndDate)
}

// TestUndecodableCollectionTreatedAsEmpty mirrors the original client's
// catch-and-return-empty on corrupt snapshots.
func TestUndecodableCollectionTreatedAsEmpty(t *testing.T) {
	ctx := context.Background()
	s, _ := openTempStore(t)

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(keyOrders), []byte("not json"))
	})
	require.NoError(t, err)

	orders, err := s.GetOrders(ctx)
	require.NoError(t, err)
	require.Empty(t, orders)

	// writing through the store replaces the corrupt snapshot
	_, err = s.CreateOrder(ctx, domain.InsertOrder{
		Customer: "Recovered",
		Email:    "recovered@example.com",
		Product:  "Mobile App Builder",
		Amount:   dec(t, "149.00"),
	})
	require.NoError(t, err)

	orders, err = s.GetOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
}

func TestDeleteAndPatch(t *testing.T) {
	ctx := context.Background()
	s, _ := openTempStore(t)

	p, err := s.CreateProduct(ctx, domain.InsertProduct{
		Name:     "Email Campaign Manager",
		Category: "Software",
		Price:    dec(t, "199.00"),
		SKU:      "PROD-099",
	})
	require.NoError(t, err)

	updated, err := s.UpdateProduct(ctx, p.ID, domain.ProductPatch{
		Stock:  ptr(12),
		Status: ptr(domain.ProductStatusLowStock),
	})
	require.NoError(t, err)
	require.Equal(t, 12, updated.Stock)
	require.Equal(t, domain.ProductStatusLowStock, updated.Status)
	require.Equal(t, "199.00", updated.Price.String())

	deleted, err := s.DeleteProduct(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = s.DeleteProduct(ctx, p.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}
