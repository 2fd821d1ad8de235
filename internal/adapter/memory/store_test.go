package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"admybrand-insights/internal/core/domain"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func ptr[T any](v T) *T {
	return &v
}

// TestSeedData verifies the constructor populates the demo dataset through
// the regular create path.
func TestSeedData(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	campaigns, err := s.GetCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, campaigns, 3)
	for _, c := range campaigns {
		require.NotEmpty(t, c.ID)
		require.False(t, c.CreatedAt.IsZero())
		require.False(t, c.UpdatedAt.IsZero())
	}

	products, err := s.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)

	orders, err := s.GetOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)

	metrics, err := s.GetMetrics(ctx)
	require.NoError(t, err)
	require.Equal(t, "32499.93", metrics.TotalRevenue.String())
	require.Equal(t, 5211832, metrics.TotalUsers)
}

func TestCampaignRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStore()

	created, err := s.CreateCampaign(ctx, domain.InsertCampaign{
		Name:     "Spring Launch",
		Platform: "LinkedIn",
		Budget:   dec(t, "1200.50"),
	})
	require.NoError(t, err)

	fetched, err := s.GetCampaign(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.Equal(t, created, fetched)
}

func TestCampaignDefaults(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStore()

	c, err := s.CreateCampaign(ctx, domain.InsertCampaign{
		Name:     "Minimal",
		Platform: "Google Ads",
		Budget:   dec(t, "100.00"),
	})
	require.NoError(t, err)
	require.Equal(t, "0", c.Spent.String())
	require.Equal(t, "0", c.CTR.String())
	require.Zero(t, c.Conversions)
	require.Equal(t, domain.CampaignStatusActive, c.Status)
	require.False(t, c.StartDate.IsZero())
	require.Nil(t, c.EndDate)
	require.Equal(t, c.CreatedAt, c.UpdatedAt)
}

func TestOrderDefaults(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStore()

	o, err := s.CreateOrder(ctx, domain.InsertOrder{
		Customer: "Dana Hill",
		Email:    "dana.hill@example.com",
		Product:  "Enterprise Suite",
		Amount:   dec(t, "999.00"),
	})
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusPending, o.Status)
	require.Nil(t, o.Tracking)
	require.False(t, o.Date.IsZero())
}

func TestProductDefaults(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStore()

	p, err := s.CreateProduct(ctx, domain.InsertProduct{
		Name:     "SEO Optimizer Pro",
		Category: "Tools",
		Price:    dec(t, "89.00"),
		SKU:      "PROD-010",
	})
	require.NoError(t, err)
	require.Equal(t, domain.ProductStatusActive, p.Status)
	require.Zero(t, p.Stock)
	require.Zero(t, p.Sales)
	require.Nil(t, p.Rating)
	require.Nil(t, p.Description)
}

// TestUpdatePreservesUntouchedFields patches a single field and checks that
// everything else survives, with updatedAt strictly increasing.
func TestUpdatePreservesUntouchedFields(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStore()

	created, err := s.CreateCampaign(ctx, domain.InsertCampaign{
		Name:        "Retargeting",
		Platform:    "Facebook Ads",
		Budget:      dec(t, "2500.00"),
		Conversions: ptr(42),
	})
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)
	updated, err := s.UpdateCampaign(ctx, created.ID, domain.CampaignPatch{
		Name: ptr("Retargeting Q3"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	require.Equal(t, "Retargeting Q3", updated.Name)
	require.Equal(t, created.Platform, updated.Platform)
	require.Equal(t, created.Budget.String(), updated.Budget.String())
	require.Equal(t, created.Conversions, updated.Conversions)
	require.Equal(t, created.Status, updated.Status)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestOrderDateImmutable(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStore()

	created, err := s.CreateOrder(ctx, domain.InsertOrder{
		Customer: "Evan Cole",
		Email:    "evan.cole@example.com",
		Product:  "Basic Plan Subscription",
		Amount:   dec(t, "29.00"),
	})
	require.NoError(t, err)

	updated, err := s.UpdateOrder(ctx, created.ID, domain.OrderPatch{
		Status:   ptr(domain.OrderStatusShipped),
		Tracking: ptr("TRK0A1B2C3D4"),
	})
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusShipped, updated.Status)
	require.Equal(t, created.Date, updated.Date)
}

func TestDeleteReportsOutcomeOnce(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStore()

	c, err := s.CreateCampaign(ctx, domain.InsertCampaign{Name: "Gone", Platform: "TikTok", Budget: dec(t, "10.00")})
	require.NoError(t, err)

	deleted, err := s.DeleteCampaign(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = s.DeleteCampaign(ctx, c.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

// TestNotFoundIsTotal checks that lookups, patches and deletes on unknown
// ids report absence instead of failing.
func TestNotFoundIsTotal(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStore()

	c, err := s.GetCampaign(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, c)

	c, err = s.UpdateCampaign(ctx, "missing", domain.CampaignPatch{Name: ptr("x")})
	require.NoError(t, err)
	require.Nil(t, c)

	deleted, err := s.DeleteCampaign(ctx, "missing")
	require.NoError(t, err)
	require.False(t, deleted)

	p, err := s.GetProduct(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, p)

	o, err := s.GetOrder(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, o)
}

func TestIDsAreUnique(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStore()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		c, err := s.CreateCampaign(ctx, domain.InsertCampaign{Name: "N", Platform: "P", Budget: dec(t, "1")})
		require.NoError(t, err)
		require.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true
	}
}

func TestMetricsSingleton(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStore()

	before, err := s.GetMetrics(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, before.ID)

	time.Sleep(2 * time.Millisecond)
	after, err := s.UpdateMetrics(ctx, domain.MetricsPatch{
		GrowthRate: ptr(dec(t, "7.25")),
	})
	require.NoError(t, err)
	require.Equal(t, before.ID, after.ID)
	require.Equal(t, "7.25", after.GrowthRate.String())
	require.Equal(t, before.TotalUsers, after.TotalUsers)
	require.True(t, after.Date.After(before.Date))
}

func TestUserByUsername(t *testing.T) {
	ctx := context.Background()
	s := NewEmptyStore()

	created, err := s.CreateUser(ctx, domain.InsertUser{Username: "admin", Password: "secret"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	u, err := s.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, created.ID, u.ID)

	u, err = s.GetUserByUsername(ctx, "nobody")
	require.NoError(t, err)
	require.Nil(t, u)
}
