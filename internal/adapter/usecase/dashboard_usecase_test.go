package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"admybrand-insights/internal/adapter/memory"
	"admybrand-insights/internal/core/domain"
)

func dec(t *testing.T, v string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(v)
	require.NoError(t, err)
	return d
}

func ptr[T any](v T) *T {
	return &v
}

func TestCreateCampaignRejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewDashboardUseCase(memory.NewEmptyStore())

	_, err := svc.CreateCampaign(ctx, domain.InsertCampaign{
		Name:     "Bad Status",
		Platform: "Google Ads",
		Budget:   dec(t, "100.00"),
		Status:   ptr("archived"),
	})
	require.ErrorIs(t, err, domain.ErrInvalidStatus)

	campaigns, err := svc.ListCampaigns(ctx, "")
	require.NoError(t, err)
	require.Empty(t, campaigns)
}

func TestUpdateCampaignRejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewDashboardUseCase(memory.NewEmptyStore())

	c, err := svc.CreateCampaign(ctx, domain.InsertCampaign{
		Name:     "Valid",
		Platform: "Google Ads",
		Budget:   dec(t, "100.00"),
	})
	require.NoError(t, err)

	_, err = svc.UpdateCampaign(ctx, c.ID, domain.CampaignPatch{Status: ptr("archived")})
	require.ErrorIs(t, err, domain.ErrInvalidStatus)

	fetched, err := svc.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, domain.CampaignStatusActive, fetched.Status)
}

func TestCreateProductRejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewDashboardUseCase(memory.NewEmptyStore())

	_, err := svc.CreateProduct(ctx, domain.InsertProduct{
		Name:     "Widget",
		Category: "Software",
		Price:    dec(t, "10.00"),
		SKU:      "PROD-001",
		Status:   ptr("discontinued"),
	})
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestCreateOrderRejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewDashboardUseCase(memory.NewEmptyStore())

	_, err := svc.CreateOrder(ctx, domain.InsertOrder{
		Customer: "Jane",
		Email:    "jane@example.com",
		Product:  "Widget",
		Amount:   dec(t, "10.00"),
		Status:   ptr("cancelled"),
	})
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestListCampaignsFiltersByStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewDashboardUseCase(memory.NewStore())

	paused, err := svc.ListCampaigns(ctx, domain.CampaignStatusPaused)
	require.NoError(t, err)
	require.Len(t, paused, 1)
	require.Equal(t, "Holiday Campaign", paused[0].Name)

	active, err := svc.ListCampaigns(ctx, domain.CampaignStatusActive)
	require.NoError(t, err)
	require.Len(t, active, 2)

	all, err := svc.ListCampaigns(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestStatsOverviewAggregates(t *testing.T) {
	ctx := context.Background()
	svc := NewDashboardUseCase(memory.NewStore())

	stats, err := svc.StatsOverview(ctx)
	require.NoError(t, err)

	require.Equal(t, 3, stats.Campaigns)
	require.Equal(t, "16000.00", stats.TotalBudget.String())
	require.Equal(t, "12720.00", stats.TotalSpent.String())
	require.Equal(t, 543, stats.TotalConversions)
	require.Equal(t, "3.37", stats.AverageCTR.String())

	require.Equal(t, 3, stats.Orders)
	require.Equal(t, "1547.00", stats.OrderRevenue.String())

	require.Equal(t, 3, stats.Products)
	require.Equal(t, 342, stats.ProductSales)
}

func TestStatsOverviewEmptyStore(t *testing.T) {
	ctx := context.Background()
	svc := NewDashboardUseCase(memory.NewEmptyStore())

	stats, err := svc.StatsOverview(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, stats.Campaigns)
	require.Equal(t, "0", stats.AverageCTR.String())
	require.Equal(t, "0", stats.TotalBudget.String())
}
