package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"admybrand-insights/internal/core/domain"
	"admybrand-insights/internal/core/port"
)

// DashboardUseCase implements the business operations of the dashboard
// backend on top of a Store. It owns status-enum validation, the list
// filters and the aggregate stats; everything else passes through.
type DashboardUseCase struct {
	store port.Store
}

// NewDashboardUseCase creates a usecase over the provided store.
func NewDashboardUseCase(store port.Store) *DashboardUseCase {
	return &DashboardUseCase{store: store}
}

var _ port.DashboardUseCase = (*DashboardUseCase)(nil)

// Campaigns

func (u *DashboardUseCase) ListCampaigns(ctx context.Context, status string) ([]domain.Campaign, error) {
	campaigns, err := u.store.GetCampaigns(ctx)
	if err != nil || status == "" {
		return campaigns, err
	}
	filtered := make([]domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if c.Status == status {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

func (u *DashboardUseCase) CreateCampaign(ctx context.Context, payload domain.InsertCampaign) (*domain.Campaign, error) {
	if payload.Status != nil && !domain.ValidCampaignStatus(*payload.Status) {
		return nil, domain.ErrInvalidStatus
	}
	return u.store.CreateCampaign(ctx, payload)
}

func (u *DashboardUseCase) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	return u.store.GetCampaign(ctx, id)
}

func (u *DashboardUseCase) UpdateCampaign(ctx context.Context, id string, patch domain.CampaignPatch) (*domain.Campaign, error) {
	if patch.Status != nil && !domain.ValidCampaignStatus(*patch.Status) {
		return nil, domain.ErrInvalidStatus
	}
	return u.store.UpdateCampaign(ctx, id, patch)
}

func (u *DashboardUseCase) DeleteCampaign(ctx context.Context, id string) (bool, error) {
	return u.store.DeleteCampaign(ctx, id)
}

// Products

func (u *DashboardUseCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return u.store.GetProducts(ctx)
}

func (u *DashboardUseCase) CreateProduct(ctx context.Context, payload domain.InsertProduct) (*domain.Product, error) {
	if payload.Status != nil && !domain.ValidProductStatus(*payload.Status) {
		return nil, domain.ErrInvalidStatus
	}
	return u.store.CreateProduct(ctx, payload)
}

func (u *DashboardUseCase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return u.store.GetProduct(ctx, id)
}

func (u *DashboardUseCase) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	if patch.Status != nil && !domain.ValidProductStatus(*patch.Status) {
		return nil, domain.ErrInvalidStatus
	}
	return u.store.UpdateProduct(ctx, id, patch)
}

func (u *DashboardUseCase) DeleteProduct(ctx context.Context, id string) (bool, error) {
	return u.store.DeleteProduct(ctx, id)
}

// Orders

func (u *DashboardUseCase) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return u.store.GetOrders(ctx)
}

func (u *DashboardUseCase) CreateOrder(ctx context.Context, payload domain.InsertOrder) (*domain.Order, error) {
	if payload.Status != nil && !domain.ValidOrderStatus(*payload.Status) {
		return nil, domain.ErrInvalidStatus
	}
	return u.store.CreateOrder(ctx, payload)
}

func (u *DashboardUseCase) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return u.store.GetOrder(ctx, id)
}

func (u *DashboardUseCase) UpdateOrder(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error) {
	if patch.Status != nil && !domain.ValidOrderStatus(*patch.Status) {
		return nil, domain.ErrInvalidStatus
	}
	return u.store.UpdateOrder(ctx, id, patch)
}

func (u *DashboardUseCase) DeleteOrder(ctx context.Context, id string) (bool, error) {
	return u.store.DeleteOrder(ctx, id)
}

// Metrics

func (u *DashboardUseCase) GetMetrics(ctx context.Context) (*domain.Metrics, error) {
	return u.store.GetMetrics(ctx)
}

func (u *DashboardUseCase) UpdateMetrics(ctx context.Context, patch domain.MetricsPatch) (*domain.Metrics, error) {
	return u.store.UpdateMetrics(ctx, patch)
}

// StatsOverview computes the dashboard's summary figures with exact decimal
// arithmetic. The average CTR is rounded to two decimal places.
func (u *DashboardUseCase) StatsOverview(ctx context.Context) (*port.StatsOverview, error) {
	campaigns, err := u.store.GetCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := u.store.GetOrders(ctx)
	if err != nil {
		return nil, err
	}
	products, err := u.store.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	stats := &port.StatsOverview{
		Campaigns: len(campaigns),
		Orders:    len(orders),
		Products:  len(products),
	}
	ctrSum := decimal.Zero
	for _, c := range campaigns {
		stats.TotalBudget = stats.TotalBudget.Add(c.Budget)
		stats.TotalSpent = stats.TotalSpent.Add(c.Spent)
		stats.TotalConversions += c.Conversions
		ctrSum = ctrSum.Add(c.CTR)
	}
	if len(campaigns) > 0 {
		stats.AverageCTR = ctrSum.Div(decimal.NewFromInt(int64(len(campaigns)))).Round(2)
	}
	for _, o := range orders {
		stats.OrderRevenue = stats.OrderRevenue.Add(o.Amount)
	}
	for _, p := range products {
		stats.ProductSales += p.Sales
	}
	return stats, nil
}
