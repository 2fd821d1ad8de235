package port

import (
	"context"

	"github.com/shopspring/decimal"

	"admybrand-insights/internal/core/domain"
)

// DashboardUseCase defines the business operations exposed by the dashboard
// backend. This is the primary port into the application: HTTP handlers talk
// to it, never to the store directly. Create and update operations validate
// status values against the entity's enum and return domain.ErrInvalidStatus
// for anything outside it; absent statuses still pick up entity defaults.
type DashboardUseCase interface {
	// ListCampaigns returns all campaigns, optionally filtered by status.
	// An empty status means no filter.
	ListCampaigns(ctx context.Context, status string) ([]domain.Campaign, error)
	CreateCampaign(ctx context.Context, payload domain.InsertCampaign) (*domain.Campaign, error)
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, patch domain.CampaignPatch) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) (bool, error)

	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, payload domain.InsertProduct) (*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) (bool, error)

	ListOrders(ctx context.Context) ([]domain.Order, error)
	CreateOrder(ctx context.Context, payload domain.InsertOrder) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	UpdateOrder(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id string) (bool, error)

	GetMetrics(ctx context.Context) (*domain.Metrics, error)
	UpdateMetrics(ctx context.Context, patch domain.MetricsPatch) (*domain.Metrics, error)

	// StatsOverview aggregates headline figures across all collections.
	StatsOverview(ctx context.Context) (*StatsOverview, error)
}

// StatsOverview carries the aggregate figures behind the dashboard's summary
// cards. Monetary totals and the average CTR are exact decimals.
type StatsOverview struct {
	Campaigns        int             `json:"campaigns"`
	TotalBudget      decimal.Decimal `json:"totalBudget"`
	TotalSpent       decimal.Decimal `json:"totalSpent"`
	TotalConversions int             `json:"totalConversions"`
	AverageCTR       decimal.Decimal `json:"averageCtr"`
	Orders           int             `json:"orders"`
	OrderRevenue     decimal.Decimal `json:"orderRevenue"`
	Products         int             `json:"products"`
	ProductSales     int             `json:"productSales"`
}
