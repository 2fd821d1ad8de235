package port

import (
	"context"

	"admybrand-insights/internal/core/domain"
)

// Store defines the persistence layer for dashboard entities. It is an
// outbound port in hexagonal architecture. Implementations must treat each
// call as an atomic read-modify-write so concurrent handlers cannot observe
// a half-applied update. A missing id is reported as (nil, nil), never as an
// error.
type Store interface {
	// GetUser returns a user by id, or nil when absent.
	GetUser(ctx context.Context, id string) (*domain.User, error)
	// GetUserByUsername returns the user with the given username, or nil.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	// CreateUser stores a new user with a generated id.
	CreateUser(ctx context.Context, payload domain.InsertUser) (*domain.User, error)

	// GetCampaigns returns all campaigns in unspecified order.
	GetCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// GetCampaign returns a campaign by id, or nil when absent.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// CreateCampaign applies defaults, stamps timestamps and stores the
	// campaign under a generated id.
	CreateCampaign(ctx context.Context, payload domain.InsertCampaign) (*domain.Campaign, error)
	// UpdateCampaign merges the patch onto the stored campaign and refreshes
	// updatedAt. It returns nil when the id is unknown.
	UpdateCampaign(ctx context.Context, id string, patch domain.CampaignPatch) (*domain.Campaign, error)
	// DeleteCampaign removes a campaign and reports whether it existed.
	DeleteCampaign(ctx context.Context, id string) (bool, error)

	GetProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, payload domain.InsertProduct) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) (bool, error)

	GetOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	CreateOrder(ctx context.Context, payload domain.InsertOrder) (*domain.Order, error)
	UpdateOrder(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id string) (bool, error)

	// GetMetrics returns the single metrics record.
	GetMetrics(ctx context.Context) (*domain.Metrics, error)
	// UpdateMetrics merges the patch onto the metrics record and refreshes
	// its date.
	UpdateMetrics(ctx context.Context, patch domain.MetricsPatch) (*domain.Metrics, error)
}
