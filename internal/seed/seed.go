// Package seed holds the demo dataset the dashboard ships with and applies
// it through the regular create path, so seed rows obey exactly the same
// defaulting rules as runtime-created data.
package seed

import (
	"context"

	"github.com/shopspring/decimal"

	"admybrand-insights/internal/core/domain"
	"admybrand-insights/internal/core/port"
)

// Apply populates an empty store with the demo rows: 3 campaigns, 3 products,
// 3 orders and the metrics record. It is not idempotent; callers decide when
// a store counts as empty.
func Apply(ctx context.Context, s port.Store) error {
	for _, c := range Campaigns() {
		if _, err := s.CreateCampaign(ctx, c); err != nil {
			return err
		}
	}
	for _, p := range Products() {
		if _, err := s.CreateProduct(ctx, p); err != nil {
			return err
		}
	}
	for _, o := range Orders() {
		if _, err := s.CreateOrder(ctx, o); err != nil {
			return err
		}
	}
	_, err := s.UpdateMetrics(ctx, Metrics())
	return err
}

// Campaigns returns the demo campaign payloads.
func Campaigns() []domain.InsertCampaign {
	return []domain.InsertCampaign{
		{
			Name:        "Summer Sale 2024",
			Platform:    "Google Ads",
			Budget:      dec("5000.00"),
			Spent:       ptr(dec("3420.00")),
			Conversions: ptr(156),
			CTR:         ptr(dec("3.20")),
			Status:      ptr(domain.CampaignStatusActive),
		},
		{
			Name:        "Black Friday Promotion",
			Platform:    "Facebook Ads",
			Budget:      dec("8000.00"),
			Spent:       ptr(dec("7200.00")),
			Conversions: ptr(289),
			CTR:         ptr(dec("4.10")),
			Status:      ptr(domain.CampaignStatusActive),
		},
		{
			Name:        "Holiday Campaign",
			Platform:    "Instagram",
			Budget:      dec("3000.00"),
			Spent:       ptr(dec("2100.00")),
			Conversions: ptr(98),
			CTR:         ptr(dec("2.80")),
			Status:      ptr(domain.CampaignStatusPaused),
		},
	}
}

// Products returns the demo product payloads.
func Products() []domain.InsertProduct {
	return []domain.InsertProduct{
		{
			Name:     "Premium Analytics Dashboard",
			Category: "Software",
			Price:    dec("499.00"),
			Stock:    ptr(25),
			SKU:      "PROD-001",
			Status:   ptr(domain.ProductStatusActive),
			Rating:   ptr(dec("4.8")),
			Sales:    ptr(182),
			Image:    ptr("📊"),
		},
		{
			Name:     "Marketing Tools Pack",
			Category: "Tools",
			Price:    dec("249.00"),
			Stock:    ptr(4),
			SKU:      "PROD-002",
			Status:   ptr(domain.ProductStatusLowStock),
			Rating:   ptr(dec("4.3")),
			Sales:    ptr(96),
			Image:    ptr("🎯"),
		},
		{
			Name:     "Data Visualization Suite",
			Category: "Analytics",
			Price:    dec("799.00"),
			Stock:    ptr(0),
			SKU:      "PROD-003",
			Status:   ptr(domain.ProductStatusOutOfStock),
			Rating:   ptr(dec("4.6")),
			Sales:    ptr(64),
			Image:    ptr("📈"),
		},
	}
}

// Orders returns the demo order payloads.
func Orders() []domain.InsertOrder {
	return []domain.InsertOrder{
		{
			Customer: "Alice Freeman",
			Email:    "alice.freeman@example.com",
			Product:  "Premium Analytics Dashboard",
			Amount:   dec("499.00"),
			Status:   ptr(domain.OrderStatusCompleted),
			Tracking: ptr("TRK9F3K2M1QX"),
		},
		{
			Customer: "Brian Ortega",
			Email:    "brian.ortega@example.com",
			Product:  "Marketing Tools Pack",
			Amount:   dec("249.00"),
			Status:   ptr(domain.OrderStatusShipped),
			Tracking: ptr("TRK2B7H8V4LD"),
		},
		{
			Customer: "Chen Wei",
			Email:    "chen.wei@example.com",
			Product:  "Data Visualization Suite",
			Amount:   dec("799.00"),
			Status:   ptr(domain.OrderStatusPending),
		},
	}
}

// Metrics returns the demo metrics values.
func Metrics() domain.MetricsPatch {
	return domain.MetricsPatch{
		TotalRevenue: ptr(dec("32499.93")),
		TotalUsers:   ptr(5211832),
		Conversions:  ptr(2324),
		GrowthRate:   ptr(dec("4.83")),
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}
