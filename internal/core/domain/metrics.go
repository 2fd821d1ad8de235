package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Metrics is the dashboard's headline figures. Exactly one record exists per
// store; updates merge fields and refresh the date.
type Metrics struct {
	ID           string          `json:"id"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalUsers   int             `json:"totalUsers"`
	Conversions  int             `json:"conversions"`
	GrowthRate   decimal.Decimal `json:"growthRate"`
	Date         time.Time       `json:"date"`
}

// MetricsPatch is a partial metrics update.
type MetricsPatch struct {
	TotalRevenue *decimal.Decimal `json:"totalRevenue"`
	TotalUsers   *int             `json:"totalUsers"`
	Conversions  *int             `json:"conversions"`
	GrowthRate   *decimal.Decimal `json:"growthRate"`
}

// Apply merges the provided fields onto m and refreshes the date.
func (p MetricsPatch) Apply(m Metrics, now time.Time) Metrics {
	if p.TotalRevenue != nil {
		m.TotalRevenue = *p.TotalRevenue
	}
	if p.TotalUsers != nil {
		m.TotalUsers = *p.TotalUsers
	}
	if p.Conversions != nil {
		m.Conversions = *p.Conversions
	}
	if p.GrowthRate != nil {
		m.GrowthRate = *p.GrowthRate
	}
	m.Date = now
	return m
}
