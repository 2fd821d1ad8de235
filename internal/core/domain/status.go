package domain

import "errors"

// ErrInvalidStatus reports a status value outside the entity's accepted set.
var ErrInvalidStatus = errors.New("invalid status")

// Campaign statuses.
const (
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

// Product statuses.
const (
	ProductStatusActive     = "active"
	ProductStatusLowStock   = "low_stock"
	ProductStatusOutOfStock = "out_of_stock"
	ProductStatusInactive   = "inactive"
)

// Order statuses.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusCompleted  = "completed"
)

func ValidCampaignStatus(s string) bool {
	switch s {
	case CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted:
		return true
	}
	return false
}

func ValidProductStatus(s string) bool {
	switch s {
	case ProductStatusActive, ProductStatusLowStock, ProductStatusOutOfStock, ProductStatusInactive:
		return true
	}
	return false
}

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusCompleted:
		return true
	}
	return false
}
