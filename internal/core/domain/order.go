package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a customer purchase. Product is the product name as displayed,
// not a foreign key. Date is stamped at creation and never changes, and
// orders carry no updatedAt.
type Order struct {
	ID       string          `json:"id"`
	Customer string          `json:"customer"`
	Email    string          `json:"email"`
	Product  string          `json:"product"`
	Amount   decimal.Decimal `json:"amount"`
	Status   string          `json:"status"`
	Tracking *string         `json:"tracking"`
	Date     time.Time       `json:"date"`
}

// InsertOrder is the creation payload for an order.
type InsertOrder struct {
	Customer string          `json:"customer"`
	Email    string          `json:"email"`
	Product  string          `json:"product"`
	Amount   decimal.Decimal `json:"amount"`
	Status   *string         `json:"status"`
	Tracking *string         `json:"tracking"`
}

// NewOrder builds a full Order. Defaults: status pending, tracking null,
// date now.
func (p InsertOrder) NewOrder(id string, now time.Time) Order {
	o := Order{
		ID:       id,
		Customer: p.Customer,
		Email:    p.Email,
		Product:  p.Product,
		Amount:   p.Amount,
		Status:   OrderStatusPending,
		Tracking: p.Tracking,
		Date:     now,
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	return o
}

// OrderPatch is a partial order update. It has no date field, so the
// creation date is unpatchable by construction.
type OrderPatch struct {
	Customer *string          `json:"customer"`
	Email    *string          `json:"email"`
	Product  *string          `json:"product"`
	Amount   *decimal.Decimal `json:"amount"`
	Status   *string          `json:"status"`
	Tracking *string          `json:"tracking"`
}

// Apply merges the provided fields onto o.
func (p OrderPatch) Apply(o Order) Order {
	if p.Customer != nil {
		o.Customer = *p.Customer
	}
	if p.Email != nil {
		o.Email = *p.Email
	}
	if p.Product != nil {
		o.Product = *p.Product
	}
	if p.Amount != nil {
		o.Amount = *p.Amount
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.Tracking != nil {
		o.Tracking = p.Tracking
	}
	return o
}
