package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is an item sold through the platform. Rating is nullable: a product
// without reviews has no rating rather than a zero one.
type Product struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Category    string           `json:"category"`
	Price       decimal.Decimal  `json:"price"`
	Stock       int              `json:"stock"`
	SKU         string           `json:"sku"`
	Description *string          `json:"description"`
	Status      string           `json:"status"`
	Rating      *decimal.Decimal `json:"rating"`
	Sales       int              `json:"sales"`
	Image       *string          `json:"image"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// InsertProduct is the creation payload for a product.
type InsertProduct struct {
	Name        string           `json:"name"`
	Category    string           `json:"category"`
	Price       decimal.Decimal  `json:"price"`
	Stock       *int             `json:"stock"`
	SKU         string           `json:"sku"`
	Description *string          `json:"description"`
	Status      *string          `json:"status"`
	Rating      *decimal.Decimal `json:"rating"`
	Sales       *int             `json:"sales"`
	Image       *string          `json:"image"`
}

// NewProduct builds a full Product. Defaults: stock 0, sales 0, status
// active; description, rating and image stay null when absent.
func (p InsertProduct) NewProduct(id string, now time.Time) Product {
	out := Product{
		ID:          id,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		SKU:         p.SKU,
		Description: p.Description,
		Status:      ProductStatusActive,
		Rating:      p.Rating,
		Image:       p.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.Stock != nil {
		out.Stock = *p.Stock
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.Sales != nil {
		out.Sales = *p.Sales
	}
	return out
}

// ProductPatch is a partial product update.
type ProductPatch struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	SKU         *string          `json:"sku"`
	Description *string          `json:"description"`
	Status      *string          `json:"status"`
	Rating      *decimal.Decimal `json:"rating"`
	Sales       *int             `json:"sales"`
	Image       *string          `json:"image"`
}

// Apply merges the provided fields onto p and refreshes updatedAt.
func (patch ProductPatch) Apply(p Product, now time.Time) Product {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
	if patch.Description != nil {
		p.Description = patch.Description
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Rating != nil {
		p.Rating = patch.Rating
	}
	if patch.Sales != nil {
		p.Sales = *patch.Sales
	}
	if patch.Image != nil {
		p.Image = patch.Image
	}
	p.UpdatedAt = now
	return p
}
