package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign represents a marketing campaign shown on the dashboard.
// Budget, spent and ctr are exact decimals and serialise to JSON as quoted
// decimal strings, never floats.
type Campaign struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Platform    string          `json:"platform"`
	Budget      decimal.Decimal `json:"budget"`
	Spent       decimal.Decimal `json:"spent"`
	Conversions int             `json:"conversions"`
	CTR         decimal.Decimal `json:"ctr"`
	Status      string          `json:"status"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     *time.Time      `json:"endDate"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// InsertCampaign is the creation payload: the campaign minus server-assigned
// fields. Optional fields are pointers so omitted values pick up defaults.
type InsertCampaign struct {
	Name        string           `json:"name"`
	Platform    string           `json:"platform"`
	Budget      decimal.Decimal  `json:"budget"`
	Spent       *decimal.Decimal `json:"spent"`
	Conversions *int             `json:"conversions"`
	CTR         *decimal.Decimal `json:"ctr"`
	Status      *string          `json:"status"`
	StartDate   *DateTime        `json:"startDate"`
	EndDate     *DateTime        `json:"endDate"`
}

// NewCampaign builds a full Campaign from the payload, the generated id and
// the creation instant. Defaults: spent "0", conversions 0, ctr "0", status
// active, startDate now. createdAt and updatedAt are both stamped with now.
func (p InsertCampaign) NewCampaign(id string, now time.Time) Campaign {
	c := Campaign{
		ID:        id,
		Name:      p.Name,
		Platform:  p.Platform,
		Budget:    p.Budget,
		Status:    CampaignStatusActive,
		StartDate: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if p.Spent != nil {
		c.Spent = *p.Spent
	}
	if p.Conversions != nil {
		c.Conversions = *p.Conversions
	}
	if p.CTR != nil {
		c.CTR = *p.CTR
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.StartDate != nil {
		c.StartDate = p.StartDate.Time
	}
	if p.EndDate != nil {
		t := p.EndDate.Time
		c.EndDate = &t
	}
	return c
}

// CampaignPatch is a partial update: every field is optional and absent
// fields are left untouched.
type CampaignPatch struct {
	Name        *string          `json:"name"`
	Platform    *string          `json:"platform"`
	Budget      *decimal.Decimal `json:"budget"`
	Spent       *decimal.Decimal `json:"spent"`
	Conversions *int             `json:"conversions"`
	CTR         *decimal.Decimal `json:"ctr"`
	Status      *string          `json:"status"`
	StartDate   *DateTime        `json:"startDate"`
	EndDate     *DateTime        `json:"endDate"`
}

// Apply merges the provided fields onto c and refreshes updatedAt.
func (p CampaignPatch) Apply(c Campaign, now time.Time) Campaign {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Platform != nil {
		c.Platform = *p.Platform
	}
	if p.Budget != nil {
		c.Budget = *p.Budget
	}
	if p.Spent != nil {
		c.Spent = *p.Spent
	}
	if p.Conversions != nil {
		c.Conversions = *p.Conversions
	}
	if p.CTR != nil {
		c.CTR = *p.CTR
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.StartDate != nil {
		c.StartDate = p.StartDate.Time
	}
	if p.EndDate != nil {
		t := p.EndDate.Time
		c.EndDate = &t
	}
	c.UpdatedAt = now
	return c
}
