package entities

import "time"

// PricingPlan is a package shown on the pricing page.
type PricingPlan struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Price       float64       `json:"price"`
	PricePeriod PricingPeriod `json:"price_period"`
	Features    []string      `json:"features,omitempty"`
	IsPopular   bool          `json:"is_popular"`
	IsActive    bool          `json:"is_active"`
	Order       int           `json:"order"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (p PricingPlan) RecordID() string   { return p.ID }
func (p PricingPlan) NaturalKey() string { return p.Name }
