package response

import (
	"socialdots/internal/domain/entities"
)

type ServiceSummary struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	PriceType   string   `json:"price_type"`
	Features    []string `json:"features"`
}

type ServicesResponse struct {
	Services []ServiceSummary `json:"services"`
}

func FromServices(services []entities.Service) ServicesResponse {
	out := ServicesResponse{Services: make([]ServiceSummary, 0, len(services))}
	for _, s := range services {
		out.Services = append(out.Services, ServiceSummary{
			ID:          s.ID,
			Title:       s.Title,
			Slug:        s.Slug,
			Description: s.Description,
			Price:       s.Price,
			PriceType:   string(s.PriceType),
			Features:    nonNil(s.Features),
		})
	}
	return out
}

type PricingPlanSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	PricePeriod string   `json:"price_period"`
	Features    []string `json:"features"`
}

type PricingResponse struct {
	PricingPlans []PricingPlanSummary `json:"pricing_plans"`
}

func FromPricingPlans(plans []entities.PricingPlan) PricingResponse {
	out := PricingResponse{PricingPlans: make([]PricingPlanSummary, 0, len(plans))}
	for _, p := range plans {
		out.PricingPlans = append(out.PricingPlans, PricingPlanSummary{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			PricePeriod: string(p.PricePeriod),
			Features:    nonNil(p.Features),
		})
	}
	return out
}

type PricingOptionResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Period   string   `json:"period"`
	Features []string `json:"features"`
}

func FromPricingOption(o entities.PricingOption) PricingOptionResponse {
	return PricingOptionResponse{
		ID:       o.ID,
		Name:     o.Name,
		Price:    o.Price,
		Period:   string(o.Period),
		Features: nonNil(o.Features),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
