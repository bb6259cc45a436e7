package entities

import (
	"sort"
	"strings"
	"time"
	"unicode"
)

// PriceType describes how a service is billed.
type PriceType string

const (
	PriceTypeFixed   PriceType = "fixed"
	PriceTypeHourly  PriceType = "hourly"
	PriceTypeMonthly PriceType = "monthly"
	PriceTypeCustom  PriceType = "custom"
	PriceTypeTiered  PriceType = "tiered"
)

// PricingPeriod is the billing period of a pricing option or plan.
type PricingPeriod string

const (
	PricingPeriodOneTime PricingPeriod = "one_time"
	PricingPeriodMonthly PricingPeriod = "monthly"
	PricingPeriodYearly  PricingPeriod = "yearly"
)

// PricingOption is a purchasable tier of a service. Options are embedded in the service item.
type PricingOption struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Price       float64       `json:"price"`
	Period      PricingPeriod `json:"period"`
	Features    []string      `json:"features,omitempty"`
	IsPopular   bool          `json:"is_popular"`
	Order       int           `json:"order"`
}

// Service is an agency offering shown on the services pages and sold through the cart.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (slug-index): slug
type Service struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Slug             string          `json:"slug"`
	Description      string          `json:"description"`
	ShortDescription string          `json:"short_description,omitempty"`
	Icon             string          `json:"icon,omitempty"`
	Image            string          `json:"image,omitempty"`
	Price            *float64        `json:"price,omitempty"`
	PriceType        PriceType       `json:"price_type"`
	MaintenanceFee   float64         `json:"maintenance_fee,omitempty"`
	Features         []string        `json:"features,omitempty"`
	PricingOptions   []PricingOption `json:"pricing_options,omitempty"`
	ServiceType      string          `json:"service_type,omitempty"`
	IsFeatured       bool            `json:"is_featured"`
	IsActive         bool            `json:"is_active"`
	Order            int             `json:"order"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (s Service) RecordID() string   { return s.ID }
func (s Service) NaturalKey() string { return s.Slug }

// RequiresPrice reports whether the price type needs an explicit price.
func (t PriceType) RequiresPrice() bool {
	return t != PriceTypeCustom && t != PriceTypeTiered
}

// IsCoreOffering reports whether the title names one of the agency's core offerings,
// which are always featured.
func (s Service) IsCoreOffering() bool {
	words := strings.FieldsFunc(strings.ToLower(s.Title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		if w == "ai" || strings.Contains(w, "salesforce") || strings.Contains(w, "strategy") {
			return true
		}
	}
	return false
}

// DefaultBasePrice is the base of the fallback tiers of an unpriced service.
const DefaultBasePrice = 100.0

var fallbackTiers = []struct {
	key, name, description string
	markup                 float64
}{
	{"standard", "Standard", "Basic package", 0},
	{"premium", "Premium", "Enhanced package", 30},
	{"enterprise", "Enterprise", "Full-featured package", 60},
}

// DisplayOptions returns the service's pricing options ordered by order then price.
// A service without options gets three one-time tiers at base, base+30 and base+60,
// where base is the service price or DefaultBasePrice.
func (s Service) DisplayOptions() []PricingOption {
	if len(s.PricingOptions) > 0 {
		opts := append([]PricingOption(nil), s.PricingOptions...)
		sort.SliceStable(opts, func(i, j int) bool {
			if opts[i].Order != opts[j].Order {
				return opts[i].Order < opts[j].Order
			}
			return opts[i].Price < opts[j].Price
		})
		return opts
	}

	base := DefaultBasePrice
	if s.Price != nil && *s.Price > 0 {
		base = *s.Price
	}
	opts := make([]PricingOption, 0, len(fallbackTiers))
	for i, t := range fallbackTiers {
		opts = append(opts, PricingOption{
			ID:          s.ID + "-" + t.key,
			Name:        t.name,
			Description: t.description,
			Price:       base + t.markup,
			Period:      PricingPeriodOneTime,
			Order:       i,
		})
	}
	return opts
}

// OptionByID returns the displayed pricing option with the given id.
func (s Service) OptionByID(id string) (PricingOption, bool) {
	for _, o := range s.DisplayOptions() {
		if o.ID == id {
			return o, true
		}
	}
	return PricingOption{}, false
}

// Slugify lowercases s and joins its alphanumeric runs with dashes.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
