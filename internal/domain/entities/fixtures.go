package entities

import "time"

// FixtureBundle is the JSON document moved between environments by the import,
// export and sync commands.
type FixtureBundle struct {
	ExportedAt          time.Time           `json:"exported_at"`
	SiteConfiguration   *SiteConfiguration  `json:"site_configuration,omitempty"`
	Services            []Service           `json:"services"`
	PricingPlans        []PricingPlan       `json:"pricing_plans"`
	Projects            []Project           `json:"projects"`
	BlogPosts           []BlogPost          `json:"blog_posts"`
	PortfolioCategories []PortfolioCategory `json:"portfolio_categories"`
	Portfolios          []Portfolio         `json:"portfolios"`
	Testimonials        []Testimonial       `json:"testimonials"`
	TeamMembers         []TeamMember        `json:"team_members"`
}

// FixtureCounts reports what an import did for one content type.
type FixtureCounts struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// FixtureReport summarises an import, keyed by content type.
type FixtureReport struct {
	DryRun bool                     `json:"dry_run"`
	Counts map[string]FixtureCounts `json:"counts"`
}
