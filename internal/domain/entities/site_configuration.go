package entities

import "time"

// SiteConfigurationID is the id of the single site configuration record.
const SiteConfigurationID = "site"

// SiteConfiguration holds the branding and contact details rendered on every page.
type SiteConfiguration struct {
	ID              string    `json:"id"`
	SiteName        string    `json:"site_name"`
	Tagline         string    `json:"tagline,omitempty"`
	Logo            string    `json:"logo,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	Email           string    `json:"email,omitempty"`
	ContactEmail    string    `json:"contact_email,omitempty"`
	Address         string    `json:"address,omitempty"`
	WebsiteURL      string    `json:"website_url,omitempty"`
	SocialFacebook  string    `json:"social_facebook,omitempty"`
	SocialTwitter   string    `json:"social_twitter,omitempty"`
	SocialLinkedIn  string    `json:"social_linkedin,omitempty"`
	SocialInstagram string    `json:"social_instagram,omitempty"`
	AnalyticsID     string    `json:"google_analytics_id,omitempty"`
	MetaDescription string    `json:"meta_description,omitempty"`
	LegalName       string    `json:"legal_name,omitempty"`
	BusinessNumber  string    `json:"business_number,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (c SiteConfiguration) RecordID() string   { return c.ID }
func (c SiteConfiguration) NaturalKey() string { return SiteConfigurationID }

// DefaultSiteConfiguration is rendered until an administrator saves one.
func DefaultSiteConfiguration() SiteConfiguration {
	return SiteConfiguration{
		ID:           SiteConfigurationID,
		SiteName:     "Social Dots Inc.",
		Tagline:      "Empowering Canadian businesses to thrive in a constantly evolving digital world",
		Phone:        "416-556-6961",
		Email:        "hello@socialdots.ca",
		ContactEmail: "ali@socialdots.ca",
		Address:      "Toronto, Ontario, Canada",
		WebsiteURL:   "https://socialdots.ca",
		LegalName:    "Social Dots Inc.",
	}
}
