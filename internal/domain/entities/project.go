package entities

import "time"

type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "planning"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusOnHold     ProjectStatus = "on_hold"
)

// PortfolioType groups projects and portfolio items on the site.
type PortfolioType string

const (
	PortfolioTypeWebsite PortfolioType = "website"
	PortfolioTypeAI      PortfolioType = "ai"
	PortfolioTypeSocial  PortfolioType = "social"
	PortfolioTypeOther   PortfolioType = "other"
)

// Project is a case study listed on the portfolio page.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (slug-index): slug
type Project struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Slug          string        `json:"slug"`
	ClientName    string        `json:"client_name,omitempty"`
	Description   string        `json:"description"`
	Image         string        `json:"image,omitempty"`
	Gallery       []string      `json:"gallery,omitempty"`
	Technologies  []string      `json:"technologies,omitempty"`
	PortfolioType PortfolioType `json:"portfolio_type"`
	ProjectURL    string        `json:"project_url,omitempty"`
	GithubURL     string        `json:"github_url,omitempty"`
	Status        ProjectStatus `json:"status"`
	StartDate     *time.Time    `json:"start_date,omitempty"`
	EndDate       *time.Time    `json:"end_date,omitempty"`
	IsFeatured    bool          `json:"is_featured"`
	Order         int           `json:"order"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (p Project) RecordID() string   { return p.ID }
func (p Project) NaturalKey() string { return p.Slug }

// UsesTechnology reports whether tech is listed on the project, ignoring case.
func (p Project) UsesTechnology(tech string) bool {
	for _, t := range p.Technologies {
		if equalFold(t, tech) {
			return true
		}
	}
	return false
}
