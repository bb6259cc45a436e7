package entities

import "time"

// ContentType is the kind of media a portfolio item shows.
type ContentType string

const (
	ContentTypePost       ContentType = "post"
	ContentTypeVideo      ContentType = "video"
	ContentTypeBlog       ContentType = "blog"
	ContentTypeEmail      ContentType = "email"
	ContentTypeTechnology ContentType = "technology"
)

// contentTypeAliases maps the plural filter names used in page links to content types.
var contentTypeAliases = map[string]ContentType{
	"posts":  ContentTypePost,
	"videos": ContentTypeVideo,
	"blogs":  ContentTypeBlog,
	"emails": ContentTypeEmail,
}

// ContentTypeFromFilter resolves a plural filter name such as "videos".
func ContentTypeFromFilter(filter string) (ContentType, bool) {
	ct, ok := contentTypeAliases[filter]
	return ct, ok
}

type PortfolioCategory struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c PortfolioCategory) RecordID() string   { return c.ID }
func (c PortfolioCategory) NaturalKey() string { return c.Slug }

// Portfolio is a single piece of published work (a post, video, blog or email sample).
type Portfolio struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Slug           string        `json:"slug"`
	Description    string        `json:"description,omitempty"`
	Image          string        `json:"image,omitempty"`
	CategoryID     string        `json:"category_id"`
	ContentType    ContentType   `json:"content_type"`
	PortfolioType  PortfolioType `json:"portfolio_type"`
	VideoURL       string        `json:"video_url,omitempty"`
	BlogLink       string        `json:"blog_link,omitempty"`
	TechnologyUsed []string      `json:"technology_used,omitempty"`
	IsFeatured     bool          `json:"is_featured"`
	IsActive       bool          `json:"is_active"`
	Order          int           `json:"order"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (p Portfolio) RecordID() string   { return p.ID }
func (p Portfolio) NaturalKey() string { return p.Slug }
