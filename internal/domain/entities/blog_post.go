package entities

import (
	"strings"
	"time"
)

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusArchived  PostStatus = "archived"
)

// BlogPost is an article on the blog.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (slug-index): slug
type BlogPost struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Author          string     `json:"author"`
	Excerpt         string     `json:"excerpt,omitempty"`
	Content         string     `json:"content"`
	FeaturedImage   string     `json:"featured_image,omitempty"`
	Status          PostStatus `json:"status"`
	Tags            []string   `json:"tags,omitempty"`
	MetaDescription string     `json:"meta_description,omitempty"`
	IsFeatured      bool       `json:"is_featured"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (p BlogPost) RecordID() string   { return p.ID }
func (p BlogPost) NaturalKey() string { return p.Slug }

// Matches reports whether q appears in the title, the content or any tag, ignoring case.
func (p BlogPost) Matches(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.Content), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// HasTag reports whether the post is tagged with tag, ignoring case.
func (p BlogPost) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if equalFold(t, tag) {
			return true
		}
	}
	return false
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
