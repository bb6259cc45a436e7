package usecase

import (
	"time"

	"socialdots/internal/domain/entities"
)

// Page is one page of a paginated listing. Number is 1-based.
type Page[T any] struct {
	Items      []T
	Number     int
	TotalPages int
	Total      int
}

func (p Page[T]) HasPrevious() bool { return p.Number > 1 }
func (p Page[T]) HasNext() bool     { return p.Number < p.TotalPages }
func (p Page[T]) Previous() int     { return p.Number - 1 }
func (p Page[T]) Next() int         { return p.Number + 1 }

// paginate clamps number into the valid range, so an out of range page shows the
// nearest existing one.
func paginate[T any](items []T, number, size int) Page[T] {
	total := len(items)
	pages := (total + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	if number < 1 {
		number = 1
	}
	if number > pages {
		number = pages
	}
	start := (number - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	return Page[T]{Items: items[start:end], Number: number, TotalPages: pages, Total: total}
}

// HomeFilterFeatured shows featured portfolio items, which is also the default.
const HomeFilterFeatured = "featured"

type HomePage struct {
	FeaturedServices []entities.Service
	FeaturedProjects []entities.Project
	Testimonials     []entities.Testimonial
	TeamMembers      []entities.TeamMember
	RecentPosts      []entities.BlogPost
	Categories       []entities.PortfolioCategory
	SelectedCategory *entities.PortfolioCategory
	ContentType      entities.ContentType
	Filter           string
	Portfolios       []entities.Portfolio
}

type ServiceListing struct {
	Service entities.Service
	Options []entities.PricingOption
}

type ServiceDetailPage struct {
	Service        entities.Service
	PricingOptions []entities.PricingOption
	Related        []entities.Service
}

type PortfolioPage struct {
	Projects     Page[entities.Project]
	Technologies []string
	CurrentTech  string
}

type ProjectDetailPage struct {
	Project entities.Project
	Related []entities.Project
}

type BlogPage struct {
	Posts       Page[entities.BlogPost]
	Tags        []string
	SearchQuery string
	CurrentTag  string
}

type BlogDetailPage struct {
	Post    entities.BlogPost
	Related []entities.BlogPost
}

type AboutPage struct {
	TeamMembers  []entities.TeamMember
	Testimonials []entities.Testimonial
}

// SitemapEntry is one url of sitemap.xml.
type SitemapEntry struct {
	Path       string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}
