package usecase

//go:generate mockgen -source=content_usecase.go -destination=../adapter/http/handlers/mocks/content_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrContentNotFound       = errors.New("content not found")
	ErrPricingOptionNotFound = errors.New("pricing option not found")
)

// Cache keys of the public JSON API. Catalog writes delete them.
const (
	CacheKeyServices     = "api:services"
	CacheKeyPricingPlans = "api:pricing_plans"
)

const (
	homeServices     = 3
	homeProjects     = 6
	homeTestimonials = 3
	homeTeam         = 4
	homePosts        = 3
	homePortfolios   = 6
	relatedCount     = 3
	aboutTestimonial = 6
	projectsPerPage  = 12
	postsPerPage     = 10
)

// ContentRepositories groups the stores of every content type rendered on the site.
type ContentRepositories struct {
	Services            interfaces.IContentRepository[entities.Service]
	PricingPlans        interfaces.IContentRepository[entities.PricingPlan]
	Projects            interfaces.IContentRepository[entities.Project]
	BlogPosts           interfaces.IContentRepository[entities.BlogPost]
	PortfolioCategories interfaces.IContentRepository[entities.PortfolioCategory]
	Portfolios          interfaces.IContentRepository[entities.Portfolio]
	Testimonials        interfaces.IContentRepository[entities.Testimonial]
	TeamMembers         interfaces.IContentRepository[entities.TeamMember]
	SiteConfiguration   interfaces.IContentRepository[entities.SiteConfiguration]
}

// IContentUseCase builds the read models of the public site and its JSON API.
type IContentUseCase interface {
	SiteConfiguration(ctx context.Context) (entities.SiteConfiguration, error)
	Home(ctx context.Context, filter string) (HomePage, error)
	Services(ctx context.Context) ([]ServiceListing, error)
	ServiceDetail(ctx context.Context, slug string) (ServiceDetailPage, error)
	Portfolio(ctx context.Context, tech string, page int) (PortfolioPage, error)
	ProjectDetail(ctx context.Context, slug string) (ProjectDetailPage, error)
	Blog(ctx context.Context, query, tag string, page int) (BlogPage, error)
	BlogDetail(ctx context.Context, slug string) (BlogDetailPage, error)
	About(ctx context.Context) (AboutPage, error)
	ActiveServices(ctx context.Context) ([]entities.Service, error)
	PricingPlans(ctx context.Context) ([]entities.PricingPlan, error)
	PricingOption(ctx context.Context, optionID string) (entities.PricingOption, error)
	Sitemap(ctx context.Context) ([]SitemapEntry, error)
}

type ContentUseCase struct {
	repos    ContentRepositories
	cache    interfaces.ICache
	cacheTTL time.Duration
}

var _ IContentUseCase = (*ContentUseCase)(nil)

// NewContentUseCase builds the read side. cache may be nil.
func NewContentUseCase(repos ContentRepositories, cache interfaces.ICache, cacheTTL time.Duration) *ContentUseCase {
	return &ContentUseCase{repos: repos, cache: cache, cacheTTL: cacheTTL}
}

// SiteConfiguration returns the stored configuration, or the defaults when none was saved.
func (u *ContentUseCase) SiteConfiguration(ctx context.Context) (entities.SiteConfiguration, error) {
	cfg, err := u.repos.SiteConfiguration.GetByID(ctx, entities.SiteConfigurationID)
	if err != nil {
		return entities.SiteConfiguration{}, err
	}
	if cfg.ID == "" {
		return entities.DefaultSiteConfiguration(), nil
	}
	return cfg, nil
}

func (u *ContentUseCase) Home(ctx context.Context, filter string) (HomePage, error) {
	services, err := u.activeServices(ctx)
	if err != nil {
		return HomePage{}, err
	}
	projects, err := u.sortedProjects(ctx)
	if err != nil {
		return HomePage{}, err
	}
	testimonials, err := u.activeTestimonials(ctx)
	if err != nil {
		return HomePage{}, err
	}
	team, err := u.activeTeam(ctx)
	if err != nil {
		return HomePage{}, err
	}
	posts, err := u.publishedPosts(ctx)
	if err != nil {
		return HomePage{}, err
	}
	categories, err := u.activeCategories(ctx)
	if err != nil {
		return HomePage{}, err
	}
	portfolios, err := u.activePortfolios(ctx)
	if err != nil {
		return HomePage{}, err
	}

	page := HomePage{
		FeaturedServices: firstN(filterBy(services, func(s entities.Service) bool { return s.IsFeatured }), homeServices),
		FeaturedProjects: firstN(filterBy(projects, func(p entities.Project) bool { return p.IsFeatured }), homeProjects),
		Testimonials:     firstN(filterBy(testimonials, func(t entities.Testimonial) bool { return t.IsFeatured }), homeTestimonials),
		TeamMembers:      firstN(team, homeTeam),
		RecentPosts:      firstN(posts, homePosts),
		Categories:       categories,
		Filter:           strings.TrimSpace(filter),
	}

	switch ct, isAlias := entities.ContentTypeFromFilter(page.Filter); {
	case isAlias:
		page.ContentType = ct
		page.Portfolios = filterBy(portfolios, func(p entities.Portfolio) bool { return p.ContentType == ct })
	case page.Filter == "" || page.Filter == HomeFilterFeatured:
		page.Portfolios = firstN(filterBy(portfolios, func(p entities.Portfolio) bool { return p.IsFeatured }), homePortfolios)
	default:
		// An unknown category slug falls back to the first category.
		var selected *entities.PortfolioCategory
		for i := range categories {
			if categories[i].Slug == page.Filter {
				selected = &categories[i]
				break
			}
		}
		if selected == nil && len(categories) > 0 {
			selected = &categories[0]
		}
		if selected != nil {
			page.SelectedCategory = selected
			page.Portfolios = filterBy(portfolios, func(p entities.Portfolio) bool { return p.CategoryID == selected.ID })
		}
	}
	return page, nil
}

func (u *ContentUseCase) Services(ctx context.Context) ([]ServiceListing, error) {
	services, err := u.activeServices(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ServiceListing, 0, len(services))
	for _, s := range services {
		out = append(out, ServiceListing{Service: s, Options: s.DisplayOptions()})
	}
	return out, nil
}

func (u *ContentUseCase) ServiceDetail(ctx context.Context, slug string) (ServiceDetailPage, error) {
	svc, err := u.repos.Services.GetBySlug(ctx, slug)
	if err != nil {
		return ServiceDetailPage{}, err
	}
	if svc.ID == "" || !svc.IsActive {
		return ServiceDetailPage{}, ErrContentNotFound
	}
	services, err := u.activeServices(ctx)
	if err != nil {
		return ServiceDetailPage{}, err
	}
	page := ServiceDetailPage{
		Service: svc,
		Related: firstN(filterBy(services, func(s entities.Service) bool { return s.ID != svc.ID }), relatedCount),
	}
	if svc.PriceType == entities.PriceTypeTiered {
		page.PricingOptions = svc.DisplayOptions()
	}
	return page, nil
}

func (u *ContentUseCase) Portfolio(ctx context.Context, tech string, page int) (PortfolioPage, error) {
	projects, err := u.sortedProjects(ctx)
	if err != nil {
		return PortfolioPage{}, err
	}
	completed := filterBy(projects, func(p entities.Project) bool { return p.Status == entities.ProjectStatusCompleted })

	techSet := map[string]struct{}{}
	for _, p := range completed {
		for _, t := range p.Technologies {
			techSet[t] = struct{}{}
		}
	}

	tech = strings.TrimSpace(tech)
	listed := completed
	if tech != "" {
		listed = filterBy(completed, func(p entities.Project) bool { return p.UsesTechnology(tech) })
	}
	return PortfolioPage{
		Projects:     paginate(listed, page, projectsPerPage),
		Technologies: sortedKeys(techSet),
		CurrentTech:  tech,
	}, nil
}

func (u *ContentUseCase) ProjectDetail(ctx context.Context, slug string) (ProjectDetailPage, error) {
	project, err := u.repos.Projects.GetBySlug(ctx, slug)
	if err != nil {
		return ProjectDetailPage{}, err
	}
	if project.ID == "" {
		return ProjectDetailPage{}, ErrContentNotFound
	}
	projects, err := u.sortedProjects(ctx)
	if err != nil {
		return ProjectDetailPage{}, err
	}
	related := filterBy(projects, func(p entities.Project) bool {
		return p.ID != project.ID && p.Status == entities.ProjectStatusCompleted
	})
	return ProjectDetailPage{Project: project, Related: firstN(related, relatedCount)}, nil
}

func (u *ContentUseCase) Blog(ctx context.Context, query, tag string, page int) (BlogPage, error) {
	posts, err := u.publishedPosts(ctx)
	if err != nil {
		return BlogPage{}, err
	}

	tagSet := map[string]struct{}{}
	for _, p := range posts {
		for _, t := range p.Tags {
			tagSet[t] = struct{}{}
		}
	}

	query = strings.TrimSpace(query)
	tag = strings.TrimSpace(tag)
	listed := filterBy(posts, func(p entities.BlogPost) bool {
		return p.Matches(query) && (tag == "" || p.HasTag(tag))
	})
	return BlogPage{
		Posts:       paginate(listed, page, postsPerPage),
		Tags:        sortedKeys(tagSet),
		SearchQuery: query,
		CurrentTag:  tag,
	}, nil
}

func (u *ContentUseCase) BlogDetail(ctx context.Context, slug string) (BlogDetailPage, error) {
	post, err := u.repos.BlogPosts.GetBySlug(ctx, slug)
	if err != nil {
		return BlogDetailPage{}, err
	}
	if post.ID == "" || post.Status != entities.PostStatusPublished {
		return BlogDetailPage{}, ErrContentNotFound
	}
	posts, err := u.publishedPosts(ctx)
	if err != nil {
		return BlogDetailPage{}, err
	}
	related := filterBy(posts, func(p entities.BlogPost) bool { return p.ID != post.ID })
	return BlogDetailPage{Post: post, Related: firstN(related, relatedCount)}, nil
}

func (u *ContentUseCase) About(ctx context.Context) (AboutPage, error) {
	team, err := u.activeTeam(ctx)
	if err != nil {
		return AboutPage{}, err
	}
	testimonials, err := u.activeTestimonials(ctx)
	if err != nil {
		return AboutPage{}, err
	}
	return AboutPage{TeamMembers: team, Testimonials: firstN(testimonials, aboutTestimonial)}, nil
}

// ActiveServices backs GET /api/services and is served from the cache when one is set.
func (u *ContentUseCase) ActiveServices(ctx context.Context) ([]entities.Service, error) {
	return cached(ctx, u.cache, CacheKeyServices, u.cacheTTL, u.activeServices)
}

// PricingPlans returns the active plans in display order, through the cache.
func (u *ContentUseCase) PricingPlans(ctx context.Context) ([]entities.PricingPlan, error) {
	return cached(ctx, u.cache, CacheKeyPricingPlans, u.cacheTTL, func(ctx context.Context) ([]entities.PricingPlan, error) {
		plans, err := u.repos.PricingPlans.List(ctx)
		if err != nil {
			return nil, err
		}
		plans = filterBy(plans, func(p entities.PricingPlan) bool { return p.IsActive })
		sort.SliceStable(plans, func(i, j int) bool {
			if plans[i].Order != plans[j].Order {
				return plans[i].Order < plans[j].Order
			}
			return plans[i].Price < plans[j].Price
		})
		return plans, nil
	})
}

// PricingOption finds an option of any active service by id.
func (u *ContentUseCase) PricingOption(ctx context.Context, optionID string) (entities.PricingOption, error) {
	optionID = strings.TrimSpace(optionID)
	if optionID == "" {
		return entities.PricingOption{}, ErrPricingOptionNotFound
	}
	services, err := u.ActiveServices(ctx)
	if err != nil {
		return entities.PricingOption{}, err
	}
	for _, s := range services {
		if opt, ok := s.OptionByID(optionID); ok {
			return opt, nil
		}
	}
	return entities.PricingOption{}, ErrPricingOptionNotFound
}

func (u *ContentUseCase) Sitemap(ctx context.Context) ([]SitemapEntry, error) {
	entries := []SitemapEntry{
		{Path: "/", ChangeFreq: "weekly", Priority: 1.0},
		{Path: "/services", ChangeFreq: "weekly", Priority: 0.9},
		{Path: "/portfolio", ChangeFreq: "weekly", Priority: 0.8},
		{Path: "/blog", ChangeFreq: "daily", Priority: 0.8},
		{Path: "/pricing", ChangeFreq: "monthly", Priority: 0.7},
		{Path: "/about", ChangeFreq: "monthly", Priority: 0.6},
		{Path: "/contact", ChangeFreq: "monthly", Priority: 0.6},
	}

	services, err := u.activeServices(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range services {
		entries = append(entries, SitemapEntry{Path: "/services/" + s.Slug, LastMod: s.UpdatedAt, ChangeFreq: "monthly", Priority: 0.8})
	}
	projects, err := u.sortedProjects(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if p.Status == entities.ProjectStatusCompleted {
			entries = append(entries, SitemapEntry{Path: "/portfolio/" + p.Slug, LastMod: p.UpdatedAt, ChangeFreq: "monthly", Priority: 0.6})
		}
	}
	posts, err := u.publishedPosts(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		entries = append(entries, SitemapEntry{Path: "/blog/" + p.Slug, LastMod: p.UpdatedAt, ChangeFreq: "weekly", Priority: 0.7})
	}
	return entries, nil
}

func (u *ContentUseCase) activeServices(ctx context.Context) ([]entities.Service, error) {
	services, err := u.repos.Services.List(ctx)
	if err != nil {
		return nil, err
	}
	services = filterBy(services, func(s entities.Service) bool { return s.IsActive })
	sort.SliceStable(services, func(i, j int) bool {
		if services[i].Order != services[j].Order {
			return services[i].Order < services[j].Order
		}
		return services[i].Title < services[j].Title
	})
	return services, nil
}

func (u *ContentUseCase) sortedProjects(ctx context.Context) ([]entities.Project, error) {
	projects, err := u.repos.Projects.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(projects, func(i, j int) bool {
		if projects[i].Order != projects[j].Order {
			return projects[i].Order < projects[j].Order
		}
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
	return projects, nil
}

// publishedPosts returns published posts, newest publication first.
func (u *ContentUseCase) publishedPosts(ctx context.Context) ([]entities.BlogPost, error) {
	posts, err := u.repos.BlogPosts.List(ctx)
	if err != nil {
		return nil, err
	}
	posts = filterBy(posts, func(p entities.BlogPost) bool { return p.Status == entities.PostStatusPublished })
	sort.SliceStable(posts, func(i, j int) bool { return publishedAt(posts[i]).After(publishedAt(posts[j])) })
	return posts, nil
}

func publishedAt(p entities.BlogPost) time.Time {
	if p.PublishedAt != nil {
		return *p.PublishedAt
	}
	return p.CreatedAt
}

func (u *ContentUseCase) activeTestimonials(ctx context.Context) ([]entities.Testimonial, error) {
	items, err := u.repos.Testimonials.List(ctx)
	if err != nil {
		return nil, err
	}
	items = filterBy(items, func(t entities.Testimonial) bool { return t.IsActive })
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Order != items[j].Order {
			return items[i].Order < items[j].Order
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (u *ContentUseCase) activeTeam(ctx context.Context) ([]entities.TeamMember, error) {
	items, err := u.repos.TeamMembers.List(ctx)
	if err != nil {
		return nil, err
	}
	items = filterBy(items, func(m entities.TeamMember) bool { return m.IsActive })
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Order != items[j].Order {
			return items[i].Order < items[j].Order
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (u *ContentUseCase) activeCategories(ctx context.Context) ([]entities.PortfolioCategory, error) {
	items, err := u.repos.PortfolioCategories.List(ctx)
	if err != nil {
		return nil, err
	}
	items = filterBy(items, func(c entities.PortfolioCategory) bool { return c.IsActive })
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Order != items[j].Order {
			return items[i].Order < items[j].Order
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (u *ContentUseCase) activePortfolios(ctx context.Context) ([]entities.Portfolio, error) {
	items, err := u.repos.Portfolios.List(ctx)
	if err != nil {
		return nil, err
	}
	items = filterBy(items, func(p entities.Portfolio) bool { return p.IsActive })
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Order != items[j].Order {
			return items[i].Order < items[j].Order
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

// cached reads key from c, falling back to load and storing its result. Cache errors
// only cost a reload.
func cached[T any](ctx context.Context, c interfaces.ICache, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	if c == nil {
		return load(ctx)
	}
	var v T
	hit, err := c.Get(ctx, key, &v)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("[content][cache] read failed")
	}
	if hit {
		return v, nil
	}
	v, err = load(ctx)
	if err != nil {
		return v, err
	}
	if err := c.Set(ctx, key, v, ttl); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("[content][cache] write failed")
	}
	return v, nil
}

func filterBy[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
