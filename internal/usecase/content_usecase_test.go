package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"socialdots/internal/domain/entities"
	mock_interfaces "socialdots/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type contentMocks struct {
	services     *mock_interfaces.MockIContentRepository[entities.Service]
	plans        *mock_interfaces.MockIContentRepository[entities.PricingPlan]
	projects     *mock_interfaces.MockIContentRepository[entities.Project]
	posts        *mock_interfaces.MockIContentRepository[entities.BlogPost]
	categories   *mock_interfaces.MockIContentRepository[entities.PortfolioCategory]
	portfolios   *mock_interfaces.MockIContentRepository[entities.Portfolio]
	testimonials *mock_interfaces.MockIContentRepository[entities.Testimonial]
	team         *mock_interfaces.MockIContentRepository[entities.TeamMember]
	site         *mock_interfaces.MockIContentRepository[entities.SiteConfiguration]
}

func newContentMocks(ctrl *gomock.Controller) (contentMocks, ContentRepositories) {
	m := contentMocks{
		services:     mock_interfaces.NewMockIContentRepository[entities.Service](ctrl),
		plans:        mock_interfaces.NewMockIContentRepository[entities.PricingPlan](ctrl),
		projects:     mock_interfaces.NewMockIContentRepository[entities.Project](ctrl),
		posts:        mock_interfaces.NewMockIContentRepository[entities.BlogPost](ctrl),
		categories:   mock_interfaces.NewMockIContentRepository[entities.PortfolioCategory](ctrl),
		portfolios:   mock_interfaces.NewMockIContentRepository[entities.Portfolio](ctrl),
		testimonials: mock_interfaces.NewMockIContentRepository[entities.Testimonial](ctrl),
		team:         mock_interfaces.NewMockIContentRepository[entities.TeamMember](ctrl),
		site:         mock_interfaces.NewMockIContentRepository[entities.SiteConfiguration](ctrl),
	}
	return m, ContentRepositories{
		Services:            m.services,
		PricingPlans:        m.plans,
		Projects:            m.projects,
		BlogPosts:           m.posts,
		PortfolioCategories: m.categories,
		Portfolios:          m.portfolios,
		Testimonials:        m.testimonials,
		TeamMembers:         m.team,
		SiteConfiguration:   m.site,
	}
}

func (m contentMocks) homeFixtures() {
	m.services.EXPECT().List(gomock.Any()).Return([]entities.Service{
		{ID: "s1", Title: "AI Automation", IsActive: true, IsFeatured: true, Order: 2},
		{ID: "s2", Title: "Web Design", IsActive: true, IsFeatured: true, Order: 1},
		{ID: "s3", Title: "Hidden", IsActive: false, IsFeatured: true},
	}, nil).AnyTimes()
	m.projects.EXPECT().List(gomock.Any()).Return([]entities.Project{{ID: "p1", IsFeatured: true}}, nil).AnyTimes()
	m.testimonials.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
	m.team.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
	m.posts.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
	m.categories.EXPECT().List(gomock.Any()).Return([]entities.PortfolioCategory{
		{ID: "c2", Slug: "social", IsActive: true, Order: 2},
		{ID: "c1", Slug: "branding", IsActive: true, Order: 1},
	}, nil).AnyTimes()
	m.portfolios.EXPECT().List(gomock.Any()).Return([]entities.Portfolio{
		{ID: "f1", CategoryID: "c1", ContentType: entities.ContentTypeVideo, IsActive: true, IsFeatured: true},
		{ID: "f2", CategoryID: "c2", ContentType: entities.ContentTypePost, IsActive: true},
		{ID: "f3", CategoryID: "c2", ContentType: entities.ContentTypeVideo, IsActive: false},
	}, nil).AnyTimes()
}

func portfolioIDs(items []entities.Portfolio) []string {
	ids := make([]string, 0, len(items))
	for _, p := range items {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestContentUseCase_Home(t *testing.T) {
	cases := []struct {
		name     string
		filter   string
		want     []string
		category string
	}{
		{name: "featured by default", filter: "", want: []string{"f1"}},
		{name: "content type alias", filter: "posts", want: []string{"f2"}},
		{name: "category slug", filter: "social", want: []string{"f2"}, category: "c2"},
		{name: "unknown slug falls back to first category", filter: "nope", want: []string{"f1"}, category: "c1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m, repos := newContentMocks(ctrl)
			m.homeFixtures()
			uc := NewContentUseCase(repos, nil, 0)

			page, err := uc.Home(context.Background(), tc.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := portfolioIDs(page.Portfolios); fmt.Sprint(got) != fmt.Sprint(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			if tc.category != "" && (page.SelectedCategory == nil || page.SelectedCategory.ID != tc.category) {
				t.Fatalf("expected category %s, got %+v", tc.category, page.SelectedCategory)
			}
			if len(page.FeaturedServices) != 2 || page.FeaturedServices[0].ID != "s2" {
				t.Fatalf("expected active featured services in order, got %+v", page.FeaturedServices)
			}
		})
	}
}

func TestContentUseCase_ServiceDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m, repos := newContentMocks(ctrl)
	uc := NewContentUseCase(repos, nil, 0)

	m.services.EXPECT().GetBySlug(gomock.Any(), "gone").Return(entities.Service{}, nil)
	if _, err := uc.ServiceDetail(context.Background(), "gone"); !errors.Is(err, ErrContentNotFound) {
		t.Fatalf("expected ErrContentNotFound, got %v", err)
	}

	tiered := entities.Service{ID: "s1", Slug: "seo", Title: "SEO", IsActive: true, PriceType: entities.PriceTypeTiered}
	m.services.EXPECT().GetBySlug(gomock.Any(), "seo").Return(tiered, nil)
	m.services.EXPECT().List(gomock.Any()).Return([]entities.Service{tiered, {ID: "s2", IsActive: true}}, nil)

	page, err := uc.ServiceDetail(context.Background(), "seo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.PricingOptions) != 3 || page.PricingOptions[0].Price != entities.DefaultBasePrice {
		t.Fatalf("expected fallback tiers, got %+v", page.PricingOptions)
	}
	if len(page.Related) != 1 || page.Related[0].ID != "s2" {
		t.Fatalf("unexpected related: %+v", page.Related)
	}
}

func TestContentUseCase_Blog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m, repos := newContentMocks(ctrl)
	uc := NewContentUseCase(repos, nil, 0)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var posts []entities.BlogPost
	for i := 0; i < 15; i++ {
		published := base.Add(time.Duration(i) * time.Hour)
		posts = append(posts, entities.BlogPost{
			ID: fmt.Sprintf("p%d", i), Title: fmt.Sprintf("Post %d", i), Status: entities.PostStatusPublished,
			Tags: []string{"marketing"}, PublishedAt: &published,
		})
	}
	posts = append(posts, entities.BlogPost{ID: "draft", Title: "Go tips", Status: entities.PostStatusDraft, Tags: []string{"go"}})
	m.posts.EXPECT().List(gomock.Any()).Return(posts, nil).AnyTimes()

	page, err := uc.Blog(context.Background(), "", "", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Posts.Total != 15 || page.Posts.TotalPages != 2 || len(page.Posts.Items) != 5 {
		t.Fatalf("unexpected page: total=%d pages=%d items=%d", page.Posts.Total, page.Posts.TotalPages, len(page.Posts.Items))
	}
	if page.Posts.HasNext() || !page.Posts.HasPrevious() {
		t.Fatalf("expected last page")
	}

	first, _ := uc.Blog(context.Background(), "", "", 1)
	if first.Posts.Items[0].ID != "p14" {
		t.Fatalf("expected newest first, got %s", first.Posts.Items[0].ID)
	}

	clamped, _ := uc.Blog(context.Background(), "", "", 99)
	if clamped.Posts.Number != 2 {
		t.Fatalf("expected out of range page to clamp to 2, got %d", clamped.Posts.Number)
	}

	search, _ := uc.Blog(context.Background(), "post 1", "", 1)
	if search.Posts.Total != 6 {
		t.Fatalf("expected 6 matches for 'post 1', got %d", search.Posts.Total)
	}

	if len(page.Tags) != 1 || page.Tags[0] != "marketing" {
		t.Fatalf("drafts must not contribute tags, got %v", page.Tags)
	}
}

func TestContentUseCase_BlogDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m, repos := newContentMocks(ctrl)
	uc := NewContentUseCase(repos, nil, 0)

	m.posts.EXPECT().GetBySlug(gomock.Any(), "draft").Return(entities.BlogPost{ID: "d", Status: entities.PostStatusDraft}, nil)
	if _, err := uc.BlogDetail(context.Background(), "draft"); !errors.Is(err, ErrContentNotFound) {
		t.Fatalf("expected ErrContentNotFound, got %v", err)
	}
}

func TestContentUseCase_ActiveServicesCache(t *testing.T) {
	t.Run("hit skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		_, repos := newContentMocks(ctrl)
		cache := mock_interfaces.NewMockICache(ctrl)
		uc := NewContentUseCase(repos, cache, time.Minute)

		cache.EXPECT().Get(gomock.Any(), CacheKeyServices, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, dst any) (bool, error) {
				*(dst.(*[]entities.Service)) = []entities.Service{{ID: "cached"}}
				return true, nil
			},
		)

		services, err := uc.ActiveServices(context.Background())
		if err != nil || len(services) != 1 || services[0].ID != "cached" {
			t.Fatalf("expected cached services, got %+v (%v)", services, err)
		}
	})

	t.Run("miss loads and stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m, repos := newContentMocks(ctrl)
		cache := mock_interfaces.NewMockICache(ctrl)
		uc := NewContentUseCase(repos, cache, time.Minute)

		cache.EXPECT().Get(gomock.Any(), CacheKeyServices, gomock.Any()).Return(false, errors.New("redis down"))
		m.services.EXPECT().List(gomock.Any()).Return([]entities.Service{{ID: "s1", IsActive: true}, {ID: "s2"}}, nil)
		cache.EXPECT().Set(gomock.Any(), CacheKeyServices, gomock.Any(), time.Minute).Return(nil)

		services, err := uc.ActiveServices(context.Background())
		if err != nil || len(services) != 1 {
			t.Fatalf("expected 1 active service, got %+v (%v)", services, err)
		}
	})
}

func TestContentUseCase_PricingOption(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m, repos := newContentMocks(ctrl)
	uc := NewContentUseCase(repos, nil, 0)

	m.services.EXPECT().List(gomock.Any()).Return([]entities.Service{{
		ID: "s1", IsActive: true,
		PricingOptions: []entities.PricingOption{{ID: "opt-1", Name: "Starter", Price: 99}},
	}}, nil).Times(2)

	opt, err := uc.PricingOption(context.Background(), "opt-1")
	if err != nil || opt.Name != "Starter" {
		t.Fatalf("expected Starter, got %+v (%v)", opt, err)
	}
	if _, err := uc.PricingOption(context.Background(), "missing"); !errors.Is(err, ErrPricingOptionNotFound) {
		t.Fatalf("expected ErrPricingOptionNotFound, got %v", err)
	}
}

func TestContentUseCase_SiteConfigurationDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m, repos := newContentMocks(ctrl)
	uc := NewContentUseCase(repos, nil, 0)

	m.site.EXPECT().GetByID(gomock.Any(), entities.SiteConfigurationID).Return(entities.SiteConfiguration{}, nil)

	cfg, err := uc.SiteConfiguration(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SiteName != entities.DefaultSiteConfiguration().SiteName {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestContentUseCase_Sitemap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m, repos := newContentMocks(ctrl)
	uc := NewContentUseCase(repos, nil, 0)

	m.services.EXPECT().List(gomock.Any()).Return([]entities.Service{{ID: "s1", Slug: "seo", IsActive: true}}, nil)
	m.projects.EXPECT().List(gomock.Any()).Return([]entities.Project{
		{ID: "p1", Slug: "done", Status: entities.ProjectStatusCompleted},
		{ID: "p2", Slug: "wip", Status: entities.ProjectStatusInProgress},
	}, nil)
	m.posts.EXPECT().List(gomock.Any()).Return([]entities.BlogPost{{ID: "b1", Slug: "hello", Status: entities.PostStatusPublished}}, nil)

	entries, err := uc.Sitemap(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	paths := map[string]bool{}
	for _, e := range entries {
		paths[e.Path] = true
	}
	for _, want := range []string{"/", "/services/seo", "/portfolio/done", "/blog/hello"} {
		if !paths[want] {
			t.Fatalf("missing %s in %v", want, paths)
		}
	}
	if paths["/portfolio/wip"] {
		t.Fatalf("unfinished projects must not be listed")
	}
}
