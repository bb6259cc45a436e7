package usecase

import (
	"context"
	"testing"
	"time"

	"socialdots/internal/domain/entities"
	mock_interfaces "socialdots/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type fixtureMocks struct {
	services   *mock_interfaces.MockIContentRepository[entities.Service]
	plans      *mock_interfaces.MockIContentRepository[entities.PricingPlan]
	projects   *mock_interfaces.MockIContentRepository[entities.Project]
	posts      *mock_interfaces.MockIContentRepository[entities.BlogPost]
	categories *mock_interfaces.MockIContentRepository[entities.PortfolioCategory]
	portfolios *mock_interfaces.MockIContentRepository[entities.Portfolio]
	reviews    *mock_interfaces.MockIContentRepository[entities.Testimonial]
	team       *mock_interfaces.MockIContentRepository[entities.TeamMember]
	site       *mock_interfaces.MockIContentRepository[entities.SiteConfiguration]
	cache      *mock_interfaces.MockICache
}

var fixtureNow = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

func newFixtureUseCase(ctrl *gomock.Controller) (*FixtureUseCase, fixtureMocks) {
	m := fixtureMocks{
		services:   mock_interfaces.NewMockIContentRepository[entities.Service](ctrl),
		plans:      mock_interfaces.NewMockIContentRepository[entities.PricingPlan](ctrl),
		projects:   mock_interfaces.NewMockIContentRepository[entities.Project](ctrl),
		posts:      mock_interfaces.NewMockIContentRepository[entities.BlogPost](ctrl),
		categories: mock_interfaces.NewMockIContentRepository[entities.PortfolioCategory](ctrl),
		portfolios: mock_interfaces.NewMockIContentRepository[entities.Portfolio](ctrl),
		reviews:    mock_interfaces.NewMockIContentRepository[entities.Testimonial](ctrl),
		team:       mock_interfaces.NewMockIContentRepository[entities.TeamMember](ctrl),
		site:       mock_interfaces.NewMockIContentRepository[entities.SiteConfiguration](ctrl),
		cache:      mock_interfaces.NewMockICache(ctrl),
	}
	uc := NewFixtureUseCase(ContentRepositories{
		Services:            m.services,
		PricingPlans:        m.plans,
		Projects:            m.projects,
		BlogPosts:           m.posts,
		PortfolioCategories: m.categories,
		Portfolios:          m.portfolios,
		Testimonials:        m.reviews,
		TeamMembers:         m.team,
		SiteConfiguration:   m.site,
	}, m.cache)
	uc.now = func() time.Time { return fixtureNow }
	return uc, m
}

// emptyStores makes every store except services and portfolio content report no records.
func (m fixtureMocks) emptyStores() {
	m.plans.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
	m.projects.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
	m.posts.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
	m.reviews.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
	m.team.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
}

func TestFixtureUseCase_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newFixtureUseCase(ctrl)
	m.emptyStores()

	m.services.EXPECT().List(gomock.Any()).Return([]entities.Service{{ID: "2", Slug: "web-design"}, {ID: "1", Slug: "ai-strategy"}}, nil)
	m.categories.EXPECT().List(gomock.Any()).Return(nil, nil)
	m.portfolios.EXPECT().List(gomock.Any()).Return(nil, nil)
	m.site.EXPECT().GetByID(gomock.Any(), entities.SiteConfigurationID).Return(entities.SiteConfiguration{}, nil)

	b, err := uc.Export(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b.Services) != 2 || b.Services[0].Slug != "ai-strategy" {
		t.Fatalf("expected services sorted by slug, got %+v", b.Services)
	}
	if b.SiteConfiguration != nil {
		t.Fatalf("expected no site configuration in bundle")
	}
	if !b.ExportedAt.Equal(fixtureNow) {
		t.Fatalf("unexpected export time %v", b.ExportedAt)
	}
}

func TestFixtureUseCase_Import(t *testing.T) {
	bundle := entities.FixtureBundle{
		Services: []entities.Service{
			{ID: "src-1", Title: "AI Strategy", Slug: "ai-strategy", Description: "d", Price: price(100)},
			{ID: "src-2", Title: "Web Design", Slug: "web-design", Description: "d", Price: price(200)},
		},
		PortfolioCategories: []entities.PortfolioCategory{{ID: "cat-src", Name: "Web", Slug: "web"}},
		Portfolios:          []entities.Portfolio{{ID: "pf-src", Title: "Shop", Slug: "shop", CategoryID: "cat-src"}},
	}
	storedService := entities.Service{ID: "dst-1", Title: "AI Strategy", Slug: "ai-strategy", Description: "old", Price: price(90)}
	storedCategory := entities.PortfolioCategory{ID: "cat-dst", Name: "Web", Slug: "web"}

	t.Run("existing records are skipped and categories remapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFixtureUseCase(ctrl)
		m.emptyStores()

		m.categories.EXPECT().List(gomock.Any()).Return([]entities.PortfolioCategory{storedCategory}, nil)
		m.services.EXPECT().List(gomock.Any()).Return([]entities.Service{storedService}, nil)
		m.services.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.Slug != "web-design" {
					t.Fatalf("only the new service should be written, got %q", s.Slug)
				}
				return s, nil
			},
		)
		m.portfolios.EXPECT().List(gomock.Any()).Return(nil, nil)
		m.portfolios.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Portfolio) (entities.Portfolio, error) {
				if p.CategoryID != "cat-dst" {
					t.Fatalf("expected category remapped to cat-dst, got %q", p.CategoryID)
				}
				return p, nil
			},
		)
		m.cache.EXPECT().Delete(gomock.Any(), CacheKeyServices).Return(nil)
		m.cache.EXPECT().Delete(gomock.Any(), CacheKeyPricingPlans).Return(nil)

		report, err := uc.Import(context.Background(), bundle, ImportOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := report.Counts["services"]; got.Created != 1 || got.Skipped != 1 || got.Updated != 0 {
			t.Fatalf("unexpected service counts: %+v", got)
		}
		if got := report.Counts["portfolio_categories"]; got.Skipped != 1 {
			t.Fatalf("unexpected category counts: %+v", got)
		}
	})

	t.Run("overwrite keeps the stored id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFixtureUseCase(ctrl)
		m.emptyStores()

		m.categories.EXPECT().List(gomock.Any()).Return(nil, nil)
		m.categories.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.PortfolioCategory) (entities.PortfolioCategory, error) { return c, nil },
		)
		m.services.EXPECT().List(gomock.Any()).Return([]entities.Service{storedService}, nil)
		var written []entities.Service
		m.services.EXPECT().Put(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				written = append(written, s)
				return s, nil
			},
		)
		m.portfolios.EXPECT().List(gomock.Any()).Return(nil, nil)
		m.portfolios.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Portfolio) (entities.Portfolio, error) { return p, nil },
		)
		m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(2).Return(nil)

		report, err := uc.Import(context.Background(), bundle, ImportOptions{Overwrite: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if written[0].ID != "dst-1" || written[0].Description != "d" {
			t.Fatalf("expected stored id with bundle content, got %+v", written[0])
		}
		if got := report.Counts["services"]; got.Created != 1 || got.Updated != 1 {
			t.Fatalf("unexpected service counts: %+v", got)
		}
	})

	t.Run("dry run writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFixtureUseCase(ctrl)
		m.emptyStores()

		m.categories.EXPECT().List(gomock.Any()).Return(nil, nil)
		m.services.EXPECT().List(gomock.Any()).Return(nil, nil)
		m.portfolios.EXPECT().List(gomock.Any()).Return(nil, nil)

		report, err := uc.Import(context.Background(), bundle, ImportOptions{DryRun: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !report.DryRun || report.Counts["services"].Created != 2 || report.Counts["portfolios"].Created != 1 {
			t.Fatalf("unexpected report: %+v", report)
		}
	})

	t.Run("invalid record stops the import", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFixtureUseCase(ctrl)

		m.categories.EXPECT().List(gomock.Any()).Return(nil, nil)
		m.services.EXPECT().List(gomock.Any()).Return(nil, nil)

		bad := entities.FixtureBundle{Services: []entities.Service{{Title: "No price", Description: "d"}}}
		if _, err := uc.Import(context.Background(), bad, ImportOptions{}); err == nil {
			t.Fatalf("expected error")
		}
	})
}
