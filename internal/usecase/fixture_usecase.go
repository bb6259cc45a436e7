package usecase

//go:generate mockgen -source=fixture_usecase.go -destination=../adapter/http/handlers/mocks/fixture_usecase_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sort"
	"time"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// ImportOptions controls how a bundle meets existing content. Records are matched on
// their natural key; a match is skipped unless Overwrite is set. DryRun counts without
// writing.
type ImportOptions struct {
	Overwrite bool
	DryRun    bool
}

// IFixtureUseCase moves the whole content catalog in and out as one JSON bundle.
type IFixtureUseCase interface {
	Export(ctx context.Context) (entities.FixtureBundle, error)
	Import(ctx context.Context, bundle entities.FixtureBundle, opts ImportOptions) (entities.FixtureReport, error)
}

type FixtureUseCase struct {
	repos ContentRepositories
	cache interfaces.ICache
	now   func() time.Time
}

var _ IFixtureUseCase = (*FixtureUseCase)(nil)

// NewFixtureUseCase builds the fixture tools. cache may be nil.
func NewFixtureUseCase(repos ContentRepositories, cache interfaces.ICache) *FixtureUseCase {
	return &FixtureUseCase{
		repos: repos,
		cache: cache,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// SyncFixtures copies the catalog of from into to.
func SyncFixtures(ctx context.Context, from, to IFixtureUseCase, opts ImportOptions) (entities.FixtureReport, error) {
	bundle, err := from.Export(ctx)
	if err != nil {
		return entities.FixtureReport{}, fmt.Errorf("export source: %w", err)
	}
	return to.Import(ctx, bundle, opts)
}

func (u *FixtureUseCase) Export(ctx context.Context) (entities.FixtureBundle, error) {
	var (
		b   = entities.FixtureBundle{ExportedAt: u.now()}
		err error
	)
	if b.Services, err = exportAll(ctx, u.repos.Services); err != nil {
		return b, err
	}
	if b.PricingPlans, err = exportAll(ctx, u.repos.PricingPlans); err != nil {
		return b, err
	}
	if b.Projects, err = exportAll(ctx, u.repos.Projects); err != nil {
		return b, err
	}
	if b.BlogPosts, err = exportAll(ctx, u.repos.BlogPosts); err != nil {
		return b, err
	}
	if b.PortfolioCategories, err = exportAll(ctx, u.repos.PortfolioCategories); err != nil {
		return b, err
	}
	if b.Portfolios, err = exportAll(ctx, u.repos.Portfolios); err != nil {
		return b, err
	}
	if b.Testimonials, err = exportAll(ctx, u.repos.Testimonials); err != nil {
		return b, err
	}
	if b.TeamMembers, err = exportAll(ctx, u.repos.TeamMembers); err != nil {
		return b, err
	}

	cfg, err := u.repos.SiteConfiguration.GetByID(ctx, entities.SiteConfigurationID)
	if err != nil {
		return b, err
	}
	if cfg.ID != "" {
		b.SiteConfiguration = &cfg
	}
	logrus.WithField("services", len(b.Services)).Info("[fixtures][usecase] exported")
	return b, nil
}

func exportAll[T entities.Record](ctx context.Context, repo interfaces.IContentRepository[T]) ([]T, error) {
	items, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].NaturalKey() < items[j].NaturalKey() })
	return items, nil
}

// Import writes the bundle. Portfolio categories go first so portfolio items can be
// pointed at the category ids of the target environment.
func (u *FixtureUseCase) Import(ctx context.Context, b entities.FixtureBundle, opts ImportOptions) (entities.FixtureReport, error) {
	report := entities.FixtureReport{DryRun: opts.DryRun, Counts: map[string]entities.FixtureCounts{}}
	now := u.now()

	counts, categoryIDs, err := importRecords(ctx, u.repos.PortfolioCategories, b.PortfolioCategories, PreparePortfolioCategory, opts, now)
	report.Counts["portfolio_categories"] = counts
	if err != nil {
		return report, err
	}

	portfolios := make([]entities.Portfolio, len(b.Portfolios))
	for i, p := range b.Portfolios {
		if id, ok := categoryIDs[p.CategoryID]; ok {
			p.CategoryID = id
		}
		portfolios[i] = p
	}

	steps := []func() error{
		importStep(ctx, &report, "services", u.repos.Services, b.Services, PrepareService, opts, now),
		importStep(ctx, &report, "pricing_plans", u.repos.PricingPlans, b.PricingPlans, PreparePricingPlan, opts, now),
		importStep(ctx, &report, "projects", u.repos.Projects, b.Projects, PrepareProject, opts, now),
		importStep(ctx, &report, "blog_posts", u.repos.BlogPosts, b.BlogPosts, PrepareBlogPost, opts, now),
		importStep(ctx, &report, "portfolios", u.repos.Portfolios, portfolios, PreparePortfolio, opts, now),
		importStep(ctx, &report, "testimonials", u.repos.Testimonials, b.Testimonials, PrepareTestimonial, opts, now),
		importStep(ctx, &report, "team_members", u.repos.TeamMembers, b.TeamMembers, PrepareTeamMember, opts, now),
	}
	if b.SiteConfiguration != nil {
		steps = append(steps, importStep(ctx, &report, "site_configuration", u.repos.SiteConfiguration,
			[]entities.SiteConfiguration{*b.SiteConfiguration}, PrepareSiteConfiguration, opts, now))
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return report, err
		}
	}

	if !opts.DryRun && u.cache != nil {
		for _, key := range []string{CacheKeyServices, CacheKeyPricingPlans} {
			if err := u.cache.Delete(ctx, key); err != nil {
				logrus.WithError(err).WithField("key", key).Warn("[fixtures][cache] invalidation failed")
			}
		}
	}
	logrus.WithFields(logrus.Fields{"dry_run": opts.DryRun, "counts": report.Counts}).Info("[fixtures][usecase] imported")
	return report, nil
}

func importStep[T entities.Record](
	ctx context.Context,
	report *entities.FixtureReport,
	name string,
	repo interfaces.IContentRepository[T],
	items []T,
	prepare PrepareFunc[T],
	opts ImportOptions,
	now time.Time,
) func() error {
	return func() error {
		counts, _, err := importRecords(ctx, repo, items, prepare, opts, now)
		report.Counts[name] = counts
		if err != nil {
			return fmt.Errorf("import %s: %w", name, err)
		}
		return nil
	}
}

// importRecords upserts items by natural key, falling back to the id. It returns a map
// from each bundle id to the id the record has in the target store.
func importRecords[T entities.Record](
	ctx context.Context,
	repo interfaces.IContentRepository[T],
	items []T,
	prepare PrepareFunc[T],
	opts ImportOptions,
	now time.Time,
) (entities.FixtureCounts, map[string]string, error) {
	var counts entities.FixtureCounts
	ids := map[string]string{}

	stored, err := repo.List(ctx)
	if err != nil {
		return counts, ids, err
	}
	byKey := make(map[string]T, len(stored))
	byID := make(map[string]T, len(stored))
	for _, s := range stored {
		byKey[s.NaturalKey()] = s
		byID[s.RecordID()] = s
	}

	for _, item := range items {
		existing, found := byKey[item.NaturalKey()]
		if !found && item.RecordID() != "" {
			existing, found = byID[item.RecordID()]
		}
		if found && !opts.Overwrite {
			counts.Skipped++
			ids[item.RecordID()] = existing.RecordID()
			continue
		}

		prepared, err := prepare(item, existing, now)
		if err != nil {
			return counts, ids, fmt.Errorf("%q: %w", item.NaturalKey(), err)
		}
		if !opts.DryRun {
			if _, err := repo.Put(ctx, prepared); err != nil {
				return counts, ids, err
			}
		}
		if found {
			counts.Updated++
		} else {
			counts.Created++
		}
		ids[item.RecordID()] = prepared.RecordID()
		byKey[prepared.NaturalKey()] = prepared
		byID[prepared.RecordID()] = prepared
	}
	return counts, ids, nil
}
