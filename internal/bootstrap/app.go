// Package bootstrap wires configuration, storage, integrations and use cases into one
// App shared by the HTTP server and the CLI commands.
package bootstrap

import (
	"context"
	"time"

	"socialdots/internal/adapter/persistence/repository"
	"socialdots/internal/domain/entities"
	"socialdots/internal/infrastructure/agent"
	"socialdots/internal/infrastructure/cache"
	"socialdots/internal/infrastructure/calendar"
	"socialdots/internal/infrastructure/chat"
	"socialdots/internal/infrastructure/config"
	"socialdots/internal/infrastructure/database"
	"socialdots/internal/infrastructure/erp"
	"socialdots/internal/infrastructure/payments"
	"socialdots/internal/infrastructure/queue"
	"socialdots/internal/usecase"
	"socialdots/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const inlineRetryInterval = 500 * time.Millisecond

// CatalogUseCases holds the admin CRUD of every content type.
type CatalogUseCases struct {
	Services            *usecase.CatalogUseCase[entities.Service]
	PricingPlans        *usecase.CatalogUseCase[entities.PricingPlan]
	Projects            *usecase.CatalogUseCase[entities.Project]
	BlogPosts           *usecase.CatalogUseCase[entities.BlogPost]
	PortfolioCategories *usecase.CatalogUseCase[entities.PortfolioCategory]
	Portfolios          *usecase.CatalogUseCase[entities.Portfolio]
	Testimonials        *usecase.CatalogUseCase[entities.Testimonial]
	TeamMembers         *usecase.CatalogUseCase[entities.TeamMember]
	SiteConfiguration   *usecase.CatalogUseCase[entities.SiteConfiguration]
}

type UseCases struct {
	Content  *usecase.ContentUseCase
	Leads    *usecase.LeadUseCase
	Checkout *usecase.CheckoutUseCase
	Payments *usecase.PaymentUseCase
	Orders   *usecase.OrderUseCase
	Agent    *usecase.AgentUseCase
	Calendar *usecase.CalendarUseCase
	Fixtures *usecase.FixtureUseCase
	Health   *usecase.HealthUseCase
	Catalog  CatalogUseCases
}

type App struct {
	Config   *config.Config
	DynamoDB *dynamodb.Client
	Tables   repository.TableNames
	Location *time.Location
	Runner   *usecase.SideEffectRunner
	UseCases UseCases

	closers []func() error
}

func TableNamesFrom(t config.TablesConfig) repository.TableNames {
	return repository.TableNames{
		Services:            t.Services,
		PricingPlans:        t.PricingPlans,
		Projects:            t.Projects,
		BlogPosts:           t.BlogPosts,
		PortfolioCategories: t.PortfolioCategories,
		Portfolios:          t.Portfolios,
		Testimonials:        t.Testimonials,
		TeamMembers:         t.TeamMembers,
		SiteConfiguration:   t.SiteConfiguration,
		Leads:               t.Leads,
		Orders:              t.Orders,
		CalendarEvents:      t.CalendarEvents,
		AgentLogs:           t.AgentLogs,
		Integrations:        t.Integrations,
	}
}

// NewContentRepositories binds every content table of one DynamoDB endpoint.
func NewContentRepositories(ddb repository.DynamoAPI, t repository.TableNames) usecase.ContentRepositories {
	return usecase.ContentRepositories{
		Services:            repository.NewContentDynamoRepository[entities.Service](ddb, t.Services, true),
		PricingPlans:        repository.NewContentDynamoRepository[entities.PricingPlan](ddb, t.PricingPlans, false),
		Projects:            repository.NewContentDynamoRepository[entities.Project](ddb, t.Projects, true),
		BlogPosts:           repository.NewContentDynamoRepository[entities.BlogPost](ddb, t.BlogPosts, true),
		PortfolioCategories: repository.NewContentDynamoRepository[entities.PortfolioCategory](ddb, t.PortfolioCategories, true),
		Portfolios:          repository.NewContentDynamoRepository[entities.Portfolio](ddb, t.Portfolios, true),
		Testimonials:        repository.NewContentDynamoRepository[entities.Testimonial](ddb, t.Testimonials, false),
		TeamMembers:         repository.NewContentDynamoRepository[entities.TeamMember](ddb, t.TeamMembers, false),
		SiteConfiguration:   repository.NewContentDynamoRepository[entities.SiteConfiguration](ddb, t.SiteConfiguration, false),
	}
}

// New builds the application. Integrations without credentials are still wired; they
// report ErrNotConfigured when used.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, errors.Wrap(err, "connect dynamodb")
	}
	app := &App{Config: cfg, DynamoDB: ddb, Tables: TableNamesFrom(cfg.DynamoDB.Tables)}

	content := NewContentRepositories(ddb, app.Tables)
	leadRepo := repository.NewLeadDynamoRepository(ddb, app.Tables.Leads)
	orderRepo := repository.NewOrderDynamoRepository(ddb, app.Tables.Orders)
	logRepo := repository.NewAgentLogDynamoRepository(ddb, app.Tables.AgentLogs)
	tokenRepo := repository.NewTokenDynamoRepository(ddb, app.Tables.Integrations)
	eventRepo := repository.NewContentDynamoRepository[entities.CalendarEvent](ddb, app.Tables.CalendarEvents, false)

	rdb, err := cache.NewRedisClient(cfg.Redis.URL)
	if err != nil {
		return nil, err
	}
	if rdb != nil {
		app.closers = append(app.closers, rdb.Close)
	}
	contentCache := cache.New(rdb, cfg.Redis.CacheTTL)

	gateway, err := payments.NewMercadoPagoGateway(cfg.Payment)
	if err != nil {
		return nil, err
	}
	erpClient := erp.NewFrappeClient(cfg.ERP)
	agentClient := agent.NewClient(cfg.Agent)
	notifier := chat.NewSlackNotifier(cfg.Chat)
	provider, err := calendar.NewGoogleProvider(cfg.Calendar)
	if err != nil {
		return nil, err
	}
	app.Location = provider.Location()

	fulfillment := usecase.NewFulfillmentUseCase(orderRepo, erpClient)
	app.Runner = usecase.NewSideEffectRunner(orderRepo, leadRepo, fulfillment, agentClient, notifier, logRepo)
	dispatcher, err := app.newDispatcher(rdb)
	if err != nil {
		return nil, err
	}

	uc := &app.UseCases
	uc.Content = usecase.NewContentUseCase(content, contentCache, cfg.Redis.CacheTTL)
	uc.Leads = usecase.NewLeadUseCase(leadRepo, content.Services, dispatcher)
	uc.Checkout = usecase.NewCheckoutUseCase(content.Services, content.PricingPlans, orderRepo, gateway, dispatcher, usecase.CheckoutSettings{
		Currency: cfg.Payment.Currency,
		BaseURL:  cfg.Server.BaseURL,
	})
	uc.Payments = usecase.NewPaymentUseCase(orderRepo, gateway, payments.NewSignatureVerifier(cfg.Payment.WebhookSecret), dispatcher)
	uc.Orders = usecase.NewOrderUseCase(orderRepo)
	uc.Agent = usecase.NewAgentUseCase(agentClient, logRepo, uc.Leads)
	uc.Calendar = usecase.NewCalendarUseCase(provider, tokenRepo, eventRepo, app.Location)
	uc.Fixtures = usecase.NewFixtureUseCase(content, contentCache)
	uc.Health = usecase.NewHealthUseCase(repository.NewDynamoProbe(ddb, app.Tables.Orders), erpClient, agentClient)
	uc.Catalog = newCatalog(content, contentCache)
	return app, nil
}

// newDispatcher picks the asynq queue when Redis is configured and runs side effects
// in-request otherwise.
func (a *App) newDispatcher(rdb *redis.Client) (interfaces.ISideEffectDispatcher, error) {
	if rdb == nil {
		logrus.Info("[bootstrap] REDIS_URL not set, side effects run inline")
		return queue.NewInlineDispatcher(a.Runner, queue.DefaultInlineAttempts, inlineRetryInterval), nil
	}
	opt, err := queue.ParseRedisURL(a.Config.Redis.URL)
	if err != nil {
		return nil, err
	}
	d := queue.NewAsynqDispatcher(opt, a.Config.Redis.MaxRetry)
	a.closers = append(a.closers, d.Close)
	logrus.Info("[bootstrap] side effects are queued on redis")
	return d, nil
}

func newCatalog(repos usecase.ContentRepositories, c interfaces.ICache) CatalogUseCases {
	return CatalogUseCases{
		Services: usecase.NewCatalogUseCase("service", repos.Services, usecase.PrepareService,
			usecase.WithUniqueSlug[entities.Service](),
			usecase.WithCacheInvalidation[entities.Service](c, usecase.CacheKeyServices)),
		PricingPlans: usecase.NewCatalogUseCase("pricing_plan", repos.PricingPlans, usecase.PreparePricingPlan,
			usecase.WithCacheInvalidation[entities.PricingPlan](c, usecase.CacheKeyPricingPlans)),
		Projects: usecase.NewCatalogUseCase("project", repos.Projects, usecase.PrepareProject,
			usecase.WithUniqueSlug[entities.Project]()),
		BlogPosts: usecase.NewCatalogUseCase("blog_post", repos.BlogPosts, usecase.PrepareBlogPost,
			usecase.WithUniqueSlug[entities.BlogPost]()),
		PortfolioCategories: usecase.NewCatalogUseCase("portfolio_category", repos.PortfolioCategories, usecase.PreparePortfolioCategory,
			usecase.WithUniqueSlug[entities.PortfolioCategory]()),
		Portfolios: usecase.NewCatalogUseCase("portfolio", repos.Portfolios, usecase.PreparePortfolio,
			usecase.WithUniqueSlug[entities.Portfolio]()),
		Testimonials:      usecase.NewCatalogUseCase("testimonial", repos.Testimonials, usecase.PrepareTestimonial),
		TeamMembers:       usecase.NewCatalogUseCase("team_member", repos.TeamMembers, usecase.PrepareTeamMember),
		SiteConfiguration: usecase.NewCatalogUseCase("site_configuration", repos.SiteConfiguration, usecase.PrepareSiteConfiguration),
	}
}

// Close releases the Redis connections. Errors are logged.
func (a *App) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			logrus.WithError(err).Warn("[bootstrap] close failed")
		}
	}
}
