package routes

import (
	"net/http"

	_ "socialdots/docs" // swagger docs
	"socialdots/internal/adapter/http/handlers"
	"socialdots/internal/adapter/http/middleware"
	"socialdots/internal/adapter/http/templates"
	"socialdots/internal/bootstrap"
	"socialdots/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers is every HTTP handler the router mounts.
type Handlers struct {
	Pages     *handlers.PageHandler
	PublicAPI *handlers.PublicAPIHandler
	Checkout  *handlers.CheckoutHandler
	Payments  *handlers.PaymentHandler
	Agent     *handlers.AgentHandler
	Calendar  *handlers.CalendarHandler
	Leads     *handlers.LeadHandler
	Orders    *handlers.OrderHandler
	Fixtures  *handlers.FixtureHandler
	Health    *handlers.HealthHandler
	Catalog   []CatalogRoutes
}

// NewHandlers builds the handlers over the application use cases.
func NewHandlers(app *bootstrap.App) Handlers {
	uc := app.UseCases
	cat := uc.Catalog
	return Handlers{
		Pages:     handlers.NewPageHandler(uc.Content, uc.Leads, app.Config.Server.BaseURL),
		PublicAPI: handlers.NewPublicAPIHandler(uc.Content, uc.Leads),
		Checkout:  handlers.NewCheckoutHandler(uc.Checkout),
		Payments:  handlers.NewPaymentHandler(uc.Payments, uc.Content),
		Agent:     handlers.NewAgentHandler(uc.Agent),
		Calendar:  handlers.NewCalendarHandler(uc.Calendar, uc.Content, app.Location, app.Config.IsProduction()),
		Leads:     handlers.NewLeadHandler(uc.Leads),
		Orders:    handlers.NewOrderHandler(uc.Orders),
		Fixtures:  handlers.NewFixtureHandler(uc.Fixtures),
		Health:    handlers.NewHealthHandler(uc.Health),
		Catalog: []CatalogRoutes{
			catalogRoutes[entities.Service]("/services", cat.Services),
			catalogRoutes[entities.PricingPlan]("/pricing-plans", cat.PricingPlans),
			catalogRoutes[entities.Project]("/projects", cat.Projects),
			catalogRoutes[entities.BlogPost]("/blog-posts", cat.BlogPosts),
			catalogRoutes[entities.PortfolioCategory]("/portfolio-categories", cat.PortfolioCategories),
			catalogRoutes[entities.Portfolio]("/portfolios", cat.Portfolios),
			catalogRoutes[entities.Testimonial]("/testimonials", cat.Testimonials),
			catalogRoutes[entities.TeamMember]("/team-members", cat.TeamMembers),
			catalogRoutes[entities.SiteConfiguration]("/site-configuration", cat.SiteConfiguration),
		},
	}
}

// NewRouter mounts the public site, the webhooks, the JSON API and the admin API.
func NewRouter(h Handlers, rateLimit gin.HandlerFunc) (*gin.Engine, error) {
	tmpl, err := templates.Parse()
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logrus.WithField("panic", recovered).Error("[http] recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.SecurityHeaders())
	router.SetHTMLTemplate(tmpl)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.Health.Health)

	addPageRoutes(router, h, rateLimit)
	addWebhookRoutes(router, h)
	addAPIRoutes(router, h, rateLimit)

	v1 := router.Group("/v1")
	addAdminRoutes(v1, h)

	router.NoRoute(h.Pages.NotFound)
	return router, nil
}

// Run serves until the listener fails.
func Run(app *bootstrap.App) error {
	router, err := NewRouter(NewHandlers(app), middleware.RateLimit(app.Config.RateLimit))
	if err != nil {
		return err
	}
	addr := ":" + app.Config.Server.Port
	logrus.WithField("addr", addr).Info("[http] listening")
	return router.Run(addr)
}
