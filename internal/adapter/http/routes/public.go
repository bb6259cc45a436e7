package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathAPI      = "/api"
	PathWebhooks = "/webhooks"
)

func addPageRoutes(router *gin.Engine, h Handlers, rateLimit gin.HandlerFunc) {
	router.GET("/", h.Pages.Home)
	router.GET("/services", h.Pages.Services)
	router.GET("/services/:slug", h.Pages.ServiceDetail)
	router.GET("/portfolio", h.Pages.Portfolio)
	router.GET("/portfolio/:slug", h.Pages.ProjectDetail)
	router.GET("/blog", h.Pages.Blog)
	router.GET("/blog/:slug", h.Pages.BlogDetail)
	router.GET("/about", h.Pages.About)
	router.GET("/pricing", h.Pages.Pricing)
	router.GET("/cart", h.Pages.Cart)
	router.GET("/contact", h.Pages.Contact)
	router.POST("/contact", rateLimit, h.Pages.SubmitContact)
	router.GET("/sitemap.xml", h.Pages.Sitemap)

	router.POST("/checkout", rateLimit, h.Checkout.Checkout)
	router.GET("/payment/success", h.Payments.Success)
	router.GET("/payment/cancelled", h.Payments.Cancelled)

	router.GET("/book-appointment", h.Calendar.BookPage)
	router.POST("/book-appointment", rateLimit, h.Calendar.Book)
	router.GET("/calendar/auth", h.Calendar.Auth)
	router.GET("/calendar/callback", h.Calendar.Callback)
}

func addWebhookRoutes(router *gin.Engine, h Handlers) {
	webhooks := router.Group(PathWebhooks)
	{
		webhooks.POST("/mercadopago", h.Payments.Webhook)
		webhooks.POST("/ai-agent", h.Agent.Webhook)
	}
}

func addAPIRoutes(router *gin.Engine, h Handlers, rateLimit gin.HandlerFunc) {
	api := router.Group(PathAPI)
	{
		api.GET("/services", h.PublicAPI.ListServices)
		api.GET("/pricing", h.PublicAPI.ListPricing)
		api.GET("/pricing-options/:id", h.PublicAPI.GetPricingOption)
		api.POST("/lead", rateLimit, h.PublicAPI.CreateLead)
		api.GET("/calendar/slots", h.Calendar.Slots)
	}
}
