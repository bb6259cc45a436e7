package routes

import (
	"strings"

	"socialdots/internal/adapter/http/handlers"
	"socialdots/internal/adapter/http/middleware"
	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

// CatalogRoutes is the CRUD of one content type, mounted at Path under the admin group.
type CatalogRoutes struct {
	Path   string
	List   gin.HandlerFunc
	Get    gin.HandlerFunc
	Create gin.HandlerFunc
	Update gin.HandlerFunc
	Delete gin.HandlerFunc
}

func catalogRoutes[T entities.Record](path string, uc usecase.ICatalogUseCase[T]) CatalogRoutes {
	h := handlers.NewCatalogHandler(strings.TrimPrefix(path, "/"), uc)
	return CatalogRoutes{Path: path, List: h.List, Get: h.Get, Create: h.Create, Update: h.Update, Delete: h.Delete}
}

func addAdminRoutes(rg *gin.RouterGroup, h Handlers) {
	admin := rg.Group(PathAdmin, middleware.AdminKey())

	for _, cr := range h.Catalog {
		g := admin.Group(cr.Path)
		g.GET("", cr.List)
		g.POST("", cr.Create)
		g.GET("/:id", cr.Get)
		g.PUT("/:id", cr.Update)
		g.DELETE("/:id", cr.Delete)
	}

	leads := admin.Group("/leads")
	{
		leads.GET("", h.Leads.ListLeads)
		leads.GET("/:id", h.Leads.GetLead)
		leads.PATCH("/:id/status", h.Leads.UpdateLeadStatus)
	}

	orders := admin.Group("/orders")
	{
		orders.GET("", h.Orders.ListOrders)
		orders.GET("/:order_id", h.Orders.GetOrder)
		orders.PATCH("/:order_id/status", h.Orders.UpdateOrderStatus)
	}

	admin.GET("/agent-logs", h.Agent.ListLogs)

	fixtures := admin.Group("/fixtures")
	{
		fixtures.GET("", h.Fixtures.Export)
		fixtures.POST("", h.Fixtures.Import)
	}

	events := admin.Group("/calendar")
	{
		events.GET("/events", h.Calendar.ListEvents)
		events.GET("/upcoming", h.Calendar.ListUpcoming)
		events.PATCH("/events/:id", h.Calendar.UpdateEvent)
		events.DELETE("/events/:id", h.Calendar.DeleteEvent)
	}
}
