package bootstrap

import (
	"testing"

	"socialdots/internal/adapter/persistence/repository"
	"socialdots/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
)

func TestTableNamesFrom(t *testing.T) {
	names := TableNamesFrom(config.TablesConfig{
		Services:          "prod_services",
		Leads:             "prod_leads",
		Orders:            "prod_orders",
		SiteConfiguration: "prod_site",
	})

	assert.Equal(t, "prod_services", names.Services)
	assert.Equal(t, "prod_leads", names.Leads)
	assert.Equal(t, "prod_orders", names.Orders)
	assert.Equal(t, "prod_site", names.SiteConfiguration)
	assert.Empty(t, names.Projects)
}

func TestTableNamesFrom_CoversEverySchema(t *testing.T) {
	cfg := config.TablesConfig{
		Services: "a", PricingPlans: "b", Projects: "c", BlogPosts: "d",
		PortfolioCategories: "e", Portfolios: "f", Testimonials: "g", TeamMembers: "h",
		SiteConfiguration: "i", Leads: "j", Orders: "k", CalendarEvents: "l",
		AgentLogs: "m", Integrations: "n",
	}

	seen := map[string]bool{}
	for _, spec := range repository.Schemas(TableNamesFrom(cfg)) {
		assert.NotEmpty(t, spec.Name)
		assert.False(t, seen[spec.Name], "duplicate table %s", spec.Name)
		seen[spec.Name] = true
	}
}
