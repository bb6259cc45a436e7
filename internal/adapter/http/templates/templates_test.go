package templates

import (
	"bytes"
	"testing"
	"time"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_DefinesEveryPage(t *testing.T) {
	tmpl, err := Parse()
	require.NoError(t, err)

	pages := []string{
		"home.html", "services.html", "service_detail.html", "portfolio.html", "project_detail.html",
		"blog.html", "blog_detail.html", "about.html", "contact.html", "pricing.html", "cart.html",
		"payment_success.html", "payment_cancelled.html", "book_appointment.html", "error.html",
		"header", "footer", "service-card", "project-card", "post-card",
	}
	for _, name := range pages {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestErrorPage_EscapesMessage(t *testing.T) {
	tmpl, err := Parse()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "error.html", map[string]any{
		"Site":    map[string]string{"SiteName": "Social Dots Inc."},
		"Title":   "Oops",
		"Message": "<script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "&lt;script&gt;")
	assert.Contains(t, buf.String(), "<title>Oops | Social Dots Inc.</title>")
}

func TestServicesPage_AddToCartFillsStoredCart(t *testing.T) {
	tmpl, err := Parse()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "services.html", map[string]any{
		"Site":  entities.DefaultSiteConfiguration(),
		"Title": "Services",
		"Page": []usecase.ServiceListing{{
			Service: entities.Service{ID: "web", Slug: "web-design", Title: "Web Design"},
			Options: []entities.PricingOption{{ID: "web-standard", Name: "Standard", Price: 1500}},
		}},
	})
	require.NoError(t, err)

	body := buf.String()
	assert.Contains(t, body, `class="add-to-cart" data-service-id="web" data-option-id="web-standard"`)
	assert.Contains(t, body, `e.target.closest(".add-to-cart")`)
	for _, key := range []string{"service_id: d.serviceId", "pricing_option_id: d.optionId", "pricing_plan_id: d.planId", "quantity: 1"} {
		assert.Contains(t, body, key)
	}
	assert.Contains(t, body, `localStorage.setItem("cart", JSON.stringify(cart))`)
}

func TestFuncs(t *testing.T) {
	f := Funcs()

	price := f["price"].(func(*float64) string)
	v := 49.5
	assert.Equal(t, "Custom quote", price(nil))
	assert.Equal(t, "$49.50", price(&v))

	assert.Equal(t, "$1200.00", f["money"].(func(float64) string)(1200))

	truncate := f["truncate"].(func(int, string) string)
	assert.Equal(t, "short", truncate(10, "  short "))
	assert.Equal(t, "abc…", truncate(3, "abcdef"))

	assert.Equal(t, []string{"one", "two"}, paragraphs("one\r\n\r\n\n\ntwo\n\n"))

	day := time.Date(2024, 2, 9, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "February 9, 2024", formatDate(day))
	assert.Equal(t, "February 9, 2024", formatDate(&day))
	assert.Equal(t, "", formatDate((*time.Time)(nil)))
	assert.Equal(t, "", formatDate(time.Time{}))
}
