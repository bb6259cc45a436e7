package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"socialdots/internal/adapter/http/dto/response"
	"socialdots/internal/adapter/http/handlers/mocks"
	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPublicAPIRouter(t *testing.T) (*gin.Engine, *mocks.MockIContentUseCase, *mocks.MockILeadUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	content := mocks.NewMockIContentUseCase(ctrl)
	leads := mocks.NewMockILeadUseCase(ctrl)
	h := NewPublicAPIHandler(content, leads)

	r := gin.New()
	r.GET("/api/services", h.ListServices)
	r.GET("/api/pricing", h.ListPricing)
	r.GET("/api/pricing-options/:id", h.GetPricingOption)
	r.POST("/api/lead", h.CreateLead)
	return r, content, leads
}

func TestPublicAPIHandler_ListServices(t *testing.T) {
	r, content, _ := newPublicAPIRouter(t)
	price := 99.0
	content.EXPECT().ActiveServices(gomock.Any()).Return([]entities.Service{
		{ID: "svc-1", Title: "SEO", Slug: "seo", Price: &price, PriceType: entities.PriceTypeMonthly},
		{ID: "svc-2", Title: "Custom App", Slug: "custom-app", PriceType: entities.PriceTypeCustom},
	}, nil)

	w := serve(r, http.MethodGet, "/api/services", nil, "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body response.ServicesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Services) != 2 || body.Services[0].Price == nil || *body.Services[0].Price != 99 {
		t.Fatalf("unexpected services %+v", body.Services)
	}
	if body.Services[1].Price != nil || body.Services[1].Features == nil {
		t.Fatalf("custom service should have null price and empty features, got %+v", body.Services[1])
	}
}

func TestPublicAPIHandler_ListPricing_Error(t *testing.T) {
	r, content, _ := newPublicAPIRouter(t)
	content.EXPECT().PricingPlans(gomock.Any()).Return(nil, errors.New("scan failed"))

	w := serve(r, http.MethodGet, "/api/pricing", nil, "")

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if got := decodeHTTPError(t, w).Code; got != "INTERNAL_ERROR" {
		t.Fatalf("unexpected code %s", got)
	}
}

func TestPublicAPIHandler_GetPricingOption(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		r, content, _ := newPublicAPIRouter(t)
		content.EXPECT().PricingOption(gomock.Any(), "opt-1").Return(entities.PricingOption{
			ID: "opt-1", Name: "Basic", Price: 500, Period: entities.PricingPeriodOneTime,
		}, nil)

		w := serve(r, http.MethodGet, "/api/pricing-options/opt-1", nil, "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.PricingOptionResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Name != "Basic" || body.Price != 500 || body.Period != "one_time" {
			t.Fatalf("unexpected option %+v", body)
		}
	})

	t.Run("missing", func(t *testing.T) {
		r, content, _ := newPublicAPIRouter(t)
		content.EXPECT().PricingOption(gomock.Any(), "nope").Return(entities.PricingOption{}, usecase.ErrPricingOptionNotFound)

		w := serve(r, http.MethodGet, "/api/pricing-options/nope", nil, "")

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestPublicAPIHandler_CreateLead(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _, _ := newPublicAPIRouter(t)

		w := serveJSON(r, http.MethodPost, "/api/lead", "{")

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing email", func(t *testing.T) {
		r, _, _ := newPublicAPIRouter(t)

		w := serveJSON(r, http.MethodPost, "/api/lead", `{"name":"Ana"}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := decodeHTTPError(t, w).Code; got != "VALIDATION_ERROR" {
			t.Fatalf("unexpected code %s", got)
		}
	})

	t.Run("created", func(t *testing.T) {
		r, _, leads := newPublicAPIRouter(t)
		name, email, company := gofakeit.Name(), gofakeit.Email(), gofakeit.Company()

		leads.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.LeadInput) (entities.Lead, error) {
			if in.Source != entities.LeadSourceAPI || in.Company != company || in.ServiceInterestID != "svc-1" {
				t.Fatalf("unexpected input %+v", in)
			}
			return entities.Lead{ID: "lead-42", Name: in.Name, Email: in.Email}, nil
		})

		payload, _ := json.Marshal(map[string]string{"name": name, "email": email, "company": company, "service_id": "svc-1"})
		w := serveJSON(r, http.MethodPost, "/api/lead", string(payload))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body response.LeadCreatedResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Status != "success" || body.LeadID != "lead-42" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("source from payload wins", func(t *testing.T) {
		r, _, leads := newPublicAPIRouter(t)
		leads.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in usecase.LeadInput) (entities.Lead, error) {
			if in.Source != "partner_site" {
				t.Fatalf("expected partner_site source, got %q", in.Source)
			}
			return entities.Lead{ID: "lead-43"}, nil
		})

		w := serveJSON(r, http.MethodPost, "/api/lead", `{"name":"Ana","email":"ana@example.com","source":"partner_site"}`)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}
