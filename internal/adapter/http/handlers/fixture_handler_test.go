package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"socialdots/internal/adapter/http/handlers/mocks"
	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newFixtureRouter(t *testing.T) (*gin.Engine, *mocks.MockIFixtureUseCase) {
	gin.SetMode(gin.TestMode)
	uc := mocks.NewMockIFixtureUseCase(gomock.NewController(t))
	h := NewFixtureHandler(uc)
	r := gin.New()
	r.GET("/fixtures", h.Export)
	r.POST("/fixtures", h.Import)
	return r, uc
}

func TestFixtureHandler_Export(t *testing.T) {
	r, uc := newFixtureRouter(t)
	uc.EXPECT().Export(gomock.Any()).Return(entities.FixtureBundle{
		Services: []entities.Service{{ID: "svc-1", Slug: "seo", Title: "SEO"}},
	}, nil)

	w := serve(r, http.MethodGet, "/fixtures", nil, "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="fixtures.json"` {
		t.Fatalf("unexpected content disposition %q", cd)
	}
	var bundle entities.FixtureBundle
	_ = json.Unmarshal(w.Body.Bytes(), &bundle)
	if len(bundle.Services) != 1 || bundle.Services[0].Slug != "seo" {
		t.Fatalf("unexpected bundle %+v", bundle)
	}
}

func TestFixtureHandler_Import(t *testing.T) {
	t.Run("options from query", func(t *testing.T) {
		r, uc := newFixtureRouter(t)
		report := entities.FixtureReport{DryRun: true, Counts: map[string]entities.FixtureCounts{"services": {Created: 1}}}
		uc.EXPECT().Import(gomock.Any(), gomock.Any(), usecase.ImportOptions{Overwrite: true, DryRun: true}).Return(report, nil)

		w := serveJSON(r, http.MethodPost, "/fixtures?overwrite=true&dry_run=1", `{"services":[{"title":"SEO","slug":"seo"}]}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var got entities.FixtureReport
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if !got.DryRun || got.Counts["services"].Created != 1 {
			t.Fatalf("unexpected report %+v", got)
		}
	})

	t.Run("invalid bundle", func(t *testing.T) {
		r, _ := newFixtureRouter(t)

		w := serveJSON(r, http.MethodPost, "/fixtures", `{"services":"nope"}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		r, uc := newFixtureRouter(t)
		uc.EXPECT().Import(gomock.Any(), gomock.Any(), usecase.ImportOptions{}).Return(entities.FixtureReport{}, errors.New("throttled"))

		w := serveJSON(r, http.MethodPost, "/fixtures", `{}`)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
