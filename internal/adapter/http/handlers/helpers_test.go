package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"socialdots/internal/adapter/http/handlers/mocks"
	"socialdots/internal/adapter/http/templates"
	"socialdots/internal/domain/entities"
	"socialdots/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

// newPageRouter returns an engine that can render the site templates.
func newPageRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tmpl, err := templates.Parse()
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}
	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	return r
}

func expectSite(content *mocks.MockIContentUseCase) {
	content.EXPECT().SiteConfiguration(gomock.Any()).Return(entities.DefaultSiteConfiguration(), nil).AnyTimes()
}

func serve(r *gin.Engine, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	var header map[string]string
	if contentType != "" {
		header = map[string]string{"Content-Type": contentType}
	}
	return serveWithHeaders(r, method, target, body, header)
}

func serveWithHeaders(r *gin.Engine, method, target string, body io.Reader, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func serveJSON(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	return serve(r, method, target, strings.NewReader(body), "application/json")
}

func decodeHTTPError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var out pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return out
}
