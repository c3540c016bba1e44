package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nightcap/backend/internal/catalog"
	"github.com/nightcap/backend/internal/middleware"
	"github.com/nightcap/backend/internal/mocks"
	"github.com/nightcap/backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, metrics bool) (*gin.Engine, *mocks.MockLLMService) {
	t.Helper()
	recipes, err := catalog.Default()
	require.NoError(t, err)

	llm := new(mocks.MockLLMService)
	router := SetupRouter(Options{
		Logger:         zap.NewNop(),
		AllowedOrigins: []string{"*"},
		MetricsEnabled: metrics,
	}, service.NewRecipeService(recipes), llm)
	return router, llm
}

func TestRoutes(t *testing.T) {
	router, _ := newTestRouter(t, false)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"health", http.MethodGet, "/health", http.StatusOK, `{"status":"ok","cocktails":11}`},
		{"list", http.MethodGet, "/api/cocktails", http.StatusOK, ""},
		{"get", http.MethodGet, "/api/cocktails/negroni", http.StatusOK, ""},
		{"unknown slug", http.MethodGet, "/api/cocktails/mojito", http.StatusNotFound, `{"detail":"Cocktail not found"}`},
		{"unknown route", http.MethodGet, "/nope", http.StatusNotFound, `{"detail":"Not Found"}`},
		{"wrong method", http.MethodDelete, "/api/cocktails", http.StatusMethodNotAllowed, `{"detail":"Method Not Allowed"}`},
		{"metrics disabled", http.MethodGet, "/metrics", http.StatusNotFound, `{"detail":"Not Found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestCatalogOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t, false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cocktails", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), `[{"name":"Manhattan","slug":"manhattan"`))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cocktails/negroni", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Negroni"`)
}

func TestPanicIsRecovered(t *testing.T) {
	router, llm := newTestRouter(t, false)
	llm.On("GenerateCocktail", mock.Anything, "boom").Panic("unexpected")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate-cocktail", strings.NewReader(`{"prompt":"boom"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"Internal Server Error"}`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t, false)

	req := httptest.NewRequest(http.MethodOptions, "/api/generate-cocktail", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cocktails/negroni", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `url="/api/cocktails/:slug"`)
	assert.NotContains(t, w.Body.String(), `url="/api/cocktails/negroni"`)
}
